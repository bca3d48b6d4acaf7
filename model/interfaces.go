package model

import (
	"github.com/damedic/fhirpath-go/fhirpath"
)

// Resource is any FHIR resource that can be used as evaluation input.
type Resource interface {
	fhirpath.Resource
	ResourceType() string
	ResourceId() (string, bool)
}
var _ Resource = (*JSONResource)(nil)
