package model

import (
	"fmt"
	"strings"

	"github.com/damedic/fhirpath-go/fhirpath"
)

// Release is a FHIR release expressions can be evaluated against.
//
// The interface is sealed: R4, R4B and R5 are its only implementations,
// which lets callers switch over the concrete type exhaustively.
type Release interface {
	fhirpath.Model
	// Version is the FHIR version of the release, e.g. 4.0.1.
	Version() string
	isRelease()
}

type R4 struct{}

type R4B struct{}

type R5 struct{}

// Releases lists all supported releases, oldest first.
var Releases = []Release{R4{}, R4B{}, R5{}}

func (R4) isRelease()  {}
func (R4B) isRelease() {}
func (R5) isRelease()  {}

func (R4) String() string  { return "R4" }
func (R4B) String() string { return "R4B" }
func (R5) String() string  { return "R5" }

func (R4) Version() string  { return "4.0.1" }
func (R4B) Version() string { return "4.3.0" }
func (R5) Version() string  { return "5.0.0" }

func (R4) IsResourceType(name string) bool  { return isResourceType(resourceTypesR4, name) }
func (R4B) IsResourceType(name string) bool { return isResourceType(resourceTypesR4B, name) }
func (R5) IsResourceType(name string) bool  { return isResourceType(resourceTypesR5, name) }

func (r R4) SupportsInteger64() bool  { return integer64Support[r.String()] }
func (r R4B) SupportsInteger64() bool { return integer64Support[r.String()] }
func (r R5) SupportsInteger64() bool  { return integer64Support[r.String()] }

var (
	resourceTypesR4  = typeSet(resourceTypeNamesR4)
	resourceTypesR4B = typeSet(resourceTypeNamesR4B)
	resourceTypesR5  = typeSet(resourceTypeNamesR5)
)

func typeSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// abstractResourceTypes are valid type specifiers in every release but
// never the resourceType of a concrete resource.
var abstractResourceTypes = map[string]struct{}{
	"Resource":          {},
	"DomainResource":    {},
	"CanonicalResource": {},
	"MetadataResource":  {},
}

func isResourceType(types map[string]struct{}, name string) bool {
	if _, ok := types[name]; ok {
		return true
	}
	_, ok := abstractResourceTypes[name]
	return ok
}

// ReleaseName returns the name of release R, e.g. "R4B".
func ReleaseName[R Release]() string {
	var r R
	return r.String()
}

// ParseRelease accepts a release name (r4, R4B) or version (4.0.1, 5.0).
func ParseRelease(s string) (Release, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	for _, r := range Releases {
		if norm == r.String() || norm == r.Version() || strings.HasPrefix(r.Version(), norm+".") {
			return r, nil
		}
	}
	return nil, fmt.Errorf("unknown FHIR release %q", s)
}
