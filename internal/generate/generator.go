// Package generate emits Go source derived from the FHIR definitions of
// each supported release.
package generate

import (
	"github.com/damedic/fhirpath-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// Generator contributes code to the generated files.
//
// GenerateType is called once per type of a release and reports whether
// it emitted anything. GenerateAdditional is called once per release
// with all of its types.
type Generator interface {
	GenerateType(f *File, rt ir.ResourceOrType) bool
	GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType)
}

// NoOpGenerator can be embedded to implement only parts of Generator.
type NoOpGenerator struct{}

func (g NoOpGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	return false
}

func (g NoOpGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
}

// Release bundles the parsed definitions of one FHIR release.
type Release struct {
	Name      string
	Resources []ir.ResourceOrType
	Types     []ir.ResourceOrType
}

// Run feeds all releases through the generators. Files are obtained
// from newFile, which is expected to return the same *File for the same
// name so that generators can share output files.
func Run(newFile func(fileName string, pkgName string) *File, releases []Release, generators ...Generator) {
	for _, r := range releases {
		all := append(append([]ir.ResourceOrType{}, r.Resources...), r.Types...)
		for _, g := range generators {
			for _, rt := range all {
				g.GenerateType(newFile(r.Name, "model"), rt)
			}
			g.GenerateAdditional(newFile, r.Name, all)
		}
	}
}
