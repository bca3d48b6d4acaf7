package generate

import (
	"fmt"

	"github.com/damedic/fhirpath-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

// ResourceTypesFileName is the file ResourceTypesGenerator writes to.
const ResourceTypesFileName = "resourcetypes_gen"

// ResourceTypesGenerator emits the list of concrete resource types of
// every release and whether the release defines integer64.
type ResourceTypesGenerator struct {
	NoOpGenerator

	integer64 map[string]bool
}

func NewResourceTypesGenerator() *ResourceTypesGenerator {
	return &ResourceTypesGenerator{integer64: map[string]bool{}}
}

func (g *ResourceTypesGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	file := f(ResourceTypesFileName, "model")

	varName := "resourceTypeNames" + strcase.ToCamel(release)
	file.Comment(fmt.Sprintf("%s are the concrete resource types of FHIR %s.", varName, release))
	file.Var().Id(varName).Op("=").Index().String().ValuesFunc(func(g *Group) {
		for _, name := range ir.ConcreteResources(rt) {
			g.Line().Lit(name)
		}
		g.Line()
	})

	g.integer64[release] = ir.HasType(rt, "integer64")
}

// Finish emits the parts that span all releases. It must be called
// after the last release was generated.
func (g *ResourceTypesGenerator) Finish(f func(fileName string, pkgName string) *File, releases []string) {
	file := f(ResourceTypesFileName, "model")
	file.Comment("integer64Support tells which releases define the integer64 primitive.")
	file.Var().Id("integer64Support").Op("=").Map(String()).Bool().Values(DictFunc(func(d Dict) {
		for _, r := range releases {
			d[Lit(r)] = Lit(g.integer64[r])
		}
	}))
}
