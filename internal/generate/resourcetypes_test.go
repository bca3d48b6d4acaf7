package generate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/damedic/fhirpath-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

func TestResourceTypesGenerator(t *testing.T) {
	files := map[string]*File{}
	newFile := func(fileName string, pkgName string) *File {
		if f, ok := files[fileName]; ok {
			return f
		}
		f := NewFile(pkgName)
		files[fileName] = f
		return f
	}

	releases := []Release{
		{
			Name: "R4",
			Resources: []ir.ResourceOrType{
				{Name: "Resource", IsResource: true, IsAbstract: true},
				{Name: "Patient", IsResource: true, IsDomainResource: true},
				{Name: "Bundle", IsResource: true},
			},
			Types: []ir.ResourceOrType{{Name: "integer", IsPrimitive: true}},
		},
		{
			Name:      "R5",
			Resources: []ir.ResourceOrType{{Name: "ActorDefinition", IsResource: true, IsDomainResource: true}},
			Types:     []ir.ResourceOrType{{Name: "integer64", IsPrimitive: true}},
		},
	}

	g := NewResourceTypesGenerator()
	Run(newFile, releases, g)
	g.Finish(newFile, []string{"R4", "R5"})

	f, ok := files[ResourceTypesFileName]
	if !ok {
		t.Fatalf("no %s file generated", ResourceTypesFileName)
	}
	src := fmt.Sprintf("%#v", f)

	for _, want := range []string{
		"package model",
		"// resourceTypeNamesR4 are the concrete resource types of FHIR R4.",
		"var resourceTypeNamesR4 = []string{",
		"var resourceTypeNamesR5 = []string{",
		"\"R4\": false",
		"\"R5\": true",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source does not contain %q:\n%s", want, src)
		}
	}
	r4 := src[strings.Index(src, "resourceTypeNamesR4 ="):strings.Index(src, "resourceTypeNamesR5 =")]
	bundle, patient := strings.Index(r4, `"Bundle"`), strings.Index(r4, `"Patient"`)
	if bundle < 0 || patient < bundle {
		t.Errorf("R4 resource types not sorted:\n%s", r4)
	}
	if strings.Contains(r4, "ActorDefinition") {
		t.Errorf("R5 resource leaked into R4:\n%s", r4)
	}
	if strings.Contains(src, "\"Resource\"") {
		t.Errorf("abstract resource emitted:\n%s", src)
	}
}
