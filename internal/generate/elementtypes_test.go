package generate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/damedic/fhirpath-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
	"github.com/google/go-cmp/cmp"
)

func element(path string, types ...string) ir.Element {
	return ir.Element{Path: path, Types: types}
}

var (
	testPatient = ir.ResourceOrType{
		Name:             "Patient",
		IsResource:       true,
		IsDomainResource: true,
		Elements: []ir.Element{
			element("Patient"),
			element("Patient.id", "id"),
			element("Patient.birthDate", "date"),
			element("Patient.name", "HumanName"),
			element("Patient.deceased[x]", "boolean", "dateTime"),
			element("Patient.contact", "BackboneElement"),
			element("Patient.contact.name", "HumanName"),
			element("Patient.contact.gender", "code"),
		},
	}
	testQuestionnaire = ir.ResourceOrType{
		Name:       "Questionnaire",
		IsResource: true,
		Elements: []ir.Element{
			element("Questionnaire"),
			element("Questionnaire.item", "BackboneElement"),
			element("Questionnaire.item.linkId", "string"),
			{Path: "Questionnaire.item.item", ContentReference: "Questionnaire.item"},
		},
	}
	testHumanName = ir.ResourceOrType{
		Name: "HumanName",
		Elements: []ir.Element{
			element("HumanName"),
			element("HumanName.family", "string"),
			element("HumanName.given", "string"),
		},
	}
	testDate = ir.ResourceOrType{
		Name:        "date",
		IsPrimitive: true,
		Elements:    []ir.Element{element("date"), element("date.value", "date")},
	}
)

func TestElementTypeLines(t *testing.T) {
	got := ElementTypeLines([]ir.ResourceOrType{testPatient, testQuestionnaire, testHumanName, testDate})
	want := []string{
		"HumanName family:string given:string",
		"Patient birthDate:date contact:Patient.contact deceased:* id:id name:HumanName",
		"Patient.contact gender:code name:HumanName",
		"Questionnaire item:Questionnaire.item",
		"Questionnaire.item item:Questionnaire.item linkId:string",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ElementTypeLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestElementTypesGenerator(t *testing.T) {
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
		{Name: "R4", Resources: []ir.ResourceOrType{testPatient}, Types: []ir.ResourceOrType{testHumanName}},
		{Name: "R5", Resources: []ir.ResourceOrType{testQuestionnaire}},
	}
	Run(newFile, releases, ElementTypesGenerator{})

	f, ok := files[ElementTypesFileName]
	if !ok {
		t.Fatalf("no %s file generated", ElementTypesFileName)
	}
	src := fmt.Sprintf("%#v", f)

	for _, want := range []string{
		"package model",
		`// elementTypesR4 lists the element types of each FHIR R4 type and backbone element as "path name:type ...".`,
		"var elementTypesR4 = []string{",
		`"Patient.contact gender:code name:HumanName",`,
		"var elementTypesR5 = []string{",
		`"Questionnaire.item item:Questionnaire.item linkId:string",`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source does not contain %q:\n%s", want, src)
		}
	}
	r4 := src[strings.Index(src, "elementTypesR4 ="):strings.Index(src, "elementTypesR5 =")]
	if strings.Contains(r4, "Questionnaire") {
		t.Errorf("R5 type leaked into R4:\n%s", r4)
	}
}
