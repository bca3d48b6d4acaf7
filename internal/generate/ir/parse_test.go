package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testBundle = `{
  "resourceType": "Bundle",
  "entry": [
    {"resource": {"resourceType": "StructureDefinition", "name": "Resource", "kind": "resource", "abstract": true}},
    {"resource": {"resourceType": "StructureDefinition", "name": "DomainResource", "kind": "resource", "abstract": true,
      "baseDefinition": "http://hl7.org/fhir/StructureDefinition/Resource"}},
    {"resource": {"resourceType": "StructureDefinition", "name": "Patient", "kind": "resource", "abstract": false,
      "derivation": "specialization", "baseDefinition": "http://hl7.org/fhir/StructureDefinition/DomainResource"}},
    {"resource": {"resourceType": "StructureDefinition", "name": "Bundle", "kind": "resource", "abstract": false,
      "baseDefinition": "http://hl7.org/fhir/StructureDefinition/Resource"}},
    {"resource": {"resourceType": "StructureDefinition", "name": "integer64", "kind": "primitive-type", "abstract": false,
      "baseDefinition": "http://hl7.org/fhir/StructureDefinition/PrimitiveType"}},
    {"resource": {"resourceType": "StructureDefinition", "name": "vitalsigns", "kind": "resource", "abstract": false,
      "derivation": "constraint", "baseDefinition": "http://hl7.org/fhir/StructureDefinition/Observation"}},
    {"resource": {"resourceType": "StructureDefinition", "name": "Definition", "kind": "logical", "abstract": true}},
    {"resource": {"resourceType": "SearchParameter", "name": "name"}},
    {"fullUrl": "urn:uuid:no-resource"}
  ]
}`

func TestParse(t *testing.T) {
	got, err := Parse([]byte(testBundle))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []ResourceOrType{
		{Name: "Resource", IsResource: true, IsAbstract: true},
		{Name: "DomainResource", BaseType: "Resource", IsResource: true, IsAbstract: true},
		{Name: "Patient", BaseType: "DomainResource", IsResource: true, IsDomainResource: true},
		{Name: "Bundle", BaseType: "Resource", IsResource: true},
		{Name: "integer64", BaseType: "PrimitiveType", IsPrimitive: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"Bundle", "Patient"}, ConcreteResources(got)); diff != "" {
		t.Errorf("ConcreteResources() mismatch (-want +got):\n%s", diff)
	}
	if !HasType(got, "integer64") || HasType(got, "integer") {
		t.Errorf("HasType() reports wrong types")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: `nope`},
		{name: "not a bundle", input: `{"resourceType": "Patient"}`},
		{name: "no name", input: `{"resourceType": "Bundle", "entry": [{"resource": {"resourceType": "StructureDefinition", "kind": "resource"}}]}`},
		{name: "bad abstract", input: `{"resourceType": "Bundle", "entry": [{"resource": {"resourceType": "StructureDefinition", "name": "X", "abstract": "yes"}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

const testSnapshotBundle = `{
  "resourceType": "Bundle",
  "entry": [
    {"resource": {"resourceType": "StructureDefinition", "name": "Questionnaire", "kind": "resource", "abstract": false,
      "baseDefinition": "http://hl7.org/fhir/StructureDefinition/DomainResource",
      "snapshot": {"element": [
        {"path": "Questionnaire"},
        {"path": "Questionnaire.id", "type": [{"code": "http://hl7.org/fhirpath/System.String",
          "extension": [{"url": "http://hl7.org/fhir/StructureDefinition/structuredefinition-fhir-type", "valueUrl": "id"}]}]},
        {"path": "Questionnaire.item", "type": [{"code": "BackboneElement"}]},
        {"path": "Questionnaire.item.linkId", "type": [{"code": "string"}]},
        {"path": "Questionnaire.item.id", "type": [{"code": "http://hl7.org/fhirpath/System.String"}]},
        {"path": "Questionnaire.item.answer[x]", "type": [{"code": "boolean"}, {"code": "Coding"}]},
        {"path": "Questionnaire.item.item", "contentReference": "http://hl7.org/fhir/StructureDefinition/Questionnaire#Questionnaire.item"}
      ]}}}
  ]
}`

func TestParseElements(t *testing.T) {
	got, err := Parse([]byte(testSnapshotBundle))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one type, got %d", len(got))
	}
	want := []Element{
		{Path: "Questionnaire"},
		{Path: "Questionnaire.id", Types: []string{"id"}},
		{Path: "Questionnaire.item", Types: []string{"BackboneElement"}},
		{Path: "Questionnaire.item.linkId", Types: []string{"string"}},
		{Path: "Questionnaire.item.id", Types: []string{"string"}},
		{Path: "Questionnaire.item.answer[x]", Types: []string{"boolean", "Coding"}},
		{Path: "Questionnaire.item.item", ContentReference: "Questionnaire.item"},
	}
	if diff := cmp.Diff(want, got[0].Elements); diff != "" {
		t.Errorf("Elements mismatch (-want +got):\n%s", diff)
	}

	item := got[0].Elements[5]
	if item.Name() != "answer[x]" || item.Parent() != "Questionnaire.item" || !item.IsChoice() {
		t.Errorf("unexpected element accessors: %q %q %v", item.Name(), item.Parent(), item.IsChoice())
	}
}
