package fhirpath

import (
	"testing"

	"github.com/damedic/fhirpath-go/fhirpath/internal/parser"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	patientObject = Object{Fields: []Field{
		{Name: "resourceType", Value: String{Value: "Patient"}},
		{Name: "id", Value: String{Value: "example", Type: fhirType("string")}},
	}}
	bundleObject = Object{Fields: []Field{
		{Name: "resourceType", Value: String{Value: "Bundle"}},
	}}
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  TypeSpecifier
	}{
		{name: "untagged boolean", value: NewBoolean(true), want: systemType("Boolean")},
		{name: "tagged boolean", value: Boolean{Value: true, Type: fhirType("boolean")}, want: fhirType("boolean")},
		{name: "long", value: Integer64{Value: 1}, want: systemType("Long")},
		{name: "quantity", value: Quantity{Value: decimalFromInt(1), Unit: "mg"}, want: systemType("Quantity")},
		{name: "resource", value: patientObject, want: fhirType("Patient")},
		{name: "element", value: Object{}, want: fhirType("Element")},
		{name: "tagged object", value: Object{Type: fhirType("HumanName")}, want: fhirType("HumanName")},
		{name: "empty", value: Empty{}, want: TypeSpecifier{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, TypeOf(tt.value)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsOfType(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		typ    TypeSpecifier
		is     bool
		ofType bool
	}{
		{name: "same fhir type", value: Boolean{Value: true, Type: fhirType("boolean")}, typ: fhirType("boolean"), is: true, ofType: true},
		{name: "fhir primitive against system", value: Boolean{Value: true, Type: fhirType("boolean")}, typ: systemType("Boolean"), is: false, ofType: true},
		{name: "system against fhir primitive", value: NewString("x"), typ: fhirType("string"), is: false, ofType: true},
		{name: "unqualified name", value: NewInteger(1), typ: TypeSpecifier{Name: "Integer"}, is: true, ofType: true},
		{name: "case insensitive", value: NewInteger(1), typ: systemType("integer"), is: true, ofType: true},
		{name: "code derives from string", value: String{Value: "x", Type: fhirType("code")}, typ: fhirType("string"), is: true, ofType: true},
		{name: "age is a quantity", value: Object{Type: fhirType("Age")}, typ: fhirType("Quantity"), is: true, ofType: true},
		{name: "quantity across namespaces", value: Quantity{Value: decimalFromInt(1), Unit: "mg", Type: fhirType("Quantity")}, typ: systemType("Quantity"), is: true, ofType: true},
		{name: "resource is domain resource", value: patientObject, typ: fhirType("DomainResource"), is: true, ofType: true},
		{name: "resource is resource", value: patientObject, typ: fhirType("Resource"), is: true, ofType: true},
		{name: "bundle is not a domain resource", value: bundleObject, typ: fhirType("DomainResource"), is: false, ofType: false},
		{name: "bundle is a resource", value: bundleObject, typ: fhirType("Resource"), is: true, ofType: true},
		{name: "any", value: NewString("x"), typ: systemType("Any"), is: true, ofType: true},
		{name: "different type", value: NewString("x"), typ: systemType("Integer"), is: false, ofType: false},
		{name: "complex type is an element", value: Object{Type: fhirType("HumanName")}, typ: fhirType("Element"), is: true, ofType: true},
		{name: "backbone element is an element", value: Object{Type: fhirType("BackboneElement")}, typ: fhirType("Element"), is: true, ofType: true},
		{name: "unqualified complex type", value: Object{Type: fhirType("HumanName")}, typ: TypeSpecifier{Name: "HumanName"}, is: true, ofType: true},
		{name: "date across namespaces", value: String{Value: "1974-12-25", Type: fhirType("date")}, typ: systemType("Date"), is: true, ofType: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOfType(tt.value, tt.typ, noModel{}); got != tt.is {
				t.Errorf("IsOfType() = %v, want %v", got, tt.is)
			}
			if got := !IsEmpty(OfType(tt.value, tt.typ, noModel{})); got != tt.ofType {
				t.Errorf("OfType() kept = %v, want %v", got, tt.ofType)
			}
		})
	}
}

func TestOfTypeConvertsStrings(t *testing.T) {
	tests := []struct {
		name  string
		value string
		typ   string
		want  bool
	}{
		{name: "date", value: "2024-01-15", typ: "date", want: true},
		{name: "not a date", value: "15.01.2024", typ: "date", want: false},
		{name: "dateTime", value: "2024-01-15T10:00:00Z", typ: "dateTime", want: true},
		{name: "instant needs zone", value: "2024-01-15T10:00:00", typ: "instant", want: false},
		{name: "uuid", value: "urn:uuid:c757873d-ec9a-4326-a141-556f43239520", typ: "uuid", want: true},
		{name: "bare uuid", value: "c757873d-ec9a-4326-a141-556f43239520", typ: "uuid", want: false},
		{name: "oid", value: "urn:oid:1.2.3.4", typ: "oid", want: true},
		{name: "url", value: "http://example.org/fhir", typ: "url", want: true},
		{name: "code with double space", value: "a  b", typ: "code", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := String{Value: tt.value, Type: fhirType("string")}
			got := OfType(in, fhirType(tt.typ), noModel{})
			if IsEmpty(got) != !tt.want {
				t.Fatalf("OfType(%q, %s) = %v", tt.value, tt.typ, got)
			}
			if tt.want {
				if diff := cmp.Diff(fhirType(tt.typ), TypeOf(got)); diff != "" {
					t.Errorf("type mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}

	t.Run("primitive with extensions", func(t *testing.T) {
		in := Object{Type: fhirType("string"), Fields: []Field{
			{Name: "value", Value: String{Value: "1974-12-25", Type: fhirType("string")}},
			{Name: "id", Value: NewString("x")},
		}}
		want := Object{Type: fhirType("date"), Fields: []Field{
			{Name: "value", Value: String{Value: "1974-12-25", Type: fhirType("date")}},
			{Name: "id", Value: NewString("x")},
		}}
		got := OfType(in, fhirType("date"), noModel{})
		if diff := cmp.Diff([]Value{want}, Items(got), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("OfType() mismatch (-want +got):\n%s", diff)
		}
		if got := OfType(in, fhirType("time"), noModel{}); !IsEmpty(got) {
			t.Errorf("expected empty, got %v", got)
		}
	})

	t.Run("system strings are not converted", func(t *testing.T) {
		if got := OfType(NewString("2024-01-15"), fhirType("date"), noModel{}); !IsEmpty(got) {
			t.Errorf("expected empty, got %v", got)
		}
	})
}

type testModel struct{}

func (testModel) String() string               { return "test" }
func (testModel) IsResourceType(n string) bool { return n == "Patient" || n == "Bundle" }
func (testModel) SupportsInteger64() bool      { return false }

func TestResolveTypeSpecifier(t *testing.T) {
	tests := []struct {
		name  string
		input parser.QualifiedIdentifier
		model Model
		want  TypeSpecifier
	}{
		{name: "qualified", input: parser.QualifiedIdentifier{Namespace: "System", Name: "String"}, want: systemType("String")},
		{name: "lowercase is fhir", input: parser.QualifiedIdentifier{Name: "string"}, want: fhirType("string")},
		{name: "system name", input: parser.QualifiedIdentifier{Name: "Boolean"}, want: systemType("Boolean")},
		{name: "resource of the model", input: parser.QualifiedIdentifier{Name: "Patient"}, model: testModel{}, want: fhirType("Patient")},
		{name: "unknown stays unqualified", input: parser.QualifiedIdentifier{Name: "HumanName"}, model: testModel{}, want: TypeSpecifier{Name: "HumanName"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ResolveTypeSpecifier(tt.input, tt.model)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChoiceType(t *testing.T) {
	tests := []struct {
		field    string
		wantBase string
		wantType TypeSpecifier
		wantOk   bool
	}{
		{field: "valueQuantity", wantBase: "value", wantType: fhirType("Quantity"), wantOk: true},
		{field: "deceasedDateTime", wantBase: "deceased", wantType: fhirType("dateTime"), wantOk: true},
		{field: "multipleBirthInteger", wantBase: "multipleBirth", wantType: fhirType("integer"), wantOk: true},
		{field: "valueCodeableConcept", wantBase: "value", wantType: fhirType("CodeableConcept"), wantOk: true},
		{field: "name"},
		{field: "valueSomething"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			base, typ, ok := ChoiceType(tt.field)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if diff := cmp.Diff([]any{tt.wantBase, tt.wantType}, []any{base, typ}); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTypeInfo(t *testing.T) {
	got := typeInfo(patientObject).(Object)
	if diff := cmp.Diff(systemType("ClassInfo"), got.Type); diff != "" {
		t.Errorf("kind mismatch (-want +got):\n%s", diff)
	}
	name, _ := got.Get("name")
	namespace, _ := got.Get("namespace")
	if diff := cmp.Diff("FHIR.Patient", namespace.String()+"."+name.String()); diff != "" {
		t.Errorf("name mismatch (-want +got):\n%s", diff)
	}
}
