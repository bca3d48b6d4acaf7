package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhirpath-go/fhirpath"
	"github.com/damedic/fhirpath-go/model"
	"github.com/damedic/fhirpath-go/testdata"
	"github.com/damedic/fhirpath-go/testdata/assert"
)

func TestParseResourceErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{name: "array", input: `[{"resourceType":"Patient"}]`},
		{name: "empty", input: `  `},
		{name: "no resourceType", input: `{"id":"x"}`, target: model.ErrNotAResource},
		{name: "numeric resourceType", input: `{"resourceType":1}`},
		{name: "numeric id", input: `{"resourceType":"Patient","id":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.ParseResource([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestResourceIdentity(t *testing.T) {
	tests := []struct {
		input  string
		wantRT string
		wantID string
		hasID  bool
	}{
		{input: `{"resourceType":"Patient","id":"p1"}`, wantRT: "Patient", wantID: "p1", hasID: true},
		{input: `{"id":"o1","resourceType":"Observation"}`, wantRT: "Observation", wantID: "o1", hasID: true},
		{input: `{"resourceType":"Bundle"}`, wantRT: "Bundle"},
	}

	for _, tt := range tests {
		t.Run(tt.wantRT, func(t *testing.T) {
			r, err := model.ParseResource([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.ResourceType() != tt.wantRT {
				t.Errorf("ResourceType() = %q, want %q", r.ResourceType(), tt.wantRT)
			}
			id, ok := r.ResourceId()
			if id != tt.wantID || ok != tt.hasID {
				t.Errorf("ResourceId() = %q, %v, want %q, %v", id, ok, tt.wantID, tt.hasID)
			}
		})
	}
}

func TestMarshalJSONKeepsInput(t *testing.T) {
	for _, name := range testdata.ExampleNames() {
		t.Run(name, func(t *testing.T) {
			raw := testdata.GetExamples()[name]
			r, err := model.ParseResource(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			out, err := r.MarshalJSON()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assert.JSONEqual(t, string(raw), string(out))
		})
	}
}

func TestToValueRendersJSON(t *testing.T) {
	for _, name := range testdata.ExampleNames() {
		t.Run(name, func(t *testing.T) {
			v, err := testdata.GetExample(name).ToValue()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := v.(fhirpath.Object); !ok {
				t.Fatalf("expected object, got %T", v)
			}
			if _, err := v.(fhirpath.Object).MarshalJSON(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

const sampleObservation = `{
  "resourceType": "Observation",
  "id": "sample",
  "status": "final",
  "valueQuantity": {"value": 1.50, "unit": "kg", "code": "kg"},
  "referenceRange": [{"low": {"value": 1, "code": "kg"}, "text": "normal"}],
  "component": [{"valueInteger": 3}, {"valueBoolean": false}],
  "note": null
}`

func TestToValueTypes(t *testing.T) {
	v := toObject(t, sampleObservation)

	tests := []struct {
		name     string
		value    fhirpath.Value
		wantType fhirpath.TypeSpecifier
		wantJSON string
	}{
		{name: "code", value: get(t, v, "status"), wantType: fhirType("code"), wantJSON: `"final"`},
		{name: "id", value: get(t, v, "id"), wantType: fhirType("id"), wantJSON: `"sample"`},
		{name: "quantity", value: get(t, v, "valueQuantity"), wantType: fhirType("Quantity"), wantJSON: `{"value":1.50,"unit":"kg","code":"kg"}`},
		{name: "decimal", value: get(t, get(t, v, "valueQuantity"), "value"), wantType: fhirType("decimal"), wantJSON: `1.50`},
		{name: "quantity without choice", value: get(t, get(t, v, "referenceRange"), "low"), wantType: fhirType("Quantity"), wantJSON: `{"value":1,"code":"kg"}`},
		{name: "integer", value: get(t, items(t, v, "component")[0], "valueInteger"), wantType: fhirType("integer"), wantJSON: `3`},
		{name: "boolean", value: get(t, items(t, v, "component")[1], "valueBoolean"), wantType: fhirType("boolean"), wantJSON: `false`},
		{name: "backbone element", value: items(t, v, "referenceRange")[0], wantType: fhirType("BackboneElement"), wantJSON: `{"low":{"value":1,"code":"kg"},"text":"normal"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.wantType, fhirpath.TypeOf(tt.value)); diff != "" {
				t.Errorf("type mismatch (-want +got):\n%s", diff)
			}
			assert.JSONEqual(t, tt.wantJSON, marshal(t, tt.value))
		})
	}

	if _, ok := v.Get("note"); ok {
		t.Errorf("null member should be dropped")
	}
	if s := get(t, get(t, v, "valueQuantity"), "value").String(); s != "1.50" {
		t.Errorf("decimal precision lost: %s", s)
	}
}

func TestValueFromJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantType  fhirpath.TypeSpecifier
		wantJSON  string
		wantEmpty bool
	}{
		{name: "string", input: `"abc"`, wantType: fhirType("string"), wantJSON: `"abc"`},
		{name: "integer", input: `42`, wantType: fhirType("integer"), wantJSON: `42`},
		{name: "decimal", input: `4.20`, wantType: fhirType("decimal"), wantJSON: `4.20`},
		{name: "boolean", input: `true`, wantType: fhirType("boolean"), wantJSON: `true`},
		{name: "quantity", input: `{"value": 3, "code": "mg"}`, wantType: fhirType("Quantity"), wantJSON: `{"value":3,"code":"mg"}`},
		{name: "null", input: `null`, wantEmpty: true},
		{name: "empty array", input: `[]`, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := model.ValueFromJSON([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantEmpty {
				if !fhirpath.IsEmpty(v) {
					t.Errorf("expected empty, got %v", v)
				}
				return
			}
			if diff := cmp.Diff(tt.wantType, fhirpath.TypeOf(v)); diff != "" {
				t.Errorf("type mismatch (-want +got):\n%s", diff)
			}
			assert.JSONEqual(t, tt.wantJSON, marshal(t, v))
		})
	}

	t.Run("array", func(t *testing.T) {
		v, err := model.ValueFromJSON([]byte(`[1, null, "a"]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := len(fhirpath.Items(v)); got != 2 {
			t.Errorf("expected 2 items, got %d", got)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := model.ValueFromJSON([]byte(`{"a":`)); err == nil {
			t.Error("expected error")
		}
	})
}

const samplePatient = `{
  "resourceType": "Patient",
  "birthDate": "1974-12-25",
  "_birthDate": {"extension": [{"url": "u", "valueString": "x"}]},
  "_gender": {"id": "g"},
  "name": [{
    "given": ["Peter", null, "Jim"],
    "_given": [null, {"id": "n1"}, {"extension": [{"url": "v", "valueCode": "c"}]}]
  }]
}`

func TestToValuePrimitiveExtensions(t *testing.T) {
	v := toObject(t, samplePatient)

	t.Run("value and extension", func(t *testing.T) {
		birthDate := get(t, v, "birthDate")
		if diff := cmp.Diff(fhirType("date"), fhirpath.TypeOf(birthDate)); diff != "" {
			t.Errorf("type mismatch (-want +got):\n%s", diff)
		}
		assert.JSONEqual(t,
			`{"value":"1974-12-25","extension":[{"url":"u","valueString":"x"}]}`,
			marshal(t, birthDate))
	})

	t.Run("extension without value", func(t *testing.T) {
		gender := get(t, v, "gender")
		if diff := cmp.Diff(fhirType("code"), fhirpath.TypeOf(gender)); diff != "" {
			t.Errorf("type mismatch (-want +got):\n%s", diff)
		}
		assert.JSONEqual(t, `{"id":"g"}`, marshal(t, gender))
	})

	t.Run("no underscore members", func(t *testing.T) {
		for _, f := range v.Fields {
			if f.Name[0] == '_' {
				t.Errorf("unexpected member %s", f.Name)
			}
		}
	})

	t.Run("aligned arrays", func(t *testing.T) {
		given := get(t, items(t, v, "name")[0], "given")
		assert.JSONEqual(t,
			`["Peter",{"id":"n1"},{"value":"Jim","extension":[{"url":"v","valueCode":"c"}]}]`,
			marshal(t, given))
	})
}

const typedPatient = `{
  "resourceType": "Patient",
  "id": "p1",
  "birthDate": "1974-12-25",
  "_birthDate": {"id": "x"},
  "deceasedDateTime": "2015-02-14T13:42:00+10:00",
  "name": [{"family": "Chalmers", "period": {"start": "2001"}}],
  "contact": [{"name": {"family": "du Marché"}, "gender": "female"}],
  "multipleBirthInteger": 2,
  "contained": [{"resourceType": "Organization", "id": "o1", "active": true}],
  "unknown": {"value": "x"}
}`

func TestToValueElementTypes(t *testing.T) {
	v := toObject(t, typedPatient)

	tests := []struct {
		name     string
		value    fhirpath.Value
		wantType fhirpath.TypeSpecifier
	}{
		{name: "resource id", value: get(t, v, "id"), wantType: fhirType("id")},
		{name: "primitive with extension", value: get(t, v, "birthDate"), wantType: fhirType("date")},
		{name: "value of primitive with extension", value: get(t, get(t, v, "birthDate"), "value"), wantType: fhirType("date")},
		{name: "choice primitive", value: get(t, v, "deceasedDateTime"), wantType: fhirType("dateTime")},
		{name: "choice integer", value: get(t, v, "multipleBirthInteger"), wantType: fhirType("integer")},
		{name: "complex type", value: items(t, v, "name")[0], wantType: fhirType("HumanName")},
		{name: "element of complex type", value: get(t, get(t, items(t, v, "name")[0], "period"), "start"), wantType: fhirType("dateTime")},
		{name: "backbone element", value: items(t, v, "contact")[0], wantType: fhirType("BackboneElement")},
		{name: "complex type in backbone element", value: get(t, items(t, v, "contact")[0], "name"), wantType: fhirType("HumanName")},
		{name: "code in backbone element", value: get(t, items(t, v, "contact")[0], "gender"), wantType: fhirType("code")},
		{name: "contained resource", value: items(t, v, "contained")[0], wantType: fhirType("Organization")},
		{name: "element of contained resource", value: get(t, items(t, v, "contained")[0], "id"), wantType: fhirType("id")},
		{name: "undefined element", value: get(t, v, "unknown"), wantType: fhirType("Element")},
		{name: "element of undefined element", value: get(t, get(t, v, "unknown"), "value"), wantType: fhirType("string")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.wantType, fhirpath.TypeOf(tt.value)); diff != "" {
				t.Errorf("type mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToValueDecimalElements(t *testing.T) {
	v := toObject(t, `{"resourceType":"Observation","valueQuantity":{"value":185,"code":"kg"}}`)
	value := get(t, get(t, v, "valueQuantity"), "value")
	if _, ok := value.(fhirpath.Decimal); !ok {
		t.Fatalf("expected decimal, got %T", value)
	}
	if diff := cmp.Diff(fhirType("decimal"), fhirpath.TypeOf(value)); diff != "" {
		t.Errorf("type mismatch (-want +got):\n%s", diff)
	}
}

func TestToValueRelease(t *testing.T) {
	const input = `{"resourceType":"Patient","name":[{"family":"x"}]}`
	for _, release := range model.Releases {
		t.Run(release.String(), func(t *testing.T) {
			r, err := model.ParseResource([]byte(input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			v, err := r.WithRelease(release).ToValue()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			name := items(t, v, "name")[0]
			if diff := cmp.Diff(fhirType("HumanName"), fhirpath.TypeOf(name)); diff != "" {
				t.Errorf("type mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func toObject(t *testing.T, input string) fhirpath.Object {
	t.Helper()
	r, err := model.ParseResource([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := r.ToValue()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o, ok := v.(fhirpath.Object)
	if !ok {
		t.Fatalf("expected object, got %T", v)
	}
	return o
}

func get(t *testing.T, v fhirpath.Value, name string) fhirpath.Value {
	t.Helper()
	item := v
	if c, ok := v.(fhirpath.Collection); ok && len(c.Items) > 0 {
		item = c.Items[0]
	}
	o, ok := item.(fhirpath.Object)
	if !ok {
		t.Fatalf("expected object, got %T", item)
	}
	field, ok := o.Get(name)
	if !ok {
		t.Fatalf("missing member %s", name)
	}
	return field
}

func items(t *testing.T, v fhirpath.Value, name string) []fhirpath.Value {
	t.Helper()
	return fhirpath.Items(get(t, v, name))
}

func marshal(t *testing.T, v fhirpath.Value) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return string(b)
}

func fhirType(name string) fhirpath.TypeSpecifier {
	return fhirpath.TypeSpecifier{Namespace: fhirpath.NamespaceFHIR, Name: name}
}
