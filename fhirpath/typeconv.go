package fhirpath

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Shape checks used by ofType() to recognise generic strings as more
// specific FHIR primitives. They are heuristics, not validation.
var (
	datePrimitive     = regexp.MustCompile(`^\d{4}(-\d{2}(-\d{2})?)?$`)
	dateTimePrimitive = regexp.MustCompile(`^\d{4}(-\d{2}(-\d{2}(T\d{2}:\d{2}(:\d{2}(\.\d+)?)?(Z|[+-]\d{2}:\d{2})?)?)?)?$`)
	instantPrimitive  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`)
	timePrimitive     = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2}(\.\d+)?)?$`)
	idPrimitive       = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	uriPrimitive      = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*:\S+$`)
	urlPrimitive      = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://\S+$`)
	canonicalPattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://[^\s|]+(\|\S+)?$`)
	oidPrimitive      = regexp.MustCompile(`^urn:oid:[0-2](\.(0|[1-9][0-9]*))+$`)
	codePrimitive     = regexp.MustCompile(`^\S+( \S+)*$`)
	base64Primitive   = regexp.MustCompile(`^(\s*[0-9a-zA-Z+/=]{4}\s*)+$`)
)

var primitiveShapes = map[string]func(string) bool{
	"date":      datePrimitive.MatchString,
	"dateTime":  dateTimePrimitive.MatchString,
	"instant":   instantPrimitive.MatchString,
	"time":      timePrimitive.MatchString,
	"id":        idPrimitive.MatchString,
	"uri":       uriPrimitive.MatchString,
	"url":       urlPrimitive.MatchString,
	"canonical": canonicalPattern.MatchString,
	"uuid":      isUUID,
	"oid":       oidPrimitive.MatchString,
	"code":      codePrimitive.MatchString,
	"markdown": func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	"base64Binary": base64Primitive.MatchString,
}

func isUUID(s string) bool {
	rest, ok := strings.CutPrefix(s, "urn:uuid:")
	if !ok {
		return false
	}
	_, err := uuid.Parse(rest)
	return err == nil
}

// convertForOfType retags a FHIR.string value as the requested FHIR
// primitive when its text has the right shape. A primitive wrapper keeps
// its extensions and is retagged together with its value.
func convertForOfType(v Value, want TypeSpecifier) (Value, bool) {
	if want.Namespace != "" && !strings.EqualFold(want.Namespace, NamespaceFHIR) {
		return nil, false
	}
	if o, ok := v.(Object); ok && isPrimitiveWrapper(o) {
		inner, ok := unwrapPrimitive(o).(String)
		if !ok || !isFHIRString(o.Type) || !isFHIRString(inner.Type) {
			return nil, false
		}
		t, ok := primitiveOfShape(inner.Value, want)
		if !ok {
			return nil, false
		}
		return retagWrapper(o, t), true
	}
	s, ok := v.(String)
	if !ok || !isFHIRString(s.Type) {
		return nil, false
	}
	t, ok := primitiveOfShape(s.Value, want)
	if !ok {
		return nil, false
	}
	return String{Value: s.Value, Type: t}, true
}

func isFHIRString(t TypeSpecifier) bool {
	return strings.EqualFold(t.Namespace, NamespaceFHIR) && t.Name == "string"
}

func primitiveOfShape(s string, want TypeSpecifier) (TypeSpecifier, bool) {
	for name, matches := range primitiveShapes {
		if strings.EqualFold(name, want.Name) && matches(s) {
			return fhirType(name), true
		}
	}
	return TypeSpecifier{}, false
}

// retagWrapper tags a primitive wrapper and its value with t.
func retagWrapper(o Object, t TypeSpecifier) Object {
	fields := make([]Field, len(o.Fields))
	for i, f := range o.Fields {
		if f.Name == "value" {
			f.Value = withType(f.Value, t)
		}
		fields[i] = f
	}
	return Object{Type: t, Fields: fields}
}
