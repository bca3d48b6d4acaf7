package model

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/apd/v3"

	"github.com/damedic/fhirpath-go/fhirpath"
)

var ErrNotAResource = errors.New("JSON object has no resourceType")

// JSONResource is a FHIR resource in its JSON representation. The document
// is kept as raw bytes and converted on demand, so field order is
// preserved.
type JSONResource struct {
	raw          []byte
	resourceType string
	id           string
	release      Release
}

// ParseResource checks that data is a JSON object with a resourceType.
// The data is retained, callers must not modify it afterwards.
func ParseResource(data []byte) (*JSONResource, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, fmt.Errorf("parse resource: expected JSON object")
	}
	rt, err := jsonparser.GetString(data, "resourceType")
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, ErrNotAResource
	}
	if err != nil {
		return nil, fmt.Errorf("parse resource: %w", err)
	}
	id, err := jsonparser.GetString(data, "id")
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, fmt.Errorf("parse resource %s: id: %w", rt, err)
	}
	return &JSONResource{raw: data, resourceType: rt, id: id}, nil
}

func (r *JSONResource) ResourceType() string {
	return r.resourceType
}

func (r *JSONResource) ResourceId() (string, bool) {
	return r.id, r.id != ""
}

// WithRelease returns a copy of r whose elements are typed by the
// definitions of release. Resources are typed as R4 by default.
func (r *JSONResource) WithRelease(release Release) *JSONResource {
	c := *r
	c.release = release
	return &c
}

// MarshalJSON returns the resource as it was parsed.
func (r *JSONResource) MarshalJSON() ([]byte, error) {
	return r.raw, nil
}

// ToValue converts the resource into an Object. Elements are tagged with
// the type the release declares for them, elements without a definition
// with the type JSON tells (string, boolean, integer, decimal). Primitive
// extensions in `_name` are merged with the value of `name` into a
// wrapper object.
func (r *JSONResource) ToValue() (fhirpath.Value, error) {
	release := r.release
	if release == nil {
		release = R4{}
	}
	c := converter{release: release, types: elementTypesOf(release)}
	o, err := c.convertObject(r.raw, "")
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", r.resourceType, err)
	}
	return o, nil
}

// ValueFromJSON converts a single JSON value the way resource members are
// converted. JSON null yields Empty.
func ValueFromJSON(data []byte) (fhirpath.Value, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("parse value: %w", err)
	}
	v, err := converter{}.convertValue(value, dataType, "")
	if err != nil {
		return nil, err
	}
	if v == nil {
		return fhirpath.Empty{}, nil
	}
	return v, nil
}

var (
	fhirString   = fhirpath.TypeSpecifier{Namespace: fhirpath.NamespaceFHIR, Name: "string"}
	fhirBoolean  = fhirpath.TypeSpecifier{Namespace: fhirpath.NamespaceFHIR, Name: "boolean"}
	fhirInteger  = fhirpath.TypeSpecifier{Namespace: fhirpath.NamespaceFHIR, Name: "integer"}
	fhirDecimal  = fhirpath.TypeSpecifier{Namespace: fhirpath.NamespaceFHIR, Name: "decimal"}
	fhirQuantity = fhirpath.TypeSpecifier{Namespace: fhirpath.NamespaceFHIR, Name: "Quantity"}
)

func fhirType(name string) fhirpath.TypeSpecifier {
	return fhirpath.TypeSpecifier{Namespace: fhirpath.NamespaceFHIR, Name: name}
}

// member is one raw key of a JSON object.
type member struct {
	name     string
	value    []byte
	dataType jsonparser.ValueType
}

// converter turns JSON into values. The zero converter knows no element
// definitions and types by JSON alone.
type converter struct {
	release Release
	types   elementTypes
}

// convertObject converts a JSON object declared as typ: a complex type,
// a backbone element path, Resource or "" if unknown.
func (c converter) convertObject(data []byte, typ string) (fhirpath.Object, error) {
	var (
		members    []member
		extensions = map[string]member{}
		path       = typ
	)
	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		m := member{name: string(key), value: value, dataType: dataType}
		if base, isExtension := strings.CutPrefix(m.name, "_"); isExtension && base != "" {
			extensions[base] = m
		}
		if m.name == "resourceType" && dataType == jsonparser.String {
			path = string(value)
		}
		members = append(members, m)
		return nil
	})
	if err != nil {
		return fhirpath.Object{}, err
	}

	var o fhirpath.Object
	for _, m := range members {
		if base, isExtension := strings.CutPrefix(m.name, "_"); isExtension && base != "" {
			if _, hasValue := findMember(members, base); hasValue {
				continue
			}
			declared, _ := c.types.element(path, base)
			v, err := c.convertPrimitive(member{name: base, dataType: jsonparser.Null}, m, declared)
			if err != nil {
				return fhirpath.Object{}, fmt.Errorf("%s: %w", m.name, err)
			}
			if v != nil {
				o.Fields = append(o.Fields, fhirpath.Field{Name: base, Value: v})
			}
			continue
		}
		declared, _ := c.types.element(path, m.name)
		var (
			v   fhirpath.Value
			err error
		)
		if ext, hasExtension := extensions[m.name]; hasExtension {
			v, err = c.convertPrimitive(m, ext, declared)
		} else {
			v, err = c.convertValue(m.value, m.dataType, declared)
		}
		if err != nil {
			return fhirpath.Object{}, fmt.Errorf("%s: %w", m.name, err)
		}
		if v == nil {
			continue
		}
		o.Fields = append(o.Fields, fhirpath.Field{Name: m.name, Value: v})
	}
	o.Type = c.objectType(typ, o)
	return o, nil
}

// objectType is the tag of an object declared as typ. Resources stay
// untagged, their type is their resourceType.
func (c converter) objectType(typ string, o fhirpath.Object) fhirpath.TypeSpecifier {
	switch {
	case typ == "":
		if isQuantityShaped(o) {
			return fhirQuantity
		}
		return fhirpath.TypeSpecifier{}
	case typ == "Resource":
		return fhirpath.TypeSpecifier{}
	case isBackbone(typ):
		root, _, _ := strings.Cut(typ, ".")
		if c.release != nil && c.release.IsResourceType(root) {
			return fhirType("BackboneElement")
		}
		return fhirType("Element")
	}
	return fhirType(typ)
}

func findMember(members []member, name string) (member, bool) {
	for _, m := range members {
		if m.name == name {
			return m, true
		}
	}
	return member{}, false
}

// convertValue converts a JSON value declared as typ. JSON null yields
// nil.
func (c converter) convertValue(value []byte, dataType jsonparser.ValueType, typ string) (fhirpath.Value, error) {
	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, err
		}
		return convertString(s, typ), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, err
		}
		return fhirpath.Boolean{Value: b, Type: fhirBoolean}, nil
	case jsonparser.Number:
		return convertNumber(value, typ)
	case jsonparser.Object:
		if isPrimitiveType(typ) {
			typ = ""
		}
		return c.convertObject(value, typ)
	case jsonparser.Array:
		items, err := c.convertArray(value, typ)
		if err != nil {
			return nil, err
		}
		return collection(items), nil
	case jsonparser.Null:
		return nil, nil
	}
	return nil, fmt.Errorf("unsupported JSON value %q", value)
}

// convertString tags s with its declared primitive type. integer64 is
// written as a JSON string.
func convertString(s, typ string) fhirpath.Value {
	if !isPrimitiveType(typ) {
		return fhirpath.String{Value: s, Type: fhirString}
	}
	if typ == "integer64" {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return fhirpath.Integer64{Value: i, Type: fhirType(typ)}
		}
	}
	return fhirpath.String{Value: s, Type: fhirType(typ)}
}

// convertNumber keeps the textual precision of decimals. Integral
// numbers of decimal elements are decimals.
func convertNumber(value []byte, typ string) (fhirpath.Value, error) {
	text := string(value)
	if typ != "decimal" && !bytes.ContainsAny(value, ".eE") {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			t := fhirInteger
			switch typ {
			case "positiveInt", "unsignedInt", "integer64":
				t = fhirType(typ)
			}
			if typ == "integer64" {
				return fhirpath.Integer64{Value: i, Type: t}, nil
			}
			return fhirpath.Integer{Value: i, Type: t}, nil
		}
	}
	d, _, err := apd.NewFromString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid number %s: %w", text, err)
	}
	return fhirpath.Decimal{Value: d, Type: fhirDecimal}, nil
}

// convertArray keeps null items as nil so that primitive extension arrays
// can be aligned by index.
func (c converter) convertArray(value []byte, typ string) ([]fhirpath.Value, error) {
	var (
		items   []fhirpath.Value
		itemErr error
	)
	_, err := jsonparser.ArrayEach(value, func(item []byte, dataType jsonparser.ValueType, _ int, err error) {
		if itemErr != nil {
			return
		}
		if err != nil {
			itemErr = err
			return
		}
		v, err := c.convertValue(item, dataType, typ)
		if err != nil {
			itemErr = fmt.Errorf("[%d]: %w", len(items), err)
			return
		}
		items = append(items, v)
	})
	if err != nil {
		return nil, err
	}
	return items, itemErr
}

func collection(items []fhirpath.Value) fhirpath.Value {
	var out []fhirpath.Value
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return fhirpath.Collection{Items: out}
}

// convertPrimitive merges a primitive (or an array of primitives) with its
// `_name` extension counterpart.
func (c converter) convertPrimitive(m, ext member, typ string) (fhirpath.Value, error) {
	if ext.dataType == jsonparser.Array {
		values := []fhirpath.Value{}
		if m.dataType == jsonparser.Array {
			var err error
			if values, err = c.convertArray(m.value, typ); err != nil {
				return nil, err
			}
		}
		exts, err := c.convertArray(ext.value, "Element")
		if err != nil {
			return nil, err
		}
		items := make([]fhirpath.Value, max(len(values), len(exts)))
		for i := range items {
			var v, e fhirpath.Value
			if i < len(values) {
				v = values[i]
			}
			if i < len(exts) {
				e = exts[i]
			}
			items[i] = wrapPrimitive(v, e, typ)
		}
		return collection(items), nil
	}
	v, err := c.convertValue(m.value, m.dataType, typ)
	if err != nil {
		return nil, err
	}
	e, err := c.convertValue(ext.value, ext.dataType, "Element")
	if err != nil {
		return nil, err
	}
	return wrapPrimitive(v, e, typ), nil
}

// wrapPrimitive builds the wrapper object of a primitive with id or
// extensions. The wrapper carries the declared type, or the type of the
// value if there is no declaration. Without either it is tagged
// FHIR.string.
func wrapPrimitive(v, ext fhirpath.Value, typ string) fhirpath.Value {
	e, ok := ext.(fhirpath.Object)
	if !ok || len(e.Fields) == 0 {
		return v
	}
	wrapper := fhirpath.Object{Type: fhirString}
	switch {
	case isPrimitiveType(typ):
		wrapper.Type = fhirType(typ)
	case v != nil:
		wrapper.Type = fhirpath.TypeOf(v)
	}
	if v != nil {
		wrapper.Fields = append(wrapper.Fields, fhirpath.Field{Name: "value", Value: v})
	}
	wrapper.Fields = append(wrapper.Fields, e.Fields...)
	return wrapper
}

// quantityFields are the members of the FHIR Quantity type.
var quantityFields = map[string]bool{
	"id":         true,
	"extension":  true,
	"value":      true,
	"comparator": true,
	"unit":       true,
	"system":     true,
	"code":       true,
}

// isQuantityShaped recognises Quantity elements outside of choice fields,
// e.g. Observation.referenceRange.low: a decimal value together with a
// unit or code and nothing else.
func isQuantityShaped(o fhirpath.Object) bool {
	if len(o.Fields) == 0 {
		return false
	}
	hasValue, hasUnit := false, false
	for _, f := range o.Fields {
		if !quantityFields[f.Name] {
			return false
		}
		switch f.Name {
		case "value":
			switch f.Value.(type) {
			case fhirpath.Decimal, fhirpath.Integer:
				hasValue = true
			case fhirpath.Object:
				hasValue = true
			}
		case "unit", "code":
			hasUnit = true
		}
	}
	return hasValue && hasUnit
}
