package fhirpath

import (
	"strings"
	"unicode"

	"github.com/damedic/fhirpath-go/fhirpath/internal/parser"
)

// systemTypes are the names of the System namespace.
var systemTypes = map[string]bool{
	"Any":       true,
	"Boolean":   true,
	"Integer":   true,
	"Long":      true,
	"Integer64": true,
	"Decimal":   true,
	"String":    true,
	"Date":      true,
	"DateTime":  true,
	"Time":      true,
	"Quantity":  true,
}

// crossNamespaceTypes are equivalent in the FHIR and System namespaces for
// every type operation.
var crossNamespaceTypes = map[string]bool{
	"quantity": true,
	"date":     true,
	"datetime": true,
	"time":     true,
}

// fhirPrimitiveSystemTypes maps FHIR primitives to the System type they
// match in ofType().
var fhirPrimitiveSystemTypes = map[string]string{
	"boolean":      "Boolean",
	"string":       "String",
	"code":         "String",
	"id":           "String",
	"uri":          "String",
	"url":          "String",
	"canonical":    "String",
	"markdown":     "String",
	"oid":          "String",
	"uuid":         "String",
	"base64Binary": "String",
	"xhtml":        "String",
	"integer":      "Integer",
	"unsignedInt":  "Integer",
	"positiveInt":  "Integer",
	"integer64":    "Long",
	"decimal":      "Decimal",
	"date":         "Date",
	"dateTime":     "DateTime",
	"instant":      "DateTime",
	"time":         "Time",
}

// fhirBaseTypes is the part of the FHIR type hierarchy that is checked
// without a structure definition.
var fhirBaseTypes = map[string]string{
	"code":           "string",
	"id":             "string",
	"markdown":       "string",
	"url":            "uri",
	"canonical":      "uri",
	"uuid":           "uri",
	"oid":            "uri",
	"unsignedInt":    "integer",
	"positiveInt":    "integer",
	"Age":            "Quantity",
	"Count":          "Quantity",
	"Distance":       "Quantity",
	"Duration":       "Quantity",
	"SimpleQuantity": "Quantity",
	"MoneyQuantity":  "Quantity",
}

// resourcesWithoutText are the resources that do not derive from
// DomainResource.
var resourcesWithoutText = map[string]bool{
	"Bundle":     true,
	"Binary":     true,
	"Parameters": true,
}

// TypeOf returns the type tag of v, deriving the default when v is
// untagged.
func TypeOf(v Value) TypeSpecifier {
	switch t := v.(type) {
	case Boolean:
		return tagOr(t.Type, systemType("Boolean"))
	case Integer:
		return tagOr(t.Type, systemType("Integer"))
	case Integer64:
		return tagOr(t.Type, systemType("Long"))
	case Decimal:
		return tagOr(t.Type, systemType("Decimal"))
	case String:
		return tagOr(t.Type, systemType("String"))
	case Date:
		return tagOr(t.Type, systemType("Date"))
	case DateTime:
		return tagOr(t.Type, systemType("DateTime"))
	case Time:
		return tagOr(t.Type, systemType("Time"))
	case Quantity:
		return tagOr(t.Type, systemType("Quantity"))
	case Object:
		if !t.Type.IsZero() {
			return t.Type
		}
		if rt, ok := t.ResourceType(); ok {
			return fhirType(rt)
		}
		return fhirType("Element")
	case Collection:
		return t.Type
	}
	return TypeSpecifier{}
}

func tagOr(tag, def TypeSpecifier) TypeSpecifier {
	if tag.IsZero() {
		return def
	}
	return tag
}

// withType returns v tagged with t. Collections tag each item.
func withType(v Value, t TypeSpecifier) Value {
	switch x := v.(type) {
	case Boolean:
		x.Type = t
		return x
	case Integer:
		x.Type = t
		return x
	case Integer64:
		x.Type = t
		return x
	case Decimal:
		x.Type = t
		return x
	case String:
		x.Type = t
		return x
	case Date:
		x.Type = t
		return x
	case DateTime:
		x.Type = t
		return x
	case Time:
		x.Type = t
		return x
	case Quantity:
		x.Type = t
		return x
	case Object:
		x.Type = t
		return x
	case Collection:
		items := make([]Value, len(x.Items))
		for i, item := range x.Items {
			items[i] = withType(item, t)
		}
		return Collection{Items: items, Unordered: x.Unordered, Type: x.Type}
	}
	return v
}

// ResolveTypeSpecifier infers the namespace of a type name written without
// one: lowercase names and resource types of the model are FHIR types,
// System type names are System types and any other name is left without
// namespace so it matches in either.
func ResolveTypeSpecifier(q parser.QualifiedIdentifier, model Model) TypeSpecifier {
	if q.Namespace != "" {
		return TypeSpecifier{Namespace: q.Namespace, Name: q.Name}
	}
	name := q.Name
	switch {
	case name == "":
		return TypeSpecifier{}
	case unicode.IsLower(rune(name[0])):
		return fhirType(name)
	case model != nil && model.IsResourceType(name):
		return fhirType(name)
	case systemTypes[name]:
		return systemType(name)
	}
	return TypeSpecifier{Name: name}
}

// IsOfType reports whether v is of type t, as the `is` operator does.
func IsOfType(v Value, t TypeSpecifier, model Model) bool {
	return typeMatches(v, t, model, false)
}

// AsType returns v if it is of type t, otherwise Empty.
func AsType(v Value, t TypeSpecifier, model Model) Value {
	if IsOfType(v, t, model) {
		return v
	}
	return Empty{}
}

// OfType filters v to the items of type t. Generic FHIR strings that look
// like a more specific FHIR primitive are converted to that primitive.
func OfType(v Value, t TypeSpecifier, model Model) Value {
	var matched []Value
	for _, item := range Items(v) {
		if typeMatches(item, t, model, true) {
			matched = append(matched, item)
			continue
		}
		if converted, ok := convertForOfType(item, t); ok {
			matched = append(matched, converted)
		}
	}
	return collect(matched, isUnordered(v))
}

func typeMatches(v Value, want TypeSpecifier, model Model, lenient bool) bool {
	if want.Name == "" {
		return false
	}
	if strings.EqualFold(want.Name, "Any") && (want.Namespace == "" || strings.EqualFold(want.Namespace, NamespaceSystem)) {
		return true
	}
	have := TypeOf(v)
	for t := have; t.Name != ""; t = baseType(t, v, model) {
		if namesMatch(t, want, lenient) {
			return true
		}
	}
	return false
}

// baseType walks one step up the known type hierarchy.
func baseType(t TypeSpecifier, v Value, model Model) TypeSpecifier {
	if !strings.EqualFold(t.Namespace, NamespaceFHIR) {
		return TypeSpecifier{}
	}
	if base, ok := fhirBaseTypes[t.Name]; ok {
		return fhirType(base)
	}
	switch t.Name {
	case "DomainResource":
		return fhirType("Resource")
	case "Resource", "Element":
		return TypeSpecifier{}
	case "BackboneElement":
		return fhirType("Element")
	}
	if isResource(t.Name, v, model) {
		if resourcesWithoutText[t.Name] {
			return fhirType("Resource")
		}
		return fhirType("DomainResource")
	}
	// complex data types
	if unicode.IsUpper(rune(t.Name[0])) {
		return fhirType("Element")
	}
	return TypeSpecifier{}
}

func isResource(name string, v Value, model Model) bool {
	if model != nil && model.IsResourceType(name) {
		return true
	}
	if o, ok := v.(Object); ok {
		rt, ok := o.ResourceType()
		return ok && rt == name
	}
	return false
}

func namesMatch(have, want TypeSpecifier, lenient bool) bool {
	if strings.EqualFold(have.Name, want.Name) {
		if want.Namespace == "" || strings.EqualFold(have.Namespace, want.Namespace) {
			return true
		}
		if crossNamespaceTypes[strings.ToLower(want.Name)] {
			return true
		}
	}
	if !lenient {
		return false
	}
	// ofType() also lets FHIR primitives stand in for System scalars and
	// the other way round.
	switch {
	case strings.EqualFold(have.Namespace, NamespaceFHIR) && strings.EqualFold(want.Namespace, NamespaceSystem):
		return strings.EqualFold(fhirPrimitiveSystemTypes[have.Name], want.Name)
	case strings.EqualFold(have.Namespace, NamespaceSystem) && strings.EqualFold(want.Namespace, NamespaceFHIR):
		return strings.EqualFold(fhirPrimitiveSystemTypes[want.Name], have.Name)
	}
	return false
}

// typeInfo describes the type of v the way type() reports it.
func typeInfo(v Value) Value {
	t := TypeOf(v)
	kind := "SimpleTypeInfo"
	if _, ok := v.(Object); ok {
		kind = "ClassInfo"
	}
	return Object{
		Type: systemType(kind),
		Fields: []Field{
			{Name: "namespace", Value: String{Value: t.Namespace}},
			{Name: "name", Value: String{Value: t.Name}},
		},
	}
}

// choiceTypes maps the type suffix of a choice element (valueQuantity) to
// the FHIR type it holds.
var choiceTypes = map[string]string{
	"Base64Binary":        "base64Binary",
	"Boolean":             "boolean",
	"Canonical":           "canonical",
	"Code":                "code",
	"Date":                "date",
	"DateTime":            "dateTime",
	"Decimal":             "decimal",
	"Id":                  "id",
	"Instant":             "instant",
	"Integer":             "integer",
	"Integer64":           "integer64",
	"Markdown":            "markdown",
	"Oid":                 "oid",
	"PositiveInt":         "positiveInt",
	"String":              "string",
	"Time":                "time",
	"UnsignedInt":         "unsignedInt",
	"Uri":                 "uri",
	"Url":                 "url",
	"Uuid":                "uuid",
	"Address":             "Address",
	"Age":                 "Age",
	"Annotation":          "Annotation",
	"Attachment":          "Attachment",
	"CodeableConcept":     "CodeableConcept",
	"CodeableReference":   "CodeableReference",
	"Coding":              "Coding",
	"ContactPoint":        "ContactPoint",
	"Count":               "Count",
	"Distance":            "Distance",
	"Duration":            "Duration",
	"HumanName":           "HumanName",
	"Identifier":          "Identifier",
	"Money":               "Money",
	"Period":              "Period",
	"Quantity":            "Quantity",
	"Range":               "Range",
	"Ratio":               "Ratio",
	"RatioRange":          "RatioRange",
	"Reference":           "Reference",
	"SampledData":         "SampledData",
	"Signature":           "Signature",
	"Timing":              "Timing",
	"ContactDetail":       "ContactDetail",
	"DataRequirement":     "DataRequirement",
	"Expression":          "Expression",
	"ParameterDefinition": "ParameterDefinition",
	"RelatedArtifact":     "RelatedArtifact",
	"TriggerDefinition":   "TriggerDefinition",
	"UsageContext":        "UsageContext",
	"Dosage":              "Dosage",
	"Meta":                "Meta",
}

// ChoiceType splits a choice element field name such as valueQuantity into
// its base name and the FHIR type of the value.
func ChoiceType(field string) (base string, typ TypeSpecifier, ok bool) {
	for i := 1; i < len(field); i++ {
		if !unicode.IsUpper(rune(field[i])) {
			continue
		}
		if name, found := choiceTypes[field[i:]]; found {
			return field[:i], fhirType(name), true
		}
	}
	return "", TypeSpecifier{}, false
}
