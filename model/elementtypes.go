package model

import (
	"strings"
	"sync"

	"github.com/damedic/fhirpath-go/fhirpath"
)

// choiceElement marks a choice element (value[x]) in the element tables.
const choiceElement = "*"

// elementTypes maps a type or backbone element path to the declared
// types of its elements. A declared type is a FHIR type name, the path of
// a backbone element or choiceElement.
type elementTypes map[string]map[string]string

func parseElementTypes(lines []string) elementTypes {
	types := make(elementTypes, len(lines))
	for _, line := range lines {
		path, rest, _ := strings.Cut(line, " ")
		pairs := strings.Fields(rest)
		elements := make(map[string]string, len(pairs))
		for _, pair := range pairs {
			name, typ, _ := strings.Cut(pair, ":")
			elements[name] = typ
		}
		types[path] = elements
	}
	return types
}

var (
	elementTypesOfR4  = sync.OnceValue(func() elementTypes { return parseElementTypes(elementTypesR4) })
	elementTypesOfR4B = sync.OnceValue(func() elementTypes { return parseElementTypes(elementTypesR4B) })
	elementTypesOfR5  = sync.OnceValue(func() elementTypes { return parseElementTypes(elementTypesR5) })
)

func elementTypesOf(r Release) elementTypes {
	switch r.(type) {
	case R4B:
		return elementTypesOfR4B()
	case R5:
		return elementTypesOfR5()
	}
	return elementTypesOfR4()
}

// element returns the declared type of the member name of the type or
// backbone element at path. Choice members (valueQuantity) resolve to the
// type named by their suffix.
func (t elementTypes) element(path, name string) (string, bool) {
	elements, ok := t[path]
	if !ok {
		return "", false
	}
	if typ, ok := elements[name]; ok && typ != choiceElement {
		return typ, true
	}
	base, typ, ok := fhirpath.ChoiceType(name)
	if !ok || elements[base] != choiceElement {
		return "", false
	}
	return typ.Name, true
}

// isPrimitiveType reports whether typ names a FHIR primitive.
func isPrimitiveType(typ string) bool {
	return typ != "" && typ[0] >= 'a' && typ[0] <= 'z'
}

// isBackbone reports whether typ is the path of a backbone element.
func isBackbone(typ string) bool {
	return strings.Contains(typ, ".")
}
