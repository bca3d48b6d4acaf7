package ir

import (
	"errors"
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
)

const (
	fhirTypeExtension = "http://hl7.org/fhir/StructureDefinition/structuredefinition-fhir-type"
	systemTypePrefix  = "http://hl7.org/fhirpath/System."
)

// Element is an ElementDefinition of a snapshot.
type Element struct {
	// Path is the dotted path, e.g. Patient.contact.name.
	Path string
	// Types are the codes of the allowed types. Choice elements have
	// more than one.
	Types []string
	// ContentReference is the path of the element whose definition is
	// reused, e.g. Questionnaire.item for Questionnaire.item.item.
	ContentReference string
}

// Name is the last segment of the path.
func (e Element) Name() string {
	return e.Path[strings.LastIndex(e.Path, ".")+1:]
}

// Parent is the path without its last segment.
func (e Element) Parent() string {
	i := strings.LastIndex(e.Path, ".")
	if i < 0 {
		return ""
	}
	return e.Path[:i]
}

// IsChoice reports whether the element is a choice element (value[x]).
func (e Element) IsChoice() bool {
	return strings.HasSuffix(e.Path, "[x]")
}

func parseElements(resource []byte) ([]Element, error) {
	var (
		elements   []Element
		elementErr error
	)
	_, err := jsonparser.ArrayEach(resource, func(value []byte, _ jsonparser.ValueType, _ int, err error) {
		if elementErr != nil {
			return
		}
		if err != nil {
			elementErr = err
			return
		}
		e, err := parseElement(value)
		if err != nil {
			elementErr = err
			return
		}
		elements = append(elements, e)
	}, "snapshot", "element")
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if elementErr != nil {
		return nil, fmt.Errorf("snapshot: %w", elementErr)
	}
	return elements, nil
}

func parseElement(value []byte) (Element, error) {
	path, err := jsonparser.GetString(value, "path")
	if err != nil {
		return Element{}, fmt.Errorf("element without path: %w", err)
	}
	e := Element{Path: path}
	if ref, err := jsonparser.GetString(value, "contentReference"); err == nil {
		// "#Questionnaire.item" in R4, prefixed with the definition URL in R5
		e.ContentReference = ref[strings.LastIndex(ref, "#")+1:]
	}
	var typeErr error
	_, err = jsonparser.ArrayEach(value, func(t []byte, _ jsonparser.ValueType, _ int, err error) {
		if typeErr != nil {
			return
		}
		if err != nil {
			typeErr = err
			return
		}
		code, err := typeCode(t)
		if err != nil {
			typeErr = fmt.Errorf("%s: %w", path, err)
			return
		}
		e.Types = append(e.Types, code)
	}, "type")
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return Element{}, fmt.Errorf("%s: type: %w", path, err)
	}
	return e, typeErr
}

// typeCode returns the FHIR type of a type reference. Elements such as
// Resource.id are typed with a System type and name their FHIR type in an
// extension.
func typeCode(t []byte) (string, error) {
	code, err := jsonparser.GetString(t, "code")
	if err != nil {
		return "", fmt.Errorf("type without code: %w", err)
	}
	system, isSystem := strings.CutPrefix(code, systemTypePrefix)
	if !isSystem {
		return code, nil
	}
	var fhirType string
	_, _ = jsonparser.ArrayEach(t, func(ext []byte, _ jsonparser.ValueType, _ int, _ error) {
		if url, _ := jsonparser.GetString(ext, "url"); url == fhirTypeExtension {
			if v, err := jsonparser.GetString(ext, "valueUrl"); err == nil {
				fhirType = v
			} else if v, err := jsonparser.GetString(ext, "valueUri"); err == nil {
				fhirType = v
			}
		}
	}, "extension")
	if fhirType != "" {
		return fhirType, nil
	}
	// System.String -> string, System.DateTime -> dateTime
	return strings.ToLower(system[:1]) + system[1:], nil
}
