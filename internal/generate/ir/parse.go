// Package ir extracts the type catalogue of a FHIR release from its
// definition bundles.
package ir

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/buger/jsonparser"
)

var (
	primitives = []string{
		"base64Binary",
		"boolean",
		"canonical",
		"code",
		"date",
		"dateTime",
		"decimal",
		"id",
		"instant",
		"integer",
		"integer64",
		"markdown",
		"oid",
		"positiveInt",
		"string",
		"time",
		"unsignedInt",
		"uri",
		"url",
		"uuid",
		"xhtml",
	}
	notDomainResources = []string{"Binary", "Bundle", "Parameters"}
)

// ResourceOrType is a StructureDefinition of a resource or data type.
type ResourceOrType struct {
	Name             string
	BaseType         string
	IsResource       bool
	IsDomainResource bool
	IsPrimitive      bool
	IsAbstract       bool
	// Elements are the snapshot elements, the type itself first.
	Elements []Element
}

// Parse reads the StructureDefinitions of a FHIR Bundle, such as
// profiles-resources.json or profiles-types.json. Logical models and
// constraining profiles are skipped.
func Parse(bundle []byte) ([]ResourceOrType, error) {
	rt, err := jsonparser.GetString(bundle, "resourceType")
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	if rt != "Bundle" {
		return nil, fmt.Errorf("expected Bundle, got %s", rt)
	}

	var (
		resourcesOrTypes []ResourceOrType
		entryErr         error
	)
	_, err = jsonparser.ArrayEach(bundle, func(entry []byte, _ jsonparser.ValueType, _ int, err error) {
		if entryErr != nil {
			return
		}
		if err != nil {
			entryErr = err
			return
		}
		resource, _, _, err := jsonparser.Get(entry, "resource")
		if err != nil {
			return
		}
		s, ok, err := parseStructureDefinition(resource)
		if err != nil {
			entryErr = err
			return
		}
		if ok {
			resourcesOrTypes = append(resourcesOrTypes, s)
		}
	}, "entry")
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, fmt.Errorf("read bundle entries: %w", err)
	}
	if entryErr != nil {
		return nil, fmt.Errorf("read bundle entries: %w", entryErr)
	}
	return resourcesOrTypes, nil
}

func parseStructureDefinition(resource []byte) (ResourceOrType, bool, error) {
	rt, _ := jsonparser.GetString(resource, "resourceType")
	if rt != "StructureDefinition" {
		return ResourceOrType{}, false, nil
	}
	kind, _ := jsonparser.GetString(resource, "kind")
	if kind == "logical" {
		return ResourceOrType{}, false, nil
	}
	derivation, _ := jsonparser.GetString(resource, "derivation")
	if derivation == "constraint" {
		return ResourceOrType{}, false, nil
	}
	name, err := jsonparser.GetString(resource, "name")
	if err != nil {
		return ResourceOrType{}, false, fmt.Errorf("StructureDefinition without name: %w", err)
	}
	abstract, err := jsonparser.GetBoolean(resource, "abstract")
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return ResourceOrType{}, false, fmt.Errorf("%s: abstract: %w", name, err)
	}
	baseDefinition, _ := jsonparser.GetString(resource, "baseDefinition")
	elements, err := parseElements(resource)
	if err != nil {
		return ResourceOrType{}, false, fmt.Errorf("%s: %w", name, err)
	}

	isResource := kind == "resource"
	return ResourceOrType{
		Name: name,
		// e.g. "http://hl7.org/fhir/StructureDefinition/uri" -> "uri"
		BaseType:         baseDefinition[strings.LastIndex(baseDefinition, "/")+1:],
		IsResource:       isResource,
		IsDomainResource: isResource && strings.HasSuffix(baseDefinition, "/DomainResource") && !slices.Contains(notDomainResources, name),
		IsPrimitive:      slices.Contains(primitives, name),
		IsAbstract:       abstract,
		Elements:         elements,
	}, true, nil
}

// ConcreteResources returns the sorted names of the non-abstract
// resources.
func ConcreteResources(rt []ResourceOrType) []string {
	var names []string
	for _, t := range rt {
		if t.IsResource && !t.IsAbstract {
			names = append(names, t.Name)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// HasType reports whether a type of the given name is defined.
func HasType(rt []ResourceOrType, name string) bool {
	return slices.ContainsFunc(rt, func(t ResourceOrType) bool {
		return t.Name == name
	})
}
