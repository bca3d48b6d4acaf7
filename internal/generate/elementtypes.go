package generate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/damedic/fhirpath-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

// ElementTypesFileName is the file ElementTypesGenerator writes to.
const ElementTypesFileName = "elementtypes_gen"

// choiceElement marks choice elements in the generated tables.
const choiceElement = "*"

// ElementTypesGenerator emits the declared type of every element, one
// line per type or backbone element:
//
//	Patient.contact gender:code name:HumanName organization:Reference ...
//
// Elements of a backbone type are typed with the backbone path, elements
// reusing another definition with the path of that definition.
type ElementTypesGenerator struct {
	NoOpGenerator
}

func (g ElementTypesGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	file := f(ElementTypesFileName, "model")

	varName := "elementTypes" + strcase.ToCamel(release)
	file.Comment(fmt.Sprintf("%s lists the element types of each FHIR %s type and backbone element as \"path name:type ...\".", varName, release))
	file.Var().Id(varName).Op("=").Index().String().ValuesFunc(func(g *Group) {
		for _, line := range ElementTypeLines(rt) {
			g.Line().Lit(line)
		}
		g.Line()
	})
}

// ElementTypeLines builds the table lines of all complex types and
// resources, sorted by path.
func ElementTypeLines(rt []ir.ResourceOrType) []string {
	tables := map[string]map[string]string{}
	for _, t := range rt {
		if t.IsPrimitive {
			continue
		}
		for _, e := range t.Elements {
			parent := e.Parent()
			if parent == "" {
				continue
			}
			typ, ok := elementType(e, t.Elements)
			if !ok {
				continue
			}
			name := strings.TrimSuffix(e.Name(), "[x]")
			if tables[parent] == nil {
				tables[parent] = map[string]string{}
			}
			tables[parent][name] = typ
		}
	}

	lines := make([]string, 0, len(tables))
	for path, elements := range tables {
		names := make([]string, 0, len(elements))
		for name := range elements {
			names = append(names, name)
		}
		slices.Sort(names)

		var b strings.Builder
		b.WriteString(path)
		for _, name := range names {
			fmt.Fprintf(&b, " %s:%s", name, elements[name])
		}
		lines = append(lines, b.String())
	}
	slices.Sort(lines)
	return lines
}

func elementType(e ir.Element, all []ir.Element) (string, bool) {
	switch {
	case e.IsChoice():
		return choiceElement, true
	case e.ContentReference != "":
		return e.ContentReference, true
	case len(e.Types) != 1:
		return "", false
	}
	switch typ := e.Types[0]; typ {
	case "BackboneElement", "Element":
		if hasChildren(e, all) {
			return e.Path, true
		}
		return typ, true
	default:
		return typ, true
	}
}

func hasChildren(e ir.Element, all []ir.Element) bool {
	return slices.ContainsFunc(all, func(c ir.Element) bool {
		return c.Parent() == e.Path
	})
}
