package testdata

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/damedic/fhirpath-go/fhirpath"
	"github.com/damedic/fhirpath-go/model"
)

//go:embed fhirpath/*.yaml
var fhirPathCorpus embed.FS

// Kinds of invalid expressions in the corpus.
const (
	InvalidSyntax    = "syntax"
	InvalidExecution = "execution"
)

// GetFHIRPathTests loads every group of the bundled expression corpus.
// Groups keep the order of their files, which are read alphabetically.
func GetFHIRPathTests() FHIRPathTests {
	files, err := fs.Glob(fhirPathCorpus, "fhirpath/*.yaml")
	if err != nil {
		log.Fatal(err)
	}

	var tests FHIRPathTests
	for _, file := range files {
		data, err := fhirPathCorpus.ReadFile(file)
		if err != nil {
			log.Fatal(err)
		}
		var group FHIRPathTestGroup
		if err := yaml.Unmarshal(data, &group); err != nil {
			log.Fatalf("decode %s: %v", file, err)
		}
		if group.Name == "" {
			group.Name = strings.TrimSuffix(path.Base(file), ".yaml")
		}
		for i := range group.Tests {
			test := &group.Tests[i]
			if test.InputFile == "" {
				continue
			}
			test.InputResource = GetExample(test.InputFile).WithRelease(test.ModelRelease())
		}
		tests.Groups = append(tests.Groups, &group)
	}
	return tests
}

type FHIRPathTests struct {
	Groups []*FHIRPathTestGroup
}

type FHIRPathTestGroup struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Tests       []FHIRPathTest `yaml:"tests"`
}

type FHIRPathTest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	InputFile   string `yaml:"inputfile"`
	// Release is the FHIR release the input is evaluated against, R4 if
	// unset.
	Release    string               `yaml:"release"`
	Mode       string               `yaml:"mode"`
	Predicate  bool                 `yaml:"predicate"`
	Invalid    string               `yaml:"invalid"`
	Expression string               `yaml:"expression"`
	Output     []FHIRPathTestOutput `yaml:"output"`

	InputResource model.Resource `yaml:"-"`
}

// OutputCollection returns the expected result as a normalized value.
func (t FHIRPathTest) OutputCollection() fhirpath.Value {
	items := make([]fhirpath.Value, 0, len(t.Output))
	for _, o := range t.Output {
		items = append(items, o.Value())
	}
	return fhirpath.NewCollection(items...)
}

// ModelRelease resolves the release of the test.
func (t FHIRPathTest) ModelRelease() model.Release {
	if t.Release == "" {
		return model.R4{}
	}
	r, err := model.ParseRelease(t.Release)
	if err != nil {
		log.Fatalf("test %s: %v", t.Name, err)
	}
	return r
}

// FHIRPathTestOutput is one expected item. In YAML it is either a mapping
// with type and value, or a scalar whose type is inferred.
type FHIRPathTestOutput struct {
	Type   string `yaml:"type"`
	Output string `yaml:"value"`
}

func (o *FHIRPathTestOutput) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Output = node.Value
		o.inferTypeFromValue()
		return nil
	}
	type plain FHIRPathTestOutput
	if err := node.Decode((*plain)(o)); err != nil {
		return err
	}
	o.inferTypeFromValue()
	return nil
}

func (o *FHIRPathTestOutput) inferTypeFromValue() {
	if o.Type != "" {
		return
	}

	value := strings.TrimSpace(o.Output)
	if value == "" {
		o.Type = "string"
		return
	}

	if strings.HasPrefix(value, "@T") {
		if _, err := fhirpath.ParseTime(value); err == nil {
			o.Type = "time"
			return
		}
	}

	if strings.HasPrefix(value, "@") {
		if strings.Contains(value, "T") {
			if _, err := fhirpath.ParseDateTime(value); err == nil {
				o.Type = "dateTime"
				return
			}
		}
		if _, err := fhirpath.ParseDate(value); err == nil {
			o.Type = "date"
			return
		}
	}

	// a bare number parses as a quantity of unit '1' too
	if strings.ContainsAny(value, " '") {
		if _, ok := fhirpath.ParseQuantity(value); ok {
			o.Type = "Quantity"
			return
		}
	}

	switch value {
	case "true", "false":
		o.Type = "boolean"
		return
	}

	if strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") && len(value) >= 2 {
		o.Type = "string"
		o.Output = value[1 : len(value)-1]
		return
	}

	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		o.Type = "integer"
		return
	}

	if _, err := fhirpath.ParseDecimal(value); err == nil {
		o.Type = "decimal"
		return
	}

	// Fallback to string if no other type matches
	o.Type = "string"
}

// Value converts the expected output into a runtime value. Malformed
// corpus entries panic.
func (o FHIRPathTestOutput) Value() fhirpath.Value {
	v, err := o.value()
	if err != nil {
		panic(fmt.Sprintf("output %q of type %s: %v", o.Output, o.Type, err))
	}
	return v
}

func (o FHIRPathTestOutput) value() (fhirpath.Value, error) {
	s := strings.TrimSpace(o.Output)
	switch o.Type {
	case "boolean":
		b, err := strconv.ParseBool(s)
		return fhirpath.NewBoolean(b), err
	case "string", "code", "id", "uri":
		return fhirpath.NewString(o.Output), nil
	case "integer":
		i, err := strconv.ParseInt(s, 10, 64)
		return fhirpath.NewInteger(i), err
	case "long":
		i, err := strconv.ParseInt(strings.TrimSuffix(s, "L"), 10, 64)
		return fhirpath.Integer64{Value: i}, err
	case "decimal":
		return fhirpath.ParseDecimal(s)
	case "date":
		return fhirpath.ParseDate(s)
	case "dateTime":
		return fhirpath.ParseDateTime(s)
	case "time":
		return fhirpath.ParseTime(s)
	case "Quantity":
		q, ok := fhirpath.ParseQuantity(s)
		if !ok {
			return nil, fmt.Errorf("invalid quantity")
		}
		return q, nil
	}
	return nil, fmt.Errorf("unknown type")
}
