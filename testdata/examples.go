package testdata

import (
	"embed"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/damedic/fhirpath-go/model"
)

//go:embed resources/*.json
var resources embed.FS

// GetExamples returns the bundled example resources by file name.
func GetExamples() map[string][]byte {
	entries, err := fs.ReadDir(resources, "resources")
	if err != nil {
		log.Fatal(err)
	}

	examples := map[string][]byte{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := resources.ReadFile(path.Join("resources", entry.Name()))
		if err != nil {
			log.Fatal(err)
		}
		examples[entry.Name()] = data
	}
	return examples
}

// ExampleNames returns the sorted file names of the bundled examples.
func ExampleNames() []string {
	var names []string
	for name := range GetExamples() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetExample parses the named example, failing hard if it does not exist.
func GetExample(name string) *model.JSONResource {
	data, ok := GetExamples()[name]
	if !ok {
		log.Fatalf("unknown example %q", name)
	}
	r, err := model.ParseResource(data)
	if err != nil {
		log.Fatalf("parse example %s: %v", name, err)
	}
	return r
}
