package main

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

const (
	testResources = `{"resourceType": "Bundle", "entry": [
  {"resource": {"resourceType": "StructureDefinition", "name": "Patient", "kind": "resource", "abstract": false,
    "baseDefinition": "http://hl7.org/fhir/StructureDefinition/DomainResource",
    "snapshot": {"element": [{"path": "Patient"}, {"path": "Patient.birthDate", "type": [{"code": "date"}]}]}}},
  {"resource": {"resourceType": "StructureDefinition", "name": "Resource", "kind": "resource", "abstract": true}}
]}`
	testTypes = `{"resourceType": "Bundle", "entry": [
  {"resource": {"resourceType": "StructureDefinition", "name": "integer64", "kind": "primitive-type", "abstract": false}}
]}`
)

func writeZIP(t *testing.T, prefix string, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "definitions.json.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range files {
		fw, err := w.Create(prefix + name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{name: "flat archive", prefix: ""},
		{name: "nested archive", prefix: "definitions.json/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zipPath := writeZIP(t, tt.prefix, map[string]string{
				"profiles-resources.json": testResources,
				"profiles-types.json":     testTypes,
			})
			out := t.TempDir()

			if err := run(zerolog.Nop(), map[string]string{"R5": zipPath}, out); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for file, wants := range map[string][]string{
				"resourcetypes_gen.go": {
					"// Code generated by internal/cmd/generate. DO NOT EDIT.",
					"package model",
					"resourceTypeNamesR5 = []string{",
					`"Patient"`,
					`"R5": true`,
				},
				"elementtypes_gen.go": {
					"// Code generated by internal/cmd/generate. DO NOT EDIT.",
					"elementTypesR5 = []string{",
					`"Patient birthDate:date"`,
				},
			} {
				data, err := os.ReadFile(filepath.Join(out, file))
				if err != nil {
					t.Fatal(err)
				}
				src := string(data)
				for _, want := range wants {
					if !strings.Contains(src, want) {
						t.Errorf("%s does not contain %q:\n%s", file, want, src)
					}
				}
			}
		})
	}
}

func TestRunMissingBundle(t *testing.T) {
	zipPath := writeZIP(t, "", map[string]string{"profiles-resources.json": testResources})
	out := t.TempDir()

	if err := run(zerolog.Nop(), map[string]string{"R4": zipPath}, out); err == nil {
		t.Fatal("expected error for archive without profiles-types.json")
	}
}
