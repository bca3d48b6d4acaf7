package main

import (
	"archive/zip"
	"fmt"
	"io"
)

type bundles struct {
	resources []byte
	types     []byte
}

// readDefinitionsZIP reads the definition bundles from the
// definitions.json.zip published with each FHIR release.
func readDefinitionsZIP(path string) (bundles, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return bundles{}, err
	}
	defer r.Close()

	resources, err := readFromZIP(&r.Reader, "profiles-resources.json")
	if err != nil {
		return bundles{}, err
	}
	types, err := readFromZIP(&r.Reader, "profiles-types.json")
	if err != nil {
		return bundles{}, err
	}
	return bundles{resources: resources, types: types}, nil
}

func readFromZIP(r *zip.Reader, name string) ([]byte, error) {
	file, err := r.Open(name)
	if err != nil {
		file, err = r.Open("definitions.json/" + name)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
