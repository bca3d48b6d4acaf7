// Command fhirpath evaluates FHIRPath expressions against FHIR resources.
//
//	fhirpath eval "Patient.name.given" patient.json
//	fhirpath parse "name.where(use = 'official')"
//	fhirpath serve --addr :8080
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
