// Command generate regenerates the resource type and element type tables
// of the model package from the definitions.json.zip of each FHIR release.
//
//	go run ./internal/cmd/generate --definitions R4=r4.zip,R4B=r4b.zip,R5=r5.zip
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/damedic/fhirpath-go/internal/generate"
	"github.com/damedic/fhirpath-go/internal/generate/ir"
	"github.com/damedic/fhirpath-go/internal/logging"
	. "github.com/dave/jennifer/jen"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		definitions map[string]string
		out         string
		logLevel    string
	)
	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate the resource and element type tables of the model package",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}
			return run(logger, definitions, out)
		},
	}
	cmd.Flags().StringToStringVar(&definitions, "definitions", nil, "definitions.json.zip per release, e.g. R4=path/to/definitions.json.zip")
	cmd.Flags().StringVar(&out, "out", "model", "output directory")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	_ = cmd.MarkFlagRequired("definitions")
	return cmd
}

func run(logger zerolog.Logger, definitions map[string]string, out string) error {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	slices.Sort(names)

	var releases []generate.Release
	for _, name := range names {
		path := definitions[name]
		logger.Info().Str("release", name).Str("path", path).Msg("reading definitions")

		b, err := readDefinitionsZIP(path)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		resources, err := ir.Parse(b.resources)
		if err != nil {
			return fmt.Errorf("%s: resources: %w", name, err)
		}
		types, err := ir.Parse(b.types)
		if err != nil {
			return fmt.Errorf("%s: types: %w", name, err)
		}
		logger.Debug().Str("release", name).
			Int("resources", len(resources)).
			Int("types", len(types)).
			Msg("parsed definitions")

		releases = append(releases, generate.Release{Name: name, Resources: resources, Types: types})
	}

	files := map[string]*File{}
	newFile := func(fileName string, pkgName string) *File {
		if f, ok := files[fileName]; ok {
			return f
		}
		f := NewFile(pkgName)
		f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")
		files[fileName] = f
		return f
	}

	g := generate.NewResourceTypesGenerator()
	generate.Run(newFile, releases, g, generate.ElementTypesGenerator{})
	g.Finish(newFile, names)

	for _, name := range []string{generate.ResourceTypesFileName, generate.ElementTypesFileName} {
		path := filepath.Join(out, name+".go")
		if err := files[name].Save(path); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info().Str("file", path).Msg("generated")
	}
	return nil
}
