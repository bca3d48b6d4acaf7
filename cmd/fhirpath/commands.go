package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/damedic/fhirpath-go/fhirpath"
	"github.com/damedic/fhirpath-go/internal/config"
	"github.com/damedic/fhirpath-go/internal/exprcache"
	"github.com/damedic/fhirpath-go/internal/logging"
	"github.com/damedic/fhirpath-go/model"
	"github.com/damedic/fhirpath-go/rest"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type app struct {
	v          *viper.Viper
	configFile string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer

	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.New(), stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:           "fhirpath",
		Short:         "Evaluate FHIRPath expressions",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./fhirpath.yaml)")
	flags.String("release", "R4", "FHIR release (R4, R4B, R5)")
	flags.Bool("strict", false, "fail on unknown members and failed casts")
	flags.Bool("check-ordered", false, "fail on order dependent functions over unordered collections")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	for key, flag := range map[string]string{
		"release":       "release",
		"strict":        "strict",
		"check_ordered": "check-ordered",
		"log_level":     "log-level",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(a.evalCmd())
	rootCmd.AddCommand(a.parseCmd())
	rootCmd.AddCommand(a.serveCmd())
	rootCmd.AddCommand(a.versionCmd())
	return rootCmd
}

func (a *app) load() error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(a.stderr, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.cfg, a.logger = cfg, logger
	return nil
}

func (a *app) evalCmd() *cobra.Command {
	var (
		vars      []string
		showTrace bool
	)
	cmd := &cobra.Command{
		Use:   "eval EXPRESSION [RESOURCE.json...]",
		Short: "Evaluate an expression, reading resources from files or - for stdin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := fhirpath.Parse(args[0])
			if err != nil {
				return err
			}

			ec := fhirpath.NewEvaluationContext(a.cfg.EvaluationOptions(a.logger)...)
			for _, file := range args[1:] {
				r, err := a.readResource(file)
				if err != nil {
					return err
				}
				if err := ec.AddResource(r.WithRelease(a.cfg.ModelRelease())); err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
			}
			for _, v := range vars {
				name, raw, ok := strings.Cut(v, "=")
				if !ok {
					return fmt.Errorf("invalid variable %q, expected name=json", v)
				}
				value, err := model.ValueFromJSON([]byte(raw))
				if err != nil {
					return fmt.Errorf("variable %s: %w", name, err)
				}
				ec.SetVariable(name, value)
			}

			result, err := fhirpath.Evaluate(cmd.Context(), ec, expr)
			if err != nil {
				return err
			}
			if showTrace {
				for _, trace := range ec.TraceOutputs() {
					fmt.Fprintf(a.stderr, "trace %s: %s\n", trace.Name, trace.Value)
				}
			}
			return a.printJSON(rest.ResultItems(result))
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, "variable as name=json, available as %name")
	cmd.Flags().BoolVar(&showTrace, "trace", false, "print trace() output to stderr")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse EXPRESSION",
		Short: "Check an expression and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := fhirpath.Parse(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, expr.String())
			return err
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /$evaluate over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			template := fhirpath.NewEvaluationContext(a.cfg.EvaluationOptions(a.logger)...)
			server := rest.NewServer(template, exprcache.New(a.cfg.Server.CacheSize), a.logger)
			server.BodyLimit = a.cfg.Server.BodyLimit
			return server.Start(a.cfg.Server.Addr)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().Int("cache-size", 256, "number of parsed expressions to keep, 0 disables the cache")
	_ = a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = a.v.BindPFlag("server.cache_size", cmd.Flags().Lookup("cache-size"))
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and supported FHIR releases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var releases []string
			for _, r := range model.Releases {
				releases = append(releases, fmt.Sprintf("%s (%s)", r, r.Version()))
			}
			_, err := fmt.Fprintf(a.stdout, "fhirpath %s\nreleases: %s\n", version, strings.Join(releases, ", "))
			return err
		},
	}
}

func (a *app) readResource(file string) (*model.JSONResource, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, err
	}
	r, err := model.ParseResource(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return r, nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
