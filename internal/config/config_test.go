package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhirpath-go/model"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Config{
		Release:          "R4",
		LogLevel:         "info",
		DecimalPrecision: 34,
		Server:           Server{Addr: ":8080", CacheSize: 256, BodyLimit: "1M"},
		Limits:           Limits{MaxDepth: 512, MaxRepeatIterations: 10000},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(model.Release(model.R4{}), cfg.ModelRelease()); diff != "" {
		t.Errorf("release mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FHIRPATH_RELEASE", "R5")
	t.Setenv("FHIRPATH_STRICT", "true")
	t.Setenv("FHIRPATH_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("FHIRPATH_LIMITS_MAX_DEPTH", "64")

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Release != "R5" || !cfg.Strict || cfg.Server.Addr != "127.0.0.1:9000" || cfg.Limits.MaxDepth != 64 {
		t.Errorf("environment not applied: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	content := "release: R4B\ncheck_ordered: true\nserver:\n  cache_size: 8\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(New(), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Release != "R4B" || !cfg.CheckOrdered || cfg.Server.CacheSize != 8 {
		t.Errorf("config file not applied: %+v", cfg)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.Server.Addr)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "unknown release", env: map[string]string{"FHIRPATH_RELEASE": "R2"}},
		{name: "negative cache", env: map[string]string{"FHIRPATH_SERVER_CACHE_SIZE": "-1"}},
		{name: "zero precision", env: map[string]string{"FHIRPATH_DECIMAL_PRECISION": "0"}},
		{name: "missing file", file: "does-not-exist.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(New(), tt.file); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
