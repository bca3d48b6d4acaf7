package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhirpath-go/testdata/assert"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEval(t *testing.T) {
	patient, err := filepath.Abs("../../testdata/resources/patient-example.json")
	if err != nil {
		t.Fatal(err)
	}
	t.Chdir(t.TempDir())

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "without input",
			args: []string{"eval", "1 + 2"},
			want: `[{"type":"System.Integer","value":3}]`,
		},
		{
			name: "file input",
			args: []string{"eval", "Patient.name.where(use = 'usual').given", patient},
			want: `[{"type":"FHIR.string","value":"Jim"}]`,
		},
		{
			name:  "stdin input",
			stdin: `{"resourceType":"Observation","status":"final"}`,
			args:  []string{"eval", "status", "-"},
			want:  `[{"type":"FHIR.code","value":"final"}]`,
		},
		{
			name: "variables",
			args: []string{"eval", "--var", `greeting="hello"`, "--var", "n=2", "%greeting + ' ' + %n.toString()"},
			want: `[{"type":"System.String","value":"hello 2"}]`,
		},
		{
			name: "empty",
			args: []string{"eval", "{}"},
			want: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assert.JSONEqual(t, tt.want, stdout)
		})
	}
}

func TestEvalTrace(t *testing.T) {
	t.Chdir(t.TempDir())
	_, stderr, err := run(t, "", "eval", "--trace", "--log-level", "error", "(1 | 2).trace('n').count()")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "trace n: [1, 2]") {
		t.Errorf("missing trace output in %q", stderr)
	}
}

func TestErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		args []string
	}{
		{name: "syntax", args: []string{"eval", "1 +"}},
		{name: "evaluation", args: []string{"eval", "'a' + 1"}},
		{name: "missing file", args: []string{"eval", "id", "does-not-exist.json"}},
		{name: "bad variable", args: []string{"eval", "--var", "x", "%x"}},
		{name: "strict", args: []string{"--strict", "eval", "Observation.foo", "-"}},
		{name: "bad release", args: []string{"--release", "R3", "version"}},
		{name: "parse", args: []string{"parse", "(("}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := run(t, `{"resourceType":"Observation","status":"final"}`, tt.args...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Chdir(t.TempDir())
	stdout, _, err := run(t, "", "parse", "name.where(use='official').given[0]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff("name.where(use = 'official').given[0]\n", stdout); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestVersion(t *testing.T) {
	t.Chdir(t.TempDir())
	stdout, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "fhirpath dev\nreleases: R4 (4.0.1), R4B (4.3.0), R5 (5.0.0)\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
