package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhirpath-go/model"
)

func TestParseRelease(t *testing.T) {
	tests := []struct {
		input   string
		want    model.Release
		wantErr bool
	}{
		{input: "R4", want: model.R4{}},
		{input: "r4b", want: model.R4B{}},
		{input: " R5 ", want: model.R5{}},
		{input: "4.0.1", want: model.R4{}},
		{input: "4.3", want: model.R4B{}},
		{input: "5.0", want: model.R5{}},
		{input: "R6", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := model.ParseRelease(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("release mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsResourceType(t *testing.T) {
	tests := []struct {
		release model.Release
		name    string
		want    bool
	}{
		{release: model.R4{}, name: "Patient", want: true},
		{release: model.R4{}, name: "DomainResource", want: true},
		{release: model.R4{}, name: "Resource", want: true},
		{release: model.R4{}, name: "ActorDefinition", want: false},
		{release: model.R5{}, name: "ActorDefinition", want: true},
		{release: model.R4B{}, name: "Patient", want: true},
		{release: model.R4{}, name: "patient", want: false},
		{release: model.R4{}, name: "HumanName", want: false},
		{release: model.R5{}, name: "String", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.release.String()+"/"+tt.name, func(t *testing.T) {
			if got := tt.release.IsResourceType(tt.name); got != tt.want {
				t.Errorf("IsResourceType(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestSupportsInteger64(t *testing.T) {
	got := map[string]bool{}
	for _, r := range model.Releases {
		got[r.String()] = r.SupportsInteger64()
	}
	want := map[string]bool{"R4": false, "R4B": false, "R5": true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("integer64 support mismatch (-want +got):\n%s", diff)
	}
}

func TestReleaseName(t *testing.T) {
	if got := model.ReleaseName[model.R4B](); got != "R4B" {
		t.Errorf("ReleaseName = %q, want R4B", got)
	}
}
