package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhirpath-go/fhirpath"
)

func TestErrToOperationOutcome(t *testing.T) {
	_, syntaxErr := fhirpath.Parse("1 +")
	if syntaxErr == nil {
		t.Fatal("expected syntax error")
	}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantIssue  OutcomeIssue
	}{
		{
			name:       "syntax",
			err:        syntaxErr,
			wantStatus: http.StatusBadRequest,
			wantIssue:  OutcomeIssue{Severity: "error", Code: "invalid", Diagnostics: syntaxErr.Error(), Expression: []string{"expr"}},
		},
		{
			name:       "evaluation",
			err:        &fhirpath.EvalError{Kind: fhirpath.TypeError, Msg: "bad operand"},
			wantStatus: http.StatusUnprocessableEntity,
			wantIssue:  OutcomeIssue{Severity: "error", Code: "processing", Diagnostics: "TypeError: bad operand", Expression: []string{"expr"}},
		},
		{
			name:       "timeout",
			err:        &fhirpath.EvalError{Kind: fhirpath.InvalidOperation, Msg: "evaluation canceled", Err: context.DeadlineExceeded},
			wantStatus: http.StatusGatewayTimeout,
			wantIssue:  OutcomeIssue{Severity: "error", Code: "timeout", Diagnostics: "evaluation timed out", Expression: []string{"expr"}},
		},
		{
			name:       "request",
			err:        fmt.Errorf("decode: %w", &requestError{code: "structure", msg: "bad body"}),
			wantStatus: http.StatusBadRequest,
			wantIssue:  OutcomeIssue{Severity: "error", Code: "structure", Diagnostics: "bad body"},
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantIssue:  OutcomeIssue{Severity: "fatal", Code: "exception", Diagnostics: "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, oo := errToOperationOutcome(tt.err, "expr")
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			want := OperationOutcome{ResourceType: "OperationOutcome", Issue: []OutcomeIssue{tt.wantIssue}}
			if diff := cmp.Diff(want, oo); diff != "" {
				t.Errorf("outcome mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToHTTPErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		issues []OutcomeIssue
		want   int
	}{
		{name: "no issues", want: http.StatusBadRequest},
		{name: "single", issues: []OutcomeIssue{{Severity: "error", Code: "processing"}}, want: http.StatusUnprocessableEntity},
		{
			name: "highest severity wins",
			issues: []OutcomeIssue{
				{Severity: "warning", Code: "exception"},
				{Severity: "error", Code: "invalid"},
			},
			want: http.StatusBadRequest,
		},
		{
			name: "same severity rounds to class",
			issues: []OutcomeIssue{
				{Severity: "error", Code: "invalid"},
				{Severity: "error", Code: "processing"},
			},
			want: http.StatusBadRequest,
		},
		{
			name: "unknown code skipped",
			issues: []OutcomeIssue{
				{Severity: "fatal", Code: "made-up"},
				{Severity: "error", Code: "timeout"},
			},
			want: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toHTTPErrorStatus(OperationOutcome{Issue: tt.issues})
			if got != tt.want {
				t.Errorf("toHTTPErrorStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
