package rest

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/damedic/fhirpath-go/fhirpath"
)

// OperationOutcome is the FHIR resource errors are reported as.
type OperationOutcome struct {
	ResourceType string         `json:"resourceType"`
	Issue        []OutcomeIssue `json:"issue"`
}

type OutcomeIssue struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Diagnostics string   `json:"diagnostics,omitempty"`
	Expression  []string `json:"expression,omitempty"`
}

func newOutcome(severity, code, diagnostics string, expression ...string) OperationOutcome {
	return OperationOutcome{
		ResourceType: "OperationOutcome",
		Issue: []OutcomeIssue{{
			Severity:    severity,
			Code:        code,
			Diagnostics: diagnostics,
			Expression:  expression,
		}},
	}
}

// requestError marks client errors found before evaluation starts.
type requestError struct {
	code string
	msg  string
}

func (e *requestError) Error() string {
	return e.msg
}

func errToOperationOutcome(err error, expression string) (int, OperationOutcome) {
	var (
		syntaxErr *fhirpath.SyntaxError
		evalErr   *fhirpath.EvalError
		reqErr    *requestError
		oo        OperationOutcome
	)
	switch {
	case errors.As(err, &reqErr):
		oo = newOutcome("error", reqErr.code, reqErr.msg)
	case errors.As(err, &syntaxErr):
		oo = newOutcome("error", "invalid", syntaxErr.Error(), expression)
	case errors.Is(err, context.DeadlineExceeded):
		oo = newOutcome("error", "timeout", "evaluation timed out", expression)
	case errors.As(err, &evalErr):
		oo = newOutcome("error", "processing", evalErr.Error(), expression)
	default:
		oo = newOutcome("fatal", "exception", err.Error())
	}
	return toHTTPErrorStatus(oo), oo
}

var issueCodeToHTTPStatus = map[string]int{
	// invalid content
	"invalid":   http.StatusBadRequest,
	"structure": http.StatusBadRequest,
	"required":  http.StatusBadRequest,
	"value":     http.StatusBadRequest,

	// the request was understood but could not be evaluated
	"processing":    http.StatusUnprocessableEntity,
	"not-supported": http.StatusNotImplemented,
	"too-long":      http.StatusRequestEntityTooLarge,
	"too-costly":    http.StatusForbidden,

	// transient issues and server failures
	"transient": http.StatusServiceUnavailable,
	"exception": http.StatusInternalServerError,
	"timeout":   http.StatusGatewayTimeout,
	"throttled": http.StatusTooManyRequests,
}

func toHTTPErrorStatus(outcome OperationOutcome) int {
	// define severity levels in order of highest to lowest
	severityRank := map[string]int{
		"fatal":       3,
		"error":       2,
		"warning":     1,
		"information": 0,
	}

	highestSeverity := -1
	highestStatusCodes := []int{http.StatusBadRequest}

	for _, issue := range outcome.Issue {
		severityValue, ok := severityRank[issue.Severity]
		if !ok {
			continue
		}
		statusCode, ok := issueCodeToHTTPStatus[issue.Code]
		if !ok {
			continue
		}

		if severityValue > highestSeverity {
			highestSeverity = severityValue
			highestStatusCodes = []int{statusCode}
		} else if severityValue == highestSeverity {
			highestStatusCodes = append(highestStatusCodes, statusCode)
		}
	}

	if len(highestStatusCodes) == 1 {
		return highestStatusCodes[0]
	}
	return (slices.Max(highestStatusCodes) / 100) * 100
}
