package fhirpath_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/damedic/fhirpath-go/fhirpath"
	"github.com/damedic/fhirpath-go/testdata"
	"github.com/damedic/fhirpath-go/testdata/assert"
)

// corpusNow is the instant now() returns while running the corpus.
var corpusNow = time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC)

// runCorpusTest executes a single corpus test and validates the result.
func runCorpusTest(t *testing.T, ctx context.Context, test testdata.FHIRPathTest) {
	expr, err := fhirpath.Parse(test.Expression)
	if test.Invalid == testdata.InvalidSyntax {
		var syntaxErr *fhirpath.SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("expected syntax error, got %v", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("unexpected error parsing expression: %v", err)
	}

	var resources []fhirpath.Resource
	if test.InputResource != nil {
		resources = append(resources, test.InputResource)
	}
	ec, err := fhirpath.NewEvaluationContextWithResources(
		resources,
		fhirpath.WithModel(test.ModelRelease()),
		fhirpath.WithNow(corpusNow),
		fhirpath.WithStrictMode(test.Mode == "strict"),
		fhirpath.WithCheckOrderedFunctions(test.Mode == "ordered"),
	)
	if err != nil {
		t.Fatalf("unexpected error converting input: %v", err)
	}

	result, err := fhirpath.Evaluate(ctx, ec, expr)
	if test.Invalid == testdata.InvalidExecution {
		var evalErr *fhirpath.EvalError
		if !errors.As(err, &evalErr) {
			t.Fatalf("expected evaluation error, got result %v (err %v)", result, err)
		}
		return
	}
	if err != nil {
		t.Fatalf("unexpected error evaluating expression: %v", err)
	}

	if test.Predicate {
		result = fhirpath.NewBoolean(!fhirpath.IsEmpty(result))
	}
	assert.FHIRPathEqual(t, test.OutputCollection(), result)
}

func TestCorpus(t *testing.T) {
	ctx := context.Background()
	for _, group := range testdata.GetFHIRPathTests().Groups {
		t.Run(group.Name, func(t *testing.T) {
			for _, test := range group.Tests {
				t.Run(test.Name, func(t *testing.T) {
					runCorpusTest(t, ctx, test)
				})
			}
		})
	}
}
