package exprcache

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhirpath-go/fhirpath"
)

func TestParse(t *testing.T) {
	c := New(2)

	for _, source := range []string{"1 + 1", "1 + 1", "name.given", "1 + 1"} {
		expr, err := c.Parse(source)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expr.Source() != source {
			t.Errorf("Source() = %q, want %q", expr.Source(), source)
		}
	}

	if diff := cmp.Diff(Stats{Hits: 2, Misses: 2}, c.Stats()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestEviction(t *testing.T) {
	c := New(2)
	for _, source := range []string{"a", "b", "a", "c", "b"} {
		if _, err := c.Parse(source); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// "b" was evicted by "c" since "a" had been used more recently.
	if diff := cmp.Diff(Stats{Hits: 1, Misses: 4}, c.Stats()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestDisabled(t *testing.T) {
	c := New(0)
	for range 3 {
		if _, err := c.Parse("true"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if diff := cmp.Diff(Stats{Misses: 3}, c.Stats()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestSyntaxErrorNotCached(t *testing.T) {
	c := New(4)
	for range 2 {
		_, err := c.Parse("(1 + ")
		var syntaxErr *fhirpath.SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("expected syntax error, got %v", err)
		}
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestConcurrentParse(t *testing.T) {
	c := New(8)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Parse(fmt.Sprintf("%d + 1", i%4)); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
}
