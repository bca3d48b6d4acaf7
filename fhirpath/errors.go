package fhirpath

import (
	"fmt"

	"github.com/damedic/fhirpath-go/fhirpath/internal/parser"
)

// SyntaxError is returned by Parse for malformed expressions.
type SyntaxError = parser.SyntaxError

// ErrorKind classifies evaluation errors.
type ErrorKind uint8

const (
	TypeError ErrorKind = iota + 1
	InvalidArity
	SingletonEvaluationError
	UndefinedVariable
	ArithmeticOverflow
	InvalidOperation
	SemanticError
	InvalidRegex
	InvalidIndex
	InvalidArgument
)

var errorKindNames = map[ErrorKind]string{
	TypeError:                "TypeError",
	InvalidArity:             "InvalidArity",
	SingletonEvaluationError: "SingletonEvaluationError",
	UndefinedVariable:        "UndefinedVariable",
	ArithmeticOverflow:       "ArithmeticOverflow",
	InvalidOperation:         "InvalidOperation",
	SemanticError:            "SemanticError",
	InvalidRegex:             "InvalidRegex",
	InvalidIndex:             "InvalidIndex",
	InvalidArgument:          "InvalidArgument",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// EvalError is returned when an expression can not be evaluated.
type EvalError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *EvalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// Is matches any *EvalError of the same kind, so the sentinels below work
// with errors.Is.
func (e *EvalError) Is(target error) bool {
	t, ok := target.(*EvalError)
	return ok && t.Msg == "" && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrTypeError                = &EvalError{Kind: TypeError}
	ErrInvalidArity             = &EvalError{Kind: InvalidArity}
	ErrSingletonEvaluationError = &EvalError{Kind: SingletonEvaluationError}
	ErrUndefinedVariable        = &EvalError{Kind: UndefinedVariable}
	ErrArithmeticOverflow       = &EvalError{Kind: ArithmeticOverflow}
	ErrInvalidOperation         = &EvalError{Kind: InvalidOperation}
	ErrSemanticError            = &EvalError{Kind: SemanticError}
	ErrInvalidRegex             = &EvalError{Kind: InvalidRegex}
	ErrInvalidIndex             = &EvalError{Kind: InvalidIndex}
	ErrInvalidArgument          = &EvalError{Kind: InvalidArgument}
)

func newError(kind ErrorKind, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, err error, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
