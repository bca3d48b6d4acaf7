package fhirpath

import (
	"fmt"
	"maps"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/rs/zerolog"

	"github.com/damedic/fhirpath-go/fhirpath/internal/parser"
)

// Resource is a domain model resource that can be converted into a Value.
type Resource interface {
	ToValue() (Value, error)
}

// Model describes the FHIR release expressions are evaluated against.
type Model interface {
	String() string
	// IsResourceType reports whether name is a resource type of the release.
	IsResourceType(name string) bool
	// SupportsInteger64 reports whether the release has the integer64 type.
	SupportsInteger64() bool
}

type noModel struct{}

func (noModel) String() string             { return "none" }
func (noModel) IsResourceType(string) bool { return false }
func (noModel) SupportsInteger64() bool    { return true }

// Trace is an entry written by the trace() function.
type Trace struct {
	Name  string
	Value Value
}

const (
	DefaultMaxDepth            = parser.DefaultMaxDepth
	DefaultMaxRepeatIterations = 10000
)

// EvaluationContext carries everything an evaluation reads besides the
// expression: input resources, variables, mode flags and limits. It also
// collects trace output.
//
// A context is not safe for concurrent use; Clone it per goroutine.
type EvaluationContext struct {
	resources    []Value
	model        Model
	variables    map[string]Value
	this         Value
	strict       bool
	checkOrdered bool

	// total is the $total accumulator, set only while aggregate() runs.
	total Value
	// scopes hold variables introduced with defineVariable, innermost last.
	scopes []map[string]Value
	traces []Trace

	logger              zerolog.Logger
	decimal             *apd.Context
	now                 time.Time
	maxDepth            int
	maxRepeatIterations int
	functions           Functions
}

// Option configures an EvaluationContext.
type Option func(*EvaluationContext)

// WithModel sets the FHIR release used for resource type lookups.
func WithModel(m Model) Option {
	return func(ec *EvaluationContext) {
		if m != nil {
			ec.model = m
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(ec *EvaluationContext) {
		ec.logger = logger
	}
}

// WithDecimalContext sets the apd context for Decimal arithmetic. The
// default keeps DefaultDecimalPrecision significant digits.
func WithDecimalContext(c *apd.Context) Option {
	return func(ec *EvaluationContext) {
		if c != nil {
			ec.decimal = c
		}
	}
}

// WithNow fixes the instant returned by now(), today() and timeOfDay().
func WithNow(now time.Time) Option {
	return func(ec *EvaluationContext) {
		ec.now = now
	}
}

func WithMaxDepth(depth int) Option {
	return func(ec *EvaluationContext) {
		ec.maxDepth = depth
	}
}

func WithMaxRepeatIterations(n int) Option {
	return func(ec *EvaluationContext) {
		ec.maxRepeatIterations = n
	}
}

// WithFunctions registers additional functions. They take precedence over
// the built-in functions of the same name.
func WithFunctions(fns Functions) Option {
	return func(ec *EvaluationContext) {
		if ec.functions == nil {
			ec.functions = Functions{}
		}
		maps.Copy(ec.functions, fns)
	}
}

// WithResources adds already converted resources.
func WithResources(values ...Value) Option {
	return func(ec *EvaluationContext) {
		ec.resources = append(ec.resources, values...)
	}
}

func WithStrictMode(strict bool) Option {
	return func(ec *EvaluationContext) {
		ec.strict = strict
	}
}

func WithCheckOrderedFunctions(check bool) Option {
	return func(ec *EvaluationContext) {
		ec.checkOrdered = check
	}
}

// NewEvaluationContext creates a context without resources.
func NewEvaluationContext(opts ...Option) *EvaluationContext {
	ec := &EvaluationContext{
		model:               noModel{},
		variables:           map[string]Value{},
		logger:              zerolog.Nop(),
		decimal:             defaultAPDContext,
		maxDepth:            DefaultMaxDepth,
		maxRepeatIterations: DefaultMaxRepeatIterations,
	}
	for _, opt := range opts {
		opt(ec)
	}
	return ec
}

// NewEmptyEvaluationContext creates a context with default settings.
func NewEmptyEvaluationContext() *EvaluationContext {
	return NewEvaluationContext()
}

// NewEvaluationContextWithResources converts the resources and creates a
// context evaluating against them.
func NewEvaluationContextWithResources(resources []Resource, opts ...Option) (*EvaluationContext, error) {
	ec := NewEvaluationContext(opts...)
	for _, r := range resources {
		if err := ec.AddResource(r); err != nil {
			return nil, err
		}
	}
	return ec, nil
}

// AddResource converts r and appends it to the input resources.
func (ec *EvaluationContext) AddResource(r Resource) error {
	v, err := r.ToValue()
	if err != nil {
		return fmt.Errorf("convert resource: %w", err)
	}
	ec.resources = append(ec.resources, v)
	return nil
}

// SetVariable makes value available as %name.
func (ec *EvaluationContext) SetVariable(name string, value Value) {
	ec.variables[name] = value
}

// SetThis overrides the root focus, which otherwise is the input resources.
func (ec *EvaluationContext) SetThis(value Value) {
	ec.this = value
}

// SetStrictMode makes navigation to absent members and failed casts
// errors instead of empty results.
func (ec *EvaluationContext) SetStrictMode(strict bool) {
	ec.strict = strict
}

// SetCheckOrderedFunctions makes order dependent operations fail on
// collections without a defined order.
func (ec *EvaluationContext) SetCheckOrderedFunctions(check bool) {
	ec.checkOrdered = check
}

func (ec *EvaluationContext) Model() Model {
	return ec.model
}

func (ec *EvaluationContext) Logger() *zerolog.Logger {
	return &ec.logger
}

// TraceOutputs returns the trace entries in the order they were written.
func (ec *EvaluationContext) TraceOutputs() []Trace {
	return ec.traces
}

func (ec *EvaluationContext) ClearTraces() {
	ec.traces = nil
}

// Clone returns an independent copy sharing only immutable state.
func (ec *EvaluationContext) Clone() *EvaluationContext {
	c := *ec
	c.resources = append([]Value(nil), ec.resources...)
	c.variables = maps.Clone(ec.variables)
	c.functions = maps.Clone(ec.functions)
	c.traces = append([]Trace(nil), ec.traces...)
	c.scopes = nil
	c.total = nil
	return &c
}

// root is the focus of an expression evaluated without one.
func (ec *EvaluationContext) root() Value {
	if ec.this != nil {
		return ec.this
	}
	return collect(ec.resources, false)
}

func (ec *EvaluationContext) currentTime() time.Time {
	if ec.now.IsZero() {
		return time.Now()
	}
	return ec.now
}

// System constants available as %name.
var systemVariables = map[string]Value{
	"ucum":  String{Value: "http://unitsofmeasure.org"},
	"loinc": String{Value: "http://loinc.org"},
	"sct":   String{Value: "http://snomed.info/sct"},
}

func (ec *EvaluationContext) lookupVariable(name string) (Value, error) {
	for i := len(ec.scopes) - 1; i >= 0; i-- {
		if v, ok := ec.scopes[i][name]; ok {
			return v, nil
		}
	}
	if v, ok := ec.variables[name]; ok {
		return v, nil
	}
	switch name {
	case "context", "resource", "rootResource":
		return ec.root(), nil
	}
	if v, ok := systemVariables[name]; ok {
		return v, nil
	}
	return nil, newError(UndefinedVariable, "undefined variable %%%s", name)
}

func (ec *EvaluationContext) isDefined(name string) bool {
	_, err := ec.lookupVariable(name)
	return err == nil
}

func (ec *EvaluationContext) pushScope() {
	ec.scopes = append(ec.scopes, nil)
}

func (ec *EvaluationContext) popScope() {
	ec.scopes = ec.scopes[:len(ec.scopes)-1]
}

// defineVariable binds name in the innermost scope.
func (ec *EvaluationContext) defineVariable(name string, value Value) error {
	if ec.isDefined(name) {
		return newError(SemanticError, "variable %%%s is already defined", name)
	}
	if len(ec.scopes) == 0 {
		ec.pushScope()
	}
	top := len(ec.scopes) - 1
	if ec.scopes[top] == nil {
		ec.scopes[top] = map[string]Value{}
	}
	ec.scopes[top][name] = value
	return nil
}
