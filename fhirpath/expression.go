package fhirpath

import (
	"context"
	"fmt"

	"github.com/damedic/fhirpath-go/fhirpath/internal/parser"
)

// Expression represents a parsed FHIRPath expression that can be evaluated
// against FHIR resources. Expressions are created using the Parse or
// MustParse functions and are safe to share between goroutines.
type Expression struct {
	tree   parser.Node
	source string
}

// String returns the canonical text of the expression.
func (e Expression) String() string {
	if e.tree == nil {
		return ""
	}
	return parser.Format(e.tree)
}

// Source returns the text the expression was parsed from.
func (e Expression) Source() string {
	return e.source
}

// Parse parses a FHIRPath expression string and returns an Expression object.
// If the expression cannot be parsed, a *SyntaxError is returned.
//
// Example:
//
//	expr, err := fhirpath.Parse("Patient.name.given")
//	if err != nil {
//	    // Handle error
//	}
func Parse(expr string) (Expression, error) {
	tree, err := parser.Parse(expr)
	if err != nil {
		return Expression{}, err
	}
	return Expression{tree: tree, source: expr}, nil
}

// MustParse parses a FHIRPath expression string and returns an Expression object.
// If the expression cannot be parsed, it panics.
//
// This function is useful when you know the expression is valid and want to avoid
// error checking, such as in tests or with hardcoded expressions.
//
// Example:
//
//	expr := fhirpath.MustParse("Patient.name.given")
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return e
}

// Evaluate evaluates a parsed expression against the resources of ec.
//
// The result is Empty, a single value or a Collection with at least two
// items. Evaluation failures are returned as *EvalError. A nil ec
// evaluates without any input.
//
// Example:
//
//	ec, err := fhirpath.NewEvaluationContextWithResources(
//	    []fhirpath.Resource{patient}, fhirpath.WithModel(model.R4))
//	if err != nil {
//	    // Handle error
//	}
//	result, err := fhirpath.Evaluate(ctx, ec, fhirpath.MustParse("Patient.name.given"))
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(result) // Output: ["Donald", "Duck"]
func Evaluate(ctx context.Context, ec *EvaluationContext, expr Expression) (result Value, err error) {
	if expr.tree == nil {
		return nil, newError(InvalidOperation, "can not evaluate empty expression")
	}
	if ec == nil {
		ec = NewEmptyEvaluationContext()
	}
	ec.scopes = nil
	ec.total = nil

	defer func() {
		if r := recover(); r != nil {
			result, err = nil, newError(InvalidOperation, "evaluation of %q failed: %v", expr.source, r)
		}
	}()

	e := &evaluator{ec: ec}
	return e.eval(ctx, expr.tree, focus{})
}

// EvaluateString parses and evaluates text in one step. Syntax errors are
// returned as *SyntaxError, evaluation errors as *EvalError.
func EvaluateString(ctx context.Context, text string, ec *EvaluationContext) (Value, error) {
	expr, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Evaluate(ctx, ec, expr)
}

// focus is the input an expression is evaluated against. A nil this means
// the expression root.
type focus struct {
	this     Value
	index    int
	hasIndex bool
	bindings *binding
}

// binding is a lambda parameter introduced with `name => ...`.
type binding struct {
	name  string
	value Value
	next  *binding
}

func (f focus) lookup(name string) (Value, bool) {
	for b := f.bindings; b != nil; b = b.next {
		if b.name == name {
			return b.value, true
		}
	}
	return nil, false
}

// input is the value identifiers and functions without a base apply to.
func (e *evaluator) input(f focus) Value {
	if f.this == nil {
		return e.ec.root()
	}
	return f.this
}

type evaluator struct {
	ec    *EvaluationContext
	depth int
}

func (e *evaluator) eval(ctx context.Context, node parser.Node, f focus) (Value, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.ec.maxDepth > 0 && e.depth > e.ec.maxDepth {
		return nil, newError(InvalidOperation, "expression nesting exceeds the maximum depth of %d", e.ec.maxDepth)
	}

	switch t := node.(type) {
	case *parser.InvocationTerm:
		return e.evalInvocation(ctx, t.Invocation, nil, f)
	case *parser.LiteralTerm:
		return e.evalLiteral(t.Literal)
	case *parser.ExternalConstant:
		return e.ec.lookupVariable(t.Name)
	case *parser.Parenthesized:
		return e.eval(ctx, t.Expression, f)
	case *parser.InvocationExpression:
		base, err := e.eval(ctx, t.Base, f)
		if err != nil {
			return nil, err
		}
		return e.evalInvocation(ctx, t.Invocation, base, f)
	case *parser.Indexer:
		return e.evalIndexer(ctx, t, f)
	case *parser.Polarity:
		operand, err := e.eval(ctx, t.Operand, f)
		if err != nil {
			return nil, err
		}
		return e.polarity(t.Sign, operand)
	case *parser.Multiplicative:
		return e.evalBinary(ctx, t.Left, t.Op, t.Right, f)
	case *parser.Additive:
		return e.evalBinary(ctx, t.Left, t.Op, t.Right, f)
	case *parser.TypeExpression:
		operand, err := e.eval(ctx, t.Operand, f)
		if err != nil {
			return nil, err
		}
		return e.typeOperator(t.Op, operand, ResolveTypeSpecifier(t.Type, e.ec.model))
	case *parser.Union:
		left, err := e.evalScoped(ctx, t.Left, f)
		if err != nil {
			return nil, err
		}
		right, err := e.evalScoped(ctx, t.Right, f)
		if err != nil {
			return nil, err
		}
		return e.union(left, right), nil
	case *parser.Inequality:
		return e.evalBinary(ctx, t.Left, t.Op, t.Right, f)
	case *parser.Equality:
		return e.evalBinary(ctx, t.Left, t.Op, t.Right, f)
	case *parser.Membership:
		return e.evalBinary(ctx, t.Left, t.Op, t.Right, f)
	case *parser.And:
		return e.evalLogical(ctx, t.Left, "and", t.Right, f)
	case *parser.Or:
		return e.evalLogical(ctx, t.Left, t.Op, t.Right, f)
	case *parser.Implies:
		return e.evalLogical(ctx, t.Left, "implies", t.Right, f)
	case *parser.Lambda:
		return e.eval(ctx, t.Body, f)
	}
	return nil, newError(InvalidOperation, "unexpected expression %T", node)
}

// evalScoped evaluates node with its own defineVariable scope.
func (e *evaluator) evalScoped(ctx context.Context, node parser.Node, f focus) (Value, error) {
	e.ec.pushScope()
	defer e.ec.popScope()
	return e.eval(ctx, node, f)
}

func (e *evaluator) evalBinary(ctx context.Context, l parser.Node, op string, r parser.Node, f focus) (Value, error) {
	left, err := e.eval(ctx, l, f)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(ctx, r, f)
	if err != nil {
		return nil, err
	}
	switch op {
	case "+", "-", "*", "/", "div", "mod", "&":
		return e.arithmetic(op, left, right)
	case "<", "<=", ">", ">=":
		return e.inequality(op, left, right)
	case "=":
		return e.equality(left, right, false), nil
	case "!=":
		return e.equality(left, right, true), nil
	case "~":
		return Boolean{Value: e.equivalent(left, right)}, nil
	case "!~":
		return Boolean{Value: !e.equivalent(left, right)}, nil
	case "in":
		return e.membership(left, right)
	case "contains":
		return e.membership(right, left)
	}
	return nil, newError(InvalidOperation, "unknown operator %q", op)
}

func (e *evaluator) evalLiteral(lit parser.Literal) (Value, error) {
	switch l := lit.(type) {
	case parser.NullLiteral:
		return Empty{}, nil
	case parser.BooleanLiteral:
		return Boolean{Value: l.Value}, nil
	case parser.StringLiteral:
		return String{Value: l.Value}, nil
	case parser.NumberLiteral:
		return Decimal{Value: l.Value}, nil
	case parser.IntegerLiteral:
		return Integer{Value: l.Value}, nil
	case parser.LongLiteral:
		if !e.ec.model.SupportsInteger64() {
			return Integer{Value: l.Value}, nil
		}
		return Integer64{Value: l.Value}, nil
	case parser.DateLiteral:
		d, err := ParseDate(l.Text)
		if err != nil {
			return nil, wrapError(InvalidArgument, err, "invalid date literal")
		}
		return d, nil
	case parser.DateTimeLiteral:
		dt, err := ParseDateTime(l.Text)
		if err != nil {
			return nil, wrapError(InvalidArgument, err, "invalid datetime literal")
		}
		return dt, nil
	case parser.TimeLiteral:
		t, err := ParseTime(l.Text)
		if err != nil {
			return nil, wrapError(InvalidArgument, err, "invalid time literal")
		}
		return t, nil
	case parser.QuantityLiteral:
		return Quantity{Value: l.Value, Unit: l.Unit}, nil
	}
	return nil, newError(InvalidOperation, "unexpected literal %T", lit)
}

func (e *evaluator) evalIndexer(ctx context.Context, t *parser.Indexer, f focus) (Value, error) {
	base, err := e.eval(ctx, t.Base, f)
	if err != nil {
		return nil, err
	}
	index, err := e.eval(ctx, t.Index, f)
	if err != nil {
		return nil, err
	}
	idx, ok, err := singleton(index, "index")
	if err != nil {
		return nil, err
	}
	if !ok {
		return Empty{}, nil
	}
	var i int64
	switch n := unwrapPrimitive(idx).(type) {
	case Integer:
		i = n.Value
	case Integer64:
		i = n.Value
	case Decimal:
		var integral bool
		if i, integral = integralDecimal(n.Value); !integral {
			return nil, newError(InvalidIndex, "index %s is not an integer", n)
		}
	default:
		return nil, newError(InvalidIndex, "index must be an integer, got %s", TypeOf(idx))
	}
	if i < 0 {
		return nil, newError(InvalidIndex, "index %d is negative", i)
	}
	if e.ec.checkOrdered && isUnordered(base) {
		return nil, newError(SemanticError, "can not index into a collection without defined order")
	}
	items := Items(base)
	if i >= int64(len(items)) {
		return Empty{}, nil
	}
	return items[i], nil
}

func (e *evaluator) typeOperator(op string, operand Value, t TypeSpecifier) (Value, error) {
	v, ok, err := singleton(operand, op)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Empty{}, nil
	}
	switch op {
	case "is":
		return Boolean{Value: IsOfType(v, t, e.ec.model)}, nil
	case "as":
		if IsOfType(v, t, e.ec.model) {
			return v, nil
		}
		if e.ec.strict {
			return nil, newError(SemanticError, "can not cast %s to %s", TypeOf(v), t)
		}
		return Empty{}, nil
	}
	return nil, newError(InvalidOperation, "unknown type operator %q", op)
}

// evalLogical implements the three-valued boolean operators. The right
// operand is not evaluated when the left one decides the result, unless
// it is a literal whose type can be checked for free.
func (e *evaluator) evalLogical(ctx context.Context, l parser.Node, op string, r parser.Node, f focus) (Value, error) {
	leftValue, err := e.eval(ctx, l, f)
	if err != nil {
		return nil, err
	}
	left, leftOK, err := booleanOperand(leftValue, op)
	if err != nil {
		return nil, err
	}
	var decided Value
	switch {
	case op == "and" && leftOK && !left:
		decided = Boolean{Value: false}
	case op == "or" && leftOK && left:
		decided = Boolean{Value: true}
	case op == "implies" && leftOK && !left:
		decided = Boolean{Value: true}
	}
	if decided != nil {
		if lit, isLiteral := r.(*parser.LiteralTerm); isLiteral {
			rightValue, err := e.evalLiteral(lit.Literal)
			if err != nil {
				return nil, err
			}
			if _, _, err := booleanOperand(rightValue, op); err != nil {
				return nil, err
			}
		}
		return decided, nil
	}

	rightValue, err := e.eval(ctx, r, f)
	if err != nil {
		return nil, err
	}
	right, rightOK, err := booleanOperand(rightValue, op)
	if err != nil {
		return nil, err
	}

	switch op {
	case "and":
		switch {
		case rightOK && !right:
			return Boolean{Value: false}, nil
		case leftOK && rightOK:
			return Boolean{Value: true}, nil
		}
		return Empty{}, nil
	case "or":
		switch {
		case rightOK && right:
			return Boolean{Value: true}, nil
		case leftOK && rightOK:
			return Boolean{Value: false}, nil
		}
		return Empty{}, nil
	case "xor":
		if !leftOK || !rightOK {
			return Empty{}, nil
		}
		return Boolean{Value: left != right}, nil
	case "implies":
		switch {
		case rightOK && right:
			return Boolean{Value: true}, nil
		case leftOK && rightOK:
			return Boolean{Value: false}, nil
		}
		return Empty{}, nil
	}
	return nil, newError(InvalidOperation, "unknown boolean operator %q", op)
}

// booleanOperand converts an operand of a boolean operator. ok is false
// for Empty.
func booleanOperand(v Value, op string) (b bool, ok bool, err error) {
	item, ok, err := singleton(v, fmt.Sprintf("operator %s", op))
	if err != nil || !ok {
		return false, false, err
	}
	if boolean, isBool := unwrapPrimitive(item).(Boolean); isBool {
		return boolean.Value, true, nil
	}
	return false, false, newError(TypeError, "operator %s expects Boolean operands, got %s", op, TypeOf(item))
}

// truthy evaluates a criteria result: Empty is false, a single Boolean is
// its value and any other single item counts as true.
func truthy(v Value, what string) (bool, error) {
	item, ok, err := singleton(v, what)
	if err != nil || !ok {
		return false, err
	}
	if b, isBool := unwrapPrimitive(item).(Boolean); isBool {
		return b.Value, nil
	}
	return true, nil
}
