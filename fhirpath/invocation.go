package fhirpath

import (
	"context"
	"maps"
	"strings"

	"github.com/damedic/fhirpath-go/fhirpath/internal/parser"
)

// Function implements a FHIRPath function. Arguments are evaluated lazily
// through the Call.
type Function func(ctx context.Context, call *Call) (Value, error)

// Functions maps function names to their implementation.
type Functions map[string]Function

// builtinFunctions is filled by the init functions of the function library
// files.
var builtinFunctions = Functions{}

func registerFunctions(fns Functions) {
	maps.Copy(builtinFunctions, fns)
}

// BuiltinFunctions returns a copy of the standard function library.
func BuiltinFunctions() Functions {
	return maps.Clone(builtinFunctions)
}

// Call is a single function invocation.
type Call struct {
	Name string
	// Input is the collection the function is invoked on.
	Input Value

	ec    *EvaluationContext
	e     *evaluator
	args  []parser.Node
	focus focus
}

func (c *Call) NumArgs() int {
	return len(c.args)
}

func (c *Call) Context() *EvaluationContext {
	return c.ec
}

// Arg evaluates argument i in the focus the function was invoked from.
func (c *Call) Arg(ctx context.Context, i int) (Value, error) {
	node := c.args[i]
	if l, ok := node.(*parser.Lambda); ok {
		node = l.Body
	}
	return c.e.evalScoped(ctx, node, c.focus)
}

// ArgFor evaluates argument i with item as $this and index as $index. A
// lambda argument (`x => ...`) additionally binds its name to item.
func (c *Call) ArgFor(ctx context.Context, i int, item Value, index int) (Value, error) {
	return c.evalFor(ctx, c.args[i], item, index)
}

// ArgOn evaluates argument i with v as $this, outside of any iteration.
func (c *Call) ArgOn(ctx context.Context, i int, v Value) (Value, error) {
	node := c.args[i]
	if l, ok := node.(*parser.Lambda); ok {
		node = l.Body
	}
	if v == nil {
		v = Empty{}
	}
	f := c.focus
	f.this = v
	return c.e.evalScoped(ctx, node, f)
}

func (c *Call) evalFor(ctx context.Context, node parser.Node, item Value, index int) (Value, error) {
	f := focus{this: item, index: index, hasIndex: true, bindings: c.focus.bindings}
	if l, ok := node.(*parser.Lambda); ok {
		if l.Name != "" {
			f.bindings = &binding{name: l.Name, value: item, next: f.bindings}
		}
		node = l.Body
	}
	if f.this == nil {
		f.this = Empty{}
	}
	return c.e.evalScoped(ctx, node, f)
}

func (c *Call) arity(n int) error {
	if len(c.args) != n {
		return newError(InvalidArity, "%s() expects %d argument(s), got %d", c.Name, n, len(c.args))
	}
	return nil
}

func (c *Call) arityRange(min, max int) error {
	if len(c.args) < min || len(c.args) > max {
		return newError(InvalidArity, "%s() expects %d to %d arguments, got %d", c.Name, min, max, len(c.args))
	}
	return nil
}

// requireOrdered rejects input without a defined order when the context
// checks ordered functions.
func (c *Call) requireOrdered() error {
	if c.ec.checkOrdered && isUnordered(c.Input) {
		return newError(SemanticError, "%s() requires an ordered collection", c.Name)
	}
	return nil
}

// singleInput returns the only input item.
func (c *Call) singleInput() (Value, bool, error) {
	item, ok, err := singleton(c.Input, c.Name+"()")
	if err != nil || !ok {
		return nil, ok, err
	}
	return unwrapPrimitive(item), true, nil
}

// singleArg evaluates argument i and returns its only item.
func (c *Call) singleArg(ctx context.Context, i int) (Value, bool, error) {
	v, err := c.Arg(ctx, i)
	if err != nil {
		return nil, false, err
	}
	item, ok, err := singleton(v, c.Name+"() argument")
	if err != nil || !ok {
		return nil, ok, err
	}
	return unwrapPrimitive(item), true, nil
}

func (c *Call) stringArg(ctx context.Context, i int) (string, bool, error) {
	v, ok, err := c.singleArg(ctx, i)
	if err != nil || !ok {
		return "", ok, err
	}
	s, isString := v.(String)
	if !isString {
		return "", false, newError(TypeError, "%s() expects a String argument, got %s", c.Name, TypeOf(v))
	}
	return s.Value, true, nil
}

func (c *Call) integerArg(ctx context.Context, i int) (int64, bool, error) {
	v, ok, err := c.singleArg(ctx, i)
	if err != nil || !ok {
		return 0, ok, err
	}
	switch n := v.(type) {
	case Integer:
		return n.Value, true, nil
	case Integer64:
		return n.Value, true, nil
	}
	return 0, false, newError(TypeError, "%s() expects an Integer argument, got %s", c.Name, TypeOf(v))
}

// typeArg reads a type specifier argument, written as an identifier, a
// qualified identifier or a string.
func (c *Call) typeArg(i int) (TypeSpecifier, error) {
	var q parser.QualifiedIdentifier
	switch n := c.args[i].(type) {
	case *parser.InvocationTerm:
		m, ok := n.Invocation.(parser.Member)
		if !ok {
			return TypeSpecifier{}, newError(InvalidArgument, "%s() expects a type name", c.Name)
		}
		q.Name = m.Name
	case *parser.InvocationExpression:
		ns, okNS := n.Base.(*parser.InvocationTerm)
		name, okName := n.Invocation.(parser.Member)
		if !okNS || !okName {
			return TypeSpecifier{}, newError(InvalidArgument, "%s() expects a type name", c.Name)
		}
		nsMember, ok := ns.Invocation.(parser.Member)
		if !ok {
			return TypeSpecifier{}, newError(InvalidArgument, "%s() expects a type name", c.Name)
		}
		q = parser.QualifiedIdentifier{Namespace: nsMember.Name, Name: name.Name}
	case *parser.LiteralTerm:
		s, ok := n.Literal.(parser.StringLiteral)
		if !ok {
			return TypeSpecifier{}, newError(InvalidArgument, "%s() expects a type name", c.Name)
		}
		t := ParseTypeSpecifier(s.Value)
		q = parser.QualifiedIdentifier{Namespace: t.Namespace, Name: t.Name}
	default:
		return TypeSpecifier{}, newError(InvalidArgument, "%s() expects a type name", c.Name)
	}
	return ResolveTypeSpecifier(q, c.ec.model), nil
}

func (e *evaluator) evalInvocation(ctx context.Context, inv parser.Invocation, base Value, f focus) (Value, error) {
	switch t := inv.(type) {
	case parser.Member:
		if base == nil {
			return e.evalRootMember(t.Name, f)
		}
		return e.member(base, t.Name)
	case *parser.Function:
		input := base
		if input == nil {
			input = e.input(f)
		}
		return e.callFunction(ctx, t, input, f)
	case parser.This:
		if base != nil {
			return base, nil
		}
		return e.input(f), nil
	case parser.Index:
		if !f.hasIndex {
			return nil, newError(UndefinedVariable, "$index is only defined inside a function argument")
		}
		return Integer{Value: int64(f.index)}, nil
	case parser.Total:
		if e.ec.total == nil {
			return nil, newError(UndefinedVariable, "$total is only defined inside aggregate()")
		}
		return e.ec.total, nil
	}
	return nil, newError(InvalidOperation, "unexpected invocation %T", inv)
}

// evalRootMember resolves an identifier that starts a path. Lambda
// parameters come first. Without a focus, a name matching the type of the
// input resource selects the resource itself.
func (e *evaluator) evalRootMember(name string, f focus) (Value, error) {
	if v, ok := f.lookup(name); ok {
		return v, nil
	}
	root := e.ec.root()
	if f.this == nil {
		if matched, ok := matchRootType(root, name); ok {
			return matched, nil
		}
		if e.ec.model.IsResourceType(name) {
			return Empty{}, nil
		}
		return e.member(root, name)
	}

	result, found := navigate(f.this, name)
	if found {
		return result, nil
	}
	if matched, ok := matchRootType(root, name); ok {
		return matched, nil
	}
	if e.ec.strict && !IsEmpty(f.this) && hasObjects(f.this) {
		return nil, newError(SemanticError, "unknown member %q on %s", name, TypeOf(firstItem(f.this)))
	}
	return result, nil
}

// member navigates to name on every object of input.
func (e *evaluator) member(input Value, name string) (Value, error) {
	result, found := navigate(input, name)
	if !found && e.ec.strict && hasObjects(input) {
		return nil, newError(SemanticError, "unknown member %q on %s", name, TypeOf(firstItem(input)))
	}
	return result, nil
}

func matchRootType(root Value, name string) (Value, bool) {
	var matched []Value
	for _, item := range Items(root) {
		o, ok := item.(Object)
		if !ok {
			continue
		}
		if rt, ok := o.ResourceType(); ok && strings.EqualFold(rt, name) {
			matched = append(matched, item)
			continue
		}
		if strings.EqualFold(TypeOf(o).Name, name) {
			matched = append(matched, item)
		}
	}
	if len(matched) == 0 {
		return nil, false
	}
	return collect(matched, isUnordered(root)), true
}

// navigate collects field name of every object in input, flattening
// repeated elements. Choice elements are found by their base name.
func navigate(input Value, name string) (Value, bool) {
	var out []Value
	found := false
	for _, item := range Items(input) {
		o, ok := item.(Object)
		if !ok {
			continue
		}
		if v, ok := o.Get(name); ok {
			found = true
			out = append(out, v)
			continue
		}
		for _, field := range o.Fields {
			base, typ, ok := ChoiceType(field.Name)
			if ok && base == name {
				found = true
				out = append(out, withType(field.Value, typ))
				break
			}
		}
	}
	return collect(out, isUnordered(input)), found
}

func hasObjects(v Value) bool {
	for _, item := range Items(v) {
		if _, ok := item.(Object); ok {
			return true
		}
	}
	return false
}

func firstItem(v Value) Value {
	items := Items(v)
	if len(items) == 0 {
		return Empty{}
	}
	return items[0]
}

func (e *evaluator) callFunction(ctx context.Context, fn *parser.Function, input Value, f focus) (Value, error) {
	impl, ok := e.ec.functions[fn.Name]
	if !ok {
		impl, ok = builtinFunctions[fn.Name]
	}
	if !ok {
		e.ec.logger.Warn().Str("function", fn.Name).Msg("unknown function, evaluating to empty")
		return Empty{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, wrapError(InvalidOperation, err, "evaluation canceled")
	}
	call := &Call{
		Name:  fn.Name,
		Input: input,
		ec:    e.ec,
		e:     e,
		args:  fn.Args,
		focus: f,
	}
	result, err := impl(ctx, call)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return Empty{}, nil
	}
	return result, nil
}
