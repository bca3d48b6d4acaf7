package fhirpath

import (
	"context"
	"slices"

	"github.com/damedic/fhirpath-go/fhirpath/internal/parser"
)

func init() {
	registerFunctions(Functions{
		// Existence
		"empty": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			return Boolean{Value: IsEmpty(c.Input)}, nil
		},
		"exists": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arityRange(0, 1); err != nil {
				return nil, err
			}
			if c.NumArgs() == 0 {
				return Boolean{Value: !IsEmpty(c.Input)}, nil
			}
			for i, item := range Items(c.Input) {
				v, err := c.ArgFor(ctx, 0, item, i)
				if err != nil {
					return nil, err
				}
				ok, err := truthy(v, "exists() criteria")
				if err != nil {
					return nil, err
				}
				if ok {
					return Boolean{Value: true}, nil
				}
			}
			return Boolean{Value: false}, nil
		},
		"all": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			for i, item := range Items(c.Input) {
				v, err := c.ArgFor(ctx, 0, item, i)
				if err != nil {
					return nil, err
				}
				ok, err := truthy(v, "all() criteria")
				if err != nil {
					return nil, err
				}
				if !ok {
					return Boolean{Value: false}, nil
				}
			}
			return Boolean{Value: true}, nil
		},
		"allTrue":  booleanAggregate(true, true),
		"anyTrue":  booleanAggregate(false, true),
		"allFalse": booleanAggregate(true, false),
		"anyFalse": booleanAggregate(false, false),
		"subsetOf": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			other, err := c.Arg(ctx, 0)
			if err != nil {
				return nil, err
			}
			return Boolean{Value: containsAll(other, c.Input)}, nil
		},
		"supersetOf": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			other, err := c.Arg(ctx, 0)
			if err != nil {
				return nil, err
			}
			return Boolean{Value: containsAll(c.Input, other)}, nil
		},
		"count": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			return Integer{Value: int64(len(Items(c.Input)))}, nil
		},
		"distinct": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			return collect(distinct(Items(c.Input)), isUnordered(c.Input)), nil
		},
		"isDistinct": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			items := Items(c.Input)
			return Boolean{Value: len(distinct(items)) == len(items)}, nil
		},

		// Filtering and projection
		"where": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			var out []Value
			for i, item := range Items(c.Input) {
				v, err := c.ArgFor(ctx, 0, item, i)
				if err != nil {
					return nil, err
				}
				ok, err := truthy(v, "where() criteria")
				if err != nil {
					return nil, err
				}
				if ok {
					out = append(out, item)
				}
			}
			return collect(out, isUnordered(c.Input)), nil
		},
		"select": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			var out []Value
			for i, item := range Items(c.Input) {
				v, err := c.ArgFor(ctx, 0, item, i)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			return collect(out, isUnordered(c.Input)), nil
		},
		"repeat": func(ctx context.Context, c *Call) (Value, error) {
			return repeat(ctx, c, true)
		},
		"repeatAll": func(ctx context.Context, c *Call) (Value, error) {
			return repeat(ctx, c, false)
		},
		"ofType": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			t, err := c.typeArg(0)
			if err != nil {
				return nil, err
			}
			return OfType(c.Input, t, c.ec.model), nil
		},

		// Subsetting
		"single": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			item, ok, err := singleton(c.Input, "single()")
			if err != nil || !ok {
				return Empty{}, err
			}
			return item, nil
		},
		"first": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			if err := c.requireOrdered(); err != nil {
				return nil, err
			}
			items := Items(c.Input)
			if len(items) == 0 {
				return Empty{}, nil
			}
			return items[0], nil
		},
		"last": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			if err := c.requireOrdered(); err != nil {
				return nil, err
			}
			items := Items(c.Input)
			if len(items) == 0 {
				return Empty{}, nil
			}
			return items[len(items)-1], nil
		},
		"tail": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			if err := c.requireOrdered(); err != nil {
				return nil, err
			}
			items := Items(c.Input)
			if len(items) < 2 {
				return Empty{}, nil
			}
			return collect(items[1:], false), nil
		},
		"skip": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			if err := c.requireOrdered(); err != nil {
				return nil, err
			}
			n, ok, err := c.integerArg(ctx, 0)
			if err != nil || !ok {
				return Empty{}, err
			}
			items := Items(c.Input)
			if n <= 0 {
				return c.Input, nil
			}
			if n >= int64(len(items)) {
				return Empty{}, nil
			}
			return collect(items[n:], false), nil
		},
		"take": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			if err := c.requireOrdered(); err != nil {
				return nil, err
			}
			n, ok, err := c.integerArg(ctx, 0)
			if err != nil || !ok || n <= 0 {
				return Empty{}, err
			}
			items := Items(c.Input)
			if n >= int64(len(items)) {
				return c.Input, nil
			}
			return collect(items[:n], false), nil
		},
		"intersect": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			other, err := c.Arg(ctx, 0)
			if err != nil {
				return nil, err
			}
			var out []Value
			for _, item := range distinct(Items(c.Input)) {
				if containsItem(Items(other), item) {
					out = append(out, item)
				}
			}
			return collect(out, true), nil
		},
		"exclude": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			other, err := c.Arg(ctx, 0)
			if err != nil {
				return nil, err
			}
			var out []Value
			for _, item := range Items(c.Input) {
				if !containsItem(Items(other), item) {
					out = append(out, item)
				}
			}
			return collect(out, isUnordered(c.Input)), nil
		},

		// Combining
		"union": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			other, err := c.Arg(ctx, 0)
			if err != nil {
				return nil, err
			}
			return c.e.union(c.Input, other), nil
		},
		"combine": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			other, err := c.Arg(ctx, 0)
			if err != nil {
				return nil, err
			}
			return collect([]Value{c.Input, other}, true), nil
		},
		"coalesce": func(ctx context.Context, c *Call) (Value, error) {
			for i := range c.NumArgs() {
				v, err := c.Arg(ctx, i)
				if err != nil {
					return nil, err
				}
				if !IsEmpty(v) {
					return v, nil
				}
			}
			return Empty{}, nil
		},

		"iif": iif,

		// Boolean
		"not": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			if IsEmpty(c.Input) {
				return Empty{}, nil
			}
			b, err := truthy(c.Input, "not()")
			if err != nil {
				return nil, err
			}
			return Boolean{Value: !b}, nil
		},

		// Tree navigation
		"children": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			return collect(children(c.Input), true), nil
		},
		"descendants": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			var out []Value
			next := children(c.Input)
			for len(next) > 0 {
				if err := ctx.Err(); err != nil {
					return nil, wrapError(InvalidOperation, err, "descendants() canceled")
				}
				out = append(out, next...)
				next = children(collect(next, false))
			}
			return collect(out, true), nil
		},
	})
}

// booleanAggregate builds allTrue, anyTrue, allFalse and anyFalse.
func booleanAggregate(all bool, want bool) Function {
	return func(ctx context.Context, c *Call) (Value, error) {
		if err := c.arity(0); err != nil {
			return nil, err
		}
		for _, item := range Items(c.Input) {
			b, ok := unwrapPrimitive(item).(Boolean)
			if !ok {
				return nil, newError(TypeError, "%s() expects Boolean items, got %s", c.Name, TypeOf(item))
			}
			if all && b.Value != want {
				return Boolean{Value: false}, nil
			}
			if !all && b.Value == want {
				return Boolean{Value: true}, nil
			}
		}
		return Boolean{Value: all}, nil
	}
}

func containsItem(items []Value, v Value) bool {
	for _, item := range items {
		if eq, ok := itemsEqual(item, v); ok && eq {
			return true
		}
	}
	return false
}

// containsAll reports whether every item of sub is in super.
func containsAll(super, sub Value) bool {
	superItems := Items(super)
	for _, item := range Items(sub) {
		if !containsItem(superItems, item) {
			return false
		}
	}
	return true
}

// distinct removes duplicates by equality, keeping the first occurrence.
func distinct(items []Value) []Value {
	var out []Value
	for _, item := range items {
		if !containsItem(out, item) {
			out = append(out, item)
		}
	}
	return out
}

func children(v Value) []Value {
	var out []Value
	for _, item := range Items(v) {
		o, ok := item.(Object)
		if !ok {
			continue
		}
		for _, f := range o.Fields {
			if f.Name == "resourceType" {
				continue
			}
			out = append(out, Items(f.Value)...)
		}
	}
	return out
}

// repeat applies the projection to the input and then to each new result
// until nothing new is produced.
func repeat(ctx context.Context, c *Call, unique bool) (Value, error) {
	if err := c.arity(1); err != nil {
		return nil, err
	}
	var (
		out        []Value
		queue      = Items(c.Input)
		iterations int
	)
	for len(queue) > 0 {
		var next []Value
		for _, item := range queue {
			iterations++
			if c.ec.maxRepeatIterations > 0 && iterations > c.ec.maxRepeatIterations {
				return nil, newError(InvalidOperation, "%s() exceeded %d iterations", c.Name, c.ec.maxRepeatIterations)
			}
			if err := ctx.Err(); err != nil {
				return nil, wrapError(InvalidOperation, err, "%s() canceled", c.Name)
			}
			v, err := c.ArgFor(ctx, 0, item, iterations-1)
			if err != nil {
				return nil, err
			}
			for _, produced := range Items(v) {
				if unique && containsItem(out, produced) {
					continue
				}
				out = append(out, produced)
				next = append(next, produced)
			}
		}
		queue = next
	}
	return collect(out, true), nil
}

// iif evaluates a branch on the whole input resource when it starts with a
// resource type name, otherwise on the input of the call.
func iif(ctx context.Context, c *Call) (Value, error) {
	if err := c.arityRange(2, 3); err != nil {
		return nil, err
	}
	if len(Items(c.Input)) > 1 {
		return nil, newError(SingletonEvaluationError, "iif() expects at most one input item, got %d", len(Items(c.Input)))
	}
	criterion, err := c.evalBranch(ctx, 0)
	if err != nil {
		return nil, err
	}
	ok, err := truthy(criterion, "iif() criterion")
	if err != nil {
		return nil, err
	}
	switch {
	case ok:
		return c.evalBranch(ctx, 1)
	case c.NumArgs() == 3:
		return c.evalBranch(ctx, 2)
	}
	return Empty{}, nil
}

func (c *Call) evalBranch(ctx context.Context, i int) (Value, error) {
	node := c.args[i]
	if l, ok := node.(*parser.Lambda); ok {
		node = l.Body
	}
	f := c.focus
	if name, ok := leadingIdentifier(node); !ok || !c.ec.model.IsResourceType(name) {
		f.this = c.Input
		if f.this == nil {
			f.this = Empty{}
		}
	} else {
		f.this = nil
	}
	return c.e.evalScoped(ctx, node, f)
}

// leadingIdentifier returns the identifier a path expression starts with.
func leadingIdentifier(node parser.Node) (string, bool) {
	for {
		switch n := node.(type) {
		case *parser.InvocationTerm:
			m, ok := n.Invocation.(parser.Member)
			return m.Name, ok
		case *parser.InvocationExpression:
			node = n.Base
		case *parser.Indexer:
			node = n.Base
		case *parser.Parenthesized:
			node = n.Expression
		case *parser.Multiplicative:
			node = n.Left
		case *parser.Additive:
			node = n.Left
		case *parser.Inequality:
			node = n.Left
		case *parser.Equality:
			node = n.Left
		case *parser.Membership:
			node = n.Left
		case *parser.Union:
			node = n.Left
		case *parser.And:
			node = n.Left
		case *parser.Or:
			node = n.Left
		case *parser.Implies:
			node = n.Left
		case *parser.TypeExpression:
			node = n.Operand
		default:
			return "", false
		}
	}
}

// sortKey pairs an item with the keys it is ordered by.
type sortKey struct {
	item Value
	keys []Value
}

func sortItems(ctx context.Context, c *Call) (Value, error) {
	items := Items(c.Input)
	type keyExpr struct {
		node       parser.Node
		descending bool
	}
	exprs := make([]keyExpr, 0, c.NumArgs())
	for _, arg := range c.args {
		if l, ok := arg.(*parser.Lambda); ok {
			arg = l.Body
		}
		if p, ok := arg.(*parser.Polarity); ok && p.Sign == "-" {
			exprs = append(exprs, keyExpr{node: p.Operand, descending: true})
			continue
		}
		exprs = append(exprs, keyExpr{node: arg})
	}

	keyed := make([]sortKey, len(items))
	for i, item := range items {
		keyed[i].item = item
		if len(exprs) == 0 {
			keyed[i].keys = []Value{item}
			continue
		}
		for _, expr := range exprs {
			k, err := c.evalFor(ctx, expr.node, item, i)
			if err != nil {
				return nil, err
			}
			key, _, err := singleton(k, "sort() key")
			if err != nil {
				return nil, err
			}
			keyed[i].keys = append(keyed[i].keys, key)
		}
	}

	var sortErr error
	slices.SortStableFunc(keyed, func(a, b sortKey) int {
		for k := range a.keys {
			descending := k < len(exprs) && exprs[k].descending
			cmp, err := compareSortKeys(a.keys[k], b.keys[k])
			if err != nil && sortErr == nil {
				sortErr = err
			}
			if cmp != 0 {
				if descending {
					return -cmp
				}
				return cmp
			}
		}
		return 0
	})
	if sortErr != nil {
		return nil, sortErr
	}
	out := make([]Value, len(keyed))
	for i, k := range keyed {
		out[i] = k.item
	}
	return collect(out, false), nil
}

// compareSortKeys orders missing keys first.
func compareSortKeys(a, b Value) (int, error) {
	switch {
	case a == nil && b == nil:
		return 0, nil
	case a == nil:
		return -1, nil
	case b == nil:
		return 1, nil
	}
	cmp, _, err := compareValues(a, b)
	return cmp, err
}
