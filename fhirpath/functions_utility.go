package fhirpath

import (
	"context"
)

func init() {
	registerFunctions(Functions{
		"trace": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arityRange(1, 2); err != nil {
				return nil, err
			}
			name, _, err := c.stringArg(ctx, 0)
			if err != nil {
				return nil, err
			}
			logged := c.Input
			if c.NumArgs() == 2 {
				var out []Value
				for i, item := range Items(c.Input) {
					v, err := c.ArgFor(ctx, 1, item, i)
					if err != nil {
						return nil, err
					}
					out = append(out, v)
				}
				logged = collect(out, isUnordered(c.Input))
			}
			c.ec.traces = append(c.ec.traces, Trace{Name: name, Value: logged})
			c.ec.logger.Debug().
				Str("name", name).
				Int("count", len(Items(logged))).
				Msg("trace")
			return c.Input, nil
		},
		"aggregate": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arityRange(1, 2); err != nil {
				return nil, err
			}
			var total Value = Empty{}
			if c.NumArgs() == 2 {
				seed, err := c.Arg(ctx, 1)
				if err != nil {
					return nil, err
				}
				total = seed
			}
			saved := c.ec.total
			defer func() { c.ec.total = saved }()
			for i, item := range Items(c.Input) {
				if err := ctx.Err(); err != nil {
					return nil, wrapError(InvalidOperation, err, "aggregate() canceled")
				}
				c.ec.total = total
				v, err := c.ArgFor(ctx, 0, item, i)
				if err != nil {
					return nil, err
				}
				total = v
			}
			return total, nil
		},
		"defineVariable": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arityRange(1, 2); err != nil {
				return nil, err
			}
			name, ok, err := c.stringArg(ctx, 0)
			if err != nil {
				return nil, err
			}
			if !ok || name == "" {
				return nil, newError(InvalidArgument, "defineVariable() expects a variable name")
			}
			value := c.Input
			if c.NumArgs() == 2 {
				if value, err = c.ArgOn(ctx, 1, c.Input); err != nil {
					return nil, err
				}
			}
			if err := c.ec.defineVariable(name, value); err != nil {
				return nil, err
			}
			return c.Input, nil
		},
		"type": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			var out []Value
			for _, item := range Items(c.Input) {
				out = append(out, typeInfo(item))
			}
			return collect(out, isUnordered(c.Input)), nil
		},
		"is": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			t, err := c.typeArg(0)
			if err != nil {
				return nil, err
			}
			return c.e.typeOperator("is", c.Input, t)
		},
		"as": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			t, err := c.typeArg(0)
			if err != nil {
				return nil, err
			}
			return c.e.typeOperator("as", c.Input, t)
		},
		"sort": func(ctx context.Context, c *Call) (Value, error) {
			return sortItems(ctx, c)
		},
	})
}
