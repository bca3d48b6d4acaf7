package fhirpath

import (
	"context"
	"strings"
)

// isFHIRPrimitive reports whether v is a FHIR primitive, either a tagged
// system value or a wrapper object carrying extensions.
func isFHIRPrimitive(v Value) bool {
	if o, ok := v.(Object); ok {
		return isPrimitiveWrapper(o)
	}
	t := TypeOf(v)
	if !strings.EqualFold(t.Namespace, NamespaceFHIR) {
		return false
	}
	_, ok := fhirPrimitiveSystemTypes[t.Name]
	return ok
}

// referenceKey splits a relative reference like "Patient/123" or
// "Patient/123/_history/2" into type and id.
func referenceKey(ref string) (typ, id string, ok bool) {
	ref, _, _ = strings.Cut(ref, "/_history/")
	parts := strings.Split(ref, "/")
	if len(parts) < 2 {
		return "", "", false
	}
	typ, id = parts[len(parts)-2], parts[len(parts)-1]
	if typ == "" || id == "" {
		return "", "", false
	}
	return typ, id, true
}

func init() {
	registerFunctions(Functions{
		"extension": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			url, ok, err := c.stringArg(ctx, 0)
			if err != nil || !ok {
				return Empty{}, err
			}
			var out []Value
			for _, item := range Items(c.Input) {
				o, isObject := item.(Object)
				if !isObject {
					continue
				}
				extensions, _ := o.Get("extension")
				for _, ext := range Items(extensions) {
					e, isObject := ext.(Object)
					if !isObject {
						continue
					}
					if u, found := e.Get("url"); found {
						if s, isString := unwrapPrimitive(u).(String); isString && s.Value == url {
							out = append(out, withType(e, fhirType("Extension")))
						}
					}
				}
			}
			return collect(out, isUnordered(c.Input)), nil
		},
		"hasValue": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			items := Items(c.Input)
			if len(items) != 1 || !isFHIRPrimitive(items[0]) {
				return Empty{}, nil
			}
			if o, isObject := items[0].(Object); isObject {
				_, found := o.Get("value")
				return Boolean{Value: found}, nil
			}
			return Boolean{Value: true}, nil
		},
		"getValue": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			items := Items(c.Input)
			if len(items) != 1 || !isFHIRPrimitive(items[0]) {
				return Empty{}, nil
			}
			v := unwrapPrimitive(items[0])
			if _, isObject := v.(Object); isObject {
				return Empty{}, nil
			}
			return withType(v, TypeSpecifier{}), nil
		},
		"getResourceKey": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			v, ok, err := c.singleInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			o, isObject := v.(Object)
			if !isObject {
				return Empty{}, nil
			}
			if _, isResource := o.ResourceType(); !isResource {
				return Empty{}, nil
			}
			id, found := o.Get("id")
			if !found {
				return Empty{}, nil
			}
			if s, isString := unwrapPrimitive(id).(String); isString {
				return String{Value: s.Value}, nil
			}
			return Empty{}, nil
		},
		"getReferenceKey": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arityRange(0, 1); err != nil {
				return nil, err
			}
			var want TypeSpecifier
			if c.NumArgs() == 1 {
				t, err := c.typeArg(0)
				if err != nil {
					return nil, err
				}
				want = t
			}
			var out []Value
			for _, item := range Items(c.Input) {
				o, isObject := item.(Object)
				if !isObject {
					continue
				}
				ref, found := o.Get("reference")
				if !found {
					continue
				}
				s, isString := unwrapPrimitive(ref).(String)
				if !isString {
					continue
				}
				typ, id, ok := referenceKey(s.Value)
				if !ok {
					continue
				}
				if !want.IsZero() && typ != want.Name {
					continue
				}
				out = append(out, String{Value: id})
			}
			return collect(out, isUnordered(c.Input)), nil
		},
	})
}
