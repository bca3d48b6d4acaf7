package fhirpath

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperCase = cases.Upper(language.Und)
	lowerCase = cases.Lower(language.Und)
)

// stringInput returns the input of a string function.
func (c *Call) stringInput() (string, bool, error) {
	v, ok, err := c.singleInput()
	if err != nil || !ok {
		return "", ok, err
	}
	s, isString := v.(String)
	if !isString {
		return "", false, newError(TypeError, "%s() expects String input, got %s", c.Name, TypeOf(v))
	}
	return s.Value, true, nil
}

// stringFunction adapts a function of the input string and one string
// argument. Empty input or argument give Empty.
func stringFunction(fn func(s, arg string) (Value, error)) Function {
	return func(ctx context.Context, c *Call) (Value, error) {
		if err := c.arity(1); err != nil {
			return nil, err
		}
		s, ok, err := c.stringInput()
		if err != nil || !ok {
			return Empty{}, err
		}
		arg, ok, err := c.stringArg(ctx, 0)
		if err != nil || !ok {
			return Empty{}, err
		}
		return fn(s, arg)
	}
}

func compileRegex(pattern string, anchored bool) (*regexp.Regexp, error) {
	if anchored {
		pattern = "^(?:" + pattern + ")$"
	}
	re, err := regexp.Compile("(?s)" + pattern)
	if err != nil {
		return nil, wrapError(InvalidRegex, err, "invalid regular expression %q", pattern)
	}
	return re, nil
}

// runeIndex converts a byte offset into a rune offset.
func runeIndex(s string, byteIndex int) int64 {
	if byteIndex < 0 {
		return -1
	}
	return int64(utf8.RuneCountInString(s[:byteIndex]))
}

func init() {
	registerFunctions(Functions{
		"indexOf": stringFunction(func(s, sub string) (Value, error) {
			return Integer{Value: runeIndex(s, strings.Index(s, sub))}, nil
		}),
		"lastIndexOf": stringFunction(func(s, sub string) (Value, error) {
			return Integer{Value: runeIndex(s, strings.LastIndex(s, sub))}, nil
		}),
		"substring": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arityRange(1, 2); err != nil {
				return nil, err
			}
			s, ok, err := c.stringInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			start, ok, err := c.integerArg(ctx, 0)
			if err != nil || !ok {
				return Empty{}, err
			}
			runes := []rune(s)
			if start < 0 || start >= int64(len(runes)) {
				return Empty{}, nil
			}
			end := int64(len(runes))
			if c.NumArgs() == 2 {
				length, ok, err := c.integerArg(ctx, 1)
				if err != nil {
					return nil, err
				}
				if ok {
					if length <= 0 {
						return String{Value: ""}, nil
					}
					end = min(end, start+length)
				}
			}
			return String{Value: string(runes[start:end])}, nil
		},
		"startsWith": stringFunction(func(s, prefix string) (Value, error) {
			return Boolean{Value: strings.HasPrefix(s, prefix)}, nil
		}),
		"endsWith": stringFunction(func(s, suffix string) (Value, error) {
			return Boolean{Value: strings.HasSuffix(s, suffix)}, nil
		}),
		"contains": stringFunction(func(s, sub string) (Value, error) {
			return Boolean{Value: strings.Contains(s, sub)}, nil
		}),
		"upper": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			s, ok, err := c.stringInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			return String{Value: upperCase.String(s)}, nil
		},
		"lower": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			s, ok, err := c.stringInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			return String{Value: lowerCase.String(s)}, nil
		},
		"replace": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(2); err != nil {
				return nil, err
			}
			s, ok, err := c.stringInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			pattern, ok, err := c.stringArg(ctx, 0)
			if err != nil || !ok {
				return Empty{}, err
			}
			substitution, ok, err := c.stringArg(ctx, 1)
			if err != nil || !ok {
				return Empty{}, err
			}
			return String{Value: strings.ReplaceAll(s, pattern, substitution)}, nil
		},
		"matches": func(ctx context.Context, c *Call) (Value, error) {
			return matchRegex(ctx, c, false)
		},
		"matchesFull": func(ctx context.Context, c *Call) (Value, error) {
			return matchRegex(ctx, c, true)
		},
		"replaceMatches": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(2); err != nil {
				return nil, err
			}
			s, ok, err := c.stringInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			pattern, ok, err := c.stringArg(ctx, 0)
			if err != nil || !ok {
				return Empty{}, err
			}
			substitution, ok, err := c.stringArg(ctx, 1)
			if err != nil || !ok {
				return Empty{}, err
			}
			if pattern == "" {
				return String{Value: s}, nil
			}
			re, err := compileRegex(pattern, false)
			if err != nil {
				return nil, err
			}
			return String{Value: re.ReplaceAllString(s, substitution)}, nil
		},
		"length": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			s, ok, err := c.stringInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			return Integer{Value: int64(utf8.RuneCountInString(s))}, nil
		},
		"toChars": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			s, ok, err := c.stringInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			var out []Value
			for _, r := range s {
				out = append(out, String{Value: string(r)})
			}
			return collect(out, false), nil
		},
		"trim": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			s, ok, err := c.stringInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			return String{Value: strings.TrimSpace(s)}, nil
		},
		"split": stringFunction(func(s, sep string) (Value, error) {
			var out []Value
			for _, part := range strings.Split(s, sep) {
				out = append(out, String{Value: part})
			}
			return collect(out, false), nil
		}),
		"join": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arityRange(0, 1); err != nil {
				return nil, err
			}
			sep := ""
			if c.NumArgs() == 1 {
				s, ok, err := c.stringArg(ctx, 0)
				if err != nil {
					return nil, err
				}
				if ok {
					sep = s
				}
			}
			items := Items(c.Input)
			if len(items) == 0 {
				return Empty{}, nil
			}
			parts := make([]string, 0, len(items))
			for _, item := range items {
				s, ok := unwrapPrimitive(item).(String)
				if !ok {
					return nil, newError(TypeError, "join() expects String items, got %s", TypeOf(item))
				}
				parts = append(parts, s.Value)
			}
			return String{Value: strings.Join(parts, sep)}, nil
		},
		"encode": stringFunction(func(s, format string) (Value, error) {
			switch format {
			case "hex":
				return String{Value: hex.EncodeToString([]byte(s))}, nil
			case "base64":
				return String{Value: base64.StdEncoding.EncodeToString([]byte(s))}, nil
			case "urlbase64":
				return String{Value: base64.URLEncoding.EncodeToString([]byte(s))}, nil
			}
			return nil, newError(InvalidArgument, "unsupported encoding %q", format)
		}),
		"decode": stringFunction(func(s, format string) (Value, error) {
			var (
				decoded []byte
				err     error
			)
			switch format {
			case "hex":
				decoded, err = hex.DecodeString(s)
			case "base64":
				decoded, err = base64.StdEncoding.DecodeString(s)
			case "urlbase64":
				decoded, err = base64.URLEncoding.DecodeString(s)
			default:
				return nil, newError(InvalidArgument, "unsupported encoding %q", format)
			}
			if err != nil {
				return nil, wrapError(InvalidArgument, err, "invalid %s input", format)
			}
			return String{Value: string(decoded)}, nil
		}),
		"escape": stringFunction(func(s, target string) (Value, error) {
			switch target {
			case "html":
				return String{Value: html.EscapeString(s)}, nil
			case "json":
				b, err := json.Marshal(s)
				if err != nil {
					return nil, wrapError(InvalidArgument, err, "can not escape %q", s)
				}
				return String{Value: string(b[1 : len(b)-1])}, nil
			}
			return nil, newError(InvalidArgument, "unsupported escape target %q", target)
		}),
		"unescape": stringFunction(func(s, target string) (Value, error) {
			switch target {
			case "html":
				return String{Value: html.UnescapeString(s)}, nil
			case "json":
				var out string
				if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err != nil {
					return nil, wrapError(InvalidArgument, err, "invalid json string")
				}
				return String{Value: out}, nil
			}
			return nil, newError(InvalidArgument, "unsupported escape target %q", target)
		}),
	})
}

func matchRegex(ctx context.Context, c *Call, full bool) (Value, error) {
	if err := c.arity(1); err != nil {
		return nil, err
	}
	s, ok, err := c.stringInput()
	if err != nil || !ok {
		return Empty{}, err
	}
	pattern, ok, err := c.stringArg(ctx, 0)
	if err != nil || !ok {
		return Empty{}, err
	}
	re, err := compileRegex(pattern, full)
	if err != nil {
		return nil, err
	}
	return Boolean{Value: re.MatchString(s)}, nil
}
