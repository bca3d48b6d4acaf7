package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sexpr renders a tree with explicit structure so precedence is visible.
func sexpr(n Node) string {
	switch t := n.(type) {
	case *InvocationTerm:
		return sinv(t.Invocation)
	case *LiteralTerm:
		return FormatLiteral(t.Literal)
	case *ExternalConstant:
		return "%" + t.Name
	case *Parenthesized:
		return sexpr(t.Expression)
	case *InvocationExpression:
		return fmt.Sprintf("(. %s %s)", sexpr(t.Base), sinv(t.Invocation))
	case *Indexer:
		return fmt.Sprintf("([] %s %s)", sexpr(t.Base), sexpr(t.Index))
	case *Polarity:
		return fmt.Sprintf("(%s %s)", t.Sign, sexpr(t.Operand))
	case *Multiplicative:
		return fmt.Sprintf("(%s %s %s)", t.Op, sexpr(t.Left), sexpr(t.Right))
	case *Additive:
		return fmt.Sprintf("(%s %s %s)", t.Op, sexpr(t.Left), sexpr(t.Right))
	case *TypeExpression:
		return fmt.Sprintf("(%s %s %s)", t.Op, sexpr(t.Operand), t.Type)
	case *Union:
		return fmt.Sprintf("(| %s %s)", sexpr(t.Left), sexpr(t.Right))
	case *Inequality:
		return fmt.Sprintf("(%s %s %s)", t.Op, sexpr(t.Left), sexpr(t.Right))
	case *Equality:
		return fmt.Sprintf("(%s %s %s)", t.Op, sexpr(t.Left), sexpr(t.Right))
	case *Membership:
		return fmt.Sprintf("(%s %s %s)", t.Op, sexpr(t.Left), sexpr(t.Right))
	case *And:
		return fmt.Sprintf("(and %s %s)", sexpr(t.Left), sexpr(t.Right))
	case *Or:
		return fmt.Sprintf("(%s %s %s)", t.Op, sexpr(t.Left), sexpr(t.Right))
	case *Implies:
		return fmt.Sprintf("(implies %s %s)", sexpr(t.Left), sexpr(t.Right))
	case *Lambda:
		return fmt.Sprintf("(=> %s %s)", t.Name, sexpr(t.Body))
	}
	return fmt.Sprintf("<%T>", n)
}

func sinv(inv Invocation) string {
	switch t := inv.(type) {
	case Member:
		return t.Name
	case *Function:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = sexpr(a)
		}
		return fmt.Sprintf("%s(%s)", t.Name, strings.Join(args, " "))
	case This:
		return "$this"
	case Index:
		return "$index"
	case Total:
		return "$total"
	}
	return "?"
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"path", "Patient.name.given", "(. (. Patient name) given)"},
		{"function", "name.where(use = 'official')", "(. name where((= use 'official')))"},
		{"no args", "children().count()", "(. children() count())"},
		{"indexer", "name[0].given", "(. ([] name 0) given)"},
		{"multiplicative over additive", "1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"left assoc", "1 - 2 - 3", "(- (- 1 2) 3)"},
		{"div mod", "10 div 3 mod 2", "(mod (div 10 3) 2)"},
		{"concat", "'a' & 'b' + 'c'", "(+ (& 'a' 'b') 'c')"},
		{"union below additive", "1 | 2 + 3", "(| 1 (+ 2 3))"},
		{"type above union", "a | b is String", "(is (| a b) String)"},
		{"type below inequality", "a is Integer > 1", "(> (is a Integer) 1)"},
		{"qualified type", "value as FHIR.Quantity", "(as value FHIR.Quantity)"},
		{"equality below inequality", "a < b = true", "(= (< a b) true)"},
		{"membership", "a in b and c contains d", "(and (in a b) (contains c d))"},
		{"and over or", "a or b and c", "(or a (and b c))"},
		{"xor", "a xor b or c", "(or (xor a b) c)"},
		{"implies lowest", "a and b implies c or d", "(implies (and a b) (or c d))"},
		{"polarity", "-1 + -x.y", "(+ (- 1) (- (. x y)))"},
		{"polarity binds to invocation", "-2.abs()", "(- (. 2 abs()))"},
		{"parenthesized", "(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"variables", "$this.x + $index + $total", "(+ (+ (. $this x) $index) $total)"},
		{"external constant", "%resource.id = %`us-zip`", "(= (. %resource id) %us-zip)"},
		{"external string constant", "%'vs-name'", "%vs-name"},
		{"delimited keyword", "`div`.`and`", "(. div and)"},
		{"keyword identifiers", "contains('a') and is(String) and as(String).in", "(and (and contains('a') is(String)) (. as(String) in))"},
		{"null literal", "{} = {}", "(= {} {})"},
		{"boolean literals", "true or false", "(or true false)"},
		{"decimal", "1.50", "1.50"},
		{"long", "10L", "10L"},
		{"integer then member", "1.toString()", "(. 1 toString())"},
		{"quantity quoted unit", "5.5 'mg'", "5.5 'mg'"},
		{"quantity calendar unit", "3 days + 1 year", "(+ 3 days 1 year)"},
		{"date", "@2019-02-03", "@2019-02-03"},
		{"partial date", "@2019", "@2019"},
		{"partial datetime", "@2019T", "@2019T"},
		{"datetime with zone", "@2019-02-03T10:11:12.123+02:00", "@2019-02-03T10:11:12.123+02:00"},
		{"datetime utc", "@2019-02-03T10Z", "@2019-02-03T10Z"},
		{"time", "@T10:30", "@T10:30"},
		{"time arithmetic", "@T10:30 - 5 minutes", "(- @T10:30 5 minutes)"},
		{"date arithmetic", "@2019-01-01 - 1 day", "(- @2019-01-01 1 day)"},
		{"lambda", "select(x => x.name)", "select((=> x (. x name)))"},
		{"line comment", "1 + // one\n2", "(+ 1 2)"},
		{"block comment", "1 /* plus */ + /* two */ 2", "(+ 1 2)"},
		{"string escapes", `'a\'b\u0041\n'`, `'a\'bA\n'`},
		{"not equivalent", "a !~ b", "(!~ a b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.expr, err)
			}
			if diff := cmp.Diff(tt.want, sexpr(node)); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.expr, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		offset int
	}{
		{"empty", "", 0},
		{"trailing tokens", "1 2", 2},
		{"trailing paren", "a.b)", 3},
		{"unclosed paren", "(1 + 2", 6},
		{"unterminated string", "'abc", 0},
		{"unterminated comment", "1 /* x", 2},
		{"invalid escape", `'\q'`, 0},
		{"reserved identifier", "a.div", 2},
		{"time with timezone", "@T10:00Z", 0},
		{"quantity without space", "4'mg'", 1},
		{"integer overflow", "9223372036854775808", 0},
		{"unknown variable", "$foo", 0},
		{"unexpected character", "a # b", 2},
		{"missing type", "a is", 4},
		{"dangling operator", "1 +", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.expr)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.expr)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("Parse(%q) error %v is not a *SyntaxError", tt.expr, err)
			}
			if syntaxErr.Offset != tt.offset {
				t.Errorf("Parse(%q) error offset = %d, want %d (%v)", tt.expr, syntaxErr.Offset, tt.offset, err)
			}
		})
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := Parse("Patient\n  .name\n  .#")
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if syntaxErr.Line != 3 || syntaxErr.Column != 4 {
		t.Errorf("position = %d:%d, want 3:4", syntaxErr.Line, syntaxErr.Column)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	exprs := []string{
		"Patient.name.where(use = 'official').given.first()",
		"(1 + 2) * -3 div 4",
		"a is FHIR.boolean and b as System.String = 'x'",
		"%`my var` | `div`.x[1]",
		"5 'mg' + 3 days = @2019-01-01T10:00:00Z",
		"'it\\'s'.length() >= 4L",
		"select(x => x.given) implies {} ~ @T12:30",
	}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			first, err := Parse(expr)
			if err != nil {
				t.Fatalf("Parse(%q): %v", expr, err)
			}
			formatted := Format(first)
			second, err := Parse(formatted)
			if err != nil {
				t.Fatalf("Parse(Format(%q)) = Parse(%q): %v", expr, formatted, err)
			}
			if diff := cmp.Diff(sexpr(first), sexpr(second)); diff != "" {
				t.Errorf("round trip mismatch (-first +second):\n%s", diff)
			}
		})
	}
}

func TestParseNestingLimit(t *testing.T) {
	nested := func(open, inner, close string, n int) string {
		return strings.Repeat(open, n) + inner + strings.Repeat(close, n)
	}

	tests := []struct {
		name     string
		expr     string
		maxDepth int
		wantErr  bool
	}{
		{name: "parentheses within limit", expr: nested("(", "1", ")", 2), maxDepth: 3},
		{name: "parentheses over limit", expr: nested("(", "1", ")", 3), maxDepth: 3, wantErr: true},
		{name: "limit disabled", expr: nested("(", "1", ")", 2*DefaultMaxDepth), maxDepth: 0},
		{name: "million parentheses", expr: nested("(", "1", ")", 1_000_000), maxDepth: DefaultMaxDepth, wantErr: true},
		{name: "million signs", expr: strings.Repeat("-", 1_000_000) + "1", maxDepth: DefaultMaxDepth, wantErr: true},
		{name: "million function arguments", expr: nested("f(", "1", ")", 1_000_000), maxDepth: DefaultMaxDepth, wantErr: true},
		{name: "million indexers", expr: nested("a[", "0", "]", 1_000_000), maxDepth: DefaultMaxDepth, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWithMaxDepth(tt.expr, tt.maxDepth)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("error %v is not a *SyntaxError", err)
			}
			if !strings.Contains(syntaxErr.Msg, "deeper than") {
				t.Errorf("unexpected message %q", syntaxErr.Msg)
			}
		})
	}

	_, err := Parse(nested("(", "1", ")", 1_000_000))
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("Parse: error %v is not a *SyntaxError", err)
	}
	if syntaxErr.Offset != DefaultMaxDepth {
		t.Errorf("Parse: offset = %d, want %d", syntaxErr.Offset, DefaultMaxDepth)
	}
}
