package parser

import (
	"strconv"
	"strings"
)

// Format renders a syntax tree back into FHIRPath source text. The output
// parses to an equivalent tree.
func Format(n Node) string {
	var b strings.Builder
	format(&b, n)
	return b.String()
}

func format(b *strings.Builder, n Node) {
	switch t := n.(type) {
	case *InvocationTerm:
		formatInvocation(b, t.Invocation)
	case *LiteralTerm:
		b.WriteString(FormatLiteral(t.Literal))
	case *ExternalConstant:
		b.WriteByte('%')
		writeIdentifier(b, t.Name)
	case *Parenthesized:
		b.WriteByte('(')
		format(b, t.Expression)
		b.WriteByte(')')
	case *InvocationExpression:
		format(b, t.Base)
		b.WriteByte('.')
		formatInvocation(b, t.Invocation)
	case *Indexer:
		format(b, t.Base)
		b.WriteByte('[')
		format(b, t.Index)
		b.WriteByte(']')
	case *Polarity:
		b.WriteString(t.Sign)
		format(b, t.Operand)
	case *Multiplicative:
		formatBinary(b, t.Left, t.Op, t.Right)
	case *Additive:
		formatBinary(b, t.Left, t.Op, t.Right)
	case *TypeExpression:
		format(b, t.Operand)
		b.WriteString(" " + t.Op + " ")
		if t.Type.Namespace != "" {
			writeIdentifier(b, t.Type.Namespace)
			b.WriteByte('.')
		}
		writeIdentifier(b, t.Type.Name)
	case *Union:
		formatBinary(b, t.Left, "|", t.Right)
	case *Inequality:
		formatBinary(b, t.Left, t.Op, t.Right)
	case *Equality:
		formatBinary(b, t.Left, t.Op, t.Right)
	case *Membership:
		formatBinary(b, t.Left, t.Op, t.Right)
	case *And:
		formatBinary(b, t.Left, "and", t.Right)
	case *Or:
		formatBinary(b, t.Left, t.Op, t.Right)
	case *Implies:
		formatBinary(b, t.Left, "implies", t.Right)
	case *Lambda:
		if t.Name != "" {
			writeIdentifier(b, t.Name)
			b.WriteString(" => ")
		}
		format(b, t.Body)
	}
}

func formatBinary(b *strings.Builder, left Node, op string, right Node) {
	format(b, left)
	b.WriteString(" " + op + " ")
	format(b, right)
}

func formatInvocation(b *strings.Builder, inv Invocation) {
	switch t := inv.(type) {
	case Member:
		writeIdentifier(b, t.Name)
	case *Function:
		writeIdentifier(b, t.Name)
		b.WriteByte('(')
		for i, arg := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			format(b, arg)
		}
		b.WriteByte(')')
	case This:
		b.WriteString("$this")
	case Index:
		b.WriteString("$index")
	case Total:
		b.WriteString("$total")
	}
}

func writeIdentifier(b *strings.Builder, name string) {
	plain := name != "" && isIdentStart(rune(name[0])) && !reserved[name]
	for _, r := range name {
		if !isIdentPart(r) {
			plain = false
			break
		}
	}
	if plain {
		b.WriteString(name)
		return
	}
	b.WriteByte('`')
	b.WriteString(escape(name, '`'))
	b.WriteByte('`')
}

// FormatLiteral renders a literal as source text.
func FormatLiteral(lit Literal) string {
	switch l := lit.(type) {
	case NullLiteral:
		return "{}"
	case BooleanLiteral:
		return strconv.FormatBool(l.Value)
	case StringLiteral:
		return "'" + escape(l.Value, '\'') + "'"
	case NumberLiteral:
		return l.Value.Text('f')
	case IntegerLiteral:
		return strconv.FormatInt(l.Value, 10)
	case LongLiteral:
		return strconv.FormatInt(l.Value, 10) + "L"
	case DateLiteral:
		return "@" + l.Text
	case DateTimeLiteral:
		return "@" + l.Text
	case TimeLiteral:
		return "@T" + l.Text
	case QuantityLiteral:
		if l.Calendar {
			return l.Value.Text('f') + " " + l.Unit
		}
		return l.Value.Text('f') + " '" + escape(l.Unit, '\'') + "'"
	}
	return ""
}

func escape(s string, delim rune) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case delim, '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
