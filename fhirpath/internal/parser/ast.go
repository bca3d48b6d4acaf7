package parser

import "github.com/cockroachdb/apd/v3"

// Node is an expression in the syntax tree. The set of node types is closed;
// evaluators switch over the concrete types below.
type Node interface {
	// Pos returns the rune offset of the node in the source text.
	Pos() int
	node()
}

type span struct{ offset int }

func (s span) Pos() int { return s.offset }

// Terms.

type InvocationTerm struct {
	span
	Invocation Invocation
}

type LiteralTerm struct {
	span
	Literal Literal
}

// ExternalConstant is a %name reference.
type ExternalConstant struct {
	span
	Name string
}

type Parenthesized struct {
	span
	Expression Node
}

// Expressions.

// InvocationExpression is Base.Invocation, e.g. `name.given` or `name.first()`.
type InvocationExpression struct {
	span
	Base       Node
	Invocation Invocation
}

type Indexer struct {
	span
	Base  Node
	Index Node
}

type Polarity struct {
	span
	Sign    string
	Operand Node
}

type Multiplicative struct {
	span
	Left  Node
	Op    string
	Right Node
}

type Additive struct {
	span
	Left  Node
	Op    string
	Right Node
}

type TypeExpression struct {
	span
	Operand Node
	Op      string
	Type    QualifiedIdentifier
}

type Union struct {
	span
	Left  Node
	Right Node
}

type Inequality struct {
	span
	Left  Node
	Op    string
	Right Node
}

type Equality struct {
	span
	Left  Node
	Op    string
	Right Node
}

type Membership struct {
	span
	Left  Node
	Op    string
	Right Node
}

type And struct {
	span
	Left  Node
	Right Node
}

// Or covers both `or` and `xor`.
type Or struct {
	span
	Left  Node
	Op    string
	Right Node
}

type Implies struct {
	span
	Left  Node
	Right Node
}

// Lambda is a function argument of the form `name => body`. Name is empty
// when the argument is written without a binding.
type Lambda struct {
	span
	Name string
	Body Node
}

func (*InvocationTerm) node()       {}
func (*LiteralTerm) node()          {}
func (*ExternalConstant) node()     {}
func (*Parenthesized) node()        {}
func (*InvocationExpression) node() {}
func (*Indexer) node()              {}
func (*Polarity) node()             {}
func (*Multiplicative) node()       {}
func (*Additive) node()             {}
func (*TypeExpression) node()       {}
func (*Union) node()                {}
func (*Inequality) node()           {}
func (*Equality) node()             {}
func (*Membership) node()           {}
func (*And) node()                  {}
func (*Or) node()                   {}
func (*Implies) node()              {}
func (*Lambda) node()               {}

// Invocation is the right hand side of a path step.
type Invocation interface {
	invocation()
}

type Member struct {
	Name string
}

type Function struct {
	Name string
	Args []Node
}

// This, Index and Total are $this, $index and $total.
type This struct{}
type Index struct{}
type Total struct{}

func (Member) invocation()    {}
func (*Function) invocation() {}
func (This) invocation()      {}
func (Index) invocation()     {}
func (Total) invocation()     {}

// QualifiedIdentifier is a type name as written, optionally prefixed by a
// namespace (`FHIR.boolean`, `System.String`, `Patient`).
type QualifiedIdentifier struct {
	Namespace string
	Name      string
}

func (q QualifiedIdentifier) String() string {
	if q.Namespace == "" {
		return q.Name
	}
	return q.Namespace + "." + q.Name
}

// Literal values as written in the source.
type Literal interface {
	literal()
}

type NullLiteral struct{}

type BooleanLiteral struct{ Value bool }

type StringLiteral struct{ Value string }

// NumberLiteral is a literal with a fractional part.
type NumberLiteral struct{ Value *apd.Decimal }

type IntegerLiteral struct{ Value int64 }

// LongLiteral is an integer literal with the `L` suffix.
type LongLiteral struct{ Value int64 }

// DateLiteral holds the text after '@', e.g. `2019-02`.
type DateLiteral struct{ Text string }

// DateTimeLiteral holds the text after '@', e.g. `2019-02-03T10:00Z` or
// the partial `2019T`.
type DateTimeLiteral struct{ Text string }

// TimeLiteral holds the text after '@T'.
type TimeLiteral struct{ Text string }

type QuantityLiteral struct {
	Value *apd.Decimal
	Unit  string
	// Calendar is set when the unit was written as an unquoted duration
	// keyword such as `days`.
	Calendar bool
}

func (NullLiteral) literal()     {}
func (BooleanLiteral) literal()  {}
func (StringLiteral) literal()   {}
func (NumberLiteral) literal()   {}
func (IntegerLiteral) literal()  {}
func (LongLiteral) literal()     {}
func (DateLiteral) literal()     {}
func (DateTimeLiteral) literal() {}
func (TimeLiteral) literal()     {}
func (QuantityLiteral) literal() {}
