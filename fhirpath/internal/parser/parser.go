package parser

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// DefaultMaxDepth bounds how deeply parentheses, indexers, function
// arguments and unary signs may nest.
const DefaultMaxDepth = 512

// Parse parses a complete FHIRPath expression. The whole input must be
// consumed; trailing tokens are a syntax error.
func Parse(text string) (Node, error) {
	return ParseWithMaxDepth(text, DefaultMaxDepth)
}

// ParseWithMaxDepth is Parse with a custom nesting limit. A limit of zero
// or less disables the check.
func ParseWithMaxDepth(text string, maxDepth int) (Node, error) {
	p := &parser{lexer: NewLexer(text), maxDepth: maxDepth}
	if err := p.advance(); err != nil {
		return nil, err
	}

	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != TokenEOF {
		return nil, p.errorf("unexpected %s", p.tok)
	}
	return node, nil
}

type parser struct {
	lexer *Lexer
	tok   Token
	// lookahead holds a token read by peek but not yet consumed.
	lookahead *Token

	depth    int
	maxDepth int
}

// enter descends one nesting level. Every enter is paired with a leave.
func (p *parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return p.errorf("expression nests deeper than %d levels", p.maxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) advance() error {
	if p.lookahead != nil {
		p.tok, p.lookahead = *p.lookahead, nil
		return nil
	}
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) peek() (Token, error) {
	if p.lookahead == nil {
		tok, err := p.lexer.Next()
		if err != nil {
			return Token{}, err
		}
		p.lookahead = &tok
	}
	return *p.lookahead, nil
}

func (p *parser) expect(t TokenType) error {
	if p.tok.Type != t {
		return p.errorf("expected %s, got %s", t, p.tok)
	}
	return p.advance()
}

func (p *parser) errorf(format string, args ...any) error {
	return newSyntaxError(p.lexer.src, p.tok.Pos, format, args...)
}

func (p *parser) parseExpression() (Node, error) {
	defer p.leave()
	if err := p.enter(); err != nil {
		return nil, err
	}
	return p.parseImplies()
}

func (p *parser) parseImplies() (Node, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.tok.is("implies") {
		pos := p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		left = &Implies{span: span{pos}, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.is("or") || p.tok.is("xor") {
		op, pos := p.tok.Value, p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{span: span{pos}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Node, error) {
	left, err := p.parseMembership()
	if err != nil {
		return nil, err
	}
	for p.tok.is("and") {
		pos := p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMembership()
		if err != nil {
			return nil, err
		}
		left = &And{span: span{pos}, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseMembership() (Node, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.tok.is("in") || p.tok.is("contains") {
		op, pos := p.tok.Value, p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &Membership{span: span{pos}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *parser) parseEquality() (Node, error) {
	left, err := p.parseInequality()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.Type {
		case TokenEqual, TokenNotEqual, TokenEquivalent, TokenNotEquivalent:
		default:
			return left, nil
		}
		op, pos := p.tok.Value, p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseInequality()
		if err != nil {
			return nil, err
		}
		left = &Equality{span: span{pos}, Left: left, Op: op, Right: right}
	}
}

func (p *parser) parseInequality() (Node, error) {
	left, err := p.parseType()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.Type {
		case TokenLess, TokenLessOrEqual, TokenGreater, TokenGreaterOrEqual:
		default:
			return left, nil
		}
		op, pos := p.tok.Value, p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseType()
		if err != nil {
			return nil, err
		}
		left = &Inequality{span: span{pos}, Left: left, Op: op, Right: right}
	}
}

func (p *parser) parseType() (Node, error) {
	left, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	for p.tok.is("is") || p.tok.is("as") {
		op, pos := p.tok.Value, p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		spec, err := p.parseQualifiedIdentifier()
		if err != nil {
			return nil, err
		}
		left = &TypeExpression{span: span{pos}, Operand: left, Op: op, Type: spec}
	}
	return left, nil
}

func (p *parser) parseQualifiedIdentifier() (QualifiedIdentifier, error) {
	first, err := p.parseIdentifier()
	if err != nil {
		return QualifiedIdentifier{}, err
	}
	if p.tok.Type != TokenDot {
		return QualifiedIdentifier{Name: first}, nil
	}
	if err := p.advance(); err != nil {
		return QualifiedIdentifier{}, err
	}
	second, err := p.parseIdentifier()
	if err != nil {
		return QualifiedIdentifier{}, err
	}
	return QualifiedIdentifier{Namespace: first, Name: second}, nil
}

func (p *parser) parseUnion() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == TokenPipe {
		pos := p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &Union{span: span{pos}, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == TokenPlus || p.tok.Type == TokenMinus || p.tok.Type == TokenAmpersand {
		op, pos := p.tok.Value, p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &Additive{span: span{pos}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (Node, error) {
	left, err := p.parsePolarity()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == TokenStar || p.tok.Type == TokenSlash || p.tok.is("div") || p.tok.is("mod") {
		op, pos := p.tok.Value, p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parsePolarity()
		if err != nil {
			return nil, err
		}
		left = &Multiplicative{span: span{pos}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *parser) parsePolarity() (Node, error) {
	if p.tok.Type != TokenPlus && p.tok.Type != TokenMinus {
		return p.parsePostfix()
	}
	sign, pos := p.tok.Value, p.tok.Pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	defer p.leave()
	if err := p.enter(); err != nil {
		return nil, err
	}
	operand, err := p.parsePolarity()
	if err != nil {
		return nil, err
	}
	return &Polarity{span: span{pos}, Sign: sign, Operand: operand}, nil
}

func (p *parser) parsePostfix() (Node, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.Type {
		case TokenDot:
			pos := p.tok.Pos
			if err := p.advance(); err != nil {
				return nil, err
			}
			inv, err := p.parseInvocation()
			if err != nil {
				return nil, err
			}
			node = &InvocationExpression{span: span{pos}, Base: node, Invocation: inv}
		case TokenLBracket:
			pos := p.tok.Pos
			if err := p.advance(); err != nil {
				return nil, err
			}
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expect(TokenRBracket); err != nil {
				return nil, err
			}
			node = &Indexer{span: span{pos}, Base: node, Index: index}
		default:
			return node, nil
		}
	}
}

func (p *parser) parseTerm() (Node, error) {
	pos := p.tok.Pos

	switch p.tok.Type {
	case TokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return &Parenthesized{span: span{pos}, Expression: inner}, nil
	case TokenPercent:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var name string
		switch p.tok.Type {
		case TokenString, TokenDelimitedIdentifier:
			name = p.tok.Value
			if err := p.advance(); err != nil {
				return nil, err
			}
		default:
			ident, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			name = ident
		}
		return &ExternalConstant{span: span{pos}, Name: name}, nil
	case TokenIdentifier, TokenDelimitedIdentifier, TokenVariable:
		if lit, ok, err := p.parseKeywordLiteral(); ok || err != nil {
			return lit, err
		}
		inv, err := p.parseInvocation()
		if err != nil {
			return nil, err
		}
		return &InvocationTerm{span: span{pos}, Invocation: inv}, nil
	}

	lit, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	return &LiteralTerm{span: span{pos}, Literal: lit}, nil
}

func (p *parser) parseKeywordLiteral() (Node, bool, error) {
	pos := p.tok.Pos
	var lit Literal
	switch {
	case p.tok.is("true"):
		lit = BooleanLiteral{Value: true}
	case p.tok.is("false"):
		lit = BooleanLiteral{Value: false}
	default:
		return nil, false, nil
	}
	if err := p.advance(); err != nil {
		return nil, true, err
	}
	return &LiteralTerm{span: span{pos}, Literal: lit}, true, nil
}

func (p *parser) parseLiteral() (Literal, error) {
	tok := p.tok

	switch tok.Type {
	case TokenLBrace:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(TokenRBrace); err != nil {
			return nil, err
		}
		return NullLiteral{}, nil
	case TokenString:
		return StringLiteral{Value: tok.Value}, p.advance()
	case TokenDate:
		return DateLiteral{Text: tok.Value}, p.advance()
	case TokenDateTime:
		return DateTimeLiteral{Text: tok.Value}, p.advance()
	case TokenTime:
		return TimeLiteral{Text: tok.Value}, p.advance()
	case TokenLong:
		v, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, p.errorf("long literal %s out of range", tok.Value)
		}
		return LongLiteral{Value: v}, p.advance()
	case TokenInteger, TokenDecimal:
		return p.parseNumber()
	}

	if tok.Type == TokenEOF {
		return nil, p.errorf("unexpected end of input")
	}
	return nil, p.errorf("unexpected %s", tok)
}

// parseNumber parses a number literal and, when a unit follows after
// whitespace, the quantity it starts.
func (p *parser) parseNumber() (Literal, error) {
	tok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	unit, calendar, isQuantity := "", false, false
	if p.tok.Spaced {
		switch {
		case p.tok.Type == TokenString:
			unit, isQuantity = p.tok.Value, true
		case p.tok.Type == TokenIdentifier && calendarUnits[p.tok.Value]:
			unit, calendar, isQuantity = p.tok.Value, true, true
		}
	}

	if isQuantity {
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, _, err := apd.NewFromString(tok.Value)
		if err != nil {
			return nil, newSyntaxError(p.lexer.src, tok.Pos, "invalid number %s", tok.Value)
		}
		return QuantityLiteral{Value: value, Unit: unit, Calendar: calendar}, nil
	}

	if tok.Type == TokenDecimal {
		value, _, err := apd.NewFromString(tok.Value)
		if err != nil {
			return nil, newSyntaxError(p.lexer.src, tok.Pos, "invalid number %s", tok.Value)
		}
		return NumberLiteral{Value: value}, nil
	}
	v, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return nil, newSyntaxError(p.lexer.src, tok.Pos, "integer literal %s out of range", tok.Value)
	}
	return IntegerLiteral{Value: v}, nil
}

func (p *parser) parseInvocation() (Invocation, error) {
	if p.tok.Type == TokenVariable {
		name := p.tok.Value
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch name {
		case "this":
			return This{}, nil
		case "index":
			return Index{}, nil
		default:
			return Total{}, nil
		}
	}

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != TokenLParen {
		return Member{Name: name}, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	fn := &Function{Name: name}
	if p.tok.Type == TokenRParen {
		return fn, p.advance()
	}
	for {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		fn.Args = append(fn.Args, arg)
		if p.tok.Type == TokenComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return fn, nil
	}
}

func (p *parser) parseArgument() (Node, error) {
	if p.tok.Type == TokenIdentifier || p.tok.Type == TokenDelimitedIdentifier {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if next.Type == TokenArrow {
			pos, name := p.tok.Pos, p.tok.Value
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			body, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			return &Lambda{span: span{pos}, Name: name, Body: body}, nil
		}
	}
	return p.parseExpression()
}

func (p *parser) parseIdentifier() (string, error) {
	switch p.tok.Type {
	case TokenDelimitedIdentifier:
		name := p.tok.Value
		return name, p.advance()
	case TokenIdentifier:
		if reserved[p.tok.Value] {
			return "", p.errorf("unexpected keyword %q", p.tok.Value)
		}
		name := p.tok.Value
		return name, p.advance()
	case TokenEOF:
		return "", p.errorf("expected identifier, got end of input")
	}
	return "", p.errorf("expected identifier, got %s", p.tok)
}
