package parser

import (
	"strconv"
	"strings"

	"github.com/antlr4-go/antlr/v4"
)

const eof = -1

// Lexer splits a FHIRPath expression into tokens.
//
// The source is read through an ANTLR CharStream, which gives rune indexed
// access with lookahead; the scanning itself follows the usual hand-written
// nextRune/accept style.
type Lexer struct {
	input antlr.CharStream
	src   []rune
	start int
}

// NewLexer creates a lexer for the given expression text.
func NewLexer(text string) *Lexer {
	return &Lexer{
		input: antlr.NewInputStream(text),
		src:   []rune(text),
	}
}

// Next returns the next token. At the end of the input it keeps returning
// TokenEOF.
func (l *Lexer) Next() (Token, error) {
	spaced, err := l.skipTrivia()
	if err != nil {
		return Token{}, err
	}
	l.start = l.input.Index()

	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	tok.Pos = l.start
	tok.Spaced = spaced
	return tok, nil
}

func (l *Lexer) scan() (Token, error) {
	ch := l.nextRune()
	switch {
	case ch == eof:
		return Token{Type: TokenEOF}, nil
	case ch == '\'':
		s, err := l.scanQuoted('\'')
		return Token{Type: TokenString, Value: s}, err
	case ch == '`':
		s, err := l.scanQuoted('`')
		return Token{Type: TokenDelimitedIdentifier, Value: s}, err
	case ch == '@':
		return l.scanTemporal()
	case ch == '$':
		if !isIdentStart(l.peek()) {
			return Token{}, l.errorf("expected variable name after '$'")
		}
		l.acceptAll(isIdentPart)
		name := l.text()[1:]
		switch name {
		case "this", "index", "total":
			return Token{Type: TokenVariable, Value: name}, nil
		}
		return Token{}, l.errorf("unknown variable $%s", name)
	case isDigit(ch):
		return l.scanNumber()
	case isIdentStart(ch):
		l.acceptAll(isIdentPart)
		return Token{Type: TokenIdentifier, Value: l.text()}, nil
	}

	switch ch {
	case '.':
		return l.symbol(TokenDot), nil
	case ',':
		return l.symbol(TokenComma), nil
	case '(':
		return l.symbol(TokenLParen), nil
	case ')':
		return l.symbol(TokenRParen), nil
	case '[':
		return l.symbol(TokenLBracket), nil
	case ']':
		return l.symbol(TokenRBracket), nil
	case '{':
		return l.symbol(TokenLBrace), nil
	case '}':
		return l.symbol(TokenRBrace), nil
	case '%':
		return l.symbol(TokenPercent), nil
	case '+':
		return l.symbol(TokenPlus), nil
	case '-':
		return l.symbol(TokenMinus), nil
	case '*':
		return l.symbol(TokenStar), nil
	case '/':
		return l.symbol(TokenSlash), nil
	case '&':
		return l.symbol(TokenAmpersand), nil
	case '|':
		return l.symbol(TokenPipe), nil
	case '~':
		return l.symbol(TokenEquivalent), nil
	case '=':
		if l.acceptRune('>') {
			return l.symbol(TokenArrow), nil
		}
		return l.symbol(TokenEqual), nil
	case '!':
		if l.acceptRune('=') {
			return l.symbol(TokenNotEqual), nil
		}
		if l.acceptRune('~') {
			return l.symbol(TokenNotEquivalent), nil
		}
	case '<':
		if l.acceptRune('=') {
			return l.symbol(TokenLessOrEqual), nil
		}
		return l.symbol(TokenLess), nil
	case '>':
		if l.acceptRune('=') {
			return l.symbol(TokenGreaterOrEqual), nil
		}
		return l.symbol(TokenGreater), nil
	}

	return Token{}, l.errorf("unexpected character %q", ch)
}

func (l *Lexer) symbol(t TokenType) Token {
	return Token{Type: t, Value: l.text()}
}

// skipTrivia consumes whitespace and comments.
func (l *Lexer) skipTrivia() (bool, error) {
	skipped := false
	for {
		switch ch := l.peek(); {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f':
			l.nextRune()
		case ch == '/' && l.peekAt(2) == '/':
			for ch := l.peek(); ch != eof && ch != '\n'; ch = l.peek() {
				l.nextRune()
			}
		case ch == '/' && l.peekAt(2) == '*':
			start := l.input.Index()
			l.nextRune()
			l.nextRune()
			for {
				ch := l.nextRune()
				if ch == eof {
					return false, newSyntaxError(l.src, start, "unterminated block comment")
				}
				if ch == '*' && l.acceptRune('/') {
					break
				}
			}
		default:
			return skipped, nil
		}
		skipped = true
	}
}

// scanQuoted reads up to the closing delimiter, decoding escape sequences.
// The opening delimiter has already been consumed.
func (l *Lexer) scanQuoted(delim rune) (string, error) {
	var b strings.Builder
	for {
		ch := l.nextRune()
		switch ch {
		case eof:
			return "", newSyntaxError(l.src, l.start, "unterminated %s", quotedName(delim))
		case delim:
			return b.String(), nil
		case '\\':
			r, err := l.scanEscape()
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
		default:
			b.WriteRune(ch)
		}
	}
}

func quotedName(delim rune) string {
	if delim == '`' {
		return "delimited identifier"
	}
	return "string literal"
}

func (l *Lexer) scanEscape() (rune, error) {
	ch := l.nextRune()
	switch ch {
	case '\'', '"', '`', '\\', '/':
		return ch, nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		var hex [4]rune
		for i := range hex {
			hex[i] = l.nextRune()
			if !isHexDigit(hex[i]) {
				return 0, l.errorf("invalid unicode escape")
			}
		}
		v, err := strconv.ParseUint(string(hex[:]), 16, 32)
		if err != nil {
			return 0, l.errorf("invalid unicode escape")
		}
		return rune(v), nil
	case eof:
		return 0, l.errorf("unterminated escape sequence")
	}
	return 0, l.errorf("invalid escape sequence \\%c", ch)
}

func (l *Lexer) scanNumber() (Token, error) {
	l.acceptAll(isDigit)
	if l.peek() == '.' && isDigit(l.peekAt(2)) {
		l.nextRune()
		l.acceptAll(isDigit)
		return Token{Type: TokenDecimal, Value: l.text()}, nil
	}
	if l.acceptRune('L') {
		text := l.text()
		return Token{Type: TokenLong, Value: text[:len(text)-1]}, nil
	}
	return Token{Type: TokenInteger, Value: l.text()}, nil
}

// scanTemporal reads a date, datetime or time literal. The '@' has already
// been consumed.
func (l *Lexer) scanTemporal() (Token, error) {
	if l.acceptRune('T') {
		if err := l.scanTimeFormat(); err != nil {
			return Token{}, err
		}
		if l.peekTimeZone() {
			return Token{}, l.errorf("time literal can not have a timezone offset")
		}
		return Token{Type: TokenTime, Value: l.text()[2:]}, nil
	}

	if !l.acceptDigits(4) {
		return Token{}, l.errorf("invalid date literal")
	}
	if l.peek() == '-' && isDigit(l.peekAt(2)) {
		l.nextRune()
		if !l.acceptDigits(2) {
			return Token{}, l.errorf("invalid date literal")
		}
		if l.peek() == '-' && isDigit(l.peekAt(2)) {
			l.nextRune()
			if !l.acceptDigits(2) {
				return Token{}, l.errorf("invalid date literal")
			}
		}
	}
	if !l.acceptRune('T') {
		return Token{Type: TokenDate, Value: l.text()[1:]}, nil
	}
	if isDigit(l.peek()) {
		if err := l.scanTimeFormat(); err != nil {
			return Token{}, err
		}
		if l.peekTimeZone() {
			if !l.acceptRune('Z') {
				l.nextRune()
				if !l.acceptDigits(2) || !l.acceptRune(':') || !l.acceptDigits(2) {
					return Token{}, l.errorf("invalid timezone offset")
				}
			}
		}
	}
	return Token{Type: TokenDateTime, Value: l.text()[1:]}, nil
}

func (l *Lexer) scanTimeFormat() error {
	if !l.acceptDigits(2) {
		return l.errorf("invalid time literal")
	}
	if l.peek() == ':' && isDigit(l.peekAt(2)) {
		l.nextRune()
		if !l.acceptDigits(2) {
			return l.errorf("invalid time literal")
		}
		if l.peek() == ':' && isDigit(l.peekAt(2)) {
			l.nextRune()
			if !l.acceptDigits(2) {
				return l.errorf("invalid time literal")
			}
			if l.peek() == '.' && isDigit(l.peekAt(2)) {
				l.nextRune()
				l.acceptAll(isDigit)
			}
		}
	}
	return nil
}

// peekTimeZone reports whether a timezone designator follows, without
// consuming it. A sign only counts when it is directly followed by hh:mm so
// that `@T10:00 - 1 'h'`-style arithmetic still lexes.
func (l *Lexer) peekTimeZone() bool {
	switch l.peek() {
	case 'Z':
		return true
	case '+', '-':
		return isDigit(l.peekAt(2)) && isDigit(l.peekAt(3)) && l.peekAt(4) == ':'
	}
	return false
}

func (l *Lexer) nextRune() rune {
	r := l.input.LA(1)
	if r == antlr.TokenEOF {
		return eof
	}
	l.input.Consume()
	return rune(r)
}

func (l *Lexer) peek() rune {
	return l.peekAt(1)
}

func (l *Lexer) peekAt(offset int) rune {
	r := l.input.LA(offset)
	if r == antlr.TokenEOF {
		return eof
	}
	return rune(r)
}

func (l *Lexer) acceptRune(r rune) bool {
	if l.peek() == r {
		l.nextRune()
		return true
	}
	return false
}

func (l *Lexer) acceptAll(isValid func(rune) bool) {
	for isValid(l.peek()) {
		l.nextRune()
	}
}

func (l *Lexer) acceptDigits(n int) bool {
	for i := 0; i < n; i++ {
		if !isDigit(l.peek()) {
			return false
		}
		l.nextRune()
	}
	return true
}

func (l *Lexer) text() string {
	end := l.input.Index()
	if end <= l.start {
		return ""
	}
	return l.input.GetText(l.start, end-1)
}

func (l *Lexer) errorf(format string, args ...any) error {
	return newSyntaxError(l.src, l.start, format, args...)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
