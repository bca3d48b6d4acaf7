package parser

import "fmt"

// TokenType identifies the lexical class of a Token.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenIdentifier
	TokenDelimitedIdentifier
	TokenString
	TokenInteger
	TokenDecimal
	TokenLong
	TokenDate
	TokenDateTime
	TokenTime
	TokenVariable // $this, $index, $total

	TokenDot
	TokenComma
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenLBrace
	TokenRBrace
	TokenPercent
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenAmpersand
	TokenPipe
	TokenEqual
	TokenNotEqual
	TokenEquivalent
	TokenNotEquivalent
	TokenLess
	TokenLessOrEqual
	TokenGreater
	TokenGreaterOrEqual
	TokenArrow
)

var tokenNames = map[TokenType]string{
	TokenEOF:                 "end of input",
	TokenIdentifier:          "identifier",
	TokenDelimitedIdentifier: "delimited identifier",
	TokenString:              "string",
	TokenInteger:             "integer",
	TokenDecimal:             "decimal",
	TokenLong:                "long",
	TokenDate:                "date",
	TokenDateTime:            "datetime",
	TokenTime:                "time",
	TokenVariable:            "variable",
	TokenDot:                 "'.'",
	TokenComma:               "','",
	TokenLParen:              "'('",
	TokenRParen:              "')'",
	TokenLBracket:            "'['",
	TokenRBracket:            "']'",
	TokenLBrace:              "'{'",
	TokenRBrace:              "'}'",
	TokenPercent:             "'%'",
	TokenPlus:                "'+'",
	TokenMinus:               "'-'",
	TokenStar:                "'*'",
	TokenSlash:               "'/'",
	TokenAmpersand:           "'&'",
	TokenPipe:                "'|'",
	TokenEqual:               "'='",
	TokenNotEqual:            "'!='",
	TokenEquivalent:          "'~'",
	TokenNotEquivalent:       "'!~'",
	TokenLess:                "'<'",
	TokenLessOrEqual:         "'<='",
	TokenGreater:             "'>'",
	TokenGreaterOrEqual:      "'>='",
	TokenArrow:               "'=>'",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", uint8(t))
}

// Token is a single lexeme. Value holds the decoded text: string and
// delimited identifier tokens are unescaped, date/time tokens have the
// leading '@' removed.
type Token struct {
	Type  TokenType
	Value string
	// Pos is the rune offset of the first character of the token.
	Pos int
	// Spaced reports whether whitespace or a comment preceded the token.
	Spaced bool
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return t.Type.String()
	case TokenString:
		return fmt.Sprintf("string '%s'", t.Value)
	default:
		if t.Value == "" {
			return t.Type.String()
		}
		return fmt.Sprintf("%s %q", t.Type, t.Value)
	}
}

// is reports whether the token is the plain identifier word. Delimited
// identifiers never match, which is what allows `div` and friends to be
// used as member names.
func (t Token) is(word string) bool {
	return t.Type == TokenIdentifier && t.Value == word
}

// reserved words can not be used as bare identifiers.
var reserved = map[string]bool{
	"and":     true,
	"or":      true,
	"xor":     true,
	"implies": true,
	"div":     true,
	"mod":     true,
	"true":    true,
	"false":   true,
}

var calendarUnits = map[string]bool{
	"year": true, "years": true,
	"month": true, "months": true,
	"week": true, "weeks": true,
	"day": true, "days": true,
	"hour": true, "hours": true,
	"minute": true, "minutes": true,
	"second": true, "seconds": true,
	"millisecond": true, "milliseconds": true,
}

// IsCalendarUnit reports whether unit is one of the calendar duration
// keywords allowed unquoted in quantity literals.
func IsCalendarUnit(unit string) bool {
	return calendarUnits[unit]
}
