package internal

import "fmt"

type tokenType int

const (
	tkEOF tokenType = iota

	// Literals.
	tkNumber
	tkIdentifier
	tkString

	// Keywords.
	// print, if, else, while, for
	tkPrint
	tkIf
	tkElse
	tkWhile
	tkFor

	// Single-character tokens.
	// =, +, -, *, /, ;, {, }, (, )
	tkAssign
	tkPlus
	tkMinus
	tkStar
	tkSlash
	tkSemicolon
	tkLeftCurlyBrace
	tkRightCurlyBrace
	tkLeftParen
	tkRightParen

	// One or two character tokens.
	// >, <, ==, >=, <=, !=, &&, ||
	tkGreater
	tkLess
	tkEqualEqual
	tkGreaterEqual
	tkLessEqual
	tkBangEqual
	tkAnd
	tkOr
)

var tokenNames = map[tokenType]string{
	tkEOF:             "end of input",
	tkNumber:          "number",
	tkIdentifier:      "identifier",
	tkString:          "string",
	tkPrint:           "'print'",
	tkIf:              "'if'",
	tkElse:            "'else'",
	tkWhile:           "'while'",
	tkFor:             "'for'",
	tkAssign:          "'='",
	tkPlus:            "'+'",
	tkMinus:           "'-'",
	tkStar:            "'*'",
	tkSlash:           "'/'",
	tkSemicolon:       "';'",
	tkLeftCurlyBrace:  "'{'",
	tkRightCurlyBrace: "'}'",
	tkLeftParen:       "'('",
	tkRightParen:      "')'",
	tkGreater:         "'>'",
	tkLess:            "'<'",
	tkEqualEqual:      "'=='",
	tkGreaterEqual:    "'>='",
	tkLessEqual:       "'<='",
	tkBangEqual:       "'!='",
	tkAnd:             "'&&'",
	tkOr:              "'||'",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

type token struct {
	token   tokenType
	lexeme  string
	literal interface{}
	line    int
}

func (t *token) String() string {
	switch t.token {
	case tkEOF:
		return t.token.String()
	case tkNumber, tkIdentifier, tkString:
		return fmt.Sprintf("%s '%s'", t.token, t.lexeme)
	}
	return t.token.String()
}
