package internal

import (
	"strconv"
	"strings"
)

// endOfText marks the end of input for sources piped from a console (Ctrl+Z).
const endOfText = '\x1a'

// tokenStream is what the parser consumes, one token at a time.
// Once exhausted it keeps returning tkEOF.
type tokenStream interface {
	next() token
}

type lexer struct {
	source  string
	start   int
	current int
	line    int

	state *interpreterState
}

var keywords = map[string]tokenType{
	"print": tkPrint,
	"if":    tkIf,
	"else":  tkElse,
	"while": tkWhile,
	"for":   tkFor,
}

func newLexer(state *interpreterState) *lexer {
	return &lexer{
		source: state.source,
		line:   1,
		state:  state,
	}
}

func (l *lexer) next() token {
	for !l.isAtEnd() {
		l.start = l.current
		if tk, ok := l.scanToken(); ok {
			return tk
		}
	}
	l.start = l.current
	return token{token: tkEOF, line: l.line}
}

// scan drains the lexer, mostly useful for tooling and tests.
func (l *lexer) scan() []token {
	var tokens []token
	for {
		tk := l.next()
		tokens = append(tokens, tk)
		if tk.token == tkEOF {
			return tokens
		}
	}
}

func (l *lexer) scanToken() (token, bool) {
	c := l.advance()
	switch c {
	case '{':
		return l.emit(tkLeftCurlyBrace, nil), true
	case '}':
		return l.emit(tkRightCurlyBrace, nil), true
	case '(':
		return l.emit(tkLeftParen, nil), true
	case ')':
		return l.emit(tkRightParen, nil), true
	case ';':
		return l.emit(tkSemicolon, nil), true
	case '+':
		return l.emit(tkPlus, nil), true
	case '-':
		return l.emit(tkMinus, nil), true
	case '*':
		return l.emit(tkStar, nil), true
	case '/':
		if l.match('/') {
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
			return token{}, false
		}
		if l.match('*') {
			l.blockComment()
			return token{}, false
		}
		return l.emit(tkSlash, nil), true
	case '!':
		if l.match('=') {
			return l.emit(tkBangEqual, nil), true
		}
		l.fail(errWrongBang)
	case '=':
		if l.match('=') {
			return l.emit(tkEqualEqual, nil), true
		}
		return l.emit(tkAssign, nil), true
	case '<':
		if l.match('=') {
			return l.emit(tkLessEqual, nil), true
		}
		return l.emit(tkLess, nil), true
	case '>':
		if l.match('=') {
			return l.emit(tkGreaterEqual, nil), true
		}
		return l.emit(tkGreater, nil), true
	case '&':
		if l.match('&') {
			return l.emit(tkAnd, nil), true
		}
		l.fail(errIllegalChar)
	case '|':
		if l.match('|') {
			return l.emit(tkOr, nil), true
		}
		l.fail(errIllegalChar)

	// Ignore whitespace
	case ' ', '\r', '\t':

	case '\n':
		l.line++

	case endOfText:
		l.current = len(l.source)

	case '"':
		return l.string(), true

	default:
		if isDigit(c) {
			return l.number(), true
		} else if isAlpha(c) {
			return l.identifier(), true
		}
		l.fail(errIllegalChar)
	}
	return token{}, false
}

func (l *lexer) blockComment() {
	startLine := l.line
	for !l.isAtEnd() {
		c := l.advance()
		if c == '\n' {
			l.line++
		}
		if c == '*' && l.match('/') {
			return
		}
	}
	l.state.fatalError(&ParseError{Err: errUnclosedComment, Line: startLine})
}

func (l *lexer) string() token {
	startLine := l.line
	var sb strings.Builder
	for {
		if l.isAtEnd() {
			l.state.fatalError(&ParseError{Err: errUnclosedString, Line: startLine})
		}
		c := l.advance()
		switch c {
		case '"':
			tk := l.emit(tkString, sb.String())
			tk.line = startLine
			return tk
		case '\n':
			l.line++
			sb.WriteByte(c)
		case '\\':
			if l.isAtEnd() {
				l.state.fatalError(&ParseError{Err: errUnclosedString, Line: startLine})
			}
			switch esc := l.advance(); esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"', '\\':
				sb.WriteByte(esc)
			default:
				l.fail(errUnknownEscape)
			}
		default:
			sb.WriteByte(c)
		}
	}
}

func (l *lexer) number() token {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for !l.isAtEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}

	literal, err := strconv.ParseFloat(l.source[l.start:l.current], 64)
	if err != nil {
		l.fail(errMalformedNumber)
	}

	return l.emit(tkNumber, literal)
}

func (l *lexer) identifier() token {
	for !l.isAtEnd() && (isAlpha(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}

	identifier := l.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = tkIdentifier
	}

	return l.emit(tokenType, nil)
}

func (l *lexer) fail(err error) {
	l.state.fatalError(&ParseError{
		Err:   err,
		Found: &token{lexeme: l.source[l.start:l.current], line: l.line},
		Line:  l.line,
	})
}

func (l *lexer) advance() byte {
	current := l.source[l.current]
	l.current++
	return current
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *lexer) emit(tk tokenType, literal interface{}) token {
	return token{
		token:   tk,
		lexeme:  l.source[l.start:l.current],
		literal: literal,
		line:    l.line,
	}
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
