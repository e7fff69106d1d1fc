package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

// ParseError is returned when the source cannot be scanned or parsed.
// Parsing stops at the first one.
type ParseError struct {
	Err      error
	Expected []tokenType
	Found    *token
	Line     int
}

func (e *ParseError) Error() string {
	if len(e.Expected) == 0 {
		if e.Found != nil && e.Found.lexeme != "" {
			return fmt.Sprintf("%s: %s", e.Err.Error(), e.Found.lexeme)
		}
		return e.Err.Error()
	}
	expected := make([]string, len(e.Expected))
	for i, tk := range e.Expected {
		expected[i] = tk.String()
	}
	return fmt.Sprintf("%s: expected %s, found %s", e.Err.Error(), strings.Join(expected, " or "), e.Found)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RuntimeError halts the execution of a program.
type RuntimeError struct {
	Err   error
	token *token
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.token.lexeme)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// Line returns the source line the error was raised on.
func (e *RuntimeError) Line() int {
	return e.token.line
}

// interpreterState stores the state of a interpreter
type interpreterState struct {
	absPath string
	source  string
	stmts   stmtList

	parseError   *ParseError
	runtimeError *RuntimeError

	printer IPrinter
	logger  *logrus.Entry
	color   *color.Color
	trace   bool
}

func (s *interpreterState) fatalError(err *ParseError) {
	s.parseError = err
	panic(err)
}

func (s *interpreterState) runtimeErr(err error, tk *token) {
	s.runtimeError = &RuntimeError{
		Err:   err,
		token: tk,
	}
	panic(s.runtimeError)
}

// Valid returns true if the interpreter is in a valid states else false
func (s *interpreterState) Valid() bool {
	return s.parseError == nil && s.runtimeError == nil
}

// PrintErrors prints the parse or runtime error, if any, and reports whether there was one
func (s *interpreterState) PrintErrors() bool {
	if s.parseError != nil {
		s.logger.WithFields(logrus.Fields{
			"line": s.parseError.Line,
			"kind": "parse",
		}).Debug(s.parseError.Error())
		s.printer.Fprintf(
			os.Stderr,
			"%s on line %d\n\t%s\n",
			s.color.Red("Error"),
			s.parseError.Line,
			s.color.Bold(s.parseError.Error()),
		)
		return true
	}
	if s.runtimeError != nil {
		s.logger.WithFields(logrus.Fields{
			"line": s.runtimeError.Line(),
			"kind": "runtime",
		}).Debug(s.runtimeError.Error())
		s.printer.Fprintf(
			os.Stderr,
			"%s on line %d\n\t%s\n",
			s.color.Red("Runtime Error"),
			s.runtimeError.Line(),
			s.color.Bold(s.runtimeError.Error()),
		)
		return true
	}
	return false
}

// Lexer errors
var errIllegalChar = errors.New("Illegal character")
var errWrongBang = errors.New("'!' cannot be used here")
var errUnclosedString = errors.New("Closing \" was expected")
var errUnclosedComment = errors.New("Closing */ was expected")
var errUnknownEscape = errors.New("Unknown escape sequence")
var errMalformedNumber = errors.New("Malformed number")

// ErrSyntax is wrapped by every grammar mismatch.
var ErrSyntax = errors.New("Syntax error")

// Runtime errors
var (
	// ErrUndefined is raised when reading a variable that was never assigned.
	ErrUndefined = errors.New("Undefined variable")
	// ErrTypeMismatch is raised when an operator gets operands it cannot handle.
	ErrTypeMismatch = errors.New("Type mismatch")
)

var errUndefinedOp = errors.New("Undefined operation")
