package internal

import (
	"io"
	"io/ioutil"
	"time"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Options tunes diagnostics of a run. The zero value logs nothing and prints
// errors without colour.
type Options struct {
	Logger logrus.FieldLogger
	Color  *color.Color
	// Trace logs every executed statement and loop iteration.
	Trace bool
}

func newInterpreterState(absPath, source string, p IPrinter, opts Options) *interpreterState {
	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.Out = ioutil.Discard
		logger = discard
	}
	colors := opts.Color
	if colors == nil {
		colors = color.New()
		colors.Disable()
	}
	return &interpreterState{
		absPath: absPath,
		source:  source,
		printer: p,
		logger:  logger.WithField("path", absPath),
		color:   colors,
		trace:   opts.Trace,
	}
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(absPath, source string, p IPrinter) bool {
	return RunSource(absPath, source, p, NewEnv(), Options{}) == nil
}

// RunSource parses source and, if it is valid, executes it against env.
// Errors are reported through p and returned; nothing runs when parsing fails.
func RunSource(absPath, source string, p IPrinter, env *Env, opts Options) error {
	state := newInterpreterState(absPath, source, p, opts)

	if err := parseState(state); err != nil {
		return err
	}

	start := time.Now()
	exec := newExec(state, env)
	err := exec.interpret()
	state.logger.WithFields(logrus.Fields{
		"variables": env.Len(),
		"elapsed":   time.Since(start),
	}).Debug("executed")

	state.PrintErrors()

	return err
}

// PrintSourceTree parses source and prints its tree instead of running it.
func PrintSourceTree(absPath, source string, p IPrinter, opts Options) error {
	state := newInterpreterState(absPath, source, p, opts)
	if err := parseState(state); err != nil {
		return err
	}
	state.PrintTree()
	return nil
}

func parseState(state *interpreterState) error {
	start := time.Now()
	parser := newParser(state, newLexer(state))
	if err := parser.parse(); err != nil {
		state.PrintErrors()
		return err
	}
	state.logger.WithFields(logrus.Fields{
		"statements": len(state.stmts),
		"elapsed":    time.Since(start),
	}).Debug("parsed")
	return nil
}
