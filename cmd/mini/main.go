package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"mini/internal"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

type stdPrinter struct {
	stdout io.Writer
	stderr io.Writer
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.stdout, a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(s.redirect(w), format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.redirect(w), a...)
}

func (s stdPrinter) redirect(w io.Writer) io.Writer {
	switch w {
	case os.Stdout:
		return s.stdout
	case os.Stderr:
		return s.stderr
	}
	return w
}

const usage = `Usage: mini [flags] [/path/to/source.mini]

Reads the program from standard input when no path is given.

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mini", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "YAML configuration file (default ./"+internal.DefaultConfigFile+" when present)")
	showTree := fs.Bool("ast", false, "print the syntax tree instead of running the program")
	dumpEnv := fs.Bool("env", false, "print the variables left after the run")
	timed := fs.Bool("time", false, "report the time spent running the program")
	noColor := fs.Bool("no-color", false, "disable coloured error reports")
	verbose := fs.Bool("v", false, "log debug information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logrus.WithError(err).Error("cannot load configuration")
		return 2
	}
	if *noColor {
		disabled := false
		cfg.Color = &disabled
	}
	if *verbose {
		if level, _ := logrus.ParseLevel(cfg.LogLevel); level < logrus.DebugLevel {
			cfg.LogLevel = "debug"
		}
	}

	logger, err := internal.NewLogger(cfg, stderr)
	if err != nil {
		logrus.WithError(err).Error("cannot build logger")
		return 2
	}

	absPath, source, err := readSource(fs.Arg(0), stdin)
	if err != nil {
		logger.WithError(err).Error("cannot read source")
		return 2
	}

	colors := color.New()
	if !cfg.ColorEnabled() {
		colors.Disable()
	}
	opts := internal.Options{
		Logger: logger,
		Color:  colors,
		Trace:  cfg.Trace,
	}
	printer := stdPrinter{stdout: stdout, stderr: stderr}

	if *showTree {
		if err := internal.PrintSourceTree(absPath, source, printer, opts); err != nil {
			return 1
		}
		return 0
	}

	env := internal.NewEnv()
	start := time.Now()
	err = internal.RunSource(absPath, source, printer, env, opts)
	if *timed {
		fmt.Fprintln(stderr, "Time elapsed is:", time.Since(start))
	}
	if *dumpEnv {
		for _, name := range env.Names() {
			value, _ := env.Lookup(name)
			fmt.Fprintf(stdout, "%s = %s\n", name, internal.Repr(value))
		}
	}
	if err != nil {
		return 1
	}
	return 0
}

func loadConfig(path string) (*internal.Config, error) {
	if path != "" {
		return internal.LoadConfig(path)
	}
	if _, err := os.Stat(internal.DefaultConfigFile); err != nil {
		if os.IsNotExist(err) {
			return internal.DefaultConfig(), nil
		}
		return nil, err
	}
	return internal.LoadConfig(internal.DefaultConfigFile)
}

func readSource(path string, stdin io.Reader) (string, string, error) {
	if path == "" || path == "-" {
		b, err := ioutil.ReadAll(stdin)
		if err != nil {
			return "", "", err
		}
		return "<stdin>", string(b), nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", "", err
	}

	file, err := os.Open(absPath)
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	b, err := ioutil.ReadAll(file)
	if err != nil {
		return "", "", err
	}

	return absPath, string(b), nil
}
