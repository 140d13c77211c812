// Released under an MIT license. See LICENSE.

// Package options parses classeditor's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is classeditor's version.
const Version = "classeditor 1.0.0"

//nolint:gochecknoglobals
var (
	command     string
	config      string
	interactive bool
	level       string
	script      string
	stdin       bool
	usage       = `classeditor

Usage:
  classeditor [-i] [-l LEVEL] [-f FILE] SCRIPT
  classeditor [-l LEVEL] [-f FILE] -c COMMAND
  classeditor [-i] [-l LEVEL] [-f FILE] [-s]
  classeditor -h
  classeditor -V

Arguments:
  SCRIPT  Path to a file of commands, one per line.

Options:
  -c, --command=COMMAND  Run the specified command.
  -f, --config=FILE      Read configuration from FILE.
  -i, --interactive      Invert interactive mode.
  -l, --log-level=LEVEL  Log level: debug, info, warn, error or off.
  -s, --stdin            Read commands from stdin.
  -h, --help             Display this help.
  -V, --version          Print classeditor version.

If classeditor's stdin is a TTY, and classeditor was invoked with no SCRIPT
or COMMAND, the interactive line editor is enabled. Otherwise, commands are
read one per line without line editing.
`

	// HelpHandler is called for --help, --version and usage errors.
	HelpHandler = docopt.PrintHelpAndExit

	// Terminal reports whether stdin is a TTY.
	Terminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

// Command returns the command passed with -c, if any.
func Command() string {
	return command
}

// Config returns the configuration file passed with -f, if any.
func Config() string {
	return config
}

// Interactive returns true if the line editor should be used.
func Interactive() bool {
	return interactive
}

// LogLevel returns the log level passed with -l, if any.
func LogLevel() string {
	return level
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}

// Stdin returns true if commands were explicitly directed to come from stdin.
func Stdin() bool {
	return stdin
}

// Parse parses os.Args.
func Parse() error {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses argv, which does not include the program name.
func ParseArgs(argv []string) error {
	p := &docopt.Parser{HelpHandler: HelpHandler}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	command, _ = opts.String("--command")
	config, _ = opts.String("--config")
	level, _ = opts.String("--log-level")
	script, _ = opts.String("SCRIPT")
	stdin, _ = opts.Bool("--stdin")

	interactive = script == "" && command == "" && Terminal()

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert

	return nil
}

// Usage returns the usage document.
func Usage() string {
	return usage
}
