// Released under an MIT license. See LICENSE.

/*
Classeditor is an interactive editor for a hierarchy of classes, interfaces
and enums. Commands are read one per line:

	add-construct class Animal
	add-construct class Dog
	add-extends Dog Animal
	add-method Animal:: public makeSound():void
	add-method Dog:: public makeSound():void
	list-all-methods Dog
	find-method-override Dog::makeSound():void
	quit

Successful mutations print OK. Failures print a line starting with
"Error, ". Listings print one entry per line.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/michaelmacinnis/classeditor/internal/engine"
	"github.com/michaelmacinnis/classeditor/internal/reader"
	"github.com/michaelmacinnis/classeditor/internal/reader/command"
	"github.com/michaelmacinnis/classeditor/internal/system/config"
	"github.com/michaelmacinnis/classeditor/internal/system/logging"
	"github.com/michaelmacinnis/classeditor/internal/system/options"
	"github.com/michaelmacinnis/classeditor/internal/ui"
)

func main() {
	if err := options.Parse(); err != nil {
		fatal(err)
	}

	cfg, err := config.Load(options.Config())
	if err != nil {
		fatal(err)
	}

	level := cfg.Log.Level
	if options.LogLevel() != "" {
		level = options.LogLevel()
	}

	log, closer, err := logging.Open(cfg.Log.File, logging.LevelFromString(level))
	if err != nil {
		fatal(err)
	}

	err = run(cfg, log, os.Stdin, os.Stdout)

	_ = closer.Close()

	if err != nil {
		fatal(err)
	}
}

func run(cfg *config.T, log *slog.Logger, in io.Reader, out io.Writer) error {
	d := command.New(engine.New(log), log)

	switch {
	case options.Command() != "":
		r := reader.New("-c", strings.NewReader(options.Command()))

		return reader.Run(d, r, out)

	case options.Script() != "":
		f, err := os.Open(options.Script())
		if err != nil {
			return err
		}
		defer f.Close()

		err = reader.Run(d, reader.New(options.Script(), f), out)
		if err != nil || !options.Interactive() {
			return err
		}

		return interact(cfg, log, d, out)

	case options.Interactive():
		return interact(cfg, log, d, out)
	}

	return reader.Run(d, reader.New("stdin", in), out)
}

func interact(cfg *config.T, log *slog.Logger, d *command.T, out io.Writer) error {
	o := ui.Options{Prompt: cfg.Prompt, Log: log}
	if cfg.History.Enabled {
		o.History = cfg.History.File
	}

	return ui.Run(d, d, out, o)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "classeditor:", err)
	os.Exit(1)
}
