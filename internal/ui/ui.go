// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for the editor.
package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/michaelmacinnis/classeditor/internal/system/history"
	"github.com/michaelmacinnis/classeditor/internal/system/logging"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process lines of input.
type Evaluator interface {
	Active() bool
	Execute(line string) (string, bool)
}

// Completer supplies the words offered when tab is pressed.
type Completer interface {
	Commands() []string
	Names() []string
}

// Options configures the interface.
type Options struct {
	Prompt  string
	History string // An empty path disables history.
	Log     *slog.Logger
}

// Run prompts for lines and sends them to e until e is no longer active or
// input ends. Ctrl-C abandons the current line.
func Run(e Evaluator, c Completer, w io.Writer, o Options) error {
	log := o.Log
	if log == nil {
		log = logging.Discard()
	}

	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetTabCompletionStyle(liner.TabPrints)

	if c != nil {
		cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
			return complete(c, line, pos)
		})
	}

	if o.History != "" {
		if err := history.Load(o.History, cli.ReadHistory); err != nil {
			log.Warn("could not read history", "file", o.History, "error", err)
		}

		defer func() {
			if err := history.Save(o.History, cli.WriteHistory); err != nil {
				log.Warn("could not write history", "file", o.History, "error", err)
			}
		}()
	}

	for e.Active() {
		line, err := cli.Prompt(o.Prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			_, err = fmt.Fprintln(w)
			return err
		default:
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		if out, ok := e.Execute(line); ok {
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}

	return nil
}

// complete offers command names for the first word and construct names
// for every word after it.
func complete(c Completer, line string, pos int) (head string, cs []string, tail string) {
	if pos > len(line) {
		pos = len(line)
	}

	head = line[:pos]
	tail = line[pos:]

	start := strings.LastIndexAny(head, " \t(,:") + 1
	word := head[start:]
	head = head[:start]

	words := c.Names()
	if strings.TrimSpace(head) == "" {
		words = c.Commands()
	}

	for _, s := range words {
		if strings.HasPrefix(s, word) {
			cs = append(cs, s)
		}
	}

	sort.Strings(cs)

	return head, cs, tail
}
