// Released under an MIT license. See LICENSE.

// Package reader feeds lines from a script or a pipe to an evaluator.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Evaluator is the interface for things that want to process lines of input.
type Evaluator interface {
	Active() bool
	Execute(line string) (string, bool)
}

// T (reader) yields lines of input.
type T struct {
	name string
	line int
	s    *bufio.Scanner
}

type reader = T

// New creates a new reader named name reading from r.
func New(name string, r io.Reader) *reader {
	return &reader{name: name, s: bufio.NewScanner(r)}
}

// Line returns the next line, without its line ending, and true, or "" and
// false when the input is exhausted.
func (r *reader) Line() (string, bool) {
	if !r.s.Scan() {
		return "", false
	}

	r.line++

	return strings.TrimSuffix(r.s.Text(), "\r"), true
}

// Err returns the first non-EOF error encountered.
func (r *reader) Err() error {
	return r.s.Err()
}

// Position returns "name:line" for the last line returned.
func (r *reader) Position() string {
	return fmt.Sprintf("%s:%d", r.name, r.line)
}

// Run sends every non-blank line to e, writing any output to w, until the
// input is exhausted or e is no longer active.
func Run(e Evaluator, r *reader, w io.Writer) error {
	for e.Active() {
		line, ok := r.Line()
		if !ok {
			break
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if out, ok := e.Execute(line); ok {
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}

	return r.Err()
}
