// Released under an MIT license. See LICENSE.

package reader

import (
	"bytes"
	"strings"
	"testing"
)

type echo struct {
	lines []string
	quit  bool
}

func (e *echo) Active() bool {
	return !e.quit
}

func (e *echo) Execute(line string) (string, bool) {
	e.lines = append(e.lines, line)
	if line == "quit" {
		e.quit = true
		return "", false
	}

	return "> " + line, true
}

func TestRun(t *testing.T) {
	e := &echo{}
	r := New("test", strings.NewReader("one\r\n\n  \ntwo\nquit\nthree\n"))

	var out bytes.Buffer

	if err := Run(e, r, &out); err != nil {
		t.Fatal(err)
	}

	if out.String() != "> one\n> two\n" {
		t.Errorf("unexpected output %q", out.String())
	}

	if len(e.lines) != 3 {
		t.Errorf("unexpected lines %q", e.lines)
	}

	if r.Position() != "test:5" {
		t.Errorf("unexpected position %q", r.Position())
	}
}

func TestLine(t *testing.T) {
	r := New("test", strings.NewReader("last"))

	line, ok := r.Line()
	if !ok || line != "last" {
		t.Fail()
	}

	if _, ok = r.Line(); ok {
		t.Fail()
	}

	if r.Err() != nil {
		t.Fail()
	}
}
