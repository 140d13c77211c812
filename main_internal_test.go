// Released under an MIT license. See LICENSE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/michaelmacinnis/classeditor/internal/system/config"
	"github.com/michaelmacinnis/classeditor/internal/system/logging"
	"github.com/michaelmacinnis/classeditor/internal/system/options"
)

func parse(t *testing.T, argv ...string) {
	t.Helper()

	options.HelpHandler = docopt.NoHelpHandler
	options.Terminal = func() bool {
		return false
	}

	if err := options.ParseArgs(argv); err != nil {
		t.Fatal(err)
	}
}

func TestCommand(t *testing.T) {
	parse(t, "-c", "add-construct class Animal\nadd-construct class Dog\nadd-extends Dog Animal\nlist-constructs")

	var out bytes.Buffer

	if err := run(config.Default(), logging.Discard(), nil, &out); err != nil {
		t.Fatal(err)
	}

	if out.String() != "OK\nOK\nOK\nclass Animal\nclass Dog extends Animal\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.txt")

	script := `add-construct interface Shape
add-method Shape:: area():double
add-construct class Circle
add-implements Circle Shape
add-method Circle:: area():double
add-implements Circle Shape
quit
list-constructs
`
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		t.Fatal(err)
	}

	parse(t, path)

	var out bytes.Buffer

	if err := run(config.Default(), logging.Discard(), nil, &out); err != nil {
		t.Fatal(err)
	}

	want := "OK\nOK\nOK\nError, interface could not be added\nOK\nOK\n"
	if out.String() != want {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestStdin(t *testing.T) {
	parse(t)

	var out bytes.Buffer

	in := strings.NewReader("add-construct enum Color\nbogus\nlist-constructs\n")
	if err := run(config.Default(), logging.Discard(), in, &out); err != nil {
		t.Fatal(err)
	}

	if out.String() != "OK\nError, command not found!\nenum Color\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestMissingScript(t *testing.T) {
	parse(t, filepath.Join(t.TempDir(), "missing.txt"))

	if run(config.Default(), logging.Discard(), nil, &bytes.Buffer{}) == nil {
		t.Fail()
	}
}
