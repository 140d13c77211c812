// Released under an MIT license. See LICENSE.

package history

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history")

	err := Save(path, func(w io.Writer) (int, error) {
		return io.WriteString(w, "list-constructs\nquit\n")
	})
	if err != nil {
		t.Fatal(err)
	}

	var got string

	err = Load(path, func(r io.Reader) (int, error) {
		b, err := io.ReadAll(r)
		got = string(b)

		return strings.Count(got, "\n"), err
	})
	if err != nil {
		t.Fatal(err)
	}

	if got != "list-constructs\nquit\n" {
		t.Errorf("unexpected %q", got)
	}
}

func TestLoadMissing(t *testing.T) {
	called := false

	err := Load(filepath.Join(t.TempDir(), "missing"), func(io.Reader) (int, error) {
		called = true
		return 0, nil
	})
	if err != nil || called {
		t.Fail()
	}
}
