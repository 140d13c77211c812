// Released under an MIT license. See LICENSE.

package primitive

import (
	"testing"
)

func TestLookup(t *testing.T) {
	for _, p := range All() {
		if Lookup(p.Name()) != p {
			t.Errorf("Lookup(%q) failed", p.Name())
		}
	}

	for _, name := range []string{"void", "Int", "string", "Object"} {
		if Lookup(name) != nil {
			t.Errorf("Lookup(%q) should fail", name)
		}
	}

	if len(All()) != 9 {
		t.Fail()
	}
}

func TestIs(t *testing.T) {
	if !Is(Void) || !Is(String) {
		t.Fail()
	}
}
