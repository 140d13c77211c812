// Released under an MIT license. See LICENSE.

package finality

import (
	"testing"
)

func TestParse(t *testing.T) {
	for token, want := range map[string]finality{"": NotFinal, "final": Final, "final ": Final} {
		got, err := Parse(token)
		if err != nil || got != want {
			t.Errorf("Parse(%q) = %v, %v", token, got, err)
		}
	}

	if _, err := Parse("static"); err == nil {
		t.Fail()
	}
}

func TestString(t *testing.T) {
	if Final.String() != "final" || NotFinal.String() != "" {
		t.Fail()
	}
}
