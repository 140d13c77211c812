// Released under an MIT license. See LICENSE.

package visibility

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		want  visibility
		fails bool
	}{
		{"", Default, false},
		{" ", Default, false},
		{"private", Private, false},
		{"protected ", Protected, false},
		{"public", Public, false},
		{"Public", Default, true},
		{"internal", Default, true},
	}

	for _, test := range tests {
		got, err := Parse(test.token)
		if (err != nil) != test.fails {
			t.Errorf("Parse(%q): unexpected error %v", test.token, err)
		}

		if got != test.want {
			t.Errorf("Parse(%q) = %v, want %v", test.token, got, test.want)
		}
	}
}

func TestIn(t *testing.T) {
	if !Private.In(Protected, Private) {
		t.Fail()
	}

	if Public.In() {
		t.Fail()
	}
}

func TestString(t *testing.T) {
	if Default.String() != "" || Public.String() != "public" {
		t.Fail()
	}
}
