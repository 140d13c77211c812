// Released under an MIT license. See LICENSE.

package attribute

import (
	"testing"

	"github.com/michaelmacinnis/classeditor/internal/common/type/finality"
	"github.com/michaelmacinnis/classeditor/internal/common/type/primitive"
	"github.com/michaelmacinnis/classeditor/internal/common/type/visibility"
)

func TestSignature(t *testing.T) {
	tests := []struct {
		a    *attribute
		want string
	}{
		{New("Point", visibility.Default, finality.NotFinal, primitive.Int, "x"), "Point:: int x"},
		{New("Point", visibility.Private, finality.Final, primitive.Double, "y"), "Point:: private final double y"},
		{New("Point", visibility.Public, finality.NotFinal, primitive.String, "label"), "Point:: public String label"},
	}

	for _, test := range tests {
		if got := test.a.Signature(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}
