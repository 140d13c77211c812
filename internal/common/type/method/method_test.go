// Released under an MIT license. See LICENSE.

package method

import (
	"testing"

	"github.com/michaelmacinnis/classeditor/internal/common/interface/typ"
	"github.com/michaelmacinnis/classeditor/internal/common/type/finality"
	"github.com/michaelmacinnis/classeditor/internal/common/type/primitive"
	"github.com/michaelmacinnis/classeditor/internal/common/type/visibility"
)

func TestSignature(t *testing.T) {
	m := New("Calc", visibility.Protected, finality.Final, "add", []typ.I{primitive.Int, primitive.Long}, primitive.Long)

	if s := m.Signature(); s != "Calc:: protected final add(int,long):long" {
		t.Errorf("unexpected %q", s)
	}

	if m.Key() != "add(int,long)" || m.Identity() != "add(int,long):long" {
		t.Fail()
	}

	if s := Probe("run", nil, primitive.Void).Signature(); s != "run():void" {
		t.Errorf("unexpected %q", s)
	}
}

func TestSame(t *testing.T) {
	a := New("A", visibility.Public, finality.NotFinal, "f", []typ.I{primitive.Int}, primitive.Void)
	b := New("B", visibility.Private, finality.Final, "f", []typ.I{primitive.Int}, primitive.Void)
	c := New("C", visibility.Public, finality.NotFinal, "f", []typ.I{primitive.Int}, primitive.Int)
	d := New("D", visibility.Public, finality.NotFinal, "f", nil, primitive.Void)

	if !a.Same(b) || a.Same(c) || a.Same(d) {
		t.Fail()
	}
}

func TestParamsAreCopied(t *testing.T) {
	ps := []typ.I{primitive.Int}
	m := New("A", visibility.Default, finality.NotFinal, "f", ps, primitive.Void)

	ps[0] = primitive.Long

	if m.Params()[0] != primitive.Int {
		t.Fail()
	}
}
