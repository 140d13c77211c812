// Released under an MIT license. See LICENSE.

// Package primitive provides the fixed, built-in types.
package primitive

import (
	"github.com/michaelmacinnis/classeditor/internal/common/interface/typ"
)

// T (primitive) is a built-in type.
type T struct {
	name string
}

type primitive = T

//nolint:gochecknoglobals
var (
	Byte    = &primitive{"byte"}
	Boolean = &primitive{"boolean"}
	Short   = &primitive{"short"}
	Int     = &primitive{"int"}
	Long    = &primitive{"long"}
	Float   = &primitive{"float"}
	Double  = &primitive{"double"}
	Char    = &primitive{"char"}
	String  = &primitive{"String"}

	// Void is only valid as a method return type.
	Void = &primitive{"void"}

	all = []*primitive{Byte, Boolean, Short, Int, Long, Float, Double, Char, String}
)

// Lookup returns the primitive named name or nil. Matching is exact and
// case-sensitive. Void is not returned.
func Lookup(name string) *primitive {
	for _, p := range all {
		if p.name == name {
			return p
		}
	}

	return nil
}

// All returns the nine primitive types.
func All() []typ.I {
	ts := make([]typ.I, len(all))
	for i, p := range all {
		ts[i] = p
	}

	return ts
}

// Name returns the canonical name of the primitive p.
func (p *primitive) Name() string {
	return p.name
}

// String returns the canonical name of the primitive p.
func (p *primitive) String() string {
	return p.name
}

// Is returns true if t is a *T.
func Is(t typ.I) bool {
	_, ok := t.(*primitive)
	return ok
}
