// Released under an MIT license. See LICENSE.

// Package attribute provides the attribute member of a construct.
package attribute

import (
	"strings"

	"github.com/michaelmacinnis/classeditor/internal/common/interface/typ"
	"github.com/michaelmacinnis/classeditor/internal/common/type/finality"
	"github.com/michaelmacinnis/classeditor/internal/common/type/visibility"
)

// Separator follows the owner name in a member signature.
const Separator = "::"

// T (attribute) is an immutable field of a construct. The owner is referred
// to by name.
type T struct {
	name       string
	owner      string
	visibility visibility.T
	finality   finality.T
	typ        typ.I
}

type attribute = T

// New creates an attribute. No checks are performed.
func New(owner string, v visibility.T, f finality.T, t typ.I, name string) *attribute {
	return &attribute{
		name:       name,
		owner:      owner,
		visibility: v,
		finality:   f,
		typ:        t,
	}
}

// Name returns the attribute's name.
func (a *attribute) Name() string {
	return a.name
}

// Owner returns the name of the construct that declares a.
func (a *attribute) Owner() string {
	return a.owner
}

// Visibility returns a's access modifier.
func (a *attribute) Visibility() visibility.T {
	return a.visibility
}

// Finality returns whether a is final.
func (a *attribute) Finality() finality.T {
	return a.finality
}

// Type returns a's type.
func (a *attribute) Type() typ.I {
	return a.typ
}

// Signature returns "Owner:: [visibility ][final ]Type name".
func (a *attribute) Signature() string {
	var b strings.Builder

	b.WriteString(a.owner)
	b.WriteString(Separator)
	b.WriteString(" ")
	Modifiers(&b, a.visibility, a.finality)
	b.WriteString(a.typ.Name())
	b.WriteString(" ")
	b.WriteString(a.name)

	return b.String()
}

// String returns a's signature.
func (a *attribute) String() string {
	return a.Signature()
}

// Modifiers writes the non-default modifiers, each followed by a blank.
func Modifiers(b *strings.Builder, v visibility.T, f finality.T) {
	if v != visibility.Default {
		b.WriteString(v.String())
		b.WriteString(" ")
	}

	if f == finality.Final {
		b.WriteString(f.String())
		b.WriteString(" ")
	}
}
