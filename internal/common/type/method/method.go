// Released under an MIT license. See LICENSE.

// Package method provides the method member of a construct.
package method

import (
	"strings"

	"github.com/michaelmacinnis/classeditor/internal/common/interface/typ"
	"github.com/michaelmacinnis/classeditor/internal/common/type/attribute"
	"github.com/michaelmacinnis/classeditor/internal/common/type/finality"
	"github.com/michaelmacinnis/classeditor/internal/common/type/visibility"
)

// T (method) is an immutable method of a construct. The owner is referred
// to by name; a probe used for searching has no owner.
type T struct {
	name       string
	owner      string
	visibility visibility.T
	finality   finality.T
	params     []typ.I
	result     typ.I
}

type method = T

// New creates a method. No checks are performed.
func New(
	owner string, v visibility.T, f finality.T, name string, params []typ.I, result typ.I,
) *method {
	return &method{
		name:       name,
		owner:      owner,
		visibility: v,
		finality:   f,
		params:     append([]typ.I(nil), params...),
		result:     result,
	}
}

// Probe creates an ownerless method used to search by identity.
func Probe(name string, params []typ.I, result typ.I) *method {
	return New("", visibility.Default, finality.NotFinal, name, params, result)
}

// Name returns the method's name.
func (m *method) Name() string {
	return m.name
}

// Owner returns the name of the construct that declares m.
func (m *method) Owner() string {
	return m.owner
}

// Visibility returns m's access modifier.
func (m *method) Visibility() visibility.T {
	return m.visibility
}

// Finality returns whether m is final.
func (m *method) Finality() finality.T {
	return m.finality
}

// Params returns a copy of m's parameter types.
func (m *method) Params() []typ.I {
	return append([]typ.I(nil), m.params...)
}

// Result returns m's return type.
func (m *method) Result() typ.I {
	return m.result
}

// Key is the shortened signature "name(T1,T2)".
func (m *method) Key() string {
	return m.name + "(" + strings.Join(typ.Names(m.params), ",") + ")"
}

// Identity is "name(T1,T2):R". Methods with equal identities override
// each other and two methods of one construct may not share one. The
// return type takes part.
func (m *method) Identity() string {
	return m.Key() + ":" + m.result.Name()
}

// Same reports whether m and o have the same identity.
func (m *method) Same(o *method) bool {
	if m.name != o.name || len(m.params) != len(o.params) {
		return false
	}

	for i, p := range m.params {
		if !typ.Same(p, o.params[i]) {
			return false
		}
	}

	return typ.Same(m.result, o.result)
}

// Signature returns "Owner:: [visibility ][final ]name(T1,T2):R". An
// ownerless probe has neither the owner prefix nor modifiers.
func (m *method) Signature() string {
	var b strings.Builder

	if m.owner != "" {
		b.WriteString(m.owner)
		b.WriteString(attribute.Separator)
		b.WriteString(" ")
		attribute.Modifiers(&b, m.visibility, m.finality)
	}

	b.WriteString(m.Identity())

	return b.String()
}

// String returns m's signature.
func (m *method) String() string {
	return m.Signature()
}
