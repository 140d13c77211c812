// Released under an MIT license. See LICENSE.

// Package construct provides classes, interfaces and enums.
//
// All three share one record shape. Only a class ever has a parent or
// implemented interfaces; operations switch on the kind rather than relying
// on per-kind implementations.
package construct

import (
	"sort"
	"strings"

	"github.com/michaelmacinnis/classeditor/internal/common/interface/typ"
	"github.com/michaelmacinnis/classeditor/internal/common/type/attribute"
	"github.com/michaelmacinnis/classeditor/internal/common/type/failure"
	"github.com/michaelmacinnis/classeditor/internal/common/type/method"
)

// Kind is the underlying kind of a construct.
type Kind int

const (
	Class Kind = iota
	Interface
	Enum
)

var kinds = [...]string{ //nolint:gochecknoglobals
	Class:     "class",
	Interface: "interface",
	Enum:      "enum",
}

// ParseKind returns the kind named s.
func ParseKind(s string) (Kind, error) {
	for k, v := range kinds {
		if v == s {
			return Kind(k), nil
		}
	}

	return Class, failure.Newf(failure.ParseFailure, "unknown construct kind %q", s)
}

// String returns "class", "interface" or "enum".
func (k Kind) String() string {
	return kinds[k]
}

// T (construct) is a named unit owning attributes and methods.
type T struct {
	name string
	kind Kind

	attributes map[string]*attribute.T
	methods    map[string]*method.T

	// Class only.
	parent     *T
	interfaces map[string]*T
}

type construct = T

// New creates a construct of kind k named name.
func New(k Kind, name string) *construct {
	c := &construct{
		name:       name,
		kind:       k,
		attributes: map[string]*attribute.T{},
		methods:    map[string]*method.T{},
	}

	if k == Class {
		c.interfaces = map[string]*T{}
	}

	return c
}

// NewClass creates a class.
func NewClass(name string) *construct {
	return New(Class, name)
}

// NewInterface creates an interface.
func NewInterface(name string) *construct {
	return New(Interface, name)
}

// NewEnum creates an enum.
func NewEnum(name string) *construct {
	return New(Enum, name)
}

// The construct type is a type.

// Name returns the name of the construct c.
func (c *construct) Name() string {
	return c.name
}

// Kind returns the underlying kind of c.
func (c *construct) Kind() Kind {
	return c.kind
}

// Parent returns the parent class of c, or nil.
func (c *construct) Parent() *construct {
	return c.parent
}

// Interfaces returns the interfaces c implements, ordered by name.
func (c *construct) Interfaces() []*construct {
	is := make([]*construct, 0, len(c.interfaces))
	for _, i := range c.interfaces {
		is = append(is, i)
	}

	sort.Slice(is, func(a, b int) bool {
		return is[a].name < is[b].name
	})

	return is
}

// LongName returns "class Name[ extends Parent][ implements I1,I2]",
// "interface Name" or "enum Name".
func (c *construct) LongName() string {
	s := c.kind.String() + " " + c.name

	if c.parent != nil {
		s += " extends " + c.parent.name
	}

	if len(c.interfaces) > 0 {
		is := c.Interfaces()
		names := make([]string, len(is))
		for n, i := range is {
			names[n] = i.name
		}

		s += " implements " + strings.Join(names, ",")
	}

	return s
}

// String returns the name of c.
func (c *construct) String() string {
	return c.name
}

// Is returns true if t is a *T.
func Is(t typ.I) bool {
	_, ok := t.(*construct)
	return ok
}

// To returns a *T if t is a *T; Otherwise it panics.
func To(t typ.I) *construct {
	if c, ok := t.(*construct); ok {
		return c
	}

	panic(t.Name() + " is not a construct")
}
