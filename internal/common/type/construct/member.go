// Released under an MIT license. See LICENSE.

package construct

import (
	"sort"

	"github.com/michaelmacinnis/classeditor/internal/common/type/attribute"
	"github.com/michaelmacinnis/classeditor/internal/common/type/failure"
	"github.com/michaelmacinnis/classeditor/internal/common/type/finality"
	"github.com/michaelmacinnis/classeditor/internal/common/type/method"
	"github.com/michaelmacinnis/classeditor/internal/common/type/visibility"
)

// AddAttribute adds a to c. Names are unique within one construct only.
func (c *construct) AddAttribute(a *attribute.T) error {
	if _, ok := c.attributes[a.Name()]; ok {
		return failure.Newf(failure.DuplicateName, "%s already has an attribute %s", c.name, a.Name())
	}

	c.attributes[a.Name()] = a

	return nil
}

// AddMethod adds m to c. When m overrides an inherited method that method
// is returned.
func (c *construct) AddMethod(m *method.T) (*method.T, error) {
	var inherited *method.T

	switch c.kind {
	case Interface:
		if m.Finality() == finality.Final {
			return nil, failure.New(failure.FinalViolation, "cannot add a final method to an interface")
		}

	case Class:
		for _, v := range c.AllMethods() {
			if v.Same(m) {
				inherited = v
				break
			}
		}

		if inherited != nil && inherited.Finality() == finality.Final {
			return nil, failure.Newf(failure.FinalViolation, "method to override is final: %s", inherited.Signature())
		}

	case Enum:
	}

	if _, ok := c.methods[m.Identity()]; ok {
		return nil, failure.Newf(failure.DuplicateName, "%s already has a method %s", c.name, m.Identity())
	}

	c.methods[m.Identity()] = m

	if inherited != nil && inherited.Owner() != c.name {
		return inherited, nil
	}

	return nil, nil
}

// OwnAttributes returns the attributes declared by c, ordered by signature.
func (c *construct) OwnAttributes() []*attribute.T {
	as := make([]*attribute.T, 0, len(c.attributes))
	for _, a := range c.attributes {
		as = append(as, a)
	}

	return sortAttributes(as)
}

// OwnMethods returns the methods declared by c, ordered by signature.
func (c *construct) OwnMethods() []*method.T {
	ms := make([]*method.T, 0, len(c.methods))
	for _, m := range c.methods {
		ms = append(ms, m)
	}

	return sortMethods(ms)
}

// AllAttributes returns the attributes visible from c with shadowing
// applied: of several attributes with one name only the closest is kept.
// Attributes with an excluded visibility are dropped afterwards.
func (c *construct) AllAttributes(excluded ...visibility.T) []*attribute.T {
	names := map[string]bool{}
	as := []*attribute.T{}

	add := func(candidates []*attribute.T) {
		for _, a := range candidates {
			if !names[a.Name()] {
				names[a.Name()] = true
				as = append(as, a)
			}
		}
	}

	add(c.OwnAttributes())

	for _, i := range c.Interfaces() {
		add(i.OwnAttributes())
	}

	if c.parent != nil {
		add(nonPrivateAttributes(c.parent.AllAttributes()))
	}

	return sortAttributes(withoutAttributes(as, excluded))
}

// ShadowingAttributes returns the attributes visible from c without
// collapsing shadowed ones.
func (c *construct) ShadowingAttributes() []*attribute.T {
	seen := map[string]bool{}
	as := []*attribute.T{}

	add := func(candidates []*attribute.T) {
		for _, a := range candidates {
			k := a.Owner() + "." + a.Name()
			if !seen[k] {
				seen[k] = true
				as = append(as, a)
			}
		}
	}

	add(c.OwnAttributes())

	for _, i := range c.Interfaces() {
		add(i.OwnAttributes())
	}

	if c.parent != nil {
		add(nonPrivateAttributes(c.parent.ShadowingAttributes()))
	}

	return sortAttributes(as)
}

// AllMethods returns the methods visible from c: its own, the non-private
// methods of its interfaces and the non-private methods visible from its
// parent. Of methods with equal identities only the closest is kept.
// Methods with an excluded visibility are dropped afterwards.
func (c *construct) AllMethods(excluded ...visibility.T) []*method.T {
	identities := map[string]bool{}
	ms := []*method.T{}

	add := func(candidates []*method.T) {
		for _, m := range candidates {
			if !identities[m.Identity()] {
				identities[m.Identity()] = true
				ms = append(ms, m)
			}
		}
	}

	add(c.OwnMethods())

	for _, i := range c.Interfaces() {
		add(i.AllMethods(visibility.Private))
	}

	if c.parent != nil {
		add(c.parent.AllMethods(visibility.Private))
	}

	return sortMethods(withoutMethods(ms, excluded))
}

// FindMethodsByName returns c's own methods named name.
func (c *construct) FindMethodsByName(name string) []*method.T {
	ms := []*method.T{}

	for _, m := range c.OwnMethods() {
		if m.Name() == name {
			ms = append(ms, m)
		}
	}

	return ms
}

// FindMethodOverride returns every method reachable from c with the same
// identity as probe, closest first. The probe itself is never returned.
func (c *construct) FindMethodOverride(probe *method.T) []*method.T {
	found := []*method.T{}
	c.collect(probe, true, map[*construct]bool{}, &found)

	return found
}

func (c *construct) collect(probe *method.T, self bool, visited map[*construct]bool, found *[]*method.T) {
	if visited[c] {
		return
	}

	visited[c] = true

	m, ok := c.methods[probe.Identity()]
	if ok && m != probe && m.Owner() != probe.Owner() && m.Same(probe) &&
		(self || m.Visibility() != visibility.Private) {
		*found = append(*found, m)
	}

	for _, i := range c.Interfaces() {
		i.collect(probe, false, visited, found)
	}

	if c.parent != nil {
		c.parent.collect(probe, false, visited, found)
	}
}

func nonPrivateAttributes(as []*attribute.T) []*attribute.T {
	return withoutAttributes(as, []visibility.T{visibility.Private})
}

func withoutAttributes(as []*attribute.T, excluded []visibility.T) []*attribute.T {
	if len(excluded) == 0 {
		return as
	}

	kept := as[:0:0]
	for _, a := range as {
		if !a.Visibility().In(excluded...) {
			kept = append(kept, a)
		}
	}

	return kept
}

func withoutMethods(ms []*method.T, excluded []visibility.T) []*method.T {
	if len(excluded) == 0 {
		return ms
	}

	kept := ms[:0:0]
	for _, m := range ms {
		if !m.Visibility().In(excluded...) {
			kept = append(kept, m)
		}
	}

	return kept
}

func sortAttributes(as []*attribute.T) []*attribute.T {
	sort.SliceStable(as, func(i, j int) bool {
		return as[i].Signature() < as[j].Signature()
	})

	return as
}

func sortMethods(ms []*method.T) []*method.T {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Signature() < ms[j].Signature()
	})

	return ms
}
