// Released under an MIT license. See LICENSE.

package construct

import (
	"github.com/michaelmacinnis/classeditor/internal/common/type/failure"
	"github.com/michaelmacinnis/classeditor/internal/common/type/visibility"
)

// Ancestors adds c, the interfaces it implements and, transitively, those
// of its parents to seen and returns it. A node that is already in seen
// yields a failure.Cycle. Interfaces and enums contribute nothing.
func (c *construct) Ancestors(seen map[*construct]bool) (map[*construct]bool, error) {
	if seen == nil {
		seen = map[*construct]bool{}
	}

	for k := c; k != nil && k.kind == Class; k = k.parent {
		if seen[k] {
			return seen, failure.Newf(failure.Cycle, "%s is already part of the type hierarchy", k.name)
		}

		seen[k] = true

		for _, i := range k.Interfaces() {
			if seen[i] {
				return seen, failure.Newf(failure.Cycle, "%s is already part of the type hierarchy", i.name)
			}

			seen[i] = true
		}
	}

	return seen, nil
}

// TryExtend makes parent the parent class of c. It fails if either is not
// a class, if c already has a parent or if the link would revisit a node
// of either hierarchy.
func (c *construct) TryExtend(parent *construct) error {
	switch {
	case c.kind != Class:
		return failure.Newf(failure.InvalidRelation, "%s %s cannot extend", c.kind, c.name)
	case parent.kind != Class:
		return failure.Newf(failure.InvalidRelation, "%s %s cannot be extended", parent.kind, parent.name)
	case c.parent != nil:
		return failure.Newf(failure.InvalidRelation, "%s already extends %s", c.name, c.parent.name)
	}

	mine, err := c.Ancestors(nil)
	if err != nil {
		return failure.Wrap(failure.InvalidRelation, "broken hierarchy", err)
	}

	if mine[parent] {
		return failure.Newf(failure.InvalidRelation, "%s is already an ancestor of %s", parent.name, c.name)
	}

	theirs, err := parent.Ancestors(nil)
	if err != nil {
		return failure.Wrap(failure.InvalidRelation, "broken hierarchy", err)
	}

	if theirs[c] {
		return failure.Newf(failure.InvalidRelation, "%s is an ancestor of %s", c.name, parent.name)
	}

	// The prospective chain: c and its interfaces followed by parent's.
	if _, err = parent.Ancestors(mine); err != nil {
		return failure.Wrap(failure.InvalidRelation, "would repeat a node", err)
	}

	c.parent = parent

	return nil
}

// TryImplement records that the class c implements iface. Every
// non-private method of iface must already be visible, by identity, among
// the non-private methods of c. Implementing the same interface again
// succeeds without change.
func (c *construct) TryImplement(iface *construct) error {
	switch {
	case c.kind != Class:
		return failure.Newf(failure.InvalidRelation, "%s %s cannot implement", c.kind, c.name)
	case iface.kind != Interface:
		return failure.Newf(failure.InvalidRelation, "%s %s is not an interface", iface.kind, iface.name)
	case c.interfaces[iface.name] == iface:
		return nil
	}

	have := map[string]bool{}
	for _, m := range c.AllMethods(visibility.Private) {
		have[m.Identity()] = true
	}

	for _, m := range iface.AllMethods(visibility.Private) {
		if !have[m.Identity()] {
			return failure.Newf(failure.InvalidRelation, "%s does not implement %s", c.name, m.Signature())
		}
	}

	c.interfaces[iface.name] = iface

	return nil
}
