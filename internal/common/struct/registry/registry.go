// Released under an MIT license. See LICENSE.

// Package registry provides the name to construct mapping of a session.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/classeditor/internal/common/type/construct"
	"github.com/michaelmacinnis/classeditor/internal/common/type/failure"
)

// T (registry) maps names to constructs. Classes, interfaces and enums
// share one namespace. Constructs are never removed.
type T struct {
	sync.RWMutex
	m map[string]*construct.T
}

type registry = T

// New creates a new registry.
func New() *registry {
	return &registry{m: map[string]*construct.T{}}
}

// Register adds c unless a construct with the same name exists.
func (r *registry) Register(c *construct.T) error {
	r.Lock()
	defer r.Unlock()

	if existing, ok := r.m[c.Name()]; ok {
		return failure.Newf(failure.DuplicateName, "%s is already defined as %s", c.Name(), existing.Kind())
	}

	r.m[c.Name()] = c

	return nil
}

// Get retrieves the construct named k, or nil.
func (r *registry) Get(k string) *construct.T {
	if r == nil {
		return nil
	}

	r.RLock()
	defer r.RUnlock()

	return r.m[k]
}

// All returns every construct in ascending name order.
func (r *registry) All() []*construct.T {
	r.RLock()
	defer r.RUnlock()

	cs := make([]*construct.T, 0, len(r.m))
	for _, c := range r.m {
		cs = append(cs, c)
	}

	sort.Slice(cs, func(i, j int) bool {
		return cs[i].Name() < cs[j].Name()
	})

	return cs
}

// Match returns the constructs whose names match the glob pattern, in
// ascending name order.
func (r *registry) Match(pattern string) ([]*construct.T, error) {
	matched := []*construct.T{}

	for _, c := range r.All() {
		ok, err := adapted.Match(pattern, c.Name())
		if err != nil {
			return nil, failure.Wrap(failure.ParseFailure, "bad pattern "+pattern, err)
		}

		if ok {
			matched = append(matched, c)
		}
	}

	return matched, nil
}

// List returns the long form of every construct, in ascending name order,
// joined by separator.
func (r *registry) List(separator string) string {
	return Join(r.All(), separator)
}

// Names returns the names of every construct in ascending order.
func (r *registry) Names() []string {
	cs := r.All()

	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name()
	}

	return names
}

// Size returns the number of constructs in the registry r.
func (r *registry) Size() int {
	r.RLock()
	defer r.RUnlock()

	return len(r.m)
}

// Join returns the long forms of cs joined by separator.
func Join(cs []*construct.T, separator string) string {
	forms := make([]string, len(cs))
	for i, c := range cs {
		forms[i] = c.LongName()
	}

	return strings.Join(forms, separator)
}
