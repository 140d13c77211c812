// Released under an MIT license. See LICENSE.

// Package typ defines the interface shared by everything that can be used
// as an attribute, parameter or return type.
package typ

// I (typ) is a type. Name returns its canonical name.
type I interface {
	Name() string
}

// Names returns the canonical names of ts.
func Names(ts []I) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name()
	}

	return names
}

// Same reports whether a and b name the same type.
func Same(a, b I) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Name() == b.Name()
}
