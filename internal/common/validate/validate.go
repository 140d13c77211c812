// Released under an MIT license. See LICENSE.

// Package validate checks names before they enter the type hierarchy.
package validate

import (
	"regexp"

	"github.com/michaelmacinnis/classeditor/internal/common/type/failure"
)

const (
	// ConstructPattern matches construct names.
	ConstructPattern = `[A-Z][a-zA-Z0-9]*`
	// MemberPattern matches attribute and method names.
	MemberPattern = `[a-z][a-zA-Z0-9]*`
	// TypePattern matches anything that may name a type.
	TypePattern = `[a-zA-Z0-9]+`
)

//nolint:gochecknoglobals
var (
	constructName = regexp.MustCompile(`^` + ConstructPattern + `$`)
	memberName    = regexp.MustCompile(`^` + MemberPattern + `$`)
)

// ConstructName returns a failure.ParseFailure if s is not a valid construct name.
func ConstructName(s string) error {
	if !constructName.MatchString(s) {
		return failure.Newf(failure.ParseFailure, "invalid construct name %q", s)
	}

	return nil
}

// MemberName returns a failure.ParseFailure if s is not a valid member name.
func MemberName(s string) error {
	if !memberName.MatchString(s) {
		return failure.Newf(failure.ParseFailure, "invalid member name %q", s)
	}

	return nil
}
