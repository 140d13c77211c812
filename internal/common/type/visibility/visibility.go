// Released under an MIT license. See LICENSE.

// Package visibility provides the access modifier of attributes and methods.
package visibility

import (
	"strings"

	"github.com/michaelmacinnis/classeditor/internal/common/type/failure"
)

// T (visibility) is an access modifier. The order of the constants is the
// filtering precedence: private, protected, default, public.
type T int

type visibility = T

const (
	Private visibility = iota
	Protected
	Default
	Public
)

var text = [...]string{ //nolint:gochecknoglobals
	Private:   "private",
	Protected: "protected",
	Default:   "",
	Public:    "public",
}

// Parse returns the visibility for token. Surrounding blanks are ignored and
// the empty token is Default.
func Parse(token string) (visibility, error) {
	token = strings.TrimSpace(token)
	for v, s := range text {
		if s == token {
			return visibility(v), nil
		}
	}

	return Default, failure.Newf(failure.ParseFailure, "unknown visibility %q", token)
}

// In reports whether v is one of vs.
func (v visibility) In(vs ...visibility) bool {
	for _, o := range vs {
		if v == o {
			return true
		}
	}

	return false
}

// String returns the canonical text of v. Default is the empty string.
func (v visibility) String() string {
	if v < Private || v > Public {
		return ""
	}

	return text[v]
}
