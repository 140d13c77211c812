// Released under an MIT license. See LICENSE.

// Package finality provides the final modifier of attributes and methods.
package finality

import (
	"strings"

	"github.com/michaelmacinnis/classeditor/internal/common/type/failure"
)

// T (finality) records whether a member is final.
type T bool

type finality = T

const (
	NotFinal finality = false
	Final    finality = true
)

// Parse returns the finality for token. The empty token is NotFinal.
func Parse(token string) (finality, error) {
	switch strings.TrimSpace(token) {
	case "":
		return NotFinal, nil
	case "final":
		return Final, nil
	}

	return NotFinal, failure.Newf(failure.ParseFailure, "unknown finality %q", token)
}

// String returns "final" or the empty string.
func (f finality) String() string {
	if f {
		return "final"
	}

	return ""
}
