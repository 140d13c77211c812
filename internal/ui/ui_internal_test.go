// Released under an MIT license. See LICENSE.

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type words struct{}

func (words) Commands() []string {
	return []string{"list-methods", "add-method", "list-all-methods", "quit"}
}

func (words) Names() []string {
	return []string{"Animal", "Ant", "Dog"}
}

func TestCompleteCommand(t *testing.T) {
	head, cs, tail := complete(words{}, "list", 4)

	assert.Empty(t, head)
	assert.Equal(t, []string{"list-all-methods", "list-methods"}, cs)
	assert.Empty(t, tail)
}

func TestCompleteName(t *testing.T) {
	head, cs, tail := complete(words{}, "add-extends Dog An", 18)

	assert.Equal(t, "add-extends Dog ", head)
	assert.Equal(t, []string{"Animal", "Ant"}, cs)
	assert.Empty(t, tail)

	head, cs, tail = complete(words{}, "find-method-by-name Do::bark", 22)

	assert.Equal(t, "find-method-by-name ", head)
	assert.Equal(t, []string{"Dog"}, cs)
	assert.Equal(t, "::bark", tail)
}
