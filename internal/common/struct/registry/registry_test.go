// Released under an MIT license. See LICENSE.

package registry

import (
	"testing"

	"github.com/michaelmacinnis/classeditor/internal/common/type/construct"
	"github.com/michaelmacinnis/classeditor/internal/common/type/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r := New()

	require.NoError(t, r.Register(construct.NewClass("Shape")))

	for _, c := range []*construct.T{
		construct.NewClass("Shape"),
		construct.NewInterface("Shape"),
		construct.NewEnum("Shape"),
	} {
		err := r.Register(c)
		assert.True(t, failure.Is(err, failure.DuplicateName))
	}

	assert.Equal(t, construct.Class, r.Get("Shape").Kind())
	assert.Nil(t, r.Get("Circle"))
	assert.Equal(t, 1, r.Size())
}

func TestListing(t *testing.T) {
	r := New()

	for _, c := range []*construct.T{
		construct.NewClass("Zebra"),
		construct.NewInterface("Animal"),
		construct.NewEnum("Color"),
	} {
		require.NoError(t, r.Register(c))
	}

	assert.Equal(t, []string{"Animal", "Color", "Zebra"}, r.Names())
	assert.Equal(t, "interface Animal\nenum Color\nclass Zebra", r.List("\n"))
}

func TestMatch(t *testing.T) {
	r := New()

	for _, name := range []string{"Animal", "Ant", "Bee"} {
		require.NoError(t, r.Register(construct.NewClass(name)))
	}

	cs, err := r.Match("A*")
	require.NoError(t, err)
	assert.Equal(t, "class Animal,class Ant", Join(cs, ","))

	cs, err = r.Match("?ee")
	require.NoError(t, err)
	assert.Len(t, cs, 1)

	_, err = r.Match("[")
	assert.True(t, failure.Is(err, failure.ParseFailure))
}

func TestNilGet(t *testing.T) {
	var r *registry

	assert.Nil(t, r.Get("Anything"))
}
