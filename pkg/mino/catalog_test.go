package mino

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	require.Equal(t, 7, Count())

	names := []string{"L", "J", "O", "I", "Z", "S", "T"}
	for i, name := range names {
		d, err := DefinitionAt(i)
		require.NoError(t, err)

		assert.Equal(t, name, d.Name)
		assert.Equal(t, Block(i+1), d.Color)
		assert.Len(t, d.Mask.Cells(), 4, "piece %s", name)

		w, h := d.Mask.Size()
		assert.LessOrEqual(t, w, 4)
		assert.LessOrEqual(t, h, 4)

		found, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, i, found)
	}
}

func TestCatalogOutOfRange(t *testing.T) {
	for _, i := range []int{-1, 7, 100} {
		_, err := DefinitionAt(i)
		assert.True(t, errors.Is(err, ErrOutOfRange), "index %d: got %v", i, err)
	}

	_, err := Lookup("Q")
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestCatalogIsReadOnly(t *testing.T) {
	d, err := DefinitionAt(0)
	require.NoError(t, err)

	d.Mask.cells[0] = !d.Mask.cells[0]

	again, err := DefinitionAt(0)
	require.NoError(t, err)
	assert.False(t, d.Mask.Equal(again.Mask))
}
