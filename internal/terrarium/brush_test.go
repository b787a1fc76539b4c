package terrarium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terrarium/internal/material"
)

func TestBrushHotkeysAndRadius(t *testing.T) {
	b := NewBrush()
	assert.Equal(t, material.Dirt, b.Material)

	assert.True(t, b.SelectHotkey('2'))
	assert.Equal(t, material.Water, b.Material)
	assert.True(t, b.SelectHotkey('4'))
	assert.Equal(t, material.Empty, b.Material)
	assert.False(t, b.SelectHotkey('9'))
	assert.False(t, b.SelectHotkey('a'))
	assert.Equal(t, material.Empty, b.Material)

	b.Resize(-100)
	assert.Equal(t, minBrushRadius, b.Radius)
	b.Resize(100)
	assert.Equal(t, maxBrushRadius, b.Radius)
}

func TestBrushApplyPaintsAndErases(t *testing.T) {
	tr, err := New(6, 6)
	require.NoError(t, err)

	b := Brush{Material: material.Water, Radius: 1}
	assert.Equal(t, 4, b.Apply(tr, 3, 3))
	assert.Equal(t, material.Water, tr.Get(2, 2))
	assert.Equal(t, material.Water, tr.Get(3, 3))
	assert.Equal(t, material.Empty, tr.Get(4, 4))

	b.Material = material.Empty
	b.Apply(tr, 3, 3)
	assert.Zero(t, tr.Census()[material.Water])

	b.Material = material.Wall
	assert.Zero(t, b.Apply(tr, 0, 0))
}
