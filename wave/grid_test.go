package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridVertexLayout(t *testing.T) {
	g := NewGrid(4, 8, 8)
	require.Equal(t, 5, g.Side())
	require.Len(t, g.Heights, 25)

	x, z := g.Vertex(0, 0)
	assert.Equal(t, -4.0, x)
	assert.Equal(t, -4.0, z)
	x, z = g.Vertex(4, 4)
	assert.Equal(t, 4.0, x)
	assert.Equal(t, 4.0, z)
	assert.Equal(t, 6, g.Index(1, 1))
}

func TestGridUpdateMatchesField(t *testing.T) {
	g := NewGrid(8, 40, 8)
	g.Update(1.25)
	for j := 0; j < g.Side(); j++ {
		for i := 0; i < g.Side(); i++ {
			x, z := g.Vertex(i, j)
			assert.Equal(t, Height(x, z, 1.25), g.Heights[g.Index(i, j)])
			assert.Equal(t, Color(x, z, 1.25), g.Colors[g.Index(i, j)])
		}
	}
}

func TestGridNormalCadence(t *testing.T) {
	g := NewGrid(4, 16, 8)
	refreshed := 0
	for k := 0; k < 24; k++ {
		if g.Update(float64(k) / 60) {
			refreshed++
		}
	}
	// Updates 0, 8, 16
	assert.Equal(t, 3, refreshed)
	assert.Equal(t, uint64(3), g.NormalsVersion())
	assert.Equal(t, uint64(24), g.Updates())
}

func TestGridNormalsUnitUpward(t *testing.T) {
	g := NewGrid(6, 30, 1)
	g.Update(0.5)
	for _, n := range g.Normals {
		assert.InDelta(t, 1.0, n.Len(), 1e-9)
		assert.Greater(t, n.Y(), 0.0)
	}
}

func TestGridNearest(t *testing.T) {
	g := NewGrid(4, 8, 1)
	idx, ok := g.Nearest(-4, -4)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = g.Nearest(0.9, 0)
	require.True(t, ok)
	assert.Equal(t, g.Index(2, 2), idx)

	idx, ok = g.Nearest(1.1, 0)
	require.True(t, ok)
	assert.Equal(t, g.Index(3, 2), idx)

	_, ok = g.Nearest(4.1, 0)
	assert.False(t, ok)
}
