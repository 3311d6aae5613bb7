package probemap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mastercactapus/gcanon/coord"
)

func TestMap_SurfaceZ(t *testing.T) {
	// probes indicate a rise of 30mm over 100mm of X travel
	probes := []coord.Point{
		{X: -700, Y: -450, Z: -80},
		{X: -700, Y: -550, Z: -80},

		{X: -600, Y: -450, Z: -50},
		{X: -600, Y: -550, Z: -50},
	}

	m, err := New(probes)
	require.NoError(t, err)

	z, ok := m.SurfaceZ(-650, -500)
	assert.True(t, ok)
	assert.InDelta(t, -65, z, 1e-9)

	z, ok = m.SurfaceZ(-700, -450)
	assert.True(t, ok)
	assert.InDelta(t, -80, z, 1e-9)

	_, ok = m.SurfaceZ(0, 0)
	assert.False(t, ok)
}

func TestMap_NeedsThreePoints(t *testing.T) {
	_, err := New([]coord.Point{{X: 1}, {X: 2}})
	assert.Error(t, err)
}

func TestMap_RejectsCollinearPoints(t *testing.T) {
	_, err := New([]coord.Point{
		{X: 0, Z: 1},
		{X: 1, Z: 2},
		{X: 2, Z: 3},
	})
	assert.Error(t, err)
}

func TestMap_EdgeAndVertexHits(t *testing.T) {
	m, err := New([]coord.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 10},
		{X: 0, Y: 10, Z: 20},
	})
	require.NoError(t, err)

	z, ok := m.SurfaceZ(0, 0)
	assert.True(t, ok)
	assert.InDelta(t, 0, z, 1e-9)

	// midpoint of the hypotenuse
	z, ok = m.SurfaceZ(5, 5)
	assert.True(t, ok)
	assert.InDelta(t, 15, z, 1e-9)
}

func TestReadSamples(t *testing.T) {
	log := `1.000000 2.000000 -3.000000 0.000000 0.000000 0.000000 0.000000 0.000000 0.000000
4.500000 6.000000 -2.000000 0.000000 0.000000 0.000000 0.000000 0.000000 0.000000

`
	pts, err := ReadSamples(strings.NewReader(log))
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.Equal(t, coord.Point{X: 1, Y: 2, Z: -3}, pts[0])
	assert.Equal(t, coord.Point{X: 4.5, Y: 6, Z: -2}, pts[1])
}

func TestReadSamples_Malformed(t *testing.T) {
	_, err := ReadSamples(strings.NewReader("1 2 three\n"))
	assert.Error(t, err)
}
