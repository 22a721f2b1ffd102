package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotsUniqueIDs(t *testing.T) {
	plots := Plots()
	require.Len(t, plots, 38)

	seen := map[string]bool{}
	for _, p := range plots {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestPlotOffsets(t *testing.T) {
	plots := Plots()
	first := plots[0]
	assert.Equal(t, "A-1", first.ID)
	assert.InDelta(t, CenterLat-0.004, first.Lat, 1e-9)
	assert.InDelta(t, CenterLng-0.002, first.Lng, 1e-9)

	// A-2 sits 0.3/0.2 grid units from the block origin.
	assert.InDelta(t, CenterLat-0.004+0.0003, plots[1].Lat, 1e-9)
	assert.InDelta(t, CenterLng-0.002+0.0002, plots[1].Lng, 1e-9)
}

func TestBlocksAndLandmarks(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H"}, Blocks())
	assert.Len(t, Landmarks(), 5)
}
