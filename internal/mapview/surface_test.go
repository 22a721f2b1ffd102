package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliHaider728/royal-palm-map-clone/internal/inventory"
	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

func TestInitializeIsIdempotent(t *testing.T) {
	c := NewContainer("map")
	s := NewSurface(DefaultConfig(), nil)

	require.NoError(t, s.Initialize(c))
	layers := s.LayerCount()
	require.NoError(t, s.Initialize(c))

	assert.Equal(t, 1, c.Instances())
	assert.Equal(t, layers, s.LayerCount())
	assert.Equal(t, 3, layers) // tiles, landmarks, records
}

func TestInitializeSetsBaseLayer(t *testing.T) {
	c := NewContainer("map")
	s := NewSurface(DefaultConfig(), nil)
	require.NoError(t, s.Initialize(c))

	s.mu.Lock()
	m := s.m
	s.mu.Unlock()

	assert.Equal(t, LatLng{Lat: 32.1617, Lng: 74.1868}, m.Center)
	assert.Equal(t, 15, m.Zoom)
	require.NotNil(t, m.ZoomControl)
	assert.Equal(t, "bottomright", m.ZoomControl.Position)

	tiles, ok := m.Layers()[0].(*TileLayer)
	require.True(t, ok)
	assert.Equal(t, OSMTileURL, tiles.URLTemplate)
	assert.Equal(t, 19, tiles.MaxZoom)
	assert.Contains(t, tiles.Attribution, "OpenStreetMap")
}

func TestSecondSurfaceCannotShareContainer(t *testing.T) {
	c := NewContainer("map")
	first := NewSurface(DefaultConfig(), nil)
	require.NoError(t, first.Initialize(c))

	second := NewSurface(DefaultConfig(), nil)
	assert.ErrorIs(t, second.Initialize(c), ErrContainerInUse)
	assert.Equal(t, 1, c.Instances())

	first.Teardown()
	assert.NoError(t, second.Initialize(c))
	second.Teardown()
}

func TestRefreshBeforeInitializeIsNoop(t *testing.T) {
	s := NewSurface(DefaultConfig(), nil)
	assert.NotPanics(t, func() {
		s.Refresh([]records.LocationRecord{listing("1", "x", "", records.CategoryBuy, 1)})
	})
	assert.Equal(t, 0, s.MarkerCount())
	assert.Empty(t, s.Snapshot().Markers)
}

func TestRefreshRebuildsOnlyDynamicMarkers(t *testing.T) {
	s, err := Open(NewContainer("map"), DefaultConfig(), inventory.Landmarks(), nil)
	require.NoError(t, err)
	defer s.Close()

	require.Equal(t, 5, s.LandmarkCount())

	first := []records.LocationRecord{
		listing("1", "a", "", records.CategoryBuy, 1),
		listing("2", "b", "", records.CategoryRent, 1),
		listing("3", "c", "", records.CategoryRent, 1),
	}
	s.Refresh(first)
	assert.Equal(t, 3, s.MarkerCount())
	assert.Equal(t, 5, s.LandmarkCount())

	s.Refresh(first[:1])
	assert.Equal(t, 1, s.MarkerCount())
	assert.Equal(t, 5, s.LandmarkCount())

	s.Refresh(nil)
	assert.Equal(t, 0, s.MarkerCount())
	assert.Equal(t, 5, s.LandmarkCount())
}

func TestLandmarksDrawnOnceAndNotInteractive(t *testing.T) {
	s, err := Open(NewContainer("map"), DefaultConfig(), inventory.Landmarks(), nil)
	require.NoError(t, err)
	defer s.Close()

	s.DrawStaticLandmarks(inventory.Landmarks())
	assert.Equal(t, 5, s.LandmarkCount())

	for _, lm := range s.Snapshot().Landmarks {
		assert.False(t, lm.Interactive)
	}
}

func TestMarkerClickReportsRecord(t *testing.T) {
	var got []string
	s, err := Open(NewContainer("map"), DefaultConfig(), nil, func(r records.LocationRecord) {
		got = append(got, r.ID)
	})
	require.NoError(t, err)
	defer s.Close()

	s.Refresh([]records.LocationRecord{
		plotRecord("A-1", "A", utils.Ptr(32.10), utils.Ptr(74.10), records.CategoryAvailable),
	})
	m := s.Marker("A-1")
	require.NotNil(t, m)
	assert.Equal(t, LatLng{Lat: 32.10, Lng: 74.10}, m.Position)
	assert.Equal(t, "#22c55e", m.Color)

	assert.True(t, m.Click())
	assert.Equal(t, []string{"A-1"}, got)
}

func TestRefreshSkipsRecordsWithoutCoordinates(t *testing.T) {
	s, err := Open(NewContainer("map"), DefaultConfig(), nil, nil)
	require.NoError(t, err)
	defer s.Close()

	s.Refresh([]records.LocationRecord{
		plotRecord("A-2", "A", nil, utils.Ptr(74.11), records.CategorySold),
	})
	assert.Equal(t, 0, s.MarkerCount())
}

func TestTeardownIsSafeToRepeat(t *testing.T) {
	c := NewContainer("map")
	s, err := Open(c, DefaultConfig(), inventory.Landmarks(), nil)
	require.NoError(t, err)

	s.Teardown()
	s.Teardown()
	assert.NoError(t, s.Close())

	assert.Equal(t, 0, c.Instances())
	assert.False(t, s.Initialized())
	assert.ErrorIs(t, s.Initialize(c), ErrSurfaceClosed)
	assert.Equal(t, 0, s.LayerCount())
}

func TestDescribeMatchesRefresh(t *testing.T) {
	recs := []records.LocationRecord{
		listing("1", "Villa", "", records.CategoryBuy, 2e7),
		listing("2", "Shop", "", records.CategoryRent, 80000),
	}
	k := "rent"
	descs := Describe(recs, "", &k)
	require.Len(t, descs, 1)
	assert.Equal(t, "2", descs[0].ID)
	assert.Equal(t, "PKR 80K/mo", descs[0].Label)
	assert.Equal(t, "price-marker reserved", descs[0].ClassName)

	s, err := Open(NewContainer("map"), DefaultConfig(), nil, nil)
	require.NoError(t, err)
	defer s.Close()
	s.Refresh(Filter(recs, "", &k))
	assert.Equal(t, descs, s.Snapshot().Markers)
}
