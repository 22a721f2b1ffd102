package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliHaider728/royal-palm-map-clone/internal/inventory"
	"github.com/AliHaider728/royal-palm-map-clone/internal/mapview"
	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

func newMapService(f *fixture) *MapService {
	return NewMapService(
		records.NewStaticSource(inventory.Plots()),
		records.NewPropertySource(f.property),
		inventory.Landmarks(),
		mapview.DefaultConfig(),
		NewAnalyticsService(f.views, f.property),
	)
}

func TestPlotSnapshot(t *testing.T) {
	svc := newMapService(newFixture(t, nil))
	ctx := context.Background()

	all, err := svc.Snapshot(ctx, records.VariantPlots, "", nil)
	require.NoError(t, err)
	assert.Len(t, all.Markers, len(inventory.Plots()))
	assert.Len(t, all.Landmarks, 5)
	assert.Equal(t, inventory.Zoom, all.Config.Zoom)

	blockA, err := svc.Snapshot(ctx, records.VariantPlots, "", utils.StrPtr("A"))
	require.NoError(t, err)
	assert.Len(t, blockA.Markers, 7)
	assert.Equal(t, "A", *blockA.Category)

	one, err := svc.Snapshot(ctx, records.VariantPlots, "  a-1 ", nil)
	require.NoError(t, err)
	require.Len(t, one.Markers, 1)
	assert.Equal(t, "A-1", one.Markers[0].ID)
	assert.Equal(t, "a-1", one.Query)
}

func TestSnapshotRejectsBadInput(t *testing.T) {
	svc := newMapService(newFixture(t, nil))
	ctx := context.Background()

	_, err := svc.Snapshot(ctx, records.VariantPlots, "", utils.StrPtr("Z"))
	assert.ErrorIs(t, err, utils.ErrInvalidCategory)
	assert.Equal(t, http.StatusBadRequest, appErrStatus(t, err))

	_, err = svc.Snapshot(ctx, records.VariantProperties, "", utils.StrPtr("A"))
	assert.ErrorIs(t, err, utils.ErrInvalidCategory)

	_, err = svc.Snapshot(ctx, records.Variant("boats"), "", nil)
	assert.ErrorIs(t, err, utils.ErrInvalidVariant)
}

func TestPropertySnapshotFiltersByListingType(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	owner, _ := f.dealer(t, "map@example.com")

	_, err := f.property.Create(ctx, owner, createReq("Villa", utils.Ptr(32.16), utils.Ptr(74.18)))
	require.NoError(t, err)
	rent := createReq("Flat", utils.Ptr(32.17), utils.Ptr(74.19))
	rent.ListingType = "rent"
	rent.Price = 80000
	_, err = f.property.Create(ctx, owner, rent)
	require.NoError(t, err)
	_, err = f.property.Create(ctx, owner, createReq("Unplaced", nil, nil))
	require.NoError(t, err)

	svc := newMapService(f)
	all, err := svc.Snapshot(ctx, records.VariantProperties, "", nil)
	require.NoError(t, err)
	assert.Len(t, all.Markers, 2)

	rentals, err := svc.Snapshot(ctx, records.VariantProperties, "", utils.StrPtr("rent"))
	require.NoError(t, err)
	require.Len(t, rentals.Markers, 1)
	assert.Equal(t, "PKR 80K/mo", rentals.Markers[0].Label)
}

func TestSelectPlot(t *testing.T) {
	f := newFixture(t, nil)
	svc := newMapService(f)

	resp, err := svc.Select(context.Background(), records.VariantPlots, "B-2")
	require.NoError(t, err)
	assert.Equal(t, "B", resp.Record.Block)
	assert.Equal(t, "https://wa.me/"+utils.FallbackDealerPhone+"?text=Interested+in+Block+B+Plot+2", resp.Contact.WhatsApp)
	assert.Contains(t, resp.PopupHTML, "Block B")

	_, err = svc.Select(context.Background(), records.VariantPlots, "Z-9")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	// plots are never logged as views
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, f.views.logged())
}

func TestSelectListingLogsView(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	owner, _ := f.dealer(t, "sel@example.com")
	p, err := f.property.Create(ctx, owner, createReq("Villa", utils.Ptr(32.16), utils.Ptr(74.18)))
	require.NoError(t, err)

	resp, err := newMapService(f).Select(ctx, records.VariantProperties, p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Villa", resp.Record.Title)

	assert.Eventually(t, func() bool {
		ids := f.views.logged()
		return len(ids) == 1 && ids[0] == p.ID
	}, time.Second, 10*time.Millisecond)
}

func TestSidebar(t *testing.T) {
	sb := newMapService(newFixture(t, nil)).Sidebar()
	assert.Equal(t, utils.OrganizationName, sb.Title)
	assert.Len(t, sb.Legend, len(records.Categories()))
	assert.Equal(t, inventory.Blocks(), sb.Blocks)
	assert.Len(t, sb.Landmarks, 5)
	assert.Contains(t, sb.Disclaimer, "reference only")
}
