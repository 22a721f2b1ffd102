// Package explorer is the filter/selection controller behind the map page:
// it owns the query and category filter, fetches records, and keeps the map
// surface and selection in step with them.
package explorer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/AliHaider728/royal-palm-map-clone/internal/debounce"
	"github.com/AliHaider728/royal-palm-map-clone/internal/mapview"
	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
	"github.com/AliHaider728/royal-palm-map-clone/internal/selection"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

var (
	ErrUnmounted     = errors.New("explorer_unmounted")
	ErrUnknownRecord = errors.New("unknown_record")
)

type Options struct {
	Variant   records.Variant
	Source    records.Source
	Landmarks []models.Landmark
	MapConfig mapview.Config
	Notifier  selection.AnalyticsNotifier

	// Remote sources are refetched (debounced) when the filters change.
	// Static sources are fetched once and filtered in memory.
	Remote   bool
	Debounce time.Duration

	// OnError receives fetch failures from debounced reloads.
	OnError func(error)
}

// fingerprint identifies one rendered state.
type fingerprint struct {
	recordsGen uint64
	query      string
	category   string
	hasCat     bool
}

type Explorer struct {
	opts      Options
	surface   *mapview.Surface
	selection *selection.Controller
	debouncer *debounce.Debouncer

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	query      string
	category   *string
	recs       []records.LocationRecord
	recordsGen uint64
	fetchGen   uint64
	lastFP     *fingerprint
	unmounted  bool

	unmountOnce sync.Once
}

// Mount opens a map surface on c, draws the landmarks and performs the
// first fetch. A failed first fetch unmounts and returns the error.
func Mount(ctx context.Context, c *mapview.Container, opts Options) (*Explorer, error) {
	if opts.Variant == "" {
		opts.Variant = records.VariantPlots
	}
	if opts.MapConfig == (mapview.Config{}) {
		opts.MapConfig = mapview.DefaultConfig()
	}

	e := &Explorer{
		opts:      opts,
		selection: selection.NewController(opts.Notifier),
		debouncer: debounce.New(opts.Debounce),
	}
	e.ctx, e.cancel = context.WithCancel(context.Background())

	surface, err := mapview.Open(c, opts.MapConfig, opts.Landmarks, e.selection.Select)
	if err != nil {
		e.cancel()
		return nil, err
	}
	e.surface = surface

	if err := e.Reload(ctx); err != nil {
		e.Unmount()
		return nil, err
	}
	return e, nil
}

// SetQuery updates the search string.
func (e *Explorer) SetQuery(q string) {
	e.mu.Lock()
	if e.unmounted {
		e.mu.Unlock()
		return
	}
	e.query = q
	e.mu.Unlock()
	e.filtersChanged()
}

// SetCategory sets the block (plots) or listing type (properties) filter;
// nil clears it.
func (e *Explorer) SetCategory(k *string) {
	e.mu.Lock()
	if e.unmounted {
		e.mu.Unlock()
		return
	}
	if k != nil {
		v := *k
		k = &v
	}
	e.category = k
	e.mu.Unlock()
	e.filtersChanged()
}

func (e *Explorer) filtersChanged() {
	if !e.opts.Remote {
		e.render()
		return
	}
	e.debouncer.Trigger(func() {
		err := e.Reload(e.ctx)
		if err != nil && !errors.Is(err, ErrUnmounted) && e.opts.OnError != nil {
			e.opts.OnError(err)
		}
	})
}

// Reload fetches the record set for the current filters. Only the most
// recently started fetch may replace the records; older responses are
// dropped. On error the rendered markers are kept.
func (e *Explorer) Reload(ctx context.Context) error {
	e.mu.Lock()
	if e.unmounted {
		e.mu.Unlock()
		return ErrUnmounted
	}
	e.fetchGen++
	gen := e.fetchGen
	f := e.sourceFilterLocked()
	e.mu.Unlock()

	recs, err := e.opts.Source.ListRecords(ctx, f)

	e.mu.Lock()
	if gen != e.fetchGen || e.unmounted {
		e.mu.Unlock()
		utils.Logger.Debugf("Dropping stale fetch generation %d", gen)
		return nil
	}
	if err != nil {
		e.mu.Unlock()
		utils.Logger.WithError(err).Warn("Record fetch failed; keeping current markers")
		return err
	}
	e.recs = recs
	e.recordsGen++
	e.mu.Unlock()

	e.render()
	return nil
}

func (e *Explorer) sourceFilterLocked() repositories.PropertyFilter {
	if !e.opts.Remote {
		return repositories.PropertyFilter{}
	}
	f := repositories.PropertyFilter{Search: e.query}
	if e.category != nil && e.opts.Variant == records.VariantProperties {
		f.ListingType = *e.category
	}
	return f
}

// render rebuilds the markers when (records, query, category) changed
// since the last rebuild.
func (e *Explorer) render() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.unmounted || !e.surface.Initialized() {
		return
	}

	fp := fingerprint{recordsGen: e.recordsGen, query: e.query}
	if e.category != nil {
		fp.category, fp.hasCat = *e.category, true
	}
	if e.lastFP != nil && *e.lastFP == fp {
		return
	}
	e.surface.Refresh(mapview.Filter(e.recs, e.query, e.category))
	e.lastFP = &fp
}

// Select programmatically selects a record from the current set.
func (e *Explorer) Select(id string) error {
	e.mu.Lock()
	var found *records.LocationRecord
	for i := range e.recs {
		if e.recs[i].ID == id {
			found = &e.recs[i]
			break
		}
	}
	var rec records.LocationRecord
	if found != nil {
		rec = *found
	}
	e.mu.Unlock()

	if found == nil {
		return ErrUnknownRecord
	}
	e.selection.Select(rec)
	return nil
}

// Click simulates a click on the marker for id. It reports false when no
// interactive marker exists for it.
func (e *Explorer) Click(id string) bool {
	m := e.surface.Marker(id)
	if m == nil {
		return false
	}
	return m.Click()
}

func (e *Explorer) Dismiss() { e.selection.Dismiss() }

func (e *Explorer) Selected() *records.LocationRecord { return e.selection.Current() }

func (e *Explorer) Selection() *selection.Controller { return e.selection }

func (e *Explorer) Snapshot() mapview.Snapshot { return e.surface.Snapshot() }

// Records returns the current unfiltered record set.
func (e *Explorer) Records() []records.LocationRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]records.LocationRecord(nil), e.recs...)
}

// Settle waits for pending debounced reloads and analytics calls.
func (e *Explorer) Settle() {
	e.debouncer.Wait()
	e.selection.Wait()
}

// Unmount cancels pending work, clears the selection and tears down the
// surface. Safe to call more than once.
func (e *Explorer) Unmount() {
	e.unmountOnce.Do(func() {
		e.debouncer.Stop()
		e.mu.Lock()
		e.unmounted = true
		e.mu.Unlock()
		e.cancel()
		e.debouncer.Wait()

		e.selection.Dismiss()
		e.selection.Wait()
		if e.surface != nil {
			e.surface.Teardown()
		}
	})
}
