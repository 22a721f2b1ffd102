// Package mapview owns the map surface: one map instance per container, a
// fixed landmark layer, and a dynamic marker group rebuilt from records.
package mapview

import (
	"sync"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// SelectFunc receives the record behind a clicked marker.
type SelectFunc func(records.LocationRecord)

type Surface struct {
	cfg      Config
	onSelect SelectFunc

	mu             sync.Mutex
	container      *Container
	m              *Map
	markers        *MarkerGroup
	landmarks      *MarkerGroup
	landmarksDrawn bool
	closed         bool
}

func NewSurface(cfg Config, onSelect SelectFunc) *Surface {
	return &Surface{cfg: cfg, onSelect: onSelect}
}

// Open initializes a surface on c and draws the landmarks. Close it (or
// call Teardown) on every exit path.
func Open(c *Container, cfg Config, landmarks []models.Landmark, onSelect SelectFunc) (*Surface, error) {
	s := NewSurface(cfg, onSelect)
	if err := s.Initialize(c); err != nil {
		return nil, err
	}
	s.DrawStaticLandmarks(landmarks)
	return s, nil
}

// Initialize creates the map on c. Calling it again while initialized is a
// no-op.
func (s *Surface) Initialize(c *Container) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSurfaceClosed
	}
	if s.m != nil {
		return nil
	}

	m := &Map{Center: s.cfg.Center, Zoom: s.cfg.Zoom}
	if err := c.bind(m); err != nil {
		return err
	}

	m.AddLayer(&TileLayer{
		URLTemplate: s.cfg.TileURL,
		Attribution: s.cfg.Attribution,
		MaxZoom:     s.cfg.MaxZoom,
	})
	// default control is off; re-add it in the configured corner
	m.ZoomControl = &ZoomControl{Position: s.cfg.ZoomControlPosition}

	s.landmarks = NewMarkerGroup("landmarks")
	s.markers = NewMarkerGroup("records")
	m.AddLayer(s.landmarks)
	m.AddLayer(s.markers)

	s.container = c
	s.m = m
	utils.Logger.Debugf("Map surface initialized on container %s", c.ID)
	return nil
}

func (s *Surface) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m != nil
}

// DrawStaticLandmarks places one non-interactive label per landmark. It runs
// once per surface; filter changes never touch these markers.
func (s *Surface) DrawStaticLandmarks(lms []models.Landmark) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil || s.landmarksDrawn {
		return
	}
	for _, lm := range lms {
		s.landmarks.Add(&Marker{
			RecordID:    lm.Name,
			Position:    LatLng{Lat: lm.Lat, Lng: lm.Lng},
			Label:       lm.Name,
			Color:       LandmarkColor(lm.Type),
			ClassName:   "plot-label",
			Interactive: false,
		})
	}
	s.landmarksDrawn = true
}

// Refresh clears the dynamic marker group and rebuilds one marker per
// record. Before Initialize it does nothing.
func (s *Surface) Refresh(filtered []records.LocationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		return
	}

	s.markers.Clear()
	for _, rec := range filtered {
		marker := buildMarker(rec)
		if marker == nil {
			continue
		}
		if s.onSelect != nil {
			rec := rec
			marker.onClick = func() { s.onSelect(rec) }
		}
		s.markers.Add(marker)
	}
}

// buildMarker is the pure record -> marker step; nil for records that
// cannot be placed.
func buildMarker(rec records.LocationRecord) *Marker {
	if !rec.HasCoordinates() {
		return nil
	}
	popup, err := RenderPopup(rec)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Popup render failed for record %s", rec.ID)
	}
	return &Marker{
		RecordID:    rec.ID,
		Category:    rec.Category,
		Position:    LatLng{Lat: *rec.Lat, Lng: *rec.Lng},
		Label:       MarkerLabel(rec),
		Color:       CategoryColor(rec.Category),
		ClassName:   "price-marker " + MarkerClass(rec.Category),
		Interactive: true,
		Popup:       popup,
	}
}

// Teardown destroys the map and frees the container. Later calls are
// no-ops.
func (s *Surface) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.m == nil {
		return
	}
	s.container.release(s.m)
	s.m.remove()
	s.m = nil
	s.markers = nil
	s.landmarks = nil
	utils.Logger.Debugf("Map surface torn down on container %s", s.container.ID)
}

// Close implements io.Closer.
func (s *Surface) Close() error {
	s.Teardown()
	return nil
}

// Marker returns the live marker for a record id.
func (s *Surface) Marker(recordID string) *Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.markers == nil {
		return nil
	}
	return s.markers.Find(recordID)
}

func (s *Surface) MarkerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.markers == nil {
		return 0
	}
	return s.markers.Len()
}

func (s *Surface) LandmarkCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.landmarks == nil {
		return 0
	}
	return s.landmarks.Len()
}

// LayerCount is the number of layers attached to the live map.
func (s *Surface) LayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		return 0
	}
	return len(s.m.layers)
}
