package mapview

import (
	"sync"

	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Layer is anything attached to a Map.
type Layer interface {
	LayerKind() string
}

type TileLayer struct {
	URLTemplate string
	Attribution string
	MaxZoom     int
}

func (*TileLayer) LayerKind() string { return "tiles" }

// ZoomControl is the on-map zoom widget.
type ZoomControl struct {
	Position string
}

// Marker is one point on the map. Non-interactive markers ignore clicks.
type Marker struct {
	RecordID    string
	Category    records.Category
	Position    LatLng
	Label       string
	Color       string
	ClassName   string
	Interactive bool
	Popup       string

	onClick func()
}

// Click fires the marker's click handler and reports whether one ran.
func (m *Marker) Click() bool {
	if !m.Interactive || m.onClick == nil {
		return false
	}
	m.onClick()
	return true
}

// MarkerGroup is a named set of markers cleared and redrawn as one unit.
type MarkerGroup struct {
	Name string

	mu      sync.RWMutex
	markers []*Marker
}

func NewMarkerGroup(name string) *MarkerGroup {
	return &MarkerGroup{Name: name}
}

func (*MarkerGroup) LayerKind() string { return "markers" }

func (g *MarkerGroup) Add(m *Marker) {
	g.mu.Lock()
	g.markers = append(g.markers, m)
	g.mu.Unlock()
}

func (g *MarkerGroup) Clear() {
	g.mu.Lock()
	g.markers = nil
	g.mu.Unlock()
}

func (g *MarkerGroup) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.markers)
}

// Markers returns a copy of the current markers in insertion order.
func (g *MarkerGroup) Markers() []*Marker {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]*Marker(nil), g.markers...)
}

// Find returns the marker for a record id, if present.
func (g *MarkerGroup) Find(recordID string) *Marker {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, m := range g.markers {
		if m.RecordID == recordID {
			return m
		}
	}
	return nil
}

// Map is one live map instance.
type Map struct {
	Center      LatLng
	Zoom        int
	ZoomControl *ZoomControl

	layers  []Layer
	removed bool
}

func (m *Map) AddLayer(l Layer) { m.layers = append(m.layers, l) }

func (m *Map) Layers() []Layer { return append([]Layer(nil), m.layers...) }

func (m *Map) remove() {
	m.layers = nil
	m.ZoomControl = nil
	m.removed = true
}

// Removed reports whether the map has been destroyed.
func (m *Map) Removed() bool { return m.removed }
