package mapview

import "github.com/AliHaider728/royal-palm-map-clone/internal/records"

// MarkerDescriptor is the serializable form of a marker.
type MarkerDescriptor struct {
	ID          string           `json:"id"`
	Position    LatLng           `json:"position"`
	Label       string           `json:"label"`
	Color       string           `json:"color"`
	ClassName   string           `json:"class_name"`
	Interactive bool             `json:"interactive"`
	Category    records.Category `json:"category,omitempty"`
	PopupHTML   string           `json:"popup_html,omitempty"`
}

// Snapshot is everything a client needs to draw the current map.
type Snapshot struct {
	Config    Config             `json:"config"`
	Landmarks []MarkerDescriptor `json:"landmarks"`
	Markers   []MarkerDescriptor `json:"markers"`
}

func describe(m *Marker) MarkerDescriptor {
	return MarkerDescriptor{
		ID:          m.RecordID,
		Category:    m.Category,
		Position:    m.Position,
		Label:       m.Label,
		Color:       m.Color,
		ClassName:   m.ClassName,
		Interactive: m.Interactive,
		PopupHTML:   m.Popup,
	}
}

// Snapshot describes the live map; an uninitialized surface yields only the
// config.
func (s *Surface) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Config:    s.cfg,
		Landmarks: []MarkerDescriptor{},
		Markers:   []MarkerDescriptor{},
	}
	if s.m == nil {
		return snap
	}
	for _, m := range s.landmarks.Markers() {
		snap.Landmarks = append(snap.Landmarks, describe(m))
	}
	for _, m := range s.markers.Markers() {
		snap.Markers = append(snap.Markers, describe(m))
	}
	return snap
}

// Describe computes the marker descriptors for (records, query, category)
// without touching any map.
func Describe(recs []records.LocationRecord, query string, categoryFilter *string) []MarkerDescriptor {
	filtered := Filter(recs, query, categoryFilter)
	out := make([]MarkerDescriptor, 0, len(filtered))
	for _, rec := range filtered {
		if m := buildMarker(rec); m != nil {
			out = append(out, describe(m))
		}
	}
	return out
}
