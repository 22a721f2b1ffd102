package mapview

import "github.com/AliHaider728/royal-palm-map-clone/internal/records"

// Filter returns, in input order, the records that have both coordinates,
// match categoryFilter exactly when it is set, and contain query in at
// least one searchable field when query is non-empty.
func Filter(recs []records.LocationRecord, query string, categoryFilter *string) []records.LocationRecord {
	out := make([]records.LocationRecord, 0, len(recs))
	for _, r := range recs {
		if !r.HasCoordinates() {
			continue
		}
		if categoryFilter != nil && r.FilterKey() != *categoryFilter {
			continue
		}
		if !r.Matches(query) {
			continue
		}
		out = append(out, r)
	}
	return out
}
