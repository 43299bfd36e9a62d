package event

import "time"

// Event represents a single concert listing parsed from a venue calendar.
//
// Every adapter emits the same five-key shape regardless of source format:
//
//	{"venue": ..., "bands": [...], "start": ..., "link": ..., "soldout": ...}
//
// Start marshals as an ISO-8601 timestamp including the UTC offset.
type Event struct {
	Venue   string    `json:"venue"`
	Bands   []string  `json:"bands"`
	Start   time.Time `json:"start"`
	Link    string    `json:"link"`
	SoldOut bool      `json:"soldout"`
}

// New creates an Event with the documented defaults: empty venue and link,
// no bands, not sold out, and a start of "now" as a fallback for sources
// that provide no timestamp. Each call returns a fresh Bands slice so that
// one record's bands can never alias another's, and so an empty band list
// serializes as [] rather than null.
func New() Event {
	return Event{
		Bands: []string{},
		Start: time.Now(),
	}
}
