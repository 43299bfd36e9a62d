package venue

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rfagen/boston-concerts/internal/event"
)

const (
	UserAgent = "boston-concerts/1.0 (github.com/rfagen/boston-concerts)"
	Timeout   = 30 * time.Second
)

// Adapter translates one venue's public calendar into the shared event model.
// Each adapter owns its own HTTP fetching and error policy: some fail the
// whole call on any error, others skip a month or a single listing and keep
// going. Callers must not assume a uniform policy across adapters.
type Adapter interface {
	// Name identifies the source in logs and error messages.
	Name() string
	// Fetch retrieves and parses the venue's calendar.
	Fetch() ([]event.Event, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: Timeout,
	}
}

// get issues a GET request with the shared User-Agent header.
func get(client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	return client.Do(req)
}

// localTimestampLayouts lists the formats venue APIs have been observed to
// use for timestamps that carry no zone information.
var localTimestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
}

// parseLocalTimestamp parses a zone-less timestamp string in the local time
// zone, trying each known layout in turn.
func parseLocalTimestamp(value string) (time.Time, error) {
	for _, layout := range localTimestampLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", value)
}
