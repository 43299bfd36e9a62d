package venue

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/flynn/json5"
	"go.uber.org/zap"

	"github.com/rfagen/boston-concerts/internal/event"
)

const (
	MidEastBaseURL  = "http://www.mideastoffers.com"
	midEastEventURL = "http://www.mideastoffers.com/event/"
	midEastMonths   = 12
)

var (
	// The calendar page embeds its listings as a JavaScript array literal
	// assigned to an "events" variable inside a script block.
	midEastEventsRe = regexp.MustCompile(`(?s)events: (\[.*?])`)
	// Each item's venue field is itself an HTML fragment; the venue name is
	// the text of the first div.
	midEastVenueRe = regexp.MustCompile(`<div[^<>]*>([^<]+)`)
	// Multi-band titles separate names with commas or vertical bars.
	midEastTitleSep = regexp.MustCompile(`,|\|`)
)

// MidEast scrapes the Middle East complex calendar. The page is HTML, but
// the listings live in a JavaScript array literal (unquoted keys, trailing
// commas) inside a script tag, so the captured text goes through a JSON5
// decoder rather than encoding/json.
//
// A non-success status for a month is skipped like Crossroads. A listing
// that fails extraction (malformed venue fragment, missing field, bad date)
// is dropped on its own while the rest of the month is still processed; an
// events literal that cannot be decoded at all fails the fetch.
type MidEast struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewMidEast creates a Middle East adapter.
func NewMidEast(logger *zap.Logger) *MidEast {
	return &MidEast{
		client:  newHTTPClient(),
		baseURL: MidEastBaseURL,
		logger:  logger,
	}
}

func (m *MidEast) Name() string { return "Middle East" }

// Fetch walks the next twelve calendar months, starting with the month
// after the current one.
func (m *MidEast) Fetch() ([]event.Event, error) {
	events := make([]event.Event, 0)

	now := time.Now()
	month := int(now.Month())
	year := now.Year()
	for i := 0; i < midEastMonths; i++ {
		month++
		if month > 12 {
			month = 1
			year++
		}

		monthEvents, err := m.fetchMonth(month, year)
		if err != nil {
			return nil, err
		}
		events = append(events, monthEvents...)
	}
	return events, nil
}

// fetchMonth retrieves and parses one month's calendar page. A non-200
// response yields no events and no error.
func (m *MidEast) fetchMonth(month, year int) ([]event.Event, error) {
	url := fmt.Sprintf("%s/all-shows/?cal-month=%d&cal-year=%d", m.baseURL, month, year)

	resp, err := get(m.client, url)
	if err != nil {
		return nil, fmt.Errorf("fetching calendar for %d/%d: %w", month, year, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	m.logger.Info("parsing Middle East event calendar",
		zap.Int("month", month),
		zap.Int("year", year))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading calendar for %d/%d: %w", month, year, err)
	}

	return m.parsePage(body)
}

// parsePage extracts the embedded events literal and decodes it. A page
// without the literal simply has no listings that month.
func (m *MidEast) parsePage(body []byte) ([]event.Event, error) {
	match := midEastEventsRe.FindSubmatch(body)
	if match == nil {
		return nil, nil
	}

	var items []map[string]interface{}
	if err := json5.Unmarshal(match[1], &items); err != nil {
		return nil, fmt.Errorf("decoding events literal: %w", err)
	}

	events := make([]event.Event, 0, len(items))
	for _, item := range items {
		evt, ok := m.parseItem(item)
		if !ok {
			continue
		}
		events = append(events, evt)
	}
	return events, nil
}

// parseItem extracts a single listing. Any missing or malformed field
// discards the listing without affecting its siblings.
func (m *MidEast) parseItem(item map[string]interface{}) (event.Event, bool) {
	evt := event.New()

	rawVenue, ok := item["venue"].(string)
	if !ok {
		return evt, false
	}
	venueMatch := midEastVenueRe.FindStringSubmatch(rawVenue)
	if venueMatch == nil {
		return evt, false
	}
	evt.Venue = venueMatch[1]

	title, ok := item["title"].(string)
	if !ok {
		return evt, false
	}
	for _, name := range midEastTitleSep.Split(title, -1) {
		evt.Bands = append(evt.Bands, strings.TrimSpace(name))
	}

	rawStart, ok := item["start"].(string)
	if !ok {
		return evt, false
	}
	start, err := time.ParseInLocation("2006-01-02 15:04:05", rawStart, time.Local)
	if err != nil {
		return evt, false
	}
	evt.Start = start

	id, ok := item["id"].(string)
	if !ok {
		return evt, false
	}
	evt.Link = midEastEventURL + id

	return evt, true
}
