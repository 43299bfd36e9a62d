package venue

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rfagen/boston-concerts/internal/event"
)

const (
	CrossroadsBaseURL = "http://events.crossroadspresents.com"
	crossroadsMonths  = 12
)

// The two Boston venues Crossroads publishes through the same API shape.
var crossroadsVenueSlugs = []string{"paradise-rock-club", "brighton-music-hall"}

// Crossroads fetches the month-scoped JSON calendars for the Crossroads
// Presents venues. The API exposes one endpoint per venue taking a month
// index as a query parameter, so a full year means twelve requests per venue.
//
// A non-success status for one venue/month pair means no calendar was
// published for that period and is skipped silently; transport errors and
// malformed JSON fail the whole fetch.
type Crossroads struct {
	client  *http.Client
	baseURL string
	slugs   []string
	logger  *zap.Logger
}

// NewCrossroads creates an adapter covering both Crossroads venues.
func NewCrossroads(logger *zap.Logger) *Crossroads {
	return &Crossroads{
		client:  newHTTPClient(),
		baseURL: CrossroadsBaseURL,
		slugs:   crossroadsVenueSlugs,
		logger:  logger,
	}
}

func (c *Crossroads) Name() string { return "Crossroads Presents" }

type crossroadsMonth struct {
	EventGroups []struct {
		Events []crossroadsEvent `json:"events"`
	} `json:"event_groups"`
}

type crossroadsEvent struct {
	CategoryParam string `json:"category_param"`
	Title         string `json:"title"`
	Permalink     string `json:"permalink"`
	BeginDate     string `json:"tz_adjusted_begin_date"`
	SoldOut       bool   `json:"sold_out"`
	Venue         struct {
		Title string `json:"title"`
	} `json:"venue"`
	Artists []struct {
		Title string `json:"title"`
	} `json:"artists"`
}

// Fetch walks twelve month periods for each venue and concatenates the
// results, month-major so both venues' listings stay in calendar order.
func (c *Crossroads) Fetch() ([]event.Event, error) {
	events := make([]event.Event, 0)
	for period := 0; period < crossroadsMonths; period++ {
		for _, slug := range c.slugs {
			monthEvents, err := c.fetchMonth(slug, period)
			if err != nil {
				return nil, err
			}
			events = append(events, monthEvents...)
		}
	}
	return events, nil
}

// fetchMonth retrieves one venue's calendar for one month period. A non-200
// response yields no events and no error.
func (c *Crossroads) fetchMonth(slug string, period int) ([]event.Event, error) {
	url := fmt.Sprintf("%s/venues/%s/month_events.json?period=%d", c.baseURL, slug, period)

	resp, err := get(c.client, url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s period %d: %w", slug, period, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	c.logger.Info("parsing Crossroads event calendar",
		zap.String("venue", slug),
		zap.Int("period", period))

	var month crossroadsMonth
	if err := json.NewDecoder(resp.Body).Decode(&month); err != nil {
		return nil, fmt.Errorf("parsing %s period %d: %w", slug, period, err)
	}

	return c.parseMonth(&month)
}

// parseMonth flattens the event groups, keeping only music listings.
func (c *Crossroads) parseMonth(month *crossroadsMonth) ([]event.Event, error) {
	events := make([]event.Event, 0)
	for _, group := range month.EventGroups {
		for _, e := range group.Events {
			if e.CategoryParam != "music" {
				continue
			}

			evt := event.New()
			evt.Venue = e.Venue.Title
			evt.Link = c.baseURL + e.Permalink
			evt.SoldOut = e.SoldOut

			// The API reports an offset-aware begin date; trust it as-is
			// rather than converting to the local zone.
			start, err := time.Parse(time.RFC3339, e.BeginDate)
			if err != nil {
				return nil, fmt.Errorf("parsing begin date %q: %w", e.BeginDate, err)
			}
			evt.Start = start

			if len(e.Artists) > 0 {
				for _, artist := range e.Artists {
					evt.Bands = append(evt.Bands, artist.Title)
				}
			} else {
				evt.Bands = append(evt.Bands, e.Title)
			}

			events = append(events, evt)
		}
	}
	return events, nil
}
