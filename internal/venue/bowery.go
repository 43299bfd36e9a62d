package venue

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/rfagen/boston-concerts/internal/event"
)

const (
	BoweryBaseURL  = "https://www.boweryboston.com"
	boweryListPath = "/info/events/get?scope=all&page=0&rows=9999&venues=boston"
)

// Strips the "with " prefix from a supporting-acts blurb.
var supportingPrefix = regexp.MustCompile(`^with\s*`)

// Bowery scrapes the Bowery Boston "all events" HTML calendar, which covers
// several venues (The Sinclair, Royale, and others) behind one promoter.
// A single request with a large page size returns every upcoming show.
//
// Any network or parse failure fails the whole fetch; there is no per-item
// recovery. Missing sub-elements within a show item are tolerated and leave
// the corresponding field at its default.
type Bowery struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewBowery creates a Bowery adapter.
func NewBowery(logger *zap.Logger) *Bowery {
	return &Bowery{
		client:  newHTTPClient(),
		baseURL: BoweryBaseURL,
		logger:  logger,
	}
}

func (b *Bowery) Name() string { return "Bowery Boston" }

// Fetch retrieves the full event listing and parses every show item.
func (b *Bowery) Fetch() ([]event.Event, error) {
	b.logger.Info("parsing Bowery Boston event calendar")

	resp, err := get(b.client, b.baseURL+boweryListPath)
	if err != nil {
		return nil, fmt.Errorf("fetching event listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return b.parseCalendar(resp.Body)
}

// parseCalendar extracts one event per show-item container, in document order.
func (b *Bowery) parseCalendar(r io.Reader) ([]event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	events := make([]event.Event, 0)
	doc.Find("div.show-item").Each(func(i int, sel *goquery.Selection) {
		events = append(events, b.parseShowItem(sel))
	})
	return events, nil
}

// parseShowItem extracts a single event from a show-item container.
//
// Markup reference (abridged):
//
//	link:      <a href="/boston/shows/detail/347671-lucy-dacus">
//	start:     <a class="calendar-dropdown-item google" data-start="2018-04-12T00:15:00Z" ...>
//	venue:     <p class="list-location"><strong>The Sinclair
//	headliner: <div class="info-title"><h3><a href="...">Lucy Dacus
//	support:   <div class="supporting-acts"><span>with And The Kids, Adult Mom
//	sold out:  <a class="button event ticket primary" ...>Sold Out
func (b *Bowery) parseShowItem(sel *goquery.Selection) event.Event {
	evt := event.New()

	if href, ok := sel.Find("a").First().Attr("href"); ok {
		evt.Link = b.baseURL + href
	}

	if start, ok := sel.Find("a.calendar-dropdown-item.google").First().Attr("data-start"); ok {
		if t, err := time.Parse(time.RFC3339, start); err == nil {
			evt.Start = t.In(time.Local)
		}
	}

	if location := sel.Find("p.list-location strong").First(); location.Length() > 0 {
		evt.Venue = strings.TrimSpace(location.Text())
	}

	if title := sel.Find("div.info-title").First(); title.Length() > 0 {
		if headliner := strings.TrimSpace(title.Find("a").First().Text()); headliner != "" {
			evt.Bands = append(evt.Bands, headliner)
		}

		if span := sel.Find("div.supporting-acts span").First(); span.Length() > 0 {
			acts := supportingPrefix.ReplaceAllString(strings.TrimSpace(span.Text()), "")
			for _, name := range strings.Split(acts, ", ") {
				if name != "" {
					evt.Bands = append(evt.Bands, name)
				}
			}
		}
	}

	button := sel.Find("a.button.event.ticket.primary").First()
	if strings.EqualFold(strings.TrimSpace(button.Text()), "sold out") {
		evt.SoldOut = true
	}

	return evt
}
