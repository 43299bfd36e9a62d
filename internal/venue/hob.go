package venue

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rfagen/boston-concerts/internal/event"
)

const (
	HouseOfBluesAPIURL = "http://www.houseofblues.com/boston/api/EventCalendar/GetEvents"
	hobDetailBaseURL   = "http://www.houseofblues.com/boston/EventDetail"
	hobVenueID         = "9044"
)

// HouseOfBlues fetches the House of Blues Boston event-calendar API with a
// one-year date range. The API wraps its JSON body in an outer pair of quote
// characters with the embedded quotes escaped, so the body is unwrapped
// before decoding.
//
// There is no per-item recovery: any network or parse failure fails the
// whole fetch.
type HouseOfBlues struct {
	client *http.Client
	apiURL string
	logger *zap.Logger
}

// NewHouseOfBlues creates a House of Blues adapter.
func NewHouseOfBlues(logger *zap.Logger) *HouseOfBlues {
	return &HouseOfBlues{
		client: newHTTPClient(),
		apiURL: HouseOfBluesAPIURL,
		logger: logger,
	}
}

func (h *HouseOfBlues) Name() string { return "House of Blues" }

type hobResponse struct {
	Result []hobEvent `json:"result"`
}

type hobEvent struct {
	Title     string      `json:"title"`
	VenueName string      `json:"venueName"`
	EventDate string      `json:"eventDate"`
	EventID   json.Number `json:"eventID"`
	SoldOut   bool        `json:"soldOut"`
	Artists   []hobArtist `json:"artists"`
}

type hobArtist struct {
	Name string `json:"name"`
}

// Fetch requests every standard-offer event from today through one year out.
func (h *HouseOfBlues) Fetch() ([]event.Event, error) {
	h.logger.Info("parsing House of Blues event calendar")

	today := time.Now()
	params := url.Values{}
	params.Set("startDate", today.Format("01/02/2006"))
	params.Set("endDate", today.AddDate(1, 0, 0).Format("01/02/2006"))
	params.Set("venueIds", hobVenueID)
	params.Set("limit", "9999")
	params.Set("offset", "1")
	params.Set("genre", "")
	params.Set("artist", "")
	params.Set("offerType", "STANDARD,STANDARD - Priority")

	resp, err := get(h.client, h.apiURL+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching event calendar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return h.parseResponse(string(body))
}

// parseResponse unwraps the quote-escaped body and decodes the result list.
func (h *HouseOfBlues) parseResponse(body string) ([]event.Event, error) {
	if len(body) < 2 {
		return nil, fmt.Errorf("response too short to unwrap: %q", body)
	}

	// The body arrives as a JSON-encoded string of JSON: strip the outer
	// quotes and unescape the embedded ones.
	unwrapped := strings.ReplaceAll(body[1:len(body)-1], `\"`, `"`)

	var decoded hobResponse
	if err := json.Unmarshal([]byte(unwrapped), &decoded); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	events := make([]event.Event, 0, len(decoded.Result))
	for _, item := range decoded.Result {
		evt, err := h.parseItem(item)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	return events, nil
}

// parseItem builds one event record. The headliner is the first listed
// artist; further artists are kept unless they just restate the event title.
func (h *HouseOfBlues) parseItem(item hobEvent) (event.Event, error) {
	evt := event.New()

	if len(item.Artists) == 0 {
		return evt, fmt.Errorf("event %s has no artists", item.EventID)
	}

	evt.Bands = append(evt.Bands, item.Artists[0].Name)
	title := normalizeName(item.Title)
	for _, artist := range item.Artists[1:] {
		if normalizeName(artist.Name) != title {
			evt.Bands = append(evt.Bands, artist.Name)
		}
	}

	evt.Venue = item.VenueName

	// Event dates come back zone-less; the venue is in Boston, so read them
	// in the local zone.
	start, err := parseLocalTimestamp(item.EventDate)
	if err != nil {
		return evt, fmt.Errorf("parsing event date for %s: %w", item.EventID, err)
	}
	evt.Start = start

	evt.Link = fmt.Sprintf("%s?tmeventid=%s&offerid=0", hobDetailBaseURL, item.EventID)
	evt.SoldOut = item.SoldOut

	return evt, nil
}

// normalizeName lowercases a name and strips non-ASCII runes so that
// stylized artist names still match plain event titles.
func normalizeName(name string) string {
	name = strings.ToLower(name)
	var b strings.Builder
	for _, r := range name {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
