package event

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	evt := New()

	if evt.Venue != "" {
		t.Errorf("expected empty venue, got %q", evt.Venue)
	}
	if evt.Link != "" {
		t.Errorf("expected empty link, got %q", evt.Link)
	}
	if evt.SoldOut {
		t.Error("expected soldout to default to false")
	}
	if evt.Bands == nil {
		t.Error("expected bands to be an empty slice, got nil")
	}
	if len(evt.Bands) != 0 {
		t.Errorf("expected no bands, got %v", evt.Bands)
	}
	if evt.Start.IsZero() {
		t.Error("expected start to default to the current time")
	}
}

func TestNewReturnsFreshBandsSlice(t *testing.T) {
	a := New()
	b := New()

	a.Bands = append(a.Bands, "Lucy Dacus")

	if len(b.Bands) != 0 {
		t.Errorf("bands slice shared between constructions: %v", b.Bands)
	}
}

func TestMarshalFiveKeys(t *testing.T) {
	evt := New()
	evt.Venue = "The Sinclair"
	evt.Start = time.Date(2018, 4, 11, 20, 15, 0, 0, time.FixedZone("EDT", -4*60*60))
	evt.Link = "https://www.boweryboston.com/boston/shows/detail/347671-lucy-dacus"

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, key := range []string{"venue", "bands", "start", "link", "soldout"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("expected key %q in serialized event", key)
		}
	}
	if len(raw) != 5 {
		t.Errorf("expected exactly 5 keys, got %d: %v", len(raw), raw)
	}
}

func TestMarshalStartISO8601WithOffset(t *testing.T) {
	evt := New()
	evt.Start = time.Date(2018, 3, 2, 18, 0, 0, 0, time.FixedZone("EST", -5*60*60))

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded struct {
		Start string `json:"start"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.Start != "2018-03-02T18:00:00-05:00" {
		t.Errorf("expected ISO-8601 start with offset, got %q", decoded.Start)
	}

	if _, err := time.Parse(time.RFC3339, decoded.Start); err != nil {
		t.Errorf("start %q is not parseable as RFC3339: %v", decoded.Start, err)
	}
}

func TestMarshalEmptyBandsAsArray(t *testing.T) {
	data, err := json.Marshal(New())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded struct {
		Bands json.RawMessage `json:"bands"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if string(decoded.Bands) != "[]" {
		t.Errorf("expected empty bands to serialize as [], got %s", decoded.Bands)
	}
}
