package feed

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rfagen/boston-concerts/internal/event"
	"github.com/rfagen/boston-concerts/internal/venue"
)

type stubAdapter struct {
	name   string
	events []event.Event
	err    error
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) Fetch() ([]event.Event, error) {
	return s.events, s.err
}

func makeEvent(venueName string) event.Event {
	evt := event.New()
	evt.Venue = venueName
	evt.Start = time.Date(2018, 3, 2, 18, 0, 0, 0, time.Local)
	return evt
}

func TestCollectConcatenatesInOrder(t *testing.T) {
	a := &stubAdapter{name: "first", events: []event.Event{makeEvent("The Sinclair"), makeEvent("Royale")}}
	b := &stubAdapter{name: "second", events: []event.Event{}}
	c := &stubAdapter{name: "third", events: []event.Event{makeEvent("Sonia")}}

	events, err := New(zap.NewNop(), a, b, c).Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	want := []string{"The Sinclair", "Royale", "Sonia"}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i, venueName := range want {
		if events[i].Venue != venueName {
			t.Errorf("expected event %d from %q, got %q", i, venueName, events[i].Venue)
		}
	}
}

func TestCollectPropagatesAdapterError(t *testing.T) {
	ok := &stubAdapter{name: "fine", events: []event.Event{makeEvent("Royale")}}
	broken := &stubAdapter{name: "broken", err: errors.New("connection refused")}

	_, err := New(zap.NewNop(), ok, broken).Collect()
	if err == nil {
		t.Fatal("expected an error from the failing adapter")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("expected the error to name the source, got %q", err.Error())
	}
}

func TestDefaultAdapters(t *testing.T) {
	adapters := DefaultAdapters(zap.NewNop())

	if len(adapters) != 3 {
		t.Fatalf("expected 3 default adapters, got %d", len(adapters))
	}

	// Fixed invocation order: Bowery, the Crossroads pair, Middle East.
	if _, ok := adapters[0].(*venue.Bowery); !ok {
		t.Errorf("expected the first adapter to be Bowery, got %T", adapters[0])
	}
	if _, ok := adapters[1].(*venue.Crossroads); !ok {
		t.Errorf("expected the second adapter to be Crossroads, got %T", adapters[1])
	}
	if _, ok := adapters[2].(*venue.MidEast); !ok {
		t.Errorf("expected the third adapter to be MidEast, got %T", adapters[2])
	}

	// House of Blues is addressable but stays out of the default run.
	for _, adapter := range adapters {
		if _, ok := adapter.(*venue.HouseOfBlues); ok {
			t.Error("House of Blues should not be in the default adapter list")
		}
	}
}
