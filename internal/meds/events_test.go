package meds

import (
	"errors"
	"testing"
	"time"

	"github.com/rowandarke/pillbox/internal/model"
)

type fakeEventStore struct {
	events  []model.Event
	failAt  int // 1-based call number to fail on; 0 means never
	calls   int
	nextID  int64
	failErr error
}

func (f *fakeEventStore) Create(ownerID int64, groupID, title, content string, start, end time.Time) (*model.Event, error) {
	f.calls++
	if f.failAt > 0 && f.calls == f.failAt {
		return nil, f.failErr
	}
	f.nextID++
	event := model.Event{
		ID:        f.nextID,
		OwnerID:   ownerID,
		GroupID:   groupID,
		Title:     title,
		Content:   content,
		StartTime: start,
		EndTime:   end,
	}
	f.events = append(f.events, event)
	return &event, nil
}

func TestEventTitle(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "It's time to take your meds"},
		{"pasta", "Pasta - It's time to take your meds"},
		{"extra strength pasta", "Extra Strength Pasta - It's time to take your meds"},
	}

	for _, tt := range tests {
		if got := EventTitle(tt.name); got != tt.want {
			t.Errorf("EventTitle(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCreateEvents(t *testing.T) {
	form := formWith(t, nil)
	fake := &fakeEventStore{}

	events, err := CreateEvents(fake, 7, form)
	if err != nil {
		t.Fatalf("CreateEvents: %v", err)
	}
	if len(events) != 6 {
		t.Fatalf("created %d events, want 6", len(events))
	}

	for i, event := range events {
		if event.OwnerID != 7 {
			t.Errorf("events[%d].OwnerID = %d, want 7", i, event.OwnerID)
		}
		if event.Title != "Pasta - It's time to take your meds" {
			t.Errorf("events[%d].Title = %q", i, event.Title)
		}
		if event.Content != testNote {
			t.Errorf("events[%d].Content = %q", i, event.Content)
		}
		if got := event.EndTime.Sub(event.StartTime); got != 5*time.Minute {
			t.Errorf("events[%d] duration = %v, want 5m", i, got)
		}
	}

	if !events[0].StartTime.Equal(dt(2015, 10, 21, 10, 0)) {
		t.Errorf("first event at %v, want 2015-10-21 10:00", events[0].StartTime)
	}
}

func TestCreateEventsSharedGroupID(t *testing.T) {
	form := formWith(t, nil)
	fake := &fakeEventStore{}

	events, err := CreateEvents(fake, 1, form)
	if err != nil {
		t.Fatalf("CreateEvents: %v", err)
	}
	if events[0].GroupID == "" {
		t.Fatal("group id should not be empty")
	}
	for i, event := range events {
		if event.GroupID != events[0].GroupID {
			t.Errorf("events[%d].GroupID = %q, want %q", i, event.GroupID, events[0].GroupID)
		}
	}

	second, err := CreateEvents(fake, 1, form)
	if err != nil {
		t.Fatalf("CreateEvents: %v", err)
	}
	if second[0].GroupID == events[0].GroupID {
		t.Error("separate runs should get distinct group ids")
	}
}

func TestCreateEventsWithoutName(t *testing.T) {
	form := formWith(t, func(in *FormInput) { in.Name = "" })
	fake := &fakeEventStore{}

	events, err := CreateEvents(fake, 1, form)
	if err != nil {
		t.Fatalf("CreateEvents: %v", err)
	}
	for i, event := range events {
		if event.Title != "It's time to take your meds" {
			t.Errorf("events[%d].Title = %q, want bare title", i, event.Title)
		}
	}
}

func TestCreateEventsStopsOnStoreError(t *testing.T) {
	form := formWith(t, nil)
	storeErr := errors.New("disk full")
	fake := &fakeEventStore{failAt: 3, failErr: storeErr}

	events, err := CreateEvents(fake, 1, form)
	if err == nil {
		t.Fatal("expected an error from the failing store")
	}
	if !errors.Is(err, storeErr) {
		t.Errorf("error %v should wrap the store error", err)
	}
	// Events created before the failure stay created; no rollback.
	if len(events) != 2 {
		t.Errorf("got %d events before failure, want 2", len(events))
	}
	if fake.calls != 3 {
		t.Errorf("store called %d times, want 3", fake.calls)
	}
}
