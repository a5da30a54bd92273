package meds

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rowandarke/pillbox/internal/model"
)

const (
	titleSuffix   = "It's time to take your meds"
	eventDuration = 5 * time.Minute
)

// EventCreator is the single persistence operation this package needs from
// the event store.
type EventCreator interface {
	Create(ownerID int64, groupID, title, content string, start, end time.Time) (*model.Event, error)
}

// EventTitle builds the reminder event title, prefixed with the title-cased
// medication name when one was given.
func EventTitle(name string) string {
	if name == "" {
		return titleSuffix
	}
	return cases.Title(language.English).String(name) + " - " + titleSuffix
}

// CreateEvents persists one reminder event per generated datetime. All
// events from one call share a generated group id so the whole course can be
// listed or removed together. Creation is best effort: a store failure stops
// the run and is returned, without rolling back events already created.
func CreateEvents(store EventCreator, ownerID int64, form Form) ([]model.Event, error) {
	title := EventTitle(form.Name)
	groupID := uuid.NewString()

	datetimes := ReminderDatetimes(form)
	events := make([]model.Event, 0, len(datetimes))
	for _, start := range datetimes {
		event, err := store.Create(ownerID, groupID, title, form.Note, start, start.Add(eventDuration))
		if err != nil {
			return events, fmt.Errorf("create reminder event at %s: %w", start.Format(time.RFC3339), err)
		}
		events = append(events, *event)
	}
	return events, nil
}
