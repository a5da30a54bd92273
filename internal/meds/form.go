package meds

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormInput holds the raw string fields of a submitted medication reminder
// form, exactly as the consumer collected them.
type FormInput struct {
	Name   string
	First  string // first dose time today, empty if none was taken
	Start  string // first reminder date, YYYY-MM-DD
	End    string // last reminder date, YYYY-MM-DD
	Amount string
	Early  string // earliest reminder time, HH:MM
	Late   string // latest reminder time, HH:MM
	Min    string // minimal interval between reminders, HH:MM
	Max    string // maximal interval between reminders, HH:MM
	Note   string
}

// Form is the typed, translated reminder request. Early, Late, Min and Max
// carry times of day; Min and Max are read as durations in minutes since
// midnight. Start and End are the resolved range anchors.
type Form struct {
	Name   string
	First  *time.Time // nil when no first dose was reported
	Amount int
	Early  time.Time
	Late   time.Time
	Min    time.Time
	Max    time.Time
	Start  time.Time
	End    time.Time
	Note   string
}

const dateLayout = "2006-01-02"

func parseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q", s)
	}
	return t, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// ParseForm translates raw form strings into a Form. The start anchor
// combines the start date with the first dose time when one was given,
// otherwise with the earliest reminder time. The end anchor combines the end
// date with the latest reminder time, pushed to the following day when the
// reminder window spans midnight.
func ParseForm(in FormInput) (Form, error) {
	var form Form
	form.Name = strings.TrimSpace(in.Name)
	form.Note = in.Note

	startDate, err := parseDate(in.Start)
	if err != nil {
		return Form{}, fmt.Errorf("start: %w", err)
	}
	endDate, err := parseDate(in.End)
	if err != nil {
		return Form{}, fmt.Errorf("end: %w", err)
	}

	form.Amount, err = strconv.Atoi(strings.TrimSpace(in.Amount))
	if err != nil {
		return Form{}, fmt.Errorf("invalid amount %q", in.Amount)
	}
	if form.Amount < 1 {
		return Form{}, fmt.Errorf("amount must be at least 1, got %d", form.Amount)
	}

	if form.Early, err = parseClock(in.Early); err != nil {
		return Form{}, fmt.Errorf("early: %w", err)
	}
	if form.Late, err = parseClock(in.Late); err != nil {
		return Form{}, fmt.Errorf("late: %w", err)
	}
	if form.Min, err = parseClock(in.Min); err != nil {
		return Form{}, fmt.Errorf("min: %w", err)
	}
	if form.Max, err = parseClock(in.Max); err != nil {
		return Form{}, fmt.Errorf("max: %w", err)
	}

	if strings.TrimSpace(in.First) != "" {
		first, err := parseClock(in.First)
		if err != nil {
			return Form{}, fmt.Errorf("first: %w", err)
		}
		form.First = &first
	}

	firstTime := form.Early
	if form.First != nil {
		firstTime = *form.First
	}
	form.Start = combine(startDate, firstTime)

	endDate = adjustDay(endDate, form.Early, form.Late, true)
	form.End = combine(endDate, form.Late)

	return form, nil
}
