package meds

import (
	"math"
	"time"
)

// Clock-of-day helpers. Times of day are carried as time.Time values whose
// date part is ignored; parsing "15:04" yields the zero date, which serves
// as the anchor for pure clock arithmetic.

// secondsOfDay returns the clock component of t as seconds since midnight.
func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// clockBefore reports whether a's time of day is earlier than b's.
func clockBefore(a, b time.Time) bool {
	return secondsOfDay(a) < secondsOfDay(b)
}

// clockEqual reports whether a and b share the same time of day.
func clockEqual(a, b time.Time) bool {
	return secondsOfDay(a) == secondsOfDay(b)
}

// minutesOf converts a time of day to whole minutes since midnight.
// Seconds are ignored, matching the minute-granular interval fields.
func minutesOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// intervalMinutes returns the minutes from early to late. Equal clocks yield
// zero. When late is numerically earlier than early it is interpreted as
// belonging to the following day, so a 22:00-02:00 window is 240 minutes.
func intervalMinutes(early, late time.Time) int {
	if clockEqual(early, late) {
		return 0
	}
	secs := secondsOfDay(late) - secondsOfDay(early)
	if secs < 0 {
		secs += 24 * 3600
	}
	return int(math.Round(float64(secs) / 60))
}

// adjustDay advances dt by one day when the late clock is earlier than the
// early clock, or (when eq is set) also when they are equal. This models a
// latest bound that falls on the calendar day after the earliest bound; all
// day-rollover decisions go through here rather than raw comparisons.
func adjustDay(dt time.Time, early, late time.Time, eq bool) time.Time {
	if clockBefore(late, early) || eq && clockEqual(late, early) {
		return dt.AddDate(0, 0, 1)
	}
	return dt
}

// dateOf truncates t to midnight of its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// combine joins day's calendar date with clock's time of day.
func combine(day, clock time.Time) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		day.Location(),
	)
}
