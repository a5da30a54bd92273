package meds

import "time"

// reminderIntervalSeconds returns the spacing between daily reminders in
// seconds. Reminders are spread as evenly as the window allows, but never
// wider than the average of the requested min and max intervals. A single
// daily reminder needs no spacing.
func reminderIntervalSeconds(form Form) int {
	if form.Amount == 1 {
		return 0
	}
	window := intervalMinutes(form.Early, form.Late)
	even := float64(window) / float64(form.Amount-1)
	avg := float64(minutesOf(form.Min)+minutesOf(form.Max)) / 2
	if avg < even {
		even = avg
	}
	return int(even * 60)
}

// ReminderTimes returns exactly form.Amount times of day for daily
// reminders. The sequence starts at the earliest bound with the computed
// spacing, then the whole list is shifted forward by half the gap left
// before the latest bound, centering it within the window.
func ReminderTimes(form Form) []time.Time {
	interval := time.Duration(reminderIntervalSeconds(form)) * time.Second
	base := combine(time.Time{}, form.Early)

	times := make([]time.Time, 0, form.Amount)
	for i := 0; i < form.Amount; i++ {
		times = append(times, base.Add(interval*time.Duration(i)))
	}

	slack := time.Duration(float64(intervalMinutes(times[len(times)-1], form.Late))*float64(time.Minute)) / 2
	for i, t := range times {
		times[i] = combine(time.Time{}, t.Add(slack))
	}
	return times
}

// validReminder reports whether reminder lies within the earliest/latest
// window anchored on the given day, treating a latest bound earlier than the
// earliest bound as falling on the following day.
func validReminder(reminder time.Time, day, early, late time.Time) bool {
	earliest := combine(day, early)
	latest := adjustDay(combine(day, late), early, late, false)
	return !reminder.Before(earliest) && !reminder.After(latest)
}

// validFirstDayGap reports whether the gap from the previous reminder to the
// candidate time of day is within the min/max interval bounds.
func validFirstDayGap(previous time.Time, clock, min, max time.Time) bool {
	gap := intervalMinutes(previous, clock)
	return gap >= minutesOf(min) && gap <= minutesOf(max)
}

// shiftedReminder returns a replacement first-day reminder at exactly the
// minimal interval after the previous one. The replacement is dropped when
// it no longer fits the day's reminder window.
func shiftedReminder(previous time.Time, min, early, late time.Time) (time.Time, bool) {
	reminder := previous.Add(time.Duration(minutesOf(min)) * time.Minute)
	if !validReminder(reminder, dateOf(previous), early, late) {
		return time.Time{}, false
	}
	return reminder, true
}

// firstDayReminder computes the reminder for one time-of-day slot on the
// first day, relative to the previously emitted reminder. Slots that do not
// come after the start anchor produce nothing; slots whose gap from the
// previous reminder violates the interval bounds fall back to the minimal
// interval, which may itself be dropped.
func firstDayReminder(form Form, clock, previous time.Time) (time.Time, bool) {
	reminder := combine(dateOf(form.Start), clock)
	reminder = adjustDay(reminder, form.Early, clock, false)
	if !reminder.After(form.Start) {
		return time.Time{}, false
	}
	if !validFirstDayGap(previous, clock, form.Min, form.Max) {
		return shiftedReminder(previous, form.Min, form.Early, form.Late)
	}
	return reminder, true
}

// firstDayReminders builds the reminder sequence for the first day when a
// first dose was already taken: the dose time itself is the anchor, and up
// to form.Amount further reminders are validated against it in turn.
func firstDayReminders(form Form, times []time.Time) []time.Time {
	reminders := []time.Time{form.Start}
	previous := form.Start
	for _, clock := range times {
		if len(reminders) > form.Amount {
			break
		}
		reminder, ok := firstDayReminder(form, clock, previous)
		if !ok {
			continue
		}
		reminders = append(reminders, reminder)
		previous = reminder
	}
	return reminders
}

// dayReminders expands the times of day onto the day at the given offset
// from the range start. Clocks earlier than the earliest bound belong to the
// following calendar day. Reminders past the end anchor are dropped.
func dayReminders(times []time.Time, early, start time.Time, day int, end time.Time) []time.Time {
	var reminders []time.Time
	for _, clock := range times {
		extra := 0
		if clockBefore(clock, early) {
			extra = 1
		}
		reminder := combine(dateOf(start).AddDate(0, 0, day+extra), clock)
		if !reminder.After(end) {
			reminders = append(reminders, reminder)
		}
	}
	return reminders
}

// ReminderDatetimes expands the form into the full ordered sequence of
// reminder datetimes across the requested date range. The first day takes
// the first-dose branch when a dose was already reported; every other day
// places the daily times directly. The result is bounded by the range length
// times the daily amount.
func ReminderDatetimes(form Form) []time.Time {
	times := ReminderTimes(form)
	totalDays := int(dateOf(form.End).Sub(dateOf(form.Start)).Hours()/24) + 1

	var reminders []time.Time
	for day := 0; day < totalDays; day++ {
		if day == 0 && form.First != nil {
			reminders = append(reminders, firstDayReminders(form, times)...)
		} else {
			reminders = append(reminders, dayReminders(times, form.Early, form.Start, day, form.End)...)
		}
	}
	return reminders
}
