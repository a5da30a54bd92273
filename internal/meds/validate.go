package meds

import (
	"fmt"
	"time"
)

// MaxReminders is the ceiling on the total number of reminders a single
// form may generate.
const MaxReminders = 50

var (
	errFinish = "Finish date must be later than or equal to start date."
	errMax    = "Maximal interval must be larger than or equal to minimal interval."
	errAmount = "Interval between earliest and latest reminder not long enough for daily amount with minimal interval."
)

var errQuantity = fmt.Sprintf(
	"Total number of reminders can't be larger than %d. "+
		"Please lower the daily amount, or choose a shorter time period.",
	MaxReminders,
)

// amountFits reports whether the earliest-to-latest window is long enough to
// hold amount reminders separated by at least the minimal interval.
func amountFits(amount int, min, early, late time.Time) bool {
	needed := (amount - 1) * minutesOf(min)
	return needed <= intervalMinutes(early, late)
}

// ValidateForm checks every business rule against the form and returns the
// messages for all violated ones. An empty result means the form may be
// turned into events. Rules are evaluated independently; validation never
// stops at the first failure.
func ValidateForm(form Form) []string {
	var errs []string
	if form.End.Before(form.Start) {
		errs = append(errs, errFinish)
	}
	if clockBefore(form.Max, form.Min) {
		errs = append(errs, errMax)
	}
	if !amountFits(form.Amount, form.Min, form.Early, form.Late) {
		errs = append(errs, errAmount)
	}
	if len(ReminderDatetimes(form)) > MaxReminders {
		errs = append(errs, errQuantity)
	}
	return errs
}
