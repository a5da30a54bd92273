package model

import "time"

// Event is a persisted calendar event. Medication reminders are stored as
// ordinary events; GroupID ties together the events created from a single
// reminder form submission.
type Event struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	GroupID   string    `json:"group_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
