package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rowandarke/pillbox/internal/model"
)

type EventStore struct {
	db *sql.DB
}

func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) Create(ownerID int64, groupID, title, content string, start, end time.Time) (*model.Event, error) {
	result, err := s.db.Exec(
		`INSERT INTO events (owner_id, group_id, title, content, start_time, end_time)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ownerID, groupID, title, content, start.UTC(), end.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetByID(id)
}

func (s *EventStore) GetByID(id int64) (*model.Event, error) {
	var e model.Event

	err := s.db.QueryRow(
		`SELECT id, owner_id, group_id, title, content, start_time, end_time, created_at, updated_at
		 FROM events WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.OwnerID, &e.GroupID, &e.Title, &e.Content, &e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query event: %w", err)
	}

	return &e, nil
}

// ListByDateRange returns the owner's events overlapping [start, end),
// earliest first.
func (s *EventStore) ListByDateRange(ownerID int64, start, end time.Time) ([]model.Event, error) {
	rows, err := s.db.Query(
		`SELECT id, owner_id, group_id, title, content, start_time, end_time, created_at, updated_at
		 FROM events
		 WHERE owner_id = ? AND start_time < ? AND end_time > ?
		 ORDER BY start_time ASC`,
		ownerID, end.UTC(), start.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListByGroup returns all events created from one reminder form submission,
// earliest first.
func (s *EventStore) ListByGroup(ownerID int64, groupID string) ([]model.Event, error) {
	rows, err := s.db.Query(
		`SELECT id, owner_id, group_id, title, content, start_time, end_time, created_at, updated_at
		 FROM events
		 WHERE owner_id = ? AND group_id = ?
		 ORDER BY start_time ASC`,
		ownerID, groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("query event group: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// DeleteByGroup removes an entire reminder course and reports how many
// events were deleted.
func (s *EventStore) DeleteByGroup(ownerID int64, groupID string) (int64, error) {
	result, err := s.db.Exec(
		"DELETE FROM events WHERE owner_id = ? AND group_id = ?",
		ownerID, groupID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete event group: %w", err)
	}
	return result.RowsAffected()
}

func (s *EventStore) Delete(id int64) error {
	_, err := s.db.Exec("DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func scanEvents(rows *sql.Rows) ([]model.Event, error) {
	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.GroupID, &e.Title, &e.Content, &e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
