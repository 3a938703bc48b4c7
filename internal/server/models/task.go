package models

import "time"

// Task is a user-owned record. UserID is always taken from the
// authenticated identity, never from client input, and every query
// against tasks filters on it.
type Task struct {
	ID          int64
	UserID      string
	Title       string
	Description *string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
