// Package models holds the server-side entities persisted in PostgreSQL.
package models

import "time"

// User is an identity record. Email is stored normalized (lowercased and
// trimmed) and is unique; PasswordHash holds the bcrypt digest and must
// never reach a client.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
