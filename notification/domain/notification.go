package domain

import "time"

// Entry is one dispatched notification. Entries live in the in-memory log
// for the lifetime of the process; nothing is persisted.
type Entry struct {
	ID           string    `json:"id"`
	Message      string    `json:"message"`
	AccountEmail string    `json:"accountEmail"`
	ProducedAt   time.Time `json:"producedAt"`
}
