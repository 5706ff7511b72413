package domain

import "time"

// HistoryEntry is one device-reported drowsiness alarm. The history array is
// append-only; insertion order is chronological order.
type HistoryEntry struct {
	Time time.Time `firestore:"time" json:"time"`
}

// AlarmDocument is the per-account alarm document, keyed by account id.
type AlarmDocument struct {
	Email        string         `firestore:"email" json:"email"`
	AlarmHistory []HistoryEntry `firestore:"alarmHistory" json:"alarmHistory"`
}

// DeltaKind classifies a change-feed delivery.
type DeltaKind int

const (
	DeltaAdded DeltaKind = iota
	DeltaModified
	DeltaRemoved
)

// Delta is one change-feed delivery for a single alarm document. The store
// reports whole-document changes, so the document carries the full history.
type Delta struct {
	Kind      DeltaKind
	AccountID string
	Doc       AlarmDocument
}

// Occurrence is one discrete alarm event derived from a document's history.
type Occurrence struct {
	AccountID string    `json:"accountId"`
	Email     string    `json:"email"`
	Time      time.Time `json:"time"`
}
