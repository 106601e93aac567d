package entity

import "time"

type EventKind string

const (
	EventCreated  EventKind = "created"
	EventUpdated  EventKind = "updated"
	EventDeleted  EventKind = "deleted"
	EventOrphaned EventKind = "orphaned"
)

// MemeEvent is published after a mutation step has committed.
type MemeEvent struct {
	Kind     EventKind `json:"kind"`
	MemeID   uint      `json:"meme_id,omitempty"`
	Owner    string    `json:"owner,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
	At       time.Time `json:"at"`
}

// Orphan is a blob object left without a referencing row.
type Orphan struct {
	Locator    string    `json:"locator" bson:"_id"`
	Reason     string    `json:"reason" bson:"reason"`
	MemeID     uint      `json:"meme_id,omitempty" bson:"meme_id,omitempty"`
	RecordedAt time.Time `json:"recorded_at" bson:"recorded_at"`
}
