package record

import (
	"io"
	"time"
)

// Entity is anything a collection can hold: every record carries a numeric id.
type Entity interface {
	GetID() int64
}

// Upload is a file received together with a write request.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// Event is published after a collection changed.
type Event struct {
	Type   string    `json:"type"`
	Record RecType   `json:"record"`
	ID     int64     `json:"id"`
	At     time.Time `json:"at"`
}

const (
	ActionCreated = "created"
	ActionDeleted = "deleted"
)

// NewEvent собирает событие вида "post.created".
func NewEvent(typ RecType, action string, id int64, at time.Time) Event {
	return Event{
		Type:   typ.String() + "." + action,
		Record: typ,
		ID:     id,
		At:     at,
	}
}
