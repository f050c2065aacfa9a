package record

import (
	"context"
	"io"
)

// Repository is an ordered, newest-first collection of one record kind.
type Repository[T Entity] interface {
	LoadAll(ctx context.Context) ([]T, error)
	Prepend(ctx context.Context, rec T) error
	// DeleteByID returns ErrNotFound when the collection was never written.
	DeleteByID(ctx context.Context, id int64) (bool, error)
	SaveAll(ctx context.Context, recs []T) error
}

// AttachmentStore accepts uploaded files and returns their public path.
type AttachmentStore interface {
	Ingest(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
	Remove(ctx context.Context, ref string) error
}

// Publisher delivers change events to interested parties.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}
