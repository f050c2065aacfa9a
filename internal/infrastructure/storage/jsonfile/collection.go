package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"sitecms/internal/domain/record"

	"github.com/moby/sys/atomicwriter"
	"golang.org/x/exp/slog"
)

const filePerm = 0o644

// CorruptError is returned when the backing file exists but does not hold a
// JSON array of records. The file is left untouched.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("collection %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() []error {
	return []error{record.ErrStorageCorrupt, e.Err}
}

// Collection is a newest-first list of records kept in one JSON file.
// Every operation is a whole-file read-modify-write done under one mutex,
// so concurrent writers on the same Collection never lose updates.
type Collection[T record.Entity] struct {
	mu   sync.Mutex
	path string
	log  *slog.Logger
}

func NewCollection[T record.Entity](path string, log *slog.Logger) *Collection[T] {
	return &Collection[T]{
		path: path,
		log:  log.With("component", "jsonfile_collection", "path", path),
	}
}

// Path возвращает путь к файлу коллекции.
func (c *Collection[T]) Path() string {
	return c.path
}

// LoadAll returns every record. A collection that was never written is empty.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, _, err := c.load()
	return items, err
}

// Prepend inserts rec at the head and persists the whole collection.
func (c *Collection[T]) Prepend(ctx context.Context, rec T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, _, err := c.load()
	if err != nil {
		return err
	}

	items = append([]T{rec}, items...)
	return c.save(items)
}

// DeleteByID removes every record with the given id. It reports whether
// anything was removed and returns record.ErrNotFound, creating nothing,
// when the backing file does not exist yet.
func (c *Collection[T]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, exists, err := c.load()
	if err != nil {
		return false, err
	}
	if !exists {
		return false, record.ErrNotFound
	}

	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.GetID() != id {
			kept = append(kept, item)
		}
	}

	if len(kept) == len(items) {
		return false, nil
	}

	if err := c.save(kept); err != nil {
		return false, err
	}

	c.log.Debug("records removed", "id", id, "count", len(items)-len(kept))
	return true, nil
}

// SaveAll replaces the collection with recs.
func (c *Collection[T]) SaveAll(ctx context.Context, recs []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.save(recs)
}

func (c *Collection[T]) load() ([]T, bool, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, false, nil
		}
		return nil, false, fmt.Errorf("read collection: %w", err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Error("collection file is not valid JSON", "error", err)
		return nil, true, &CorruptError{Path: c.path, Err: err}
	}
	if items == nil {
		items = []T{}
	}

	return items, true, nil
}

// save writes to a temporary file and renames it over the old one, so a
// reader never observes a half-written collection.
func (c *Collection[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create collection dir: %w", err)
	}

	if err := atomicwriter.WriteFile(c.path, data, filePerm); err != nil {
		c.log.Error("failed to write collection", "error", err)
		return fmt.Errorf("write collection: %w", err)
	}

	return nil
}
