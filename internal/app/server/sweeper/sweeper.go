// Package sweeper periodically removes partial uploads left behind by a
// crash or a killed request.
package sweeper

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"sitecms/internal/infrastructure/storage/upload"

	"github.com/robfig/cron/v3"
	"golang.org/x/exp/slog"
)

// Sweeper wraps robfig/cron and cleans the upload directory.
type Sweeper struct {
	cron   *cron.Cron
	dir    string
	maxAge time.Duration
	now    func() time.Time
	log    *slog.Logger
}

// New creates a Sweeper that runs on the given cron spec, e.g. "@every 1h".
func New(dir, spec string, maxAge time.Duration, log *slog.Logger) (*Sweeper, error) {
	s := &Sweeper{
		cron:   cron.New(),
		dir:    dir,
		maxAge: maxAge,
		now:    time.Now,
		log:    log.With("component", "sweeper"),
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("cron.AddFunc: %w", err)
	}

	return s, nil
}

// Start launches the scheduler in its own goroutine.
func (s *Sweeper) Start() {
	s.cron.Start()
	s.log.Info("sweeper started", "dir", s.dir, "max_age", s.maxAge)
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("sweeper stopped")
}

func (s *Sweeper) run() {
	removed, err := s.Sweep()
	if err != nil {
		s.log.Error("sweep failed", "error", err)
		return
	}
	if removed > 0 {
		s.log.Info("stale partial uploads removed", "count", removed)
	}
}

// Sweep removes partial uploads older than maxAge and returns how many were
// deleted. Finished attachments are never touched.
func (s *Sweeper) Sweep() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read upload dir: %w", err)
	}

	cutoff := s.now().Add(-s.maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !upload.IsPartial(e.Name()) {
			continue
		}

		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("failed to remove partial upload", "name", e.Name(), "error", err)
			continue
		}
		removed++
	}

	return removed, nil
}
