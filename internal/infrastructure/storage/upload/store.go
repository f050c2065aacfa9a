package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrNotFound             = errors.New("attachment not found")
)

const (
	partialPrefix = ".upload-"
	partialSuffix = ".part"
)

// Recorder receives upload outcomes, e.g. for metrics.
type Recorder interface {
	UploadAccepted(size int64)
	UploadRejected(reason string)
}

// Store keeps uploaded attachments in one directory. Files are named
// <id><original extension>, where id comes from the names function.
type Store struct {
	dir      string
	prefix   string
	policy   Policy
	names    func() int64
	recorder Recorder
	log      *slog.Logger
}

// New создает хранилище вложений и директорию под него.
func New(dir, prefix string, policy Policy, names func() int64, log *slog.Logger) (*Store, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Store{
		dir:    dir,
		prefix: "/" + strings.Trim(prefix, "/"),
		policy: policy,
		names:  names,
		log:    log.With("component", "upload_store"),
	}, nil
}

// SetRecorder подключает учет результатов загрузки.
func (s *Store) SetRecorder(r Recorder) {
	s.recorder = r
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Prefix() string {
	return s.prefix
}

func (s *Store) Policy() Policy {
	return s.policy
}

// Ingest admits and stores one uploaded file and returns its public path.
// On any failure nothing is left in the upload directory.
func (s *Store) Ingest(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	if err := s.policy.Admit(filename, contentType); err != nil {
		s.rejected("media_type")
		return "", err
	}

	tmp := filepath.Join(s.dir, partialPrefix+uuid.NewString()+partialSuffix)
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create partial upload: %w", err)
	}

	// One byte past the ceiling is enough to know the file is too large.
	n, copyErr := io.Copy(f, io.LimitReader(&ctxReader{ctx: ctx, r: r}, s.policy.MaxBytes+1))
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		s.discard(tmp)
		s.rejected("io")
		return "", fmt.Errorf("write upload: %w", copyErr)
	case closeErr != nil:
		s.discard(tmp)
		return "", fmt.Errorf("close upload: %w", closeErr)
	case n > s.policy.MaxBytes:
		s.discard(tmp)
		s.rejected("size")
		return "", fmt.Errorf("%w: limit is %d bytes", ErrPayloadTooLarge, s.policy.MaxBytes)
	}

	name := strconv.FormatInt(s.names(), 10) + extension(filename)
	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		s.discard(tmp)
		return "", fmt.Errorf("store upload: %w", err)
	}

	if s.recorder != nil {
		s.recorder.UploadAccepted(n)
	}
	s.log.Debug("attachment stored", "name", name, "size", n)

	return path.Join(s.prefix, name), nil
}

// Remove deletes the attachment a ref points to. Removing a missing file
// is not an error.
func (s *Store) Remove(_ context.Context, ref string) error {
	name := strings.TrimPrefix(ref, s.prefix+"/")
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrNotFound, ref)
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove attachment: %w", err)
	}
	return nil
}

// Open returns a stored attachment for serving. Partial uploads and
// anything outside the upload directory are reported as ErrNotFound.
func (s *Store) Open(name string) (*os.File, fs.FileInfo, error) {
	if !validName(name) {
		return nil, nil, ErrNotFound
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("open attachment: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat attachment: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, ErrNotFound
	}

	return f, info, nil
}

// IsPartial reports whether name is an unfinished upload.
func IsPartial(name string) bool {
	return strings.HasPrefix(name, partialPrefix) && strings.HasSuffix(name, partialSuffix)
}

func (s *Store) discard(tmp string) {
	if err := os.Remove(tmp); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Error("failed to remove partial upload", "path", tmp, "error", err)
	}
}

func (s *Store) rejected(reason string) {
	if s.recorder != nil {
		s.recorder.UploadRejected(reason)
	}
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return !IsPartial(name)
}

// extension returns the extension of the client-supplied name, ignoring any
// directory part the client may have sent.
func extension(filename string) string {
	base := filename
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	return filepath.Ext(base)
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
