package record

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository[T Entity] struct {
	mock.Mock
}

func (m *MockRepository[T]) LoadAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) Prepend(ctx context.Context, rec T) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository[T]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[T]) SaveAll(ctx context.Context, recs []T) error {
	args := m.Called(ctx, recs)
	return args.Error(0)
}

type MockAttachmentStore struct {
	mock.Mock
}

func (m *MockAttachmentStore) Ingest(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, filename, contentType, r)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentStore) Remove(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, ev Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

var fixedNow = func() time.Time {
	return time.Date(2025, time.October, 15, 9, 30, 0, 0, time.UTC)
}

type testDeps struct {
	posts  *MockRepository[Post]
	jobs   *MockRepository[Job]
	files  *MockAttachmentStore
	events *MockPublisher
}

func newTestService(strict bool) (Servicer, testDeps) {
	d := testDeps{
		posts:  new(MockRepository[Post]),
		jobs:   new(MockRepository[Job]),
		files:  new(MockAttachmentStore),
		events: new(MockPublisher),
	}
	factory := NewFactory(NewIDGenerator(fixedNow), fixedNow, strict)
	svc := NewService(d.posts, d.jobs, d.files, factory, d.events, slog.Default())
	return svc, d
}

func TestService_ListPosts(t *testing.T) {
	svc, d := newTestService(false)

	posts := []Post{
		{ID: 2, Title: "second"},
		{ID: 1, Title: "first"},
	}
	d.posts.On("LoadAll", mock.Anything).Return(posts, nil)

	result, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, posts, result)
	d.posts.AssertExpectations(t)
}

func TestService_ListPosts_Corrupt(t *testing.T) {
	svc, d := newTestService(false)
	d.posts.On("LoadAll", mock.Anything).Return(nil, ErrStorageCorrupt)

	_, err := svc.ListPosts(context.Background())
	assert.ErrorIs(t, err, ErrStorageCorrupt)
}

func TestService_CreatePost(t *testing.T) {
	t.Run("without media", func(t *testing.T) {
		svc, d := newTestService(false)

		d.posts.On("Prepend", mock.Anything, mock.MatchedBy(func(p Post) bool {
			return p.Title == "Hello" &&
				p.Content == "World" &&
				p.Type == DefaultPostType &&
				p.Media == "" &&
				p.Date == "Wed Oct 15 2025" &&
				p.ID == fixedNow().UnixMilli()
		})).Return(nil)
		d.events.On("Publish", mock.Anything, mock.MatchedBy(func(ev Event) bool {
			return ev.Type == "post.created" && ev.Record == RecTypePost
		})).Return(nil)

		post, err := svc.CreatePost(context.Background(), PostFields{Title: "Hello", Content: "World"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Hello", post.Title)

		d.posts.AssertExpectations(t)
		d.events.AssertExpectations(t)
		d.files.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("with media", func(t *testing.T) {
		svc, d := newTestService(false)
		content := strings.NewReader("png bytes")

		d.files.On("Ingest", mock.Anything, "cat.png", "image/png", content).Return("/uploads/1760520600000.png", nil)
		d.posts.On("Prepend", mock.Anything, mock.MatchedBy(func(p Post) bool {
			return p.Media == "/uploads/1760520600000.png" && p.Type == "News"
		})).Return(nil)
		d.events.On("Publish", mock.Anything, mock.Anything).Return(nil)

		post, err := svc.CreatePost(context.Background(),
			PostFields{Title: "t", Content: "c", Type: "News"},
			&Upload{Filename: "cat.png", ContentType: "image/png", Content: content},
		)
		require.NoError(t, err)
		assert.Equal(t, "/uploads/1760520600000.png", post.Media)
		d.files.AssertExpectations(t)
	})

	t.Run("rejected attachment never touches the collection", func(t *testing.T) {
		svc, d := newTestService(false)
		rejected := errors.New("unsupported media type")

		d.files.On("Ingest", mock.Anything, "evil.exe", "application/octet-stream", mock.Anything).Return("", rejected)

		_, err := svc.CreatePost(context.Background(),
			PostFields{Title: "t", Content: "c"},
			&Upload{Filename: "evil.exe", ContentType: "application/octet-stream", Content: strings.NewReader("MZ")},
		)
		assert.ErrorIs(t, err, rejected)
		d.posts.AssertNotCalled(t, "Prepend", mock.Anything, mock.Anything)
		d.posts.AssertNotCalled(t, "LoadAll", mock.Anything)
	})

	t.Run("failed save removes the attachment", func(t *testing.T) {
		svc, d := newTestService(false)
		diskFull := errors.New("no space left on device")

		d.files.On("Ingest", mock.Anything, "a.jpg", "image/jpeg", mock.Anything).Return("/uploads/1.jpg", nil)
		d.files.On("Remove", mock.Anything, "/uploads/1.jpg").Return(nil)
		d.posts.On("Prepend", mock.Anything, mock.Anything).Return(diskFull)

		_, err := svc.CreatePost(context.Background(),
			PostFields{Title: "t", Content: "c"},
			&Upload{Filename: "a.jpg", ContentType: "image/jpeg", Content: strings.NewReader("x")},
		)
		assert.ErrorIs(t, err, diskFull)
		d.files.AssertExpectations(t)
		d.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("publish failure is not fatal", func(t *testing.T) {
		svc, d := newTestService(false)

		d.posts.On("Prepend", mock.Anything, mock.Anything).Return(nil)
		d.events.On("Publish", mock.Anything, mock.Anything).Return(errors.New("redis down"))

		_, err := svc.CreatePost(context.Background(), PostFields{Title: "t", Content: "c"}, nil)
		assert.NoError(t, err)
	})

	t.Run("strict mode rejects empty title before ingesting", func(t *testing.T) {
		svc, d := newTestService(true)

		_, err := svc.CreatePost(context.Background(),
			PostFields{Content: "c"},
			&Upload{Filename: "a.jpg", ContentType: "image/jpeg", Content: strings.NewReader("x")},
		)
		assert.ErrorIs(t, err, ErrInvalidInput)
		d.files.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		d.posts.AssertNotCalled(t, "Prepend", mock.Anything, mock.Anything)
	})

	t.Run("lenient mode keeps empty fields", func(t *testing.T) {
		svc, d := newTestService(false)

		d.posts.On("Prepend", mock.Anything, mock.MatchedBy(func(p Post) bool {
			return p.Title == "" && p.Content == ""
		})).Return(nil)
		d.events.On("Publish", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.CreatePost(context.Background(), PostFields{}, nil)
		assert.NoError(t, err)
		d.posts.AssertExpectations(t)
	})
}

func TestService_DeletePost(t *testing.T) {
	tests := []struct {
		name        string
		removed     bool
		repoErr     error
		wantRemoved bool
		wantErr     error
		publishes   bool
	}{
		{name: "removed", removed: true, wantRemoved: true, publishes: true},
		{name: "unknown id", removed: false, wantRemoved: false},
		{name: "no collection yet", repoErr: ErrNotFound, wantErr: ErrNotFound},
		{name: "corrupt collection", repoErr: ErrStorageCorrupt, wantErr: ErrStorageCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newTestService(false)
			d.posts.On("DeleteByID", mock.Anything, int64(42)).Return(tt.removed, tt.repoErr)
			d.events.On("Publish", mock.Anything, mock.MatchedBy(func(ev Event) bool {
				return ev.Type == "post.deleted" && ev.ID == 42
			})).Return(nil)

			removed, err := svc.DeletePost(context.Background(), 42)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantRemoved, removed)

			if tt.publishes {
				d.events.AssertExpectations(t)
			} else {
				d.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
			}
			d.files.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Jobs(t *testing.T) {
	t.Run("create passes fields verbatim", func(t *testing.T) {
		svc, d := newTestService(false)

		d.jobs.On("Prepend", mock.Anything, mock.MatchedBy(func(j Job) bool {
			return j.Title == "Go developer" &&
				j.Link == "https://example.com/jobs/1" &&
				j.Company == "" &&
				j.Date == "Wed Oct 15 2025"
		})).Return(nil)
		d.events.On("Publish", mock.Anything, mock.MatchedBy(func(ev Event) bool {
			return ev.Type == "job.created"
		})).Return(nil)

		job, err := svc.CreateJob(context.Background(), JobFields{Title: "Go developer", Link: "https://example.com/jobs/1"})
		require.NoError(t, err)
		assert.NotZero(t, job.ID)
		d.jobs.AssertExpectations(t)
		d.events.AssertExpectations(t)
	})

	t.Run("strict mode requires absolute link", func(t *testing.T) {
		svc, d := newTestService(true)

		_, err := svc.CreateJob(context.Background(), JobFields{Title: "Go developer", Link: "not a url"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		d.jobs.AssertNotCalled(t, "Prepend", mock.Anything, mock.Anything)
	})

	t.Run("list", func(t *testing.T) {
		svc, d := newTestService(false)
		d.jobs.On("LoadAll", mock.Anything).Return([]Job{}, nil)

		jobs, err := svc.ListJobs(context.Background())
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("delete without collection", func(t *testing.T) {
		svc, d := newTestService(false)
		d.jobs.On("DeleteByID", mock.Anything, int64(12345)).Return(false, ErrNotFound)

		removed, err := svc.DeleteJob(context.Background(), 12345)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.False(t, removed)
	})
}
