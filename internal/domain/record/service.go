package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

// Service defines the business logic for posts and jobs
type Service struct {
	posts   Repository[Post]
	jobs    Repository[Job]
	files   AttachmentStore
	factory *Factory
	events  Publisher
	now     func() time.Time
	log     *slog.Logger
}

type Servicer interface {
	ListPosts(ctx context.Context) ([]Post, error)
	CreatePost(ctx context.Context, fields PostFields, media *Upload) (*Post, error)
	DeletePost(ctx context.Context, id int64) (bool, error)

	ListJobs(ctx context.Context) ([]Job, error)
	CreateJob(ctx context.Context, fields JobFields) (*Job, error)
	DeleteJob(ctx context.Context, id int64) (bool, error)
}

// NewService creates a new record service. events may be nil.
func NewService(
	posts Repository[Post],
	jobs Repository[Job],
	files AttachmentStore,
	factory *Factory,
	events Publisher,
	log *slog.Logger,
) Servicer {
	return &Service{
		posts:   posts,
		jobs:    jobs,
		files:   files,
		factory: factory,
		events:  events,
		now:     time.Now,
		log:     log.With("component", "record_service"),
	}
}

// ListPosts returns all posts, newest first
func (s *Service) ListPosts(ctx context.Context) ([]Post, error) {
	posts, err := s.posts.LoadAll(ctx)
	if err != nil {
		s.log.Error("failed to list posts", "error", err)
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// CreatePost stores the attachment (if any) and prepends a new post.
// Nothing is read from the collection until the attachment was admitted.
func (s *Service) CreatePost(ctx context.Context, fields PostFields, media *Upload) (*Post, error) {
	if err := s.factory.ValidatePost(fields); err != nil {
		return nil, err
	}

	ref := ""
	if media != nil {
		var err error
		ref, err = s.files.Ingest(ctx, media.Filename, media.ContentType, media.Content)
		if err != nil {
			s.log.Warn("attachment rejected", "filename", media.Filename, "content_type", media.ContentType, "error", err)
			return nil, fmt.Errorf("ingest attachment: %w", err)
		}
	}

	post, err := s.factory.NewPost(fields, ref)
	if err != nil {
		s.rollbackAttachment(ctx, ref)
		return nil, err
	}

	if err := s.posts.Prepend(ctx, *post); err != nil {
		s.log.Error("failed to create post", "error", err)
		s.rollbackAttachment(ctx, ref)
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.log.Info("post created successfully", "post_id", post.ID, "media", post.Media)
	s.publish(ctx, RecTypePost, ActionCreated, post.ID)

	return post, nil
}

// DeletePost removes the post with the given id. The attachment stays on disk.
func (s *Service) DeletePost(ctx context.Context, id int64) (bool, error) {
	removed, err := s.posts.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, ErrNotFound
		}
		s.log.Error("failed to delete post", "post_id", id, "error", err)
		return false, fmt.Errorf("delete post: %w", err)
	}

	if removed {
		s.log.Info("post deleted", "post_id", id)
		s.publish(ctx, RecTypePost, ActionDeleted, id)
	}
	return removed, nil
}

// ListJobs returns all jobs, newest first
func (s *Service) ListJobs(ctx context.Context) ([]Job, error) {
	jobs, err := s.jobs.LoadAll(ctx)
	if err != nil {
		s.log.Error("failed to list jobs", "error", err)
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// CreateJob prepends a new job
func (s *Service) CreateJob(ctx context.Context, fields JobFields) (*Job, error) {
	job, err := s.factory.NewJob(fields)
	if err != nil {
		return nil, err
	}

	if err := s.jobs.Prepend(ctx, *job); err != nil {
		s.log.Error("failed to create job", "error", err)
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.log.Info("job created successfully", "job_id", job.ID)
	s.publish(ctx, RecTypeJob, ActionCreated, job.ID)

	return job, nil
}

// DeleteJob removes the job with the given id
func (s *Service) DeleteJob(ctx context.Context, id int64) (bool, error) {
	removed, err := s.jobs.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, ErrNotFound
		}
		s.log.Error("failed to delete job", "job_id", id, "error", err)
		return false, fmt.Errorf("delete job: %w", err)
	}

	if removed {
		s.log.Info("job deleted", "job_id", id)
		s.publish(ctx, RecTypeJob, ActionDeleted, id)
	}
	return removed, nil
}

func (s *Service) rollbackAttachment(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.files.Remove(ctx, ref); err != nil {
		s.log.Error("failed to remove orphaned attachment", "ref", ref, "error", err)
	}
}

// publish is best effort: a lost event never fails the request.
func (s *Service) publish(ctx context.Context, typ RecType, action string, id int64) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, NewEvent(typ, action, id, s.now())); err != nil {
		s.log.Warn("failed to publish event", "record", typ, "action", action, "id", id, "error", err)
	}
}
