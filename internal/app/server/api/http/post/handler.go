package post

import (
	"context"
	"errors"
	"time"

	"sitecms/internal/app/server/api/http/apierr"
	"sitecms/internal/app/server/api/http/formdata"
	"sitecms/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const mediaField = "media"

// Limits bound the size and read time of a create request.
type Limits struct {
	MaxBodyBytes int64
	ReadTimeout  time.Duration
}

type Handler struct {
	service    record.Servicer
	limits     Limits
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, limits Limits, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		limits:     limits,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	posts, err := h.service.ListPosts(ctx)
	if err != nil {
		return nil, apierr.FromDomain(err)
	}

	return &listOutput{
		Body: posts,
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	if input.form != nil {
		defer input.form.RemoveAll()
	}
	if input.bodyErr != nil {
		h.log.Warn("cannot read post body", "content_type", input.ContentType, "error", input.bodyErr)
		return nil, formdata.HTTPError(input.bodyErr)
	}

	fields := record.PostFields{
		Title:   input.values.Get("title"),
		Content: input.values.Get("content"),
		Type:    input.values.Get("type"),
	}

	var media *record.Upload
	if input.form != nil {
		if files := input.form.File[mediaField]; len(files) > 0 {
			fh := files[0]
			f, err := fh.Open()
			if err != nil {
				return nil, huma.Error400BadRequest("cannot read media file", err)
			}
			defer f.Close()

			media = &record.Upload{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Content:     f,
			}
		}
	}

	post, err := h.service.CreatePost(ctx, fields, media)
	if err != nil {
		return nil, apierr.FromDomain(err)
	}

	return &output{
		Body: postResponse{
			Success: true,
			ID:      post.ID,
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*output, error) {
	deleted, err := h.service.DeletePost(ctx, input.ID)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return &output{Body: postResponse{Success: false}}, nil
		}
		return nil, apierr.FromDomain(err)
	}

	return &output{
		Body: postResponse{
			Success: true,
			Deleted: deleted,
		},
	}, nil
}
