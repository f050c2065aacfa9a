package job

import (
	"context"
	"errors"

	"sitecms/internal/app/server/api/http/apierr"
	"sitecms/internal/app/server/api/http/formdata"
	"sitecms/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    record.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
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
	jobs, err := h.service.ListJobs(ctx)
	if err != nil {
		return nil, apierr.FromDomain(err)
	}

	return &listOutput{
		Body: jobs,
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	form, err := formdata.Decode(input.ContentType, input.RawBody)
	if err != nil {
		return nil, formdata.HTTPError(err)
	}

	job, err := h.service.CreateJob(ctx, record.JobFields{
		Title:   form.Get("title"),
		Link:    form.Get("link"),
		Company: form.Get("company"),
	})
	if err != nil {
		return nil, apierr.FromDomain(err)
	}

	return &output{
		Body: jobResponse{
			Success: true,
			ID:      job.ID,
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*output, error) {
	deleted, err := h.service.DeleteJob(ctx, input.ID)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return &output{Body: jobResponse{Success: false}}, nil
		}
		return nil, apierr.FromDomain(err)
	}

	return &output{
		Body: jobResponse{
			Success: true,
			Deleted: deleted,
		},
	}, nil
}
