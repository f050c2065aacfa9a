package job

import (
	"net/http"

	"sitecms/internal/app/server/api/http/formdata"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "jobs-list",
		Method:      http.MethodGet,
		Path:        "/api/jobs",
		Summary:     "Список вакансий",
		Tags:        []string{"jobs"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:  "jobs-create",
		Method:       http.MethodPost,
		Path:         "/api/jobs",
		Summary:      "Создать вакансию",
		Description:  "Поля title, link, company. Тело: application/json, application/x-www-form-urlencoded или multipart/form-data.",
		Tags:         []string{"jobs"},
		MaxBodyBytes: formdata.MaxBytes,
		Middlewares:  h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "jobs-delete",
		Method:      http.MethodDelete,
		Path:        "/api/jobs/{id}",
		Summary:     "Удалить вакансию",
		Tags:        []string{"jobs"},
		Middlewares: h.middleware,
	}
}
