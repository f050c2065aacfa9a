// Package apierr renders every API failure as {"success": false, ...}.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"sitecms/internal/domain/record"
	"sitecms/internal/infrastructure/storage/upload"

	"github.com/danielgtaylor/huma/v2"
)

// Error - тело ответа с ошибкой
type Error struct {
	Success bool     `json:"success"`
	Status  int      `json:"status" example:"415"`
	Message string   `json:"error" example:"unsupported media type"`
	Details []string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.Status
}

// New has the signature of huma.NewError and replaces it in api.New.
func New(status int, msg string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}

	return &Error{
		Status:  status,
		Message: msg,
		Details: details,
	}
}

// FromDomain maps domain and storage errors to HTTP errors.
func FromDomain(err error) error {
	switch {
	case errors.Is(err, record.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, upload.ErrUnsupportedMediaType):
		return huma.NewError(http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, upload.ErrPayloadTooLarge):
		return huma.NewError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, upload.ErrNotFound), errors.Is(err, record.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, record.ErrStorageCorrupt):
		return huma.Error500InternalServerError("storage is corrupt")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

// Write renders an error outside of huma operations (static routes).
func Write(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&Error{Status: status, Message: msg})
}
