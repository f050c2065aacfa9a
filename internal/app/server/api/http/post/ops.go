package post

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "posts-list",
		Method:      http.MethodGet,
		Path:        "/api/posts",
		Summary:     "Список постов",
		Description: "Возвращает все посты, новые первыми. Пустой массив, если постов еще нет.",
		Tags:        []string{"posts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:     "posts-create",
		Method:          http.MethodPost,
		Path:            "/api/posts",
		Summary:         "Создать пост",
		Description:     "Поля title, content, type (по умолчанию General). Тело: multipart/form-data (с файлом media), application/json или application/x-www-form-urlencoded.",
		Tags:            []string{"posts"},
		MaxBodyBytes:    h.limits.MaxBodyBytes,
		BodyReadTimeout: h.limits.ReadTimeout,
		Middlewares:     h.middleware,
		RequestBody: &huma.RequestBody{
			Content: map[string]*huma.MediaType{
				"multipart/form-data":               {},
				"application/json":                  {},
				"application/x-www-form-urlencoded": {},
			},
		},
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "posts-delete",
		Method:      http.MethodDelete,
		Path:        "/api/posts/{id}",
		Summary:     "Удалить пост",
		Description: "Вложение поста остается на диске.",
		Tags:        []string{"posts"},
		Middlewares: h.middleware,
	}
}
