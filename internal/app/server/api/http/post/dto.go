package post

import (
	"mime/multipart"

	"sitecms/internal/app/server/api/http/formdata"
	"sitecms/internal/domain/record"
)

type listOutput struct {
	Body []record.Post
}

// createInput читает тело сам в Resolve: multipart потоком, остальное
// через formdata.
type createInput struct {
	ContentType string `header:"Content-Type"`

	form    *multipart.Form
	values  formdata.Values
	bodyErr error
}

type deleteInput struct {
	ID int64 `path:"id" example:"1760520600000" doc:"ID поста"`
}

type output struct {
	Body postResponse
}

type postResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id,omitempty"`
	Deleted bool  `json:"deleted,omitempty"`
}
