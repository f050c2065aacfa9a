package job

import (
	"sitecms/internal/domain/record"
)

type listOutput struct {
	Body []record.Job
}

// createInput принимает тело как есть: JSON, urlencoded или multipart
type createInput struct {
	ContentType string `header:"Content-Type"`
	RawBody     []byte
}

type deleteInput struct {
	ID int64 `path:"id" example:"1760520600000" doc:"ID вакансии"`
}

type output struct {
	Body jobResponse
}

type jobResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id,omitempty"`
	Deleted bool  `json:"deleted,omitempty"`
}
