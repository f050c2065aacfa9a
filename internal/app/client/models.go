package client

// PostInput - поля нового поста. MediaPath - путь к локальному файлу, необязательно.
type PostInput struct {
	Title     string
	Content   string
	Type      string
	MediaPath string
}

type JobInput struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Company string `json:"company,omitempty"`
}

// Result - ответ сервера на создание и удаление
type Result struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id,omitempty"`
	Deleted bool  `json:"deleted,omitempty"`
}
