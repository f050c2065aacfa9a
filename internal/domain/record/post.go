package record

import (
	"fmt"
	"strings"
)

const DefaultPostType = "General"

// Post is a news entry shown on the site. Media is a public attachment path
// or "" when the post has no attachment.
type Post struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
	Media   string `json:"media"`
	Date    string `json:"date"`
}

func (p Post) GetID() int64 {
	return p.ID
}

// PostFields are the raw values a client submits for a new post.
type PostFields struct {
	Title   string
	Content string
	Type    string
}

func (f PostFields) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(f.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	return nil
}
