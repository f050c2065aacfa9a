package record

import (
	"fmt"
	"net/url"
	"strings"
)

// Job is a vacancy link published on the site.
type Job struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Link    string `json:"link"`
	Company string `json:"company,omitempty"`
	Date    string `json:"date"`
}

func (j Job) GetID() int64 {
	return j.ID
}

// JobFields are the raw values a client submits for a new job.
type JobFields struct {
	Title   string
	Link    string
	Company string
}

func (f JobFields) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(f.Link) == "" {
		return fmt.Errorf("%w: link is required", ErrInvalidInput)
	}
	u, err := url.Parse(f.Link)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: link must be an absolute URL", ErrInvalidInput)
	}
	return nil
}
