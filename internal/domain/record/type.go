package record

import (
	"fmt"
)

type RecType string

const (
	RecTypePost RecType = "post"
	RecTypeJob  RecType = "job"
)

// Validate проверяет, что тип записи известен.
func (t RecType) Validate() error {
	switch t {
	case RecTypePost, RecTypeJob:
		return nil
	}
	return fmt.Errorf("неверный тип записи: %s", t)
}

// String возвращает строковое представление типа.
func (t RecType) String() string {
	return string(t)
}

// DisplayName возвращает человекочитаемое название типа.
func (t RecType) DisplayName() string {
	switch t {
	case RecTypePost:
		return "Posts"
	case RecTypeJob:
		return "Jobs"
	default:
		return "Unknown"
	}
}
