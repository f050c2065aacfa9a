package record

import (
	"errors"
)

var (
	ErrNotFound       = errors.New("collection not found")
	ErrInvalidInput   = errors.New("invalid record data")
	ErrStorageCorrupt = errors.New("storage is corrupt")
)
