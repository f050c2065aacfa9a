package upload

import (
	"fmt"
	"strings"
)

const (
	ModeImages = "images"
	ModeLegacy = "legacy"

	MiB = 1 << 20
)

// Policy is the admission policy for uploaded files. A file is admitted when
// its extension is listed, its declared media type contains one of
// MediaTypes, and it is not larger than MaxBytes.
type Policy struct {
	Extensions []string
	MediaTypes []string
	MaxBytes   int64
}

// PolicyFor returns one of the built-in presets.
func PolicyFor(mode string) (Policy, error) {
	switch mode {
	case ModeImages, "":
		return Policy{
			Extensions: []string{"jpeg", "jpg", "png", "gif", "webp", "mp4", "webm"},
			MediaTypes: []string{"image", "video"},
			MaxBytes:   10 * MiB,
		}, nil
	case ModeLegacy:
		exts := []string{"jpeg", "jpg", "png", "gif", "mp4", "mov", "avi", "mkv", "webm"}
		return Policy{
			Extensions: exts,
			MediaTypes: exts,
			MaxBytes:   200 * MiB,
		}, nil
	default:
		return Policy{}, fmt.Errorf("unknown upload mode: %q", mode)
	}
}

// Validate проверяет, что политика пригодна к использованию.
func (p Policy) Validate() error {
	if len(p.Extensions) == 0 {
		return fmt.Errorf("upload policy: no allowed extensions")
	}
	if len(p.MediaTypes) == 0 {
		return fmt.Errorf("upload policy: no allowed media types")
	}
	if p.MaxBytes <= 0 {
		return fmt.Errorf("upload policy: max size must be positive, got %d", p.MaxBytes)
	}
	return nil
}

// Admit checks the file name and declared media type. Size is checked while
// the content is streamed.
func (p Policy) Admit(filename, contentType string) error {
	ext := strings.TrimPrefix(strings.ToLower(extension(filename)), ".")
	if !p.allowsExtension(ext) {
		return fmt.Errorf("%w: extension %q is not allowed", ErrUnsupportedMediaType, ext)
	}
	if !p.allowsMediaType(contentType) {
		return fmt.Errorf("%w: media type %q is not allowed", ErrUnsupportedMediaType, contentType)
	}
	return nil
}

func (p Policy) allowsExtension(ext string) bool {
	if ext == "" {
		return false
	}
	for _, allowed := range p.Extensions {
		if strings.EqualFold(strings.TrimPrefix(allowed, "."), ext) {
			return true
		}
	}
	return false
}

func (p Policy) allowsMediaType(contentType string) bool {
	ct := strings.ToLower(contentType)
	if ct == "" {
		return false
	}
	for _, allowed := range p.MediaTypes {
		if allowed != "" && strings.Contains(ct, strings.ToLower(allowed)) {
			return true
		}
	}
	return false
}
