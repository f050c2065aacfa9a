// Package formdata decodes small form bodies sent as JSON, urlencoded or
// multipart into flat string values.
package formdata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// MaxBytes - предел тела формы без файлов
const MaxBytes = 64 << 10

var (
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrTooLarge               = errors.New("form body too large")
)

// Values хранит первое значение каждого поля
type Values map[string]string

func (v Values) Get(key string) string {
	return v[key]
}

// IsMultipart reports whether contentType is multipart/form-data.
func IsMultipart(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "multipart/form-data"
}

// Decode reads fields from a JSON, urlencoded or multipart body.
// An empty body yields empty values whatever the content type.
func Decode(contentType string, body []byte) (Values, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Values{}, nil
	}
	if len(body) > MaxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, MaxBytes)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		return decodeJSON(body)
	case mediaType == "application/x-www-form-urlencoded":
		vals, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("decode form: %w", err)
		}
		return first(vals), nil
	case mediaType == "multipart/form-data":
		form, err := multipart.NewReader(bytes.NewReader(body), params["boundary"]).ReadForm(MaxBytes)
		if err != nil {
			return nil, fmt.Errorf("decode multipart: %w", err)
		}
		defer form.RemoveAll()
		return FromMultipart(form), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, mediaType)
	}
}

// FromMultipart returns the text fields of a parsed multipart form.
func FromMultipart(form *multipart.Form) Values {
	if form == nil {
		return Values{}
	}
	return first(form.Value)
}

func decodeJSON(body []byte) (Values, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	vals := make(Values, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case nil:
		case string:
			vals[k] = v
		case map[string]any, []any:
			return nil, fmt.Errorf("decode json: field %q must be a scalar", k)
		default:
			vals[k] = fmt.Sprint(v)
		}
	}
	return vals, nil
}

func first(src map[string][]string) Values {
	vals := make(Values, len(src))
	for k, v := range src {
		if len(v) > 0 {
			vals[k] = v[0]
		}
	}
	return vals
}

// HTTPError maps a Decode failure to an API error.
func HTTPError(err error) huma.StatusError {
	switch {
	case errors.Is(err, ErrUnsupportedContentType):
		return huma.NewError(http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, ErrTooLarge):
		return huma.NewError(http.StatusRequestEntityTooLarge, err.Error())
	default:
		return huma.Error400BadRequest("malformed request body", err)
	}
}
