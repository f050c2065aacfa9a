package post

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"time"

	"sitecms/internal/app/server/api/http/formdata"

	"github.com/danielgtaylor/huma/v2"
)

// multipartMemory - сколько multipart держим в памяти, остальное уходит во временные файлы
const multipartMemory = 8 << 20

// Resolve reads the request body once the header is bound. Failures are kept
// on the input and mapped to a status by the handler.
func (in *createInput) Resolve(ctx huma.Context) []error {
	op := ctx.Operation()
	if op != nil && op.BodyReadTimeout > 0 {
		_ = ctx.SetReadDeadline(time.Now().Add(op.BodyReadTimeout))
	}

	var limit int64
	if op != nil {
		limit = op.MaxBodyBytes
	}

	if formdata.IsMultipart(in.ContentType) {
		in.form, in.bodyErr = readMultipart(ctx.BodyReader(), in.ContentType, limit)
		if in.bodyErr == nil {
			in.values = formdata.FromMultipart(in.form)
		}
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(ctx.BodyReader(), formdata.MaxBytes+1))
	if err != nil {
		in.bodyErr = fmt.Errorf("read body: %w", err)
		return nil
	}
	in.values, in.bodyErr = formdata.Decode(in.ContentType, body)
	return nil
}

func readMultipart(r io.Reader, contentType string, limit int64) (*multipart.Form, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", formdata.ErrUnsupportedContentType, contentType)
	}

	lr := &limitedReader{r: r, n: limit}
	if limit <= 0 {
		lr.n = -1
	}

	form, err := multipart.NewReader(lr, params["boundary"]).ReadForm(multipartMemory)
	if lr.exceeded {
		if form != nil {
			_ = form.RemoveAll()
		}
		return nil, fmt.Errorf("%w: limit is %d bytes", formdata.ErrTooLarge, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("decode multipart: %w", err)
	}
	return form, nil
}

var errBodyLimit = errors.New("body limit reached")

// limitedReader отдает не больше n байт и помечает превышение. n < 0 - без лимита.
type limitedReader struct {
	r        io.Reader
	n        int64
	exceeded bool
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.n < 0 {
		return l.r.Read(p)
	}
	if l.n == 0 {
		var one [1]byte
		if n, _ := l.r.Read(one[:]); n > 0 {
			l.exceeded = true
			return 0, errBodyLimit
		}
		return 0, io.EOF
	}
	if int64(len(p)) > l.n {
		p = p[:l.n]
	}
	n, err := l.r.Read(p)
	l.n -= int64(n)
	return n, err
}
