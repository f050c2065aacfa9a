package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sitecms/internal/domain/record"
)

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

func (c *Client) ListPosts(ctx context.Context) ([]record.Post, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/posts", "", nil)
	if err != nil {
		return nil, err
	}

	posts := make([]record.Post, 0)
	if err := c.parseResponse(resp, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost отправляет multipart форму; файл читается потоком.
func (c *Client) CreatePost(ctx context.Context, in PostInput) (Result, error) {
	var media *os.File
	if in.MediaPath != "" {
		f, err := os.Open(in.MediaPath)
		if err != nil {
			return Result{}, fmt.Errorf("ошибка открытия файла: %w", err)
		}
		defer f.Close()
		media = f
	}

	pr, pw := io.Pipe()
	defer pr.Close()
	w := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writePostForm(w, in, media))
	}()

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/posts", w.FormDataContentType(), pr)
	if err != nil {
		pr.CloseWithError(err)
		return Result{}, err
	}

	var res Result
	if err := c.parseResponse(resp, &res); err != nil {
		return Result{}, err
	}
	return res, nil
}

func writePostForm(w *multipart.Writer, in PostInput, media *os.File) error {
	fields := [][2]string{{"title", in.Title}, {"content", in.Content}}
	if in.Type != "" {
		fields = append(fields, [2]string{"type", in.Type})
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return err
		}
	}

	if media != nil {
		name := filepath.Base(media.Name())
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="media"; filename=%q`, name))
		hdr.Set("Content-Type", mediaType(name))

		part, err := w.CreatePart(hdr)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, media); err != nil {
			return fmt.Errorf("ошибка чтения файла: %w", err)
		}
	}

	return w.Close()
}

func (c *Client) DeletePost(ctx context.Context, id int64) (Result, error) {
	return c.delete(ctx, "/api/posts/"+strconv.FormatInt(id, 10))
}

func (c *Client) ListJobs(ctx context.Context) ([]record.Job, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/jobs", "", nil)
	if err != nil {
		return nil, err
	}

	jobs := make([]record.Job, 0)
	if err := c.parseResponse(resp, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) CreateJob(ctx context.Context, in JobInput) (Result, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return Result{}, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/jobs", "application/json", bytes.NewReader(data))
	if err != nil {
		return Result{}, err
	}

	var res Result
	if err := c.parseResponse(resp, &res); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (c *Client) DeleteJob(ctx context.Context, id int64) (Result, error) {
	return c.delete(ctx, "/api/jobs/"+strconv.FormatInt(id, 10))
}

func (c *Client) delete(ctx context.Context, path string) (Result, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, path, "", nil)
	if err != nil {
		return Result{}, err
	}

	var res Result
	if err := c.parseResponse(resp, &res); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (c *Client) doRequest(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (c *Client) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	c.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error   string   `json:"error"`
			Details []string `json:"details"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return &ServerError{Status: resp.StatusCode, Message: errResp.Error, Details: errResp.Details}
		}
		return &ServerError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

// ServerError - ответ сервера со статусом 4xx/5xx
type ServerError struct {
	Status  int
	Message string
	Details []string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("ошибка сервера (%d): %s", e.Status, e.Message)
}

// видео типов нет во встроенной таблице mime
var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
}

func mediaType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := videoTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
