// Package static отдает файлы вне huma: вложения, админку и сайт.
package static

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"sitecms/internal/app/server/api/http/apierr"
	"sitecms/internal/infrastructure/storage/upload"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

const indexPage = "index.html"

type Handler struct {
	files       *upload.Store
	frontendDir string
	adminPage   string
	log         *slog.Logger
}

// NewHandler. frontendDir may be empty, then the site routes are not mounted.
func NewHandler(files *upload.Store, frontendDir, adminPage string, log *slog.Logger) *Handler {
	return &Handler{
		files:       files,
		frontendDir: frontendDir,
		adminPage:   adminPage,
		log:         log.With("component", "static"),
	}
}

func (h *Handler) SetupRoutes(r chi.Router) {
	r.Get(h.files.Prefix()+"/{filename}", h.upload)
	r.Get("/admin", h.admin)

	if h.frontendDir == "" {
		return
	}
	r.Get("/", h.index)
	r.Get("/*", h.page)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	f, info, err := h.files.Open(chi.URLParam(r, "filename"))
	if err != nil {
		if errors.Is(err, upload.ErrNotFound) {
			apierr.Write(w, http.StatusNotFound, "attachment not found")
			return
		}
		h.log.Error("failed to open attachment", "error", err)
		apierr.Write(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer f.Close()

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func (h *Handler) admin(w http.ResponseWriter, r *http.Request) {
	if !h.serveFile(w, r, h.adminPage) {
		http.Error(w, "Admin page not found", http.StatusNotFound)
	}
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if !h.serveFile(w, r, filepath.Join(h.frontendDir, indexPage)) {
		http.Error(w, "Page not found", http.StatusNotFound)
	}
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	path, ok := h.resolve(chi.URLParam(r, "*"))
	if !ok || !h.serveFile(w, r, path) {
		http.Error(w, "Page not found", http.StatusNotFound)
	}
}

// resolve maps a request path to a file inside frontendDir.
func (h *Handler) resolve(name string) (string, bool) {
	if name == "" || strings.Contains(name, "..") || strings.Contains(name, "\\") {
		return "", false
	}
	path := filepath.Join(h.frontendDir, filepath.FromSlash(name))
	rel, err := filepath.Rel(h.frontendDir, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return path, true
}

// serveFile отдает обычный файл; false, если его нет или это каталог
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, path string) bool {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.log.Error("failed to open static file", "path", path, "error", err)
		}
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}
