// GET    /api/v1/health      # Проверка живости
// GET    /api/posts          # Список постов
// POST   /api/posts          # Создать пост (multipart, media необязательно)
// DELETE /api/posts/{id}     # Удалить пост
// GET    /api/jobs           # Список вакансий
// POST   /api/jobs           # Создать вакансию (json, urlencoded, multipart)
// DELETE /api/jobs/{id}      # Удалить вакансию
// GET    /uploads/{filename} # Вложения
// GET    /admin, /, /{page}  # Админка и сайт
// GET    /metrics            # Prometheus

package api

import (
	"net/http"

	"sitecms/internal/app/server/api/http/apierr"
	healthAPI "sitecms/internal/app/server/api/http/health"
	jobAPI "sitecms/internal/app/server/api/http/job"
	"sitecms/internal/app/server/api/http/middleware"
	"sitecms/internal/app/server/api/http/middleware/logger"
	postAPI "sitecms/internal/app/server/api/http/post"
	staticAPI "sitecms/internal/app/server/api/http/static"
	"sitecms/internal/domain/record"
	"sitecms/internal/infrastructure/metrics"
	"sitecms/internal/infrastructure/storage/upload"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"
)

// Options - настройки HTTP слоя, не относящиеся к домену
type Options struct {
	CORSOrigins []string
	Upload      postAPI.Limits
	FrontendDir string
	AdminPage   string
}

type Handlers struct {
	Health *healthAPI.Handler
	Post   *postAPI.Handler
	Job    *jobAPI.Handler
	Static *staticAPI.Handler
}

func init() {
	huma.NewError = apierr.New
}

// New создает *chi.Mux: API через huma.Register, статика и /metrics напрямую через chi
func New(service record.Servicer, files *upload.Store, m *metrics.Metrics, opts Options, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(chimw.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	config := huma.DefaultConfig("Site CMS API", "1.0.0")
	// ответы без $schema
	config.CreateHooks = nil
	API := humachi.New(mux, config)

	h := handlers(service, files, m, opts, log)
	h.Health.SetupRoutes(API)
	h.Post.SetupRoutes(API)
	h.Job.SetupRoutes(API)
	h.Static.SetupRoutes(mux)

	mux.Method(http.MethodGet, "/metrics", m.Handler())

	return mux
}

func handlers(service record.Servicer, files *upload.Store, m *metrics.Metrics, opts Options, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer(loggerMW.Middleware())

	return &Handlers{
		Health: healthAPI.NewHandler(log, middlewares.With()),
		Post:   postAPI.NewHandler(service, opts.Upload, log, middlewares.With(m.Middleware())),
		Job:    jobAPI.NewHandler(service, log, middlewares.With(m.Middleware())),
		Static: staticAPI.NewHandler(files, opts.FrontendDir, opts.AdminPage, log),
	}
}
