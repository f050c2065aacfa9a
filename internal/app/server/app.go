// Package server собирает зависимости и запускает HTTP сервер.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"sitecms/internal/app/server/api"
	postAPI "sitecms/internal/app/server/api/http/post"
	"sitecms/internal/app/server/config"
	"sitecms/internal/app/server/sweeper"
	"sitecms/internal/domain/record"
	"sitecms/internal/infrastructure/metrics"
	"sitecms/internal/infrastructure/notify"
	"sitecms/internal/infrastructure/storage"
	"sitecms/internal/infrastructure/storage/upload"

	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

const (
	shutdownTimeout = 10 * time.Second
	// запас на поля формы сверх лимита файла
	formOverhead = upload.MiB
)

type App struct {
	server  *http.Server
	sweeper *sweeper.Sweeper
	redis   *redis.Client
	log     *slog.Logger
}

// New собирает приложение. Недоступный Redis не мешает старту, события просто не публикуются.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	policy, err := uploadPolicy(cfg)
	if err != nil {
		return nil, err
	}

	ids := record.NewIDGenerator(time.Now)

	files, err := upload.New(cfg.Upload.Dir, cfg.Upload.Prefix, policy, ids.Next, log)
	if err != nil {
		return nil, err
	}
	m := metrics.New()
	files.SetRecorder(m)

	app := &App{log: log.With("component", "app")}

	var events record.Publisher
	if cfg.Redis.URL != "" {
		rdb, err := notify.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			app.log.Warn("redis unavailable, change events disabled", "error", err)
		} else {
			app.redis = rdb
			events = notify.NewRedisPublisher(rdb, cfg.Redis.Channel, log)
		}
	}

	st := storage.New(cfg, log)
	service := record.NewService(
		st.Posts,
		st.Jobs,
		files,
		record.NewFactory(ids, time.Now, cfg.StrictValidation),
		events,
		log,
	)

	mux := api.New(service, files, m, api.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		Upload: postAPI.Limits{
			MaxBodyBytes: policy.MaxBytes + formOverhead,
			ReadTimeout:  cfg.Upload.Timeout,
		},
		FrontendDir: cfg.Web.FrontendDir,
		AdminPage:   cfg.Web.AdminPage,
	}, log)

	app.sweeper, err = sweeper.New(cfg.Upload.Dir, cfg.Sweeper.Schedule, cfg.Sweeper.MaxAge, log)
	if err != nil {
		app.closeRedis()
		return nil, err
	}

	app.server = &http.Server{
		Addr:              cfg.Address(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// Run обслуживает запросы, пока не отменен ctx, затем плавно останавливается.
func (a *App) Run(ctx context.Context) error {
	a.sweeper.Start()
	defer a.sweeper.Stop()
	defer a.closeRedis()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.log.Info("stopped")
	return nil
}

func (a *App) closeRedis() {
	if a.redis == nil {
		return
	}
	if err := a.redis.Close(); err != nil {
		a.log.Error("failed to close redis", "error", err)
	}
	a.redis = nil
}

// uploadPolicy берет пресет режима и применяет переопределения из конфига.
func uploadPolicy(cfg *config.Config) (upload.Policy, error) {
	policy, err := upload.PolicyFor(cfg.Upload.Mode)
	if err != nil {
		return upload.Policy{}, err
	}

	if len(cfg.Upload.Extensions) > 0 {
		policy.Extensions = cfg.Upload.Extensions
	}
	if len(cfg.Upload.MediaTypes) > 0 {
		policy.MediaTypes = cfg.Upload.MediaTypes
	}
	if cfg.Upload.MaxBytes > 0 {
		policy.MaxBytes = cfg.Upload.MaxBytes
	}

	if err := policy.Validate(); err != nil {
		return upload.Policy{}, err
	}
	return policy, nil
}
