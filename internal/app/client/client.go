package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"sitecms/internal/app/client/config"

	"golang.org/x/exp/slog"
)

const userAgent = "sitecms-cli/1.0"

type ctxKey struct{}

// Client - HTTP клиент API сайта
type Client struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
}

func New(cfg *config.Config, log *slog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 90 * time.Second,
			},
		},
		log:     log,
		baseURL: cfg.ServerURL,
	}
}

// WithClient кладет клиент в контекст команды
func WithClient(ctx context.Context, c *Client) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

func FromContext(ctx context.Context) (*Client, error) {
	c, ok := ctx.Value(ctxKey{}).(*Client)
	if !ok || c == nil {
		return nil, errors.New("клиент не инициализирован")
	}
	return c, nil
}
