package ajeitaiapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/pkg/restclient"
)

// upstreamName имя в логах и метриках
const upstreamName = "ajeitai-api"

// Client клиент REST API маркетплейса. baseURL уже содержит префикс /api,
// все пути ниже указаны относительно него.
type Client struct {
	rest *restclient.Client
	log  Logger
}

// NewClient создает новый экземпляр клиента API
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	cfg := restclient.Config{
		Name:          upstreamName,
		BaseURL:       baseURL,
		Timeout:       timeout,
		MessageFields: []string{"message", "mensagem"},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{
		rest: restclient.New(cfg, log),
		log:  log,
	}
}

// Option настройка транспорта
type Option func(*restclient.Config)

// WithObserver метрики upstream вызовов
func WithObserver(o restclient.Observer) Option {
	return func(c *restclient.Config) { c.Observer = o }
}

// WithTransport подменяет RoundTripper (otelhttp, тесты)
func WithTransport(rt http.RoundTripper) Option {
	return func(c *restclient.Config) { c.Transport = rt }
}

func (c *Client) get(ctx context.Context, token, path string, query url.Values, out any) error {
	return c.rest.Do(ctx, restclient.Request{Method: http.MethodGet, Path: path, Query: query, Token: token}, out)
}

func (c *Client) send(ctx context.Context, method, token, path string, body, out any) error {
	return c.rest.Do(ctx, restclient.Request{Method: method, Path: path, Token: token, Body: body}, out)
}

func (c *Client) upload(ctx context.Context, method, token, path string, fields []restclient.Field, files []restclient.File, out any) error {
	return c.rest.Do(ctx, restclient.Request{
		Method: method,
		Path:   path,
		Token:  token,
		Form:   &restclient.Form{Fields: fields, Files: files},
	}, out)
}

func idPath(format string, id domain.ID) (string, error) {
	if id.IsZero() {
		return "", ErrEmptyID
	}
	return fmt.Sprintf(format, url.PathEscape(id.String())), nil
}
