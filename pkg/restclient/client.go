package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/ajeitai-client/pkg/apierror"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer получает длительность и статус каждого вызова (prometheus)
type Observer interface {
	ObserveUpstream(upstream, method string, status int, duration time.Duration)
}

// Config параметры клиента
type Config struct {
	// Имя upstream для логов и метрик
	Name    string
	BaseURL string
	Timeout time.Duration
	// Поля тела ошибки, из которых берется сообщение, по приоритету
	MessageFields []string
	Transport     http.RoundTripper
	Observer      Observer
}

// Client HTTP клиент JSON API с bearer-токеном
type Client struct {
	name          string
	baseURL       string
	messageFields []string
	httpClient    *http.Client
	observer      Observer
	log           Logger
}

// New создает клиент. BaseURL хранится без завершающего слеша.
func New(cfg Config, log Logger) *Client {
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	fields := cfg.MessageFields
	if len(fields) == 0 {
		fields = []string{"message"}
	}
	return &Client{
		name:          cfg.Name,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		messageFields: fields,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		observer: cfg.Observer,
		log:      log,
	}
}

// Request описание вызова
type Request struct {
	Method string
	// Путь относительно BaseURL, начинается со слеша
	Path  string
	Query url.Values
	Token string
	// JSON тело; игнорируется, если задан Form
	Body any
	Form *Form
}

// Form multipart тело
type Form struct {
	Fields []Field
	Files  []File
}

type Field struct {
	Name  string
	Value string
}

type File struct {
	Field       string
	Name        string
	ContentType string
	Content     io.Reader
}

// Do выполняет запрос и декодирует JSON ответ в out (если out != nil).
// Ответ 204 или пустое тело оставляют out без изменений.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	resp, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierror.Network(fmt.Errorf("%s: read response: %w", c.name, err))
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDecodeResponse, req.Method, req.Path, err)
	}
	return nil
}

// Stream выполняет запрос и возвращает тело ответа без чтения.
// Вызывающий обязан закрыть Body.
func (c *Client) Stream(ctx context.Context, req Request) (*http.Response, error) {
	return c.send(ctx, req)
}

func (c *Client) send(ctx context.Context, req Request) (*http.Response, error) {
	httpReq, err := c.build(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)

	if err != nil {
		c.observe(req.Method, 0, duration)
		c.log.Warn("%s: %s %s failed after %s: %v", c.name, req.Method, req.Path, duration, err)
		return nil, apierror.Network(err)
	}
	c.observe(req.Method, resp.StatusCode, duration)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := apierror.FromResponse(resp.StatusCode, body, c.messageFields...)

	if resp.StatusCode >= 500 {
		c.log.Error("%s: %s %s -> %d: %s", c.name, req.Method, req.Path, resp.StatusCode, apiErr.Message)
	} else {
		c.log.Warn("%s: %s %s -> %d: %s", c.name, req.Method, req.Path, resp.StatusCode, apiErr.Message)
	}
	return nil, apiErr
}

const maxErrorBody = 64 << 10

func (c *Client) build(ctx context.Context, req Request) (*http.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)

	switch {
	case req.Form != nil:
		buf, ct, err := encodeForm(req.Form)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBuildRequest, err)
		}
		body, contentType = buf, ct
	case req.Body != nil:
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: marshal body: %v", ErrBuildRequest, err)
		}
		body, contentType = bytes.NewReader(payload), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildRequest, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	httpReq.Header.Set(RequestIDHeader, requestIDFrom(ctx))

	return httpReq, nil
}

func encodeForm(form *Form) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, f := range form.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", err
		}
	}

	for _, f := range form.Files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Name))
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func (c *Client) observe(method string, status int, d time.Duration) {
	if c.observer != nil {
		c.observer.ObserveUpstream(c.name, method, status, d)
	}
}

// RequestIDHeader пробрасывается во все upstream вызовы
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID кладет идентификатор входящего запроса в контекст
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID идентификатор из контекста или пустая строка
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func requestIDFrom(ctx context.Context) string {
	if id := RequestID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
