// Package api реализует HTTP-транспорт клиента: JSON-запросы к ресурсу,
// привязанному к базовому URL.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"StaffPortal/internal/cli/repo"
)

// ErrTransport — общая ошибка транспорта: сеть или неуспешный HTTP-статус.
var ErrTransport = errors.New("transport error")

// StatusError возвращается для ответов со статусом вне 2xx.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: server returned status %d: %s",
		e.Method, e.URL, e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// Unwrap позволяет проверять errors.Is(err, ErrTransport).
func (e *StatusError) Unwrap() error { return ErrTransport }

// Response — успешный ответ сервера. Data содержит тело ответа как есть.
type Response struct {
	StatusCode int
	Data       json.RawMessage
}

// Client выполняет запросы относительно baseURL.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  repo.Storage
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient подменяет http.Client (например, в тестах).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout задаёт таймаут запроса.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

// WithTokenStorage включает заголовок Authorization: Bearer <token>,
// если в хранилище есть токен.
func WithTokenStorage(s repo.Storage) Option {
	return func(c *Client) { c.tokens = s }
}

// NewClient создаёт клиент, привязанный к baseURL (например http://host:8081/api/staffs).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL возвращает URL, к которому привязан клиент.
func (c *Client) BaseURL() string { return c.baseURL }

// Get выполняет GET path.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post выполняет POST path с JSON-телом.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put выполняет PUT path с JSON-телом.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete выполняет DELETE path.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) url(path string) string {
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (*Response, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	u := c.url(path)
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok, err := c.tokens.GetItem(repo.TokenKey); err == nil && tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, u, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, URL: u, StatusCode: resp.StatusCode, Body: data}
	}
	out := &Response{StatusCode: resp.StatusCode}
	if len(bytes.TrimSpace(data)) > 0 {
		out.Data = json.RawMessage(data)
	}
	return out, nil
}
