// Package backend is the thin JSON client every repository uses to reach
// the external ticketing API. Payloads come wrapped as {"data": ...}.
package backend

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	circuit "github.com/rubyist/circuitbreaker"
	"go.elastic.co/apm"
)

const maxBodyBytes = 4 << 20

type Client struct {
	baseURL    string
	httpClient *circuit.HTTPClient
	log        log.Logger
}

type Request struct {
	Method string
	Path   string
	// Token is forwarded as a bearer credential when set.
	Token string
	Query url.Values
	Body  interface{}
}

type envelope struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func New(baseURL string, httpClient *circuit.HTTPClient, log log.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

func (c *Client) Get(ctx context.Context, path, token string, query url.Values, out interface{}) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Token: token, Query: query}, out)
}

func (c *Client) Post(ctx context.Context, path, token string, body, out interface{}) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Token: token, Body: body}, out)
}

func (c *Client) Put(ctx context.Context, path, token string, body, out interface{}) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Token: token, Body: body}, out)
}

func (c *Client) Patch(ctx context.Context, path, token string, body, out interface{}) error {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Token: token, Body: body}, out)
}

func (c *Client) Delete(ctx context.Context, path, token string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Token: token}, nil)
}

// Do sends req and decodes the envelope's data into out (when out is non-nil).
// Nothing is retried; the breaker only fails fast.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	span, ctx := apm.StartSpan(ctx, fmt.Sprintf("%s %s", req.Method, req.Path), "external.http")
	defer span.End()

	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return errors.InternalServerError("error encode backend request")
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return errors.InternalServerError("error build backend request")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error(ctx, "error call backend", err, req.Method, req.Path)
		if stderrors.Is(err, circuit.ErrBreakerOpen) {
			return errors.Unavailable("backend temporarily unavailable", err)
		}
		return errors.Transport("error reach backend", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return errors.Transport("error read backend response", err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 400 {
			c.log.Error(ctx, "error decode backend response", err, req.Path)
			return errors.Transport("invalid backend response", err)
		}
	}

	if resp.StatusCode >= 400 {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		c.log.Warn(ctx, "backend rejected request", req.Method, req.Path, resp.StatusCode, msg)
		return errors.FromStatus(resp.StatusCode, msg)
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		c.log.Error(ctx, "error decode backend data", err, req.Path)
		return errors.Transport("invalid backend response", err)
	}
	return nil
}
