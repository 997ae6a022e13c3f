// Package client is the typed API layer the app talks through. Every call
// goes over a Doer transport, decodes the response envelope, maps non-2xx
// statuses onto the error taxonomy, and retries server-class failures with
// doubling backoff.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"talentflow-backend/lib/apperr"
)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// Paged couples one result page with its pagination fields.
type Paged[T any] struct {
	Items      []T
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type Client struct {
	transport Doer
	retry     RetryPolicy
	baseURL   string

	mu    sync.RWMutex
	token string
}

func New(transport Doer, retry RetryPolicy) *Client {
	return &Client{
		transport: transport,
		retry:     retry,
		baseURL:   "http://localhost/api",
	}
}

// SetToken installs the bearer token sent with every following request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do performs one request with retries and returns the decoded envelope.
// The body is marshaled once; each attempt replays the same bytes.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*envelope, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request body")
		}
	}
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var result *envelope
	err := c.retry.Do(ctx, func(ctx context.Context) error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, target, reader)
		if err != nil {
			return errors.Wrap(err, "building request")
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.transport.Do(req)
		if err != nil {
			return apperr.Wrap(apperr.KindServer, err, "transport failure")
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return apperr.Wrap(apperr.KindServer, err, "reading response")
		}
		var env envelope
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
				return apperr.Wrap(apperr.KindServer, err, "decoding response")
			}
		}
		if resp.StatusCode >= 300 {
			msg := env.Message
			if msg == "" {
				msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
			}
			return apperr.FromStatus(resp.StatusCode, msg)
		}
		result = &env
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// call hits an endpoint whose data field is a single object.
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body interface{}) (*T, error) {
	env, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}
	out := new(T)
	if err := json.Unmarshal(env.Data, out); err != nil {
		return nil, apperr.Wrap(apperr.KindServer, err, "decoding response data")
	}
	return out, nil
}

// callList hits an endpoint whose data field is a plain array.
func callList[T any](ctx context.Context, c *Client, method, path string, query url.Values, body interface{}) ([]T, error) {
	env, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return nil, apperr.Wrap(apperr.KindServer, err, "decoding response data")
		}
	}
	return out, nil
}

// callPaged hits a paginated list endpoint.
func callPaged[T any](ctx context.Context, c *Client, path string, query url.Values) (Paged[T], error) {
	env, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return Paged[T]{}, err
	}
	page := Paged[T]{
		Total:      env.Total,
		Page:       env.Page,
		PageSize:   env.PageSize,
		TotalPages: env.TotalPages,
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &page.Items); err != nil {
			return Paged[T]{}, apperr.Wrap(apperr.KindServer, err, "decoding response data")
		}
	}
	return page, nil
}

func setIfNotEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

func setPage(query url.Values, page, pageSize int) {
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}
}
