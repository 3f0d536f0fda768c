package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status code: %d", e.Code)
	}
	return fmt.Sprintf("unexpected status code: %d, body: %s", e.Code, e.Body)
}

type API struct {
	client   *http.Client
	baseURL  string
	defaults url.Values
}

// NewAPI creates a client for baseURL. defaults are merged into every
// request's query string; per-request params win.
func NewAPI(baseURL string, timeout time.Duration, defaults url.Values) *API {
	return &API{
		client:   &http.Client{Timeout: timeout},
		baseURL:  strings.TrimRight(baseURL, "/"),
		defaults: defaults,
	}
}

func (a *API) url(path string, params url.Values) string {
	query := url.Values{}
	for k, v := range a.defaults {
		query[k] = v
	}
	for k, v := range params {
		query[k] = v
	}
	u := a.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (a *API) do(ctx context.Context, path string, params url.Values, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url(path, params), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", accept)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return resp, nil
}

// Get fetches path and decodes the JSON body into v.
func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	resp, err := a.do(ctx, path, params, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Bytes fetches path and returns the raw body, capped at limit bytes.
func (a *API) Bytes(ctx context.Context, path string, limit int64) ([]byte, error) {
	resp, err := a.do(ctx, path, nil, "*/*")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}
