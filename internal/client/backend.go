// Package client calls the backend service on behalf of the frontend.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrBackendUnavailable      = errors.New("backend unavailable")
	ErrBackendTimeout          = errors.New("backend timed out")
	ErrBackendResponseTooLarge = errors.New("backend response too large")
)

// StatusError reports a non-2xx answer from the backend.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrBackendUnavailable
}

// BackendClient fetches the users page from the backend service.
type BackendClient struct {
	helloURL     string
	http         *http.Client
	maxBodyBytes int64
}

// NewBackendClient validates baseURL and returns a client whose calls are
// bounded by timeout and whose response bodies are capped at maxBodyBytes.
func NewBackendClient(baseURL string, timeout time.Duration, maxBodyBytes int64) (*BackendClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("backend url %q: missing host", baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/hello"
	u.RawPath = ""

	return &BackendClient{
		helloURL:     u.String(),
		http:         &http.Client{Timeout: timeout},
		maxBodyBytes: maxBodyBytes,
	}, nil
}

// HelloURL is the endpoint Hello calls.
func (c *BackendClient) HelloURL() string {
	return c.helloURL
}

// Hello performs GET {base}/hello and returns the body as text.
func (c *BackendClient) Hello(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.helloURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return "", classify(err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		return "", &StatusError{Code: res.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, c.maxBodyBytes+1))
	if err != nil {
		return "", classify(err)
	}
	if int64(len(body)) > c.maxBodyBytes {
		return "", ErrBackendResponseTooLarge
	}
	return string(body), nil
}

func classify(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrBackendTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
}
