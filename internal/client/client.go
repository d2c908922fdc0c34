// Package client speaks to the WiFi QR decode backend over HTTP. All
// three operations return either the backend's structured result or a
// *TransportError when the request itself could not be completed.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/IssaKamara958/WiFiQRCode/internal/wifi"
)

// TransportError marks a network or protocol level failure, as opposed
// to a structured failure reported by the backend. The presenter shows
// its text verbatim.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client is the HTTP boundary. Safe for use from bubbletea commands:
// each method does one request and has no shared mutable state beyond
// the rate limiter.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger enables request/response debug logging.
func WithLogger(l Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRateLimit paces outgoing requests. Zero or negative disables
// pacing.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        4,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		log: NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upload sends the image at path as the multipart form field "file"
// and returns the backend's scan result.
func (c *Client) Upload(ctx context.Context, path string) (wifi.ScanResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	f, err := os.Open(path)
	if err != nil {
		return wifi.ScanResult{}, &TransportError{Op: "upload", Err: err}
	}
	defer f.Close()

	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return wifi.ScanResult{}, &TransportError{Op: "upload", Err: err}
	}
	if _, err := io.Copy(part, f); err != nil {
		return wifi.ScanResult{}, &TransportError{Op: "upload", Err: err}
	}
	if err := mw.Close(); err != nil {
		return wifi.ScanResult{}, &TransportError{Op: "upload", Err: err}
	}

	var result wifi.ScanResult
	err = c.do(ctx, "upload", "/upload", mw.FormDataContentType(), &body, &result)
	if err != nil {
		return wifi.ScanResult{}, err
	}
	return result, nil
}

// ScanWebcam asks the backend to capture a frame from its webcam and
// decode it. The request carries no body.
func (c *Client) ScanWebcam(ctx context.Context) (wifi.ScanResult, error) {
	var result wifi.ScanResult
	err := c.do(ctx, "webcam scan", "/scan_webcam", "application/json", strings.NewReader("{}"), &result)
	if err != nil {
		return wifi.ScanResult{}, err
	}
	return result, nil
}

// Connect asks the backend to join the network described by creds.
func (c *Client) Connect(ctx context.Context, creds wifi.Credentials) (wifi.ConnectResult, error) {
	payload, err := json.Marshal(creds)
	if err != nil {
		return wifi.ConnectResult{}, &TransportError{Op: "connect", Err: err}
	}
	var result wifi.ConnectResult
	err = c.do(ctx, "connect", "/connect", "application/json", bytes.NewReader(payload), &result)
	if err != nil {
		return wifi.ConnectResult{}, err
	}
	return result, nil
}

// Health probes the backend's health endpoint. Any 2xx answer counts.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return &TransportError{Op: "health", Err: err}
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: "health", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{Op: "health", Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	return nil
}

func (c *Client) do(ctx context.Context, op, route, contentType string, body io.Reader, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &TransportError{Op: op, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+route, body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.LogRequest(Entry{Op: op, Route: route, RequestID: reqID, Error: err.Error(), Elapsed: time.Since(start)})
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.LogRequest(Entry{Op: op, Route: route, RequestID: reqID, Status: resp.StatusCode, Error: err.Error(), Elapsed: time.Since(start)})
		return &TransportError{Op: op, Err: err}
	}

	c.log.LogRequest(Entry{Op: op, Route: route, RequestID: reqID, Status: resp.StatusCode, Body: string(data), Elapsed: time.Since(start)})

	// The backend answers error statuses with the same JSON shape, so
	// status codes are not inspected here: a non-JSON body is the only
	// thing treated as a transport failure.
	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
