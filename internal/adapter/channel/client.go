package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"syscall"
	"time"

	"automark/internal/core/domain"
)

const (
	defaultTimeout = 10 * time.Second
	// maxErrorBody caps how much of an error response is kept in the error.
	maxErrorBody = 2048
)

// NewHTTPClient returns the client shared by all platform adapters.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// platformClient issues requests on behalf of one channel and translates
// every failure into a *domain.IntegrationError.
type platformClient struct {
	channel domain.Channel
	http    *http.Client
	ua      string
}

func newPlatformClient(channel domain.Channel, hc *http.Client, ua string) *platformClient {
	if hc == nil {
		hc = NewHTTPClient(0)
	}
	return &platformClient{channel: channel, http: hc, ua: ua}
}

func (c *platformClient) fail(op string, status int, err error) *domain.IntegrationError {
	return &domain.IntegrationError{Channel: c.channel, Op: op, StatusCode: status, Err: err}
}

// newJSONRequest builds a request with payload encoded as the JSON body.
func (c *platformClient) newJSONRequest(ctx context.Context, op, method, rawURL string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, c.fail(op, 0, fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, c.fail(op, 0, fmt.Errorf("build request: %w", err))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do sends req and decodes a JSON response into out when out is non-nil.
// Non-2xx responses become errors carrying the status and body.
func (c *platformClient) do(ctx context.Context, op string, req *http.Request, out any) (http.Header, error) {
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(op, 0, classifyRequestError(ctx, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if readErr != nil {
			return resp.Header, c.fail(op, resp.StatusCode, fmt.Errorf("http error: status=%d body=<failed to read body: %v>", resp.StatusCode, readErr))
		}
		return resp.Header, c.fail(op, resp.StatusCode, fmt.Errorf("http error: status=%d body=%s", resp.StatusCode, bytes.TrimSpace(body)))
	}

	if out != nil {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return resp.Header, c.fail(op, resp.StatusCode, fmt.Errorf("decode response: %w", err))
		}
	}
	return resp.Header, nil
}

func classifyRequestError(ctx context.Context, err error) error {
	if isTimeoutError(ctx, err) {
		return fmt.Errorf("timeout: %w", err)
	}
	if isNetworkError(err) {
		return fmt.Errorf("network error: %w", err)
	}
	return fmt.Errorf("request error: %w", err)
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}

	return false
}
