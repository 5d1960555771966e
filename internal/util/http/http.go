// Package http provides HTTP utilities for fetching remote resources.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/Anish177/lescolors/internal/version"
)

const (
	// UserAgentName is the application name used in the User-Agent header.
	UserAgentName = "lescolors"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultRetryMax bounds automatic retries on transient failures.
	DefaultRetryMax = 2
)

// Sentinel errors distinguishing network failure modes.
var (
	// ErrFetch indicates the request could not be completed.
	ErrFetch = errors.New("fetch failed")

	// ErrTimeout indicates the request exceeded its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrBadStatus indicates a non-2xx HTTP response.
	ErrBadStatus = errors.New("unexpected HTTP status")
)

// FetchOptions configures HTTP fetch behavior.
type FetchOptions struct {
	// Timeout specifies the HTTP request timeout.
	// If zero, DefaultTimeout is used.
	Timeout time.Duration

	// RetryMax bounds automatic retries. Zero uses DefaultRetryMax;
	// a negative value disables retries.
	RetryMax int

	// Headers specifies additional HTTP headers to send with the request.
	Headers map[string]string

	// Logger, when set, receives debug-level fetch logging.
	Logger hclog.Logger
}

// Fetch retrieves content from a URL with context, timeout, and bounded
// retry support. It sets the User-Agent header and maps failures onto
// the package's sentinel errors.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	retryMax := opts.RetryMax
	if retryMax == 0 {
		retryMax = DefaultRetryMax
	}
	if retryMax < 0 {
		retryMax = 0
	}

	client := newClient(timeout, retryMax)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrFetch, err)
	}

	req.Header.Set("User-Agent", fmt.Sprintf("%s/%s", UserAgentName, version.Version))
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	if opts.Logger != nil {
		opts.Logger.Debug("fetching", "url", url, "timeout", timeout, "retry_max", retryMax)
	}

	resp, err := client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %s: %v", ErrTimeout, url, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: %s", ErrBadStatus, url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", ErrFetch, err)
	}

	return data, nil
}

// newClient builds a retryable HTTP client with the given timeout and
// retry bound.
func newClient(timeout time.Duration, retryMax int) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = timeout
	client.Logger = nil // suppress retryablehttp's default logging
	return client
}

// isTimeout reports whether err represents a deadline or timeout failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
