// Package fetch retrieves page content over HTTP with bounded retry and
// exponential backoff. It is the only package in the pipeline that
// touches the network.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultUserAgent is a stable browser-like identification header.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	DefaultTimeout  = 60 * time.Second
	DefaultAttempts = 3
)

// Error is returned when a URL could not be retrieved after every retry
// attempt. Callers at the per-event and per-day level downgrade it to a
// skip; a calendar-level caller lets it abort the year.
type Error struct {
	URL      string
	Attempts int
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetching %s: failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Options tunes a Client. Zero values fall back to package defaults.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Attempts  int
}

// Client fetches pages. The underlying http.Client is shared across all
// calls so outbound connections are reused; there is no response caching.
type Client struct {
	http      *http.Client
	userAgent string
	attempts  int
	interval  time.Duration // initial backoff interval, shrunk in tests
	log       logrus.FieldLogger
}

// New creates a Client from opts.
func New(opts Options, log logrus.FieldLogger) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Attempts == 0 {
		opts.Attempts = DefaultAttempts
	}

	return &Client{
		http:      &http.Client{Timeout: opts.Timeout},
		userAgent: opts.UserAgent,
		attempts:  opts.Attempts,
		interval:  2 * time.Second,
		log:       log,
	}
}

// Get retrieves url and returns the page body. Transport failures and
// non-200 responses are retried with exponential backoff (2s, 4s, ...);
// exhausting all attempts yields an *Error.
func (c *Client) Get(url string) (string, error) {
	var body string
	attempts := 0

	op := func() error {
		attempts++
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		body = string(data)
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.interval
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0

	notify := func(err error, wait time.Duration) {
		c.log.WithFields(logrus.Fields{
			"url":  url,
			"wait": wait.String(),
		}).WithError(err).Warn("retrying fetch")
	}

	err := backoff.RetryNotify(op, backoff.WithMaxRetries(b, uint64(c.attempts-1)), notify)
	if err != nil {
		return "", &Error{URL: url, Attempts: attempts, Err: err}
	}
	return body, nil
}
