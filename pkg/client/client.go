// Package client performs lookups against the dictionary API.
package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dict/pkg/dictionary"
	"github.com/arthur-debert/dict/pkg/errors"
	"github.com/arthur-debert/dict/pkg/logging"
)

// DefaultBaseURL is the English entries endpoint of the free dictionary API
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Client fetches and parses dictionary entries. It never caches or retries.
type Client struct {
	baseURL    string
	escape     bool
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another endpoint (used by tests)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithEscaping toggles percent-encoding of the word
func WithEscaping(escape bool) Option {
	return func(c *Client) {
		c.escape = escape
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.log = logger
	}
}

// New creates a Client. The default HTTP client has no timeout.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		escape:     true,
		httpClient: &http.Client{},
		log:        logging.GetLogger("client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the request target for word
func (c *Client) URL(word string) string {
	if c.escape {
		word = url.PathEscape(word)
	}
	return c.baseURL + "/" + word
}

// Lookup issues a single GET for word. API-level failures such as an
// unknown word come back inside the LookupResult; the returned error is
// REQUEST for transport failures and PARSE for unreadable bodies.
func (c *Client) Lookup(ctx context.Context, word string) (*dictionary.LookupResult, error) {
	reqURL := c.URL(word)
	done := logging.LogOperationStart(c.log, "lookup")
	defer done()

	c.log.Debug().Str("word", word).Str("url", reqURL).Msg("Dictionary request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "failed to create request").
			WithDetail("url", reqURL)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("word", word).Msg("Dictionary request failed")
		return nil, errors.Wrapf(err, errors.ErrRequest, "request for %q failed", word).
			WithDetail("url", reqURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "failed to read response body").
			WithDetail("url", reqURL)
	}

	// The status is not interpreted: "not found" arrives as a 404 whose body
	// is the API error object.
	c.log.Debug().
		Str("word", word).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Dictionary response")

	result, err := dictionary.Parse(body)
	if err != nil {
		c.log.Error().Err(err).Int("status", resp.StatusCode).Msg("Dictionary response could not be parsed")
		return nil, err
	}

	c.log.Info().
		Str("word", word).
		Stringer("kind", result.Kind).
		Int("entries", len(result.Entries)).
		Msg("Lookup completed")

	return result, nil
}
