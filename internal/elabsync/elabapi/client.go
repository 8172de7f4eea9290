// Package elabapi is a thin client for the eLabFTW REST API (v2). It
// covers the handful of endpoints the importer needs: listing users,
// teams and teamgroups, and the two membership writes.
//
//nolint:revive // Struct field names match API responses
package elabapi

import (
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/imroc/req/v3"

	apperrors "github.com/elabtools/elabsync/internal/elabsync/errors"
	"github.com/elabtools/elabsync/internal/log"
)

const apiBase = "/api/v2"

// Client talks to one eLabFTW server. The API key is sent verbatim in
// the Authorization header on every request.
type Client struct {
	Url    string
	Key    string
	Client *req.Client
}

type options struct {
	insecure bool
	debug    bool
}

// Option adjusts client construction.
type Option func(*options)

// WithInsecureTLS disables certificate verification, for lab-internal
// servers running on self-signed certificates.
func WithInsecureTLS() Option { return func(o *options) { o.insecure = true } }

// WithDebug dumps full requests and responses to the console.
func WithDebug() Option { return func(o *options) { o.debug = true } }

// Init validates the endpoint settings and builds a client.
func Init(url, key string, opts ...Option) (*Client, error) {
	if url == "" {
		return nil, apperrors.ErrEmptyURL
	}
	if key == "" {
		return nil, apperrors.ErrMissingAPIKey
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Client{
		Url:    strings.TrimRight(url, "/"),
		Key:    key,
		Client: newHTTPClient(key, o),
	}, nil
}

func newHTTPClient(key string, o options) *req.Client {
	client := req.C().
		SetCommonHeader("Authorization", key).
		SetTimeout(30 * time.Second).
		EnableKeepAlives()

	if o.insecure {
		client.SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // G402: self-signed certificates on lab-internal servers
			MinVersion:         tls.VersionTLS12,
		})
	}
	if o.debug {
		client.EnableDumpAll()
	}

	return client
}

// APIError is an answer from the server with a non-success status.
// Transport-level failures are returned as plain wrapped errors instead,
// so callers can tell a server rejection from an unreachable server.
type APIError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request to %s ended with %d status, %s", e.URL, e.StatusCode, e.Body)
}

// requestExecutor executes an HTTP request against a fully built URL
type requestExecutor func(*req.Request, string) (*req.Response, error)

// doRequest handles common HTTP request logic
func (c *Client) doRequest(method, path string, data any, executor requestExecutor) error {
	if c == nil || c.Client == nil {
		return fmt.Errorf("client is not initialized")
	}

	fullURL := c.Url + apiBase + path

	log.DebugH3("Making %s request to: %s", method, fullURL)

	resp, err := executor(c.Client.R(), fullURL)
	if err != nil {
		log.Error("%s request failed for %s: %v", method, fullURL, err)
		return fmt.Errorf("%s request failed for %s: %w", method, fullURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.DebugH3("%s request returned status %d for %s", method, resp.StatusCode, fullURL)
		return &APIError{StatusCode: resp.StatusCode, Body: resp.String(), URL: fullURL}
	}

	if data != nil {
		if len(resp.Bytes()) == 0 {
			log.DebugH3("%s response has empty body, skipping unmarshal for: %s", method, fullURL)
		} else if err := resp.UnmarshalJson(&data); err != nil {
			return fmt.Errorf("error unmarshal json: %w, %s", err, resp.String())
		}
	}

	return nil
}

func (c *Client) get(path string, data any) error {
	return c.doRequest("GET", path, data, func(r *req.Request, url string) (*req.Response, error) {
		return r.Get(url)
	})
}

func (c *Client) patch(path string, json any, data any) error {
	return c.doRequest("PATCH", path, data, func(r *req.Request, url string) (*req.Response, error) {
		return r.SetBodyJsonMarshal(json).Patch(url)
	})
}
