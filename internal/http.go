package internal

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	pkgerrs "github.com/polarlearn/go-studygo/pkg/errors"
)

// maxLogPreview caps how much of a response body is written to debug logs.
const maxLogPreview = 500

// Client manages communication with the StudyGo API.
type Client struct {
	client  *http.Client
	BaseURL *url.URL
	headers *HeaderBuilder
	logger  *slog.Logger
}

// Response is a fully read HTTP response. The status code is recorded but
// never interpreted here.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NewClient returns a new StudyGo API client.
// If a nil httpClient is provided, http.DefaultClient will be used.
func NewClient(httpClient *http.Client, baseURL string, headers *HeaderBuilder, logger *slog.Logger) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, &pkgerrs.ConfigError{Field: "BaseURL", Message: err.Error()}
	}
	if !strings.HasSuffix(parsedURL.Path, "/") {
		parsedURL.Path += "/"
	}

	return &Client{
		client:  httpClient,
		BaseURL: parsedURL,
		headers: headers,
		logger:  logger,
	}, nil
}

// NewRequest creates an API request. path is resolved relative to BaseURL and
// params, when non-empty, become the query string.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader, params url.Values) (*http.Request, error) {
	u, err := c.BaseURL.Parse(path)
	if err != nil {
		return nil, &pkgerrs.RequestError{URL: path, Err: err}
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, &pkgerrs.RequestError{URL: u.String(), Err: err}
	}

	if c.headers != nil {
		c.headers.Apply(req.Header, body != nil)
	}

	return req, nil
}

// Do sends an API request and reads the whole body. Transport failures are
// returned as *errors.RequestError; the status code is left to the caller.
func (c *Client) Do(req *http.Request, op string) (*Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &pkgerrs.RequestError{Operation: op, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &pkgerrs.RequestError{Operation: op, URL: req.URL.String(), Message: "failed to read response body: " + err.Error(), Err: err}
	}

	if c.logger != nil {
		preview := body
		if len(preview) > maxLogPreview {
			preview = preview[:maxLogPreview]
		}
		// token responses carry credentials
		if op == OpGetToken {
			preview = nil
		}
		c.logger.Debug("studygo API response",
			"operation", op,
			"method", req.Method,
			"path", req.URL.Path,
			"status", resp.StatusCode,
			"response_preview", string(preview),
		)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
