package helpers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// ChaosMode defines the type of chaos to inject
type ChaosMode int

const (
	// ChaosNone passes requests through untouched
	ChaosNone ChaosMode = iota

	// ChaosConnectionReset fails the round trip before any response
	ChaosConnectionReset

	// ChaosPartialRead returns a body that fails after a few bytes
	ChaosPartialRead

	// ChaosEmptyBody returns 200 with an empty body
	ChaosEmptyBody

	// ChaosInvalidJSON returns 200 with a truncated JSON document
	ChaosInvalidJSON

	// ChaosSlowResponse waits for Delay or the request context, whichever ends first
	ChaosSlowResponse
)

// ErrConnectionReset is returned by ChaosConnectionReset.
var ErrConnectionReset = errors.New("connection reset by peer")

// ErrPartialRead is returned mid-body by ChaosPartialRead.
var ErrPartialRead = errors.New("unexpected EOF while reading body")

// ChaosTransport is an http.RoundTripper that injects failures in front of
// another transport.
type ChaosTransport struct {
	Mode  ChaosMode
	Delay time.Duration
	// Next handles requests in ChaosNone mode. Defaults to http.DefaultTransport.
	Next http.RoundTripper

	requests atomic.Int64
}

// Requests returns how many round trips were attempted.
func (c *ChaosTransport) Requests() int64 {
	return c.requests.Load()
}

// RoundTrip implements http.RoundTripper.
func (c *ChaosTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.requests.Add(1)

	switch c.Mode {
	case ChaosConnectionReset:
		return nil, ErrConnectionReset
	case ChaosPartialRead:
		return c.respond(req, &partialReadCloser{data: []byte(`{"results":[{"id":`), limit: 8}), nil
	case ChaosEmptyBody:
		return c.respond(req, io.NopCloser(strings.NewReader(""))), nil
	case ChaosInvalidJSON:
		return c.respond(req, io.NopCloser(strings.NewReader(`{"results":[{"id":1,`))), nil
	case ChaosSlowResponse:
		select {
		case <-time.After(c.Delay):
			return c.respond(req, io.NopCloser(strings.NewReader(`{}`))), nil
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}

	next := c.Next
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(req)
}

func (c *ChaosTransport) respond(req *http.Request, body io.ReadCloser) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       body,
		Request:    req,
	}
}

type partialReadCloser struct {
	data  []byte
	limit int
	read  int
}

func (p *partialReadCloser) Read(buf []byte) (int, error) {
	if p.read >= p.limit {
		return 0, ErrPartialRead
	}
	n := copy(buf, p.data[p.read:p.limit])
	p.read += n
	return n, nil
}

func (p *partialReadCloser) Close() error {
	return nil
}
