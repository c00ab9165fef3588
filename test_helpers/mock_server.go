package test_helpers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// MockServer provides a configurable mock StudyGo API server for testing
type MockServer struct {
	server     *httptest.Server
	responses  map[string]*MockResponse
	defaultRsp *MockResponse
	requestLog []RequestEntry
	mu         sync.Mutex
}

// RequestEntry logs incoming requests for assertions
type RequestEntry struct {
	Method    string
	Path      string
	Query     string
	Headers   http.Header
	Body      string
	Timestamp time.Time
}

// MockResponse defines a mock API response
type MockResponse struct {
	Status  int
	Body    string
	Headers map[string]string
	Delay   time.Duration
}

// APIPrefix is the path prefix every StudyGo endpoint lives under.
const APIPrefix = "/api/v3/"

// NewMockServer creates a new mock server instance. Unknown paths answer 404
// with a JSON error payload, like the real API.
func NewMockServer() *MockServer {
	ms := &MockServer{
		responses: make(map[string]*MockResponse),
		defaultRsp: &MockResponse{
			Status: http.StatusNotFound,
			Body:   `{"message":"Not found"}`,
		},
	}
	ms.server = httptest.NewServer(http.HandlerFunc(ms.serveHTTP))
	return ms
}

// URL returns the API base URL of the mock server, ending in /api/v3/.
func (ms *MockServer) URL() string {
	return ms.server.URL + APIPrefix
}

// Close shuts down the mock server
func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetResponse configures a response for a path relative to the API prefix,
// e.g. "public/lists/1".
func (ms *MockServer) SetResponse(path string, response *MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.responses[APIPrefix+strings.TrimPrefix(path, "/")] = response
}

// SetJSON configures a 200 JSON response for path.
func (ms *MockServer) SetJSON(path, body string) {
	ms.SetResponse(path, &MockResponse{Status: http.StatusOK, Body: body})
}

// SetDefaultResponse configures the response for unconfigured paths
func (ms *MockServer) SetDefaultResponse(response *MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.defaultRsp = response
}

// GetRequestLog returns a copy of the request log
func (ms *MockServer) GetRequestLog() []RequestEntry {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]RequestEntry{}, ms.requestLog...)
}

// LastRequest returns the most recent request, or false if none arrived.
func (ms *MockServer) LastRequest() (RequestEntry, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if len(ms.requestLog) == 0 {
		return RequestEntry{}, false
	}
	return ms.requestLog[len(ms.requestLog)-1], true
}

// ClearLog clears the request log
func (ms *MockServer) ClearLog() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.requestLog = ms.requestLog[:0]
}

func (ms *MockServer) serveHTTP(w http.ResponseWriter, r *http.Request) {
	entry := RequestEntry{
		Method:    r.Method,
		Path:      r.URL.Path,
		Query:     r.URL.RawQuery,
		Headers:   r.Header.Clone(),
		Timestamp: time.Now(),
	}
	if r.Body != nil {
		body, _ := io.ReadAll(r.Body)
		entry.Body = string(body)
	}

	ms.mu.Lock()
	ms.requestLog = append(ms.requestLog, entry)
	response, ok := ms.responses[r.URL.Path]
	if !ok {
		response = ms.defaultRsp
	}
	ms.mu.Unlock()

	if response.Delay > 0 {
		select {
		case <-time.After(response.Delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	for key, value := range response.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(response.Status)
	_, _ = w.Write([]byte(response.Body))
}
