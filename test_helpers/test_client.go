package test_helpers

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	studygo "github.com/polarlearn/go-studygo"
)

// StaticUserAgent is a UserAgentProvider that always returns the same value.
type StaticUserAgent string

// UserAgent returns the fixed user agent.
func (s StaticUserAgent) UserAgent() string { return string(s) }

// SequentialIDs is an IDGenerator that returns predictable UUIDv4-shaped
// values: 00000000-0000-4000-8000-000000000001, ...0002, and so on.
type SequentialIDs struct {
	mu   sync.Mutex
	next int
}

// NewID returns the next identifier in the sequence.
func (s *SequentialIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", s.next)
}

// TestUserAgent is the user agent sent by clients built with NewTestClient.
const TestUserAgent = "studygo-test/1.0"

// TestClient bundles a client with the mock server it talks to.
type TestClient struct {
	*studygo.Client
	Server *MockServer
	IDs    *SequentialIDs
}

// NewTestClient creates a client wired to a fresh mock server with
// deterministic identifiers and user agent.
func NewTestClient(strict bool) (*TestClient, error) {
	server := NewMockServer()
	ids := &SequentialIDs{}

	client, err := studygo.NewClient(&studygo.Config{
		BaseURL:    server.URL(),
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		IDs:        ids,
		UserAgents: StaticUserAgent(TestUserAgent),
		Strict:     strict,
	})
	if err != nil {
		server.Close()
		return nil, err
	}

	return &TestClient{Client: client, Server: server, IDs: ids}, nil
}

// Close shuts down the mock server.
func (tc *TestClient) Close() {
	tc.Server.Close()
}
