package internal

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrs "github.com/polarlearn/go-studygo/pkg/errors"
	"github.com/polarlearn/go-studygo/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthenticator(t *testing.T) {
	_, err := NewAuthenticator(nil, "")
	var cfgErr *pkgerrs.ConfigError
	require.True(t, errors.As(err, &cfgErr))

	c, err := NewClient(nil, "https://api.wrts.nl/api/v3/", nil, nil)
	require.NoError(t, err)

	a, err := NewAuthenticator(c, "")
	require.NoError(t, err)
	assert.Equal(t, defaultTokenEndpointPath, a.tokenPath)
}

func TestAuthenticator_Exchange(t *testing.T) {
	type captured struct {
		method  string
		path    string
		header  http.Header
		payload map[string]string
	}
	var requests []captured

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		_ = json.Unmarshal(body, &payload)
		requests = append(requests, captured{method: r.Method, path: r.URL.Path, header: r.Header.Clone(), payload: payload})

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"auth_token":"a.b.c","expires_at":2,"renew_from":1}`)
	}))
	defer server.Close()

	headers, err := NewHeaderBuilder(nil, fixedAgent("agent/1.0"), "nl-NL", "web", "https://studygo.com/")
	require.NoError(t, err)
	c, err := NewClient(server.Client(), server.URL+"/api/v3/", headers, nil)
	require.NoError(t, err)
	a, err := NewAuthenticator(c, "")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		resp, err := a.Exchange(context.Background(), "leerling@example.com", "  p@ss word ")
		require.NoError(t, err)
		assert.True(t, resp.OK())
		assert.JSONEq(t, `{"auth_token":"a.b.c","expires_at":2,"renew_from":1}`, string(resp.Body))
	}

	require.Len(t, requests, 2)
	for _, r := range requests {
		assert.Equal(t, http.MethodPost, r.method)
		assert.Equal(t, "/api/v3/auth/get_token", r.path)
		assert.Equal(t, "application/json", r.header.Get("Content-Type"))
		assert.Equal(t, "web", r.header.Get(HeaderClientType))
		assert.Equal(t, "nl", r.header.Get(HeaderLanguageCode))
		assert.True(t, validation.IsUUIDv4(r.header.Get(HeaderSessionID)))
		assert.True(t, validation.IsUUIDv4(r.header.Get(HeaderDeviceID)))
		// credentials are sent verbatim, whitespace included
		assert.Equal(t, map[string]string{"email": "leerling@example.com", "password": "  p@ss word "}, r.payload)
	}

	assert.NotEqual(t, requests[0].header.Get(HeaderSessionID), requests[1].header.Get(HeaderSessionID))
	assert.NotEqual(t, requests[0].header.Get(HeaderDeviceID), requests[1].header.Get(HeaderDeviceID))
}
