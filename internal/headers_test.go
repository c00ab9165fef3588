package internal

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgerrs "github.com/polarlearn/go-studygo/pkg/errors"
	"github.com/polarlearn/go-studygo/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterIDs struct{ n int }

func (c *counterIDs) NewID() string {
	c.n++
	return fmt.Sprintf("id-%d", c.n)
}

type fixedAgent string

func (a fixedAgent) UserAgent() string { return string(a) }

func TestNewHeaderBuilder_LanguageCode(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "nl-NL", want: "nl"},
		{locale: "fr-FR", want: "fr"},
		{locale: "en", want: "en"},
		{locale: "pt-BR", want: "pt"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			b, err := NewHeaderBuilder(nil, nil, tt.locale, "web", "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.LanguageCode())
		})
	}
}

func TestNewHeaderBuilder_InvalidLocale(t *testing.T) {
	_, err := NewHeaderBuilder(nil, nil, "not a locale", "web", "")

	var cfgErr *pkgerrs.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "LocaleCode", cfgErr.Field)
}

func TestHeaderBuilder_Apply(t *testing.T) {
	ids := &counterIDs{}
	b, err := NewHeaderBuilder(ids, fixedAgent("agent/1.0"), "nl-NL", "web", "https://studygo.com/")
	require.NoError(t, err)

	h := http.Header{}
	b.Apply(h, false)

	assert.Equal(t, "agent/1.0", h.Get("User-Agent"))
	assert.Equal(t, "application/json, text/plain, */*", h.Get("Accept"))
	assert.Equal(t, "en-US,en;q=0.5", h.Get("Accept-Language"))
	assert.Empty(t, h.Get("Content-Type"))
	assert.Equal(t, "web", h.Get(HeaderClientType))
	assert.Equal(t, "nl", h.Get(HeaderLanguageCode))
	assert.Equal(t, "nl-NL", h.Get(HeaderLocaleCode))
	assert.Equal(t, "id-1", h.Get(HeaderSessionID))
	assert.Equal(t, "id-2", h.Get(HeaderDeviceID))
	assert.Equal(t, "1", h.Get("Sec-GPC"))
	assert.Equal(t, "empty", h.Get("Sec-Fetch-Dest"))
	assert.Equal(t, "cors", h.Get("Sec-Fetch-Mode"))
	assert.Equal(t, "cross-site", h.Get("Sec-Fetch-Site"))
	assert.Equal(t, "u=0", h.Get("Priority"))
	assert.Equal(t, "https://studygo.com/", h.Get("Referer"))
	assert.Empty(t, h.Get(HeaderAuthToken))

	withBody := http.Header{}
	b.Apply(withBody, true)
	assert.Equal(t, "application/json", withBody.Get("Content-Type"))
	assert.Equal(t, "id-3", withBody.Get(HeaderSessionID))
	assert.Equal(t, "id-4", withBody.Get(HeaderDeviceID))
}

func TestHeaderBuilder_DefaultSources(t *testing.T) {
	b, err := NewHeaderBuilder(nil, nil, "nl-NL", "web", "")
	require.NoError(t, err)

	first, second := http.Header{}, http.Header{}
	b.Apply(first, false)
	b.Apply(second, false)

	for _, h := range []http.Header{first, second} {
		assert.True(t, validation.IsUUIDv4(h.Get(HeaderSessionID)))
		assert.True(t, validation.IsUUIDv4(h.Get(HeaderDeviceID)))
		assert.NotEqual(t, h.Get(HeaderSessionID), h.Get(HeaderDeviceID))
		assert.Contains(t, defaultUserAgents, h.Get("User-Agent"))
	}
	assert.NotEqual(t, first.Get(HeaderSessionID), second.Get(HeaderSessionID))
	assert.Empty(t, first.Get("Referer"))
}
