package internal

import (
	"fmt"
	"net/http"

	pkgerrs "github.com/polarlearn/go-studygo/pkg/errors"
	"golang.org/x/text/language"
)

// Header names understood by the StudyGo API.
const (
	HeaderAuthToken    = "X-Auth-Token"
	HeaderClientType   = "X-Client-Type"
	HeaderLanguageCode = "X-Language-Code"
	HeaderLocaleCode   = "X-Locale-Code"
	HeaderSessionID    = "X-Session-Id"
	HeaderDeviceID     = "X-Device-Id"
)

// IDSource produces identifiers for the session and device headers.
type IDSource interface {
	NewID() string
}

// UserAgentSource produces a User-Agent value per request.
type UserAgentSource interface {
	UserAgent() string
}

// HeaderBuilder writes the header set the StudyGo web app sends. Session and
// device identifiers and the user agent are drawn anew for every request.
type HeaderBuilder struct {
	ids          IDSource
	agents       UserAgentSource
	localeCode   string
	languageCode string
	clientType   string
	referer      string
}

// NewHeaderBuilder creates a builder. The X-Language-Code value is the base
// language of localeCode, so "nl-NL" yields "nl".
func NewHeaderBuilder(ids IDSource, agents UserAgentSource, localeCode, clientType, referer string) (*HeaderBuilder, error) {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if agents == nil {
		agents = NewUserAgentPool()
	}

	tag, err := language.Parse(localeCode)
	if err != nil {
		return nil, &pkgerrs.ConfigError{Field: "LocaleCode", Message: fmt.Sprintf("invalid locale %q: %v", localeCode, err)}
	}
	base, _ := tag.Base()

	return &HeaderBuilder{
		ids:          ids,
		agents:       agents,
		localeCode:   localeCode,
		languageCode: base.String(),
		clientType:   clientType,
		referer:      referer,
	}, nil
}

// LanguageCode returns the value sent in X-Language-Code.
func (b *HeaderBuilder) LanguageCode() string {
	return b.languageCode
}

// Apply sets the header set on h. Content-Type is only set when the request
// carries a JSON body.
func (b *HeaderBuilder) Apply(h http.Header, hasBody bool) {
	h.Set("User-Agent", b.agents.UserAgent())
	h.Set("Accept", "application/json, text/plain, */*")
	h.Set("Accept-Language", "en-US,en;q=0.5")
	if hasBody {
		h.Set("Content-Type", "application/json")
	}
	h.Set(HeaderClientType, b.clientType)
	h.Set(HeaderLanguageCode, b.languageCode)
	h.Set(HeaderLocaleCode, b.localeCode)
	h.Set(HeaderSessionID, b.ids.NewID())
	h.Set(HeaderDeviceID, b.ids.NewID())
	h.Set("Sec-GPC", "1")
	h.Set("Sec-Fetch-Dest", "empty")
	h.Set("Sec-Fetch-Mode", "cors")
	h.Set("Sec-Fetch-Site", "cross-site")
	h.Set("Priority", "u=0")
	if b.referer != "" {
		h.Set("Referer", b.referer)
	}
}
