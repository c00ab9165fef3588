package studygo

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/polarlearn/go-studygo/internal"
	pkgerrs "github.com/polarlearn/go-studygo/pkg/errors"
	"github.com/polarlearn/go-studygo/pkg/types"
	"github.com/tidwall/gjson"
)

const (
	// DefaultBaseURL is the default StudyGo API base URL
	DefaultBaseURL = "https://api.wrts.nl/api/v3/"
	// DefaultReferer is sent as Referer, matching the StudyGo web app
	DefaultReferer = "https://studygo.com/"
	// DefaultLocaleCode is sent as X-Locale-Code
	DefaultLocaleCode = "nl-NL"
	// DefaultClientType is sent as X-Client-Type
	DefaultClientType = "web"
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Endpoint paths, relative to BaseURL.
const (
	userDataPath    = "get_user_data"
	forumPagePath   = "public/qna/questions"
	forumPostPrefix = "public/qna/questions/"
	listPrefix      = "public/lists/"
)

// IDGenerator produces the per-request session and device identifiers.
// Implementations must return a fresh value on every call.
type IDGenerator interface {
	NewID() string
}

// UserAgentProvider produces the User-Agent header for each request.
type UserAgentProvider interface {
	UserAgent() string
}

// Config holds the configuration for the StudyGo client.
// Every field is optional; NewClient fills in defaults.
//
// Example:
//
//	config := &studygo.Config{
//		LocaleCode: "nl-NL",
//		Strict:     true,
//	}
type Config struct {
	// BaseURL for the StudyGo API.
	// Defaults to DefaultBaseURL if not specified. Usually only changed in tests.
	BaseURL string `validate:"omitempty,url"`

	// Referer sent with every request. Defaults to DefaultReferer.
	Referer string `validate:"omitempty,url"`

	// LocaleCode sent as X-Locale-Code; its base language is sent as
	// X-Language-Code. Defaults to DefaultLocaleCode.
	LocaleCode string `validate:"omitempty,bcp47_language_tag"`

	// ClientType sent as X-Client-Type. Defaults to DefaultClientType.
	ClientType string `validate:"omitempty,alphanum"`

	// HTTPClient to use for requests.
	// Defaults to a client with DefaultTimeout if not specified.
	// Cancellation and deadlines otherwise come from the request context.
	HTTPClient *http.Client `validate:"-"`

	// Logger for structured diagnostics.
	// Optional. When nil the client logs nothing.
	Logger *slog.Logger `validate:"-"`

	// IDs generates X-Session-Id and X-Device-Id values. Defaults to random UUIDv4s.
	IDs IDGenerator `validate:"-"`

	// UserAgents supplies the User-Agent header. Defaults to a pool of desktop browsers.
	UserAgents UserAgentProvider `validate:"-"`

	// Strict makes the client fail on non-2xx statuses and on responses that
	// lack required fields. The default lenient client maps missing fields
	// to zero values and never inspects the status code.
	Strict bool
}

// Client is the StudyGo API client. It holds no per-call state and is safe
// for concurrent use.
type Client struct {
	client     *internal.Client
	auth       *internal.Authenticator
	normalizer Normalizer
	validator  *internal.Validator
	config     *Config
}

// NewClient creates a new StudyGo client with the provided configuration.
// A nil config uses all defaults.
//
// Returns a *errors.ConfigError if a field fails validation.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		config = &Config{}
	}

	validator := internal.NewValidator()
	if err := validator.ValidateConfig(config); err != nil {
		return nil, err
	}

	// Set defaults
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Referer == "" {
		config.Referer = DefaultReferer
	}
	if config.LocaleCode == "" {
		config.LocaleCode = DefaultLocaleCode
	}
	if config.ClientType == "" {
		config.ClientType = DefaultClientType
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	var ids internal.IDSource = internal.UUIDGenerator{}
	if config.IDs != nil {
		ids = config.IDs
	}
	var agents internal.UserAgentSource = internal.NewUserAgentPool()
	if config.UserAgents != nil {
		agents = config.UserAgents
	}

	headers, err := internal.NewHeaderBuilder(ids, agents, config.LocaleCode, config.ClientType, config.Referer)
	if err != nil {
		return nil, err
	}

	client, err := internal.NewClient(config.HTTPClient, config.BaseURL, headers, config.Logger)
	if err != nil {
		return nil, err
	}

	auth, err := internal.NewAuthenticator(client, "")
	if err != nil {
		return nil, err
	}

	return &Client{
		client:     client,
		auth:       auth,
		normalizer: internal.NewNormalizer(config.Strict),
		validator:  validator,
		config:     config,
	}, nil
}

// GetToken exchanges email and password for a session token.
//
// The credentials are sent verbatim and are not checked locally. A lenient
// client returns whatever the response maps to, so a rejected login yields a
// TokenData with an empty Token. A strict client returns *errors.AuthError for
// a non-2xx status and *errors.ShapeError when a token field is missing.
func (c *Client) GetToken(ctx context.Context, email, password string) (*types.TokenData, error) {
	resp, err := c.auth.Exchange(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if c.config.Strict && !resp.OK() {
		return nil, &pkgerrs.AuthError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(resp.Body),
			Body:       string(resp.Body),
		}
	}

	return c.normalizer.Token(resp.Body)
}

// GetUserData fetches the profile belonging to token.
//
// Locale, country and theme are returned as plain codes whether the API nests
// them or not; a "system_" theme prefix is removed.
func (c *Client) GetUserData(ctx context.Context, token string) (*types.UserProfile, error) {
	if err := c.validator.ValidateToken(token); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, internal.OpGetUserData, userDataPath, nil, func(req *http.Request) {
		req.Header.Set(internal.HeaderAuthToken, token)
	})
	if err != nil {
		return nil, err
	}

	return c.normalizer.UserProfile(resp.Body)
}

// GetForumPage fetches one page of the public Q&A listing.
//
// A nil request or a zero Offset fetches the first page; a positive Offset is
// sent as the offset query parameter. No cursor is returned: to page forward,
// call again with a larger offset. Pages are not guaranteed to be disjoint or
// complete while the forum changes.
func (c *Client) GetForumPage(ctx context.Context, request *types.ForumPageRequest) ([]*types.ForumPostSummary, error) {
	var params url.Values
	if request != nil {
		if err := c.validator.ValidateOffset(request.Offset); err != nil {
			return nil, err
		}
		if request.Offset > 0 {
			params = url.Values{"offset": {strconv.Itoa(request.Offset)}}
		}
	}

	resp, err := c.get(ctx, internal.OpGetForumPage, forumPagePath, params, nil)
	if err != nil {
		return nil, err
	}

	return c.normalizer.ForumPage(resp.Body)
}

// GetForumPost fetches a single forum question with its answers and
// attachments. Answers and attachments are passed through untyped.
func (c *Client) GetForumPost(ctx context.Context, id string) (*types.ForumPostDetail, error) {
	if err := c.validator.ValidatePostID(id); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, internal.OpGetForumPost, forumPostPrefix+id, nil, nil)
	if err != nil {
		return nil, err
	}

	return c.normalizer.ForumPost(resp.Body)
}

// GetListByID fetches a public vocabulary list.
//
// Only the first element of the response's results is used. The source and
// target languages are derived from the list's locales; ToLanguage is empty
// when the list has a single locale and none is marked default.
func (c *Client) GetListByID(ctx context.Context, id int64) (*types.VocabularyList, error) {
	if err := c.validator.ValidateListID(id); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, internal.OpGetListByID, listPrefix+strconv.FormatInt(id, 10), nil, nil)
	if err != nil {
		return nil, err
	}

	return c.normalizer.VocabularyList(resp.Body)
}

// get issues a GET request and, for strict clients, rejects non-2xx statuses.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, decorate func(*http.Request)) (*internal.Response, error) {
	req, err := c.client.NewRequest(ctx, http.MethodGet, path, nil, params)
	if err != nil {
		return nil, err
	}
	if decorate != nil {
		decorate(req)
	}

	resp, err := c.client.Do(req, op)
	if err != nil {
		return nil, err
	}

	if c.config.Strict && !resp.OK() {
		return nil, &pkgerrs.APIError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(resp.Body),
			Details:    string(resp.Body),
		}
	}

	return resp, nil
}

// upstreamMessage pulls a human readable message out of an error payload.
func upstreamMessage(body []byte) string {
	for _, path := range []string{"message", "error", "errors.0"} {
		if v := gjson.GetBytes(body, path); v.Exists() && v.Type == gjson.String {
			return v.String()
		}
	}
	return ""
}
