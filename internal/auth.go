package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	pkgerrs "github.com/polarlearn/go-studygo/pkg/errors"
)

const defaultTokenEndpointPath = "auth/get_token"

// Authenticator exchanges email and password for a session token.
type Authenticator struct {
	client    *Client
	tokenPath string
}

// NewAuthenticator creates a new authenticator.
// The tokenPath parameter can be an empty string to use the default token endpoint.
func NewAuthenticator(client *Client, tokenPath string) (*Authenticator, error) {
	if client == nil {
		return nil, &pkgerrs.ConfigError{Field: "client", Message: "client cannot be nil"}
	}
	if tokenPath == "" {
		tokenPath = defaultTokenEndpointPath
	}

	return &Authenticator{
		client:    client,
		tokenPath: tokenPath,
	}, nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Exchange posts the credentials verbatim and returns the raw response. The
// status code is not interpreted; callers decide how strict to be.
func (a *Authenticator) Exchange(ctx context.Context, email, password string) (*Response, error) {
	payload, err := json.Marshal(credentials{Email: email, Password: password})
	if err != nil {
		return nil, &pkgerrs.RequestError{Operation: OpGetToken, Err: fmt.Errorf("failed to encode credentials: %w", err)}
	}

	req, err := a.client.NewRequest(ctx, http.MethodPost, a.tokenPath, bytes.NewReader(payload), nil)
	if err != nil {
		return nil, err
	}

	return a.client.Do(req, OpGetToken)
}
