package internal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	pkgerrs "github.com/polarlearn/go-studygo/pkg/errors"
)

const (
	// Forum question ids are short numeric strings; leave generous headroom.
	maxPostIDLength = 64

	// Session tokens are JWTs
	maxTokenLength = 4096
)

// Validator checks client configuration and call arguments before anything
// is sent. Credentials are never validated locally.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// ValidateConfig runs the `validate` struct tags of cfg and reports the first
// failing field as a ConfigError.
func (v *Validator) ValidateConfig(cfg any) error {
	err := v.validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &pkgerrs.ConfigError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("value %v failed %q validation", fe.Value(), fe.Tag()),
		}
	}
	return &pkgerrs.ConfigError{Message: err.Error()}
}

// ValidateToken rejects tokens that cannot be placed in a header. An empty
// token is allowed; the upstream decides what it means.
func (v *Validator) ValidateToken(token string) error {
	if strings.ContainsAny(token, "\r\n") {
		return &pkgerrs.ConfigError{Field: "token", Message: "token cannot contain newline characters"}
	}
	if len(token) > maxTokenLength {
		return &pkgerrs.ConfigError{Field: "token", Message: fmt.Sprintf("token too long (max %d characters)", maxTokenLength)}
	}
	return nil
}

// ValidateOffset checks a forum listing offset.
func (v *Validator) ValidateOffset(offset int) error {
	if offset < 0 {
		return &pkgerrs.ConfigError{Field: "Offset", Message: "offset cannot be negative"}
	}
	return nil
}

// ValidatePostID checks a forum question id before it becomes a path segment.
func (v *Validator) ValidatePostID(id string) error {
	if id == "" {
		return &pkgerrs.ConfigError{Field: "id", Message: "post ID cannot be empty"}
	}
	if len(id) > maxPostIDLength {
		return &pkgerrs.ConfigError{Field: "id", Message: fmt.Sprintf("post ID too long (max %d characters)", maxPostIDLength)}
	}

	// Only alphanumerics, dashes and underscores keep the path intact
	for i, ch := range id {
		if !((ch >= '0' && ch <= '9') ||
			(ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			ch == '-' || ch == '_') {
			return &pkgerrs.ConfigError{Field: "id", Message: fmt.Sprintf("post ID contains invalid character '%c' at position %d", ch, i)}
		}
	}
	return nil
}

// ValidateListID checks a vocabulary list id.
func (v *Validator) ValidateListID(id int64) error {
	if id <= 0 {
		return &pkgerrs.ConfigError{Field: "id", Message: "list ID must be positive"}
	}
	return nil
}
