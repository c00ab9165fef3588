// Package validation provides checks for values produced by the StudyGo client.
package validation

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/polarlearn/go-studygo/pkg/types"
	"golang.org/x/text/language"
)

// jwtRegex matches the three base64url segments of a JWT
var jwtRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*$`)

// IsUUIDv4 checks that s is a canonical 36 character version 4 UUID.
func IsUUIDv4(s string) bool {
	if len(s) != 36 {
		return false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return id.Version() == 4 && id.Variant() == uuid.RFC4122
}

// IsLocaleCode checks that s is a well-formed BCP 47 tag such as "nl-NL".
func IsLocaleCode(s string) bool {
	if s == "" {
		return false
	}
	_, err := language.Parse(s)
	return err == nil
}

// IsJWT checks that s has the shape of a JSON Web Token.
func IsJWT(s string) bool {
	return jwtRegex.MatchString(s)
}

// ValidateTokenData checks that a token triple is usable: a JWT shaped token
// and a renewal time that does not come after expiry.
func ValidateTokenData(td *types.TokenData) error {
	if td == nil {
		return fmt.Errorf("token data is nil")
	}
	if td.Token == "" {
		return fmt.Errorf("token is empty")
	}
	if !IsJWT(td.Token) {
		return fmt.Errorf("token is not a JWT")
	}
	if td.ExpiresAt <= 0 {
		return fmt.Errorf("expires_at must be positive, got %d", td.ExpiresAt)
	}
	if td.RenewFrom > td.ExpiresAt {
		return fmt.Errorf("renew_from (%d) is after expires_at (%d)", td.RenewFrom, td.ExpiresAt)
	}
	return nil
}

// ValidateVocabularyList checks that the derived languages of a list are
// well-formed locale codes. An empty ToLanguage is accepted.
func ValidateVocabularyList(l *types.VocabularyList) error {
	if l == nil {
		return fmt.Errorf("vocabulary list is nil")
	}
	if !IsLocaleCode(l.FromLanguage) {
		return fmt.Errorf("invalid from_language %q", l.FromLanguage)
	}
	if l.ToLanguage != "" && !IsLocaleCode(l.ToLanguage) {
		return fmt.Errorf("invalid to_language %q", l.ToLanguage)
	}
	return nil
}
