package test_utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	pkgerrs "github.com/polarlearn/go-studygo/pkg/errors"
	"github.com/polarlearn/go-studygo/pkg/types"
	"github.com/polarlearn/go-studygo/pkg/validation"
)

// AssertValidProfile checks the fields every real profile carries and that
// the tolerant fields were flattened to plain values.
func AssertValidProfile(p *types.UserProfile) error {
	if p == nil {
		return fmt.Errorf("profile is nil")
	}
	if p.ID <= 0 {
		return fmt.Errorf("profile ID must be positive, got %d", p.ID)
	}
	if err := AssertStringNotEmpty(p.Username, "username"); err != nil {
		return err
	}
	if p.Locale != "" && !validation.IsLocaleCode(p.Locale) {
		return fmt.Errorf("profile locale %q is not a locale code", p.Locale)
	}
	if strings.HasPrefix(p.Theme, "system_") {
		return fmt.Errorf("profile theme %q still carries the system_ prefix", p.Theme)
	}
	if p.Streak < 0 {
		return fmt.Errorf("profile streak cannot be negative, got %d", p.Streak)
	}
	return nil
}

// AssertValidForumSummary validates a single listing entry
func AssertValidForumSummary(post *types.ForumPostSummary) error {
	if post == nil {
		return fmt.Errorf("forum post is nil")
	}
	if err := AssertStringNotEmpty(post.ID, "id"); err != nil {
		return err
	}
	if post.AnswersCount < 0 {
		return fmt.Errorf("post %s has negative answers_count %d", post.ID, post.AnswersCount)
	}
	return nil
}

// AssertForumPageValid validates every entry of a listing page and checks
// that no id appears twice.
func AssertForumPageValid(posts []*types.ForumPostSummary) error {
	if posts == nil {
		return fmt.Errorf("forum page is nil")
	}

	seen := make(map[string]int, len(posts))
	for i, post := range posts {
		if err := AssertValidForumSummary(post); err != nil {
			return fmt.Errorf("post %d invalid: %v", i, err)
		}
		if j, ok := seen[post.ID]; ok {
			return fmt.Errorf("post id %s appears at %d and %d", post.ID, j, i)
		}
		seen[post.ID] = i
	}
	return nil
}

// AssertValidVocabularyList checks the derived languages and that every word
// pair has both sides.
func AssertValidVocabularyList(list *types.VocabularyList) error {
	if err := validation.ValidateVocabularyList(list); err != nil {
		return err
	}
	if list.Words == nil {
		return fmt.Errorf("words must be an empty slice, not nil")
	}
	for i, w := range list.Words {
		if w.Source == "" || w.Target == "" {
			return fmt.Errorf("word %d is incomplete: %+v", i, w)
		}
	}
	return nil
}

// AssertTimeRange checks if a time is within the expected range
func AssertTimeRange(t, min, max time.Time) error {
	if t.Before(min) {
		return fmt.Errorf("time %v is before minimum %v", t, min)
	}
	if t.After(max) {
		return fmt.Errorf("time %v is after maximum %v", t, max)
	}
	return nil
}

// AssertStringNotEmpty checks that a string is not empty
func AssertStringNotEmpty(s, fieldName string) error {
	if s == "" {
		return fmt.Errorf("%s is empty", fieldName)
	}
	return nil
}

// AssertErrorType checks that err is one of the client's error types.
// expectedType is the bare type name, e.g. "ShapeError".
func AssertErrorType(err error, expectedType string) error {
	if err == nil {
		return fmt.Errorf("expected %s, got nil", expectedType)
	}

	var (
		cfgErr   *pkgerrs.ConfigError
		authErr  *pkgerrs.AuthError
		reqErr   *pkgerrs.RequestError
		parseErr *pkgerrs.ParseError
		shapeErr *pkgerrs.ShapeError
		apiErr   *pkgerrs.APIError
	)

	var matched bool
	switch expectedType {
	case "ConfigError":
		matched = errors.As(err, &cfgErr)
	case "AuthError":
		matched = errors.As(err, &authErr)
	case "RequestError":
		matched = errors.As(err, &reqErr)
	case "ParseError":
		matched = errors.As(err, &parseErr)
	case "ShapeError":
		matched = errors.As(err, &shapeErr)
	case "APIError":
		matched = errors.As(err, &apiErr)
	default:
		return fmt.Errorf("unknown error type %q", expectedType)
	}

	if !matched {
		return fmt.Errorf("expected %s, got %T: %v", expectedType, err, err)
	}
	return nil
}
