package internal

import (
	"encoding/json"
	"errors"

	pkgerrs "github.com/polarlearn/go-studygo/pkg/errors"
	"github.com/tidwall/gjson"
)

// Operation names used in errors and log records.
const (
	OpGetToken     = "getToken"
	OpGetUserData  = "getUserData"
	OpGetForumPage = "getForumPage"
	OpGetForumPost = "getForumPost"
	OpGetListByID  = "getListById"
)

// requiredPaths lists, per operation, the gjson paths a strict client insists on.
var requiredPaths = map[string][]string{
	OpGetToken:     {"auth_token", "expires_at", "renew_from"},
	OpGetUserData:  {"id", "username"},
	OpGetForumPage: {"results"},
	OpGetForumPost: {"qna_question", "qna_question.id"},
	OpGetListByID:  {"results.0", "results.0.locales.0.code", "results.0.words_with_performance"},
}

// validateBody rejects bodies that are not JSON at all.
func validateBody(op string, body []byte) error {
	if !gjson.ValidBytes(body) {
		return &pkgerrs.ParseError{Operation: op, Message: "response contained invalid JSON"}
	}
	return nil
}

// checkShape reports the first required path missing from body.
func checkShape(op string, body []byte) error {
	for _, path := range requiredPaths[op] {
		if !gjson.GetBytes(body, path).Exists() {
			return &pkgerrs.ShapeError{Operation: op, Path: path}
		}
	}
	return nil
}

// decode unmarshals raw into v, wrapping failures as ParseError. A lenient
// decode tolerates fields of the wrong type: json.Unmarshal still fills every
// other field and leaves the mismatched one at its zero value.
func decode(op string, raw []byte, v any, strict bool) error {
	err := json.Unmarshal(raw, v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if !strict && errors.As(err, &typeErr) {
		return nil
	}
	return &pkgerrs.ParseError{Operation: op, Err: err}
}
