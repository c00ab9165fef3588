package helpers

import (
	"fmt"
	"strings"
)

// JSONGenerator creates malicious and malformed JSON for testing
type JSONGenerator struct{}

// NewJSONGenerator creates a new JSON generator
func NewJSONGenerator() *JSONGenerator {
	return &JSONGenerator{}
}

// GenerateInvalidBodies returns bodies that are not JSON at all. Every
// operation must report them as a parse error, strict or not.
func (g *JSONGenerator) GenerateInvalidBodies() []string {
	return []string{
		// Empty
		``,

		// HTML error pages from a proxy
		`<html><body><h1>502 Bad Gateway</h1></body></html>`,

		// Just opening brace
		`{`,

		// Unclosed object
		`{"results": [{"id": 1}`,

		// Missing comma
		`{"id": 1 "username": "x"}`,

		// Trailing comma
		`{"id": 1,}`,

		// Missing quotes
		`{id: 1}`,

		// Single quotes
		`{'id': 1}`,

		// Two documents
		`{"id": 1}{"id": 2}`,
	}
}

// GenerateNonObjectBodies returns valid JSON that is not an object. Lenient
// clients map them to zero values.
func (g *JSONGenerator) GenerateNonObjectBodies() []string {
	return []string{`null`, `[]`, `[{"id":1}]`, `"ok"`, `42`, `true`}
}

// GenerateHostileTolerantFields returns user_data bodies in which each
// dual-shape field carries an unexpected type.
func (g *JSONGenerator) GenerateHostileTolerantFields() []string {
	values := []string{`null`, `true`, `[]`, `["nl-NL"]`, `{}`, `{"code":null}`, `{"code":{"code":"nl"}}`, `{"count":"five"}`, `-1`, `1e308`}
	fields := []string{"locale", "country", "theme", "profile_image", "streak"}

	var bodies []string
	for _, field := range fields {
		for _, value := range values {
			bodies = append(bodies, fmt.Sprintf(`{"id":1,"username":"u","%s":%s}`, field, value))
		}
	}
	return bodies
}

// GenerateMalformedListings returns Q&A listing bodies with broken results.
func (g *JSONGenerator) GenerateMalformedListings() []string {
	return []string{
		`{}`,
		`{"results": null}`,
		`{"results": {}}`,
		`{"results": "none"}`,
		`{"results": [null]}`,
		`{"results": [1, "two", []]}`,
		`{"results": [{}]}`,
		`{"results": [{"id": null, "subject": null, "user": null}]}`,
		`{"results": [{"id": 1, "created_at": "gisteren"}]}`,
		`{"results": [{"id": 1, "created_at": ""}]}`,
		`{"results": [{"id": {"nested": true}}]}`,
	}
}

// GenerateMalformedListResponses returns list bodies with broken results,
// locales or words.
func (g *JSONGenerator) GenerateMalformedListResponses() []string {
	return []string{
		`{}`,
		`{"results": []}`,
		`{"results": [null]}`,
		`{"results": ["list"]}`,
		`{"results": [{}]}`,
		`{"results": [{"locales": []}]}`,
		`{"results": [{"locales": [{"default": true}]}]}`,
		`{"results": [{"locales": [{"code": "fr-FR"}], "words_with_performance": [{}]}]}`,
		`{"results": [{"locales": [{"code": "fr-FR"}], "words_with_performance": [{"words": []}]}]}`,
		`{"results": [{"locales": [{"code": "fr-FR"}], "words_with_performance": [{"words": ["een"]}]}]}`,
		`{"results": [{"locales": [{"code": "fr-FR"}], "words_with_performance": [{"words": ["a", "b", "c"]}]}]}`,
	}
}

// GenerateMalformedTokenResponses returns get_token bodies missing part of
// the token triple.
func (g *JSONGenerator) GenerateMalformedTokenResponses() []string {
	return []string{
		`{}`,
		`{"success": false}`,
		`{"auth_token": "a.b.c"}`,
		`{"auth_token": "a.b.c", "expires_at": 2}`,
		`{"expires_at": 2, "renew_from": 1}`,
	}
}

// GenerateLargeList returns a list body with n word entries.
func (g *JSONGenerator) GenerateLargeList(n int) string {
	var sb strings.Builder
	sb.WriteString(`{"results":[{"title":"groot","locales":[{"code":"fr-FR","default":false},{"code":"nl-NL","default":true}],"words_with_performance":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"words":["mot%d","woord%d"],"score":0.5}`, i, i)
	}
	sb.WriteString(`]}]}`)
	return sb.String()
}

// GenerateJSONBomb creates deeply nested arrays under an ignored field
func (g *JSONGenerator) GenerateJSONBomb(depth int) string {
	return `{"id":1,"username":"u","extra":` + strings.Repeat("[", depth) + strings.Repeat("]", depth) + `}`
}
