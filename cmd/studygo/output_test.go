package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/polarlearn/go-studygo/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	list := &types.VocabularyList{
		Name:         "Voca H3",
		FromLanguage: "fr-FR",
		Words:        []types.WordPair{{Source: "chat", Target: "kat"}},
	}

	require.NoError(t, writeJSON(&buf, list))

	out := buf.String()
	assert.JSONEq(t, `{"name":"Voca H3","description":null,"creator":{"profile_image_url":"","public_profile_name":"","public_profile_url":null,"package_name":null,"name":""},"subject":"","from_language":"fr-FR","words":[{"0":"chat","1":"kat"}],"book":null}`, out)
	assert.True(t, strings.Contains(out, "\n  "), "expected indented output")
	assert.NotContains(t, out, "\x1b[", "no color codes outside a terminal")
}

func TestDescribeLanguages(t *testing.T) {
	both := describeLanguages(&types.VocabularyList{FromLanguage: "fr-FR", ToLanguage: "nl-NL"})
	assert.Contains(t, both, "French")
	assert.Contains(t, both, "Dutch")
	assert.Contains(t, both, " -> ")

	single := describeLanguages(&types.VocabularyList{FromLanguage: "fr-FR"})
	assert.True(t, strings.HasSuffix(single, "-> (unknown)"), single)

	bad := describeLanguages(&types.VocabularyList{FromLanguage: "??", ToLanguage: "nl-NL"})
	assert.True(t, strings.HasPrefix(bad, "?? -> "), bad)
}
