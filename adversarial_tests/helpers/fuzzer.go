package helpers

import (
	"math/rand"
	"strings"
)

// Fuzzer provides utilities for generating adversarial input strings
type Fuzzer struct {
	rnd *rand.Rand
}

// NewFuzzer creates a new Fuzzer with the given seed
func NewFuzzer(seed int64) *Fuzzer {
	return &Fuzzer{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// FuzzPostID returns forum question ids that must never reach the wire
// unchanged, because they would alter the request path or query.
func (f *Fuzzer) FuzzPostID() []string {
	ids := []string{
		"",
		strings.Repeat("9", 65),

		// Path manipulation
		"../lists/1",
		"..%2Flists%2F1",
		"1/../../get_user_data",
		"1/answers",
		"/1",

		// Query and fragment injection
		"1?offset=20",
		"1#frag",
		"1&x=1",

		// Whitespace and control characters
		" 1",
		"1 ",
		"1\n",
		"1\r\nX-Auth-Token: stolen",
		"1\x00",
		"1\t",

		// Non-ASCII lookalikes
		"１２３",
		"12\u202E3",
		"🚀",
	}
	return append(ids, f.GeneratePathTraversals()...)
}

// FuzzValidPostID returns odd but acceptable ids.
func (f *Fuzzer) FuzzValidPostID() []string {
	return []string{
		"1",
		"526301",
		strings.Repeat("9", 64),
		"abc-DEF_123",
		"0",
	}
}

// FuzzCredentials returns email/password pairs that must be sent verbatim,
// JSON-escaped but otherwise untouched.
func (f *Fuzzer) FuzzCredentials() [][2]string {
	creds := [][2]string{
		{"", ""},
		{"leerling@example.com", ""},
		{"  leerling@example.com  ", "  spaced  "},
		{"LEERLING@EXAMPLE.COM", "p\"ass\\word"},
		{"leerling@example.com", "</script><script>alert(1)</script>"},
		{"leerling@example.com", "line1\nline2"},
		{"émilie@voorbeeld.nl", "wachtwoord€"},
		{"leerling@example.com", strings.Repeat("x", 10000)},
	}
	for _, s := range f.GenerateUnicodeAttacks() {
		creds = append(creds, [2]string{"leerling@example.com", s})
	}
	return creds
}

// FuzzToken returns session tokens that cannot be placed in a header.
func (f *Fuzzer) FuzzToken() []string {
	return []string{
		"abc\r\nX-Injected: 1",
		"abc\nX-Injected: 1",
		"abc\r",
		strings.Repeat("a", 4097),
	}
}

// FuzzOffset returns forum offsets with the query each should produce.
func (f *Fuzzer) FuzzOffset() map[int]string {
	return map[int]string{
		0:       "",
		1:       "offset=1",
		20:      "offset=20",
		1 << 30: "offset=1073741824",
	}
}

// GenerateRandomString generates a random string of the given length
func (f *Fuzzer) GenerateRandomString(length int, includeSpecial bool) string {
	const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const special = "!@#$%^&*()_+-=[]{}|;:',.<>?/~`\"\\"

	charset := alphanumeric
	if includeSpecial {
		charset += special
	}

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(charset[f.rnd.Intn(len(charset))])
	}
	return sb.String()
}

// GenerateUnicodeAttacks generates strings with unicode edge cases
func (f *Fuzzer) GenerateUnicodeAttacks() []string {
	return []string{
		"\u202Eadmin",              // Right-to-left override
		"a\u200Bb",                 // Zero-width space
		"\uFEFFbom",                // Byte order mark
		"e\u0301",                  // Combining acute accent
		"\U0001F600",               // Emoji
		"\xff\xfe",                 // Invalid UTF-8
		"\u0442\u0435\u0441\u0442", // Cyrillic
		"\u6d4b\u8bd5",             // Chinese
	}
}

// GeneratePathTraversals generates path traversal attempts
func (f *Fuzzer) GeneratePathTraversals() []string {
	return []string{
		"..",
		"../..",
		"..\\..\\windows",
		"%2e%2e%2f",
		"....//",
	}
}
