package adversarial_tests

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/polarlearn/go-studygo/adversarial_tests/helpers"
	"github.com/polarlearn/go-studygo/test_helpers"
	"github.com/polarlearn/go-studygo/test_utils"
)

// TestCredentialsSentVerbatim checks that hostile credentials reach the
// token endpoint as a well-formed JSON body, untrimmed and unaltered apart
// from JSON escaping.
func TestCredentialsSentVerbatim(t *testing.T) {
	tc, err := test_helpers.NewTestClient(false)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer tc.Close()
	tc.Server.SetJSON("auth/get_token", `{"auth_token":"a.b.c","expires_at":2,"renew_from":1}`)

	for _, cred := range helpers.NewFuzzer(7).FuzzCredentials() {
		email, password := cred[0], cred[1]

		if _, err := tc.GetToken(context.Background(), email, password); err != nil {
			t.Errorf("GetToken(%q, %q) failed: %v", email, password, err)
			continue
		}

		req, ok := tc.Server.LastRequest()
		if !ok {
			t.Fatal("no request recorded")
		}

		var got map[string]string
		if err := json.Unmarshal([]byte(req.Body), &got); err != nil {
			t.Errorf("body is not valid JSON: %v (%q)", err, req.Body)
			continue
		}

		// encoding/json replaces invalid UTF-8, so compare against the same round trip
		want := roundTrip(t, map[string]string{"email": email, "password": password})
		if got["email"] != want["email"] || got["password"] != want["password"] {
			t.Errorf("credentials altered: got %q/%q, want %q/%q", got["email"], got["password"], want["email"], want["password"])
		}
	}
}

// TestRejectedCredentials checks both modes against a 401 with an error payload.
func TestRejectedCredentials(t *testing.T) {
	rejected := &test_helpers.MockResponse{Status: http.StatusUnauthorized, Body: `{"success":false,"errors":["Ongeldige inloggegevens"]}`}

	lenient, err := test_helpers.NewTestClient(false)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer lenient.Close()
	lenient.Server.SetResponse("auth/get_token", rejected)

	td, err := lenient.GetToken(context.Background(), "a@b.nl", "x")
	if err != nil {
		t.Fatalf("lenient GetToken failed: %v", err)
	}
	if td.Token != "" || td.ExpiresAt != 0 || td.RenewFrom != 0 {
		t.Errorf("expected empty token data, got %+v", td)
	}

	strict, err := test_helpers.NewTestClient(true)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer strict.Close()
	strict.Server.SetResponse("auth/get_token", rejected)

	_, err = strict.GetToken(context.Background(), "a@b.nl", "x")
	if err := test_utils.AssertErrorType(err, "AuthError"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(err.Error(), "Ongeldige inloggegevens") {
		t.Errorf("expected upstream message in error, got %v", err)
	}
}

func roundTrip(t *testing.T, v map[string]string) map[string]string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var out map[string]string
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	return out
}
