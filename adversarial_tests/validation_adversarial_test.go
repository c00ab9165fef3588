package adversarial_tests

import (
	"context"
	"strings"
	"testing"

	"github.com/polarlearn/go-studygo/adversarial_tests/helpers"
	"github.com/polarlearn/go-studygo/pkg/types"
	"github.com/polarlearn/go-studygo/test_helpers"
	"github.com/polarlearn/go-studygo/test_utils"
)

// TestHostilePostIDsNeverSent checks that ids which would change the request
// path are rejected before any request is made.
func TestHostilePostIDsNeverSent(t *testing.T) {
	tc, err := test_helpers.NewTestClient(false)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer tc.Close()

	fuzzer := helpers.NewFuzzer(42)
	for _, id := range fuzzer.FuzzPostID() {
		_, err := tc.GetForumPost(context.Background(), id)
		if err := test_utils.AssertErrorType(err, "ConfigError"); err != nil {
			t.Errorf("GetForumPost(%q): %v", id, err)
		}
	}

	if log := tc.Server.GetRequestLog(); len(log) != 0 {
		t.Errorf("expected no requests, got %d (first path %q)", len(log), log[0].Path)
	}
}

// TestOddPostIDsStayInPath checks that accepted ids only ever produce the
// single-question path.
func TestOddPostIDsStayInPath(t *testing.T) {
	tc, err := test_helpers.NewTestClient(false)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer tc.Close()

	fuzzer := helpers.NewFuzzer(42)
	for _, id := range fuzzer.FuzzValidPostID() {
		if _, err := tc.GetForumPost(context.Background(), id); err != nil {
			t.Errorf("GetForumPost(%q) failed: %v", id, err)
		}
	}

	for _, req := range tc.Server.GetRequestLog() {
		rest, ok := strings.CutPrefix(req.Path, test_helpers.APIPrefix+"public/qna/questions/")
		if !ok || rest == "" || strings.Contains(rest, "/") || req.Query != "" {
			t.Errorf("request escaped the question path: %s?%s", req.Path, req.Query)
		}
	}
}

// TestHostileTokensRejected checks that tokens which would split the header
// block are refused locally.
func TestHostileTokensRejected(t *testing.T) {
	tc, err := test_helpers.NewTestClient(false)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer tc.Close()

	for _, token := range helpers.NewFuzzer(1).FuzzToken() {
		_, err := tc.GetUserData(context.Background(), token)
		if err := test_utils.AssertErrorType(err, "ConfigError"); err != nil {
			t.Errorf("GetUserData(%q): %v", token, err)
		}
	}

	if n := len(tc.Server.GetRequestLog()); n != 0 {
		t.Errorf("expected no requests, got %d", n)
	}
}

// TestOffsetQueries checks the query string each offset produces and that
// negative offsets are refused.
func TestOffsetQueries(t *testing.T) {
	tc, err := test_helpers.NewTestClient(false)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer tc.Close()
	tc.Server.SetJSON("public/qna/questions", `{"results":[]}`)

	for offset, wantQuery := range helpers.NewFuzzer(1).FuzzOffset() {
		if _, err := tc.GetForumPage(context.Background(), &types.ForumPageRequest{Offset: offset}); err != nil {
			t.Fatalf("GetForumPage(%d) failed: %v", offset, err)
		}
		req, ok := tc.Server.LastRequest()
		if !ok {
			t.Fatal("no request recorded")
		}
		if req.Query != wantQuery {
			t.Errorf("offset %d: query = %q, want %q", offset, req.Query, wantQuery)
		}
	}

	for _, offset := range []int{-1, -20, -1 << 31} {
		_, err := tc.GetForumPage(context.Background(), &types.ForumPageRequest{Offset: offset})
		if err := test_utils.AssertErrorType(err, "ConfigError"); err != nil {
			t.Errorf("GetForumPage(%d): %v", offset, err)
		}
	}
}

// TestNonPositiveListIDs checks that list ids below 1 are refused.
func TestNonPositiveListIDs(t *testing.T) {
	tc, err := test_helpers.NewTestClient(true)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer tc.Close()

	for _, id := range []int64{0, -1, -9223372036854775808} {
		_, err := tc.GetListByID(context.Background(), id)
		if err := test_utils.AssertErrorType(err, "ConfigError"); err != nil {
			t.Errorf("GetListByID(%d): %v", id, err)
		}
	}
}
