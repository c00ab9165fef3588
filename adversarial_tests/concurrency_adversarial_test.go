package adversarial_tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/polarlearn/go-studygo/adversarial_tests/helpers"
	"github.com/polarlearn/go-studygo/pkg/validation"
	"github.com/polarlearn/go-studygo/test_generators"
	"github.com/polarlearn/go-studygo/test_helpers"
	"github.com/polarlearn/go-studygo/test_utils"
)

// TestConcurrentOperations runs every read operation on one client at once.
// Run with -race.
func TestConcurrentOperations(t *testing.T) {
	tc, err := test_helpers.NewTestClient(true)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer tc.Close()

	questions := test_generators.NewForumGenerator(3).GenerateQuestions(10)
	list := test_generators.NewListGenerator(3).GenerateList("Voca", []test_generators.ListLocale{
		{Code: "fr-FR"},
		{Code: "nl-NL", Default: true},
	}, 25)

	tc.Server.SetJSON("public/qna/questions", test_generators.ListingBody(questions))
	tc.Server.SetJSON("public/lists/42", test_generators.ResultsBody(list))
	tc.Server.SetJSON("get_user_data", `{"id":1,"username":"u","locale":{"code":"nl-NL"},"theme":"system_light","streak":{"count":2}}`)
	tc.Server.SetJSON("public/qna/questions/"+questions[0].ID, `{"qna_question":{"id":`+questions[0].ID+`}}`)

	const numOps = 60
	errs := helpers.CoordinatedStart(numOps, func(id int) error {
		ctx := context.Background()
		switch id % 4 {
		case 0:
			posts, err := tc.GetForumPage(ctx, nil)
			if err != nil {
				return err
			}
			if len(posts) != len(questions) {
				return fmt.Errorf("got %d posts", len(posts))
			}
			return test_utils.AssertForumPageValid(posts)
		case 1:
			l, err := tc.GetListByID(ctx, 42)
			if err != nil {
				return err
			}
			return test_utils.AssertValidVocabularyList(l)
		case 2:
			p, err := tc.GetUserData(ctx, "token")
			if err != nil {
				return err
			}
			return test_utils.AssertValidProfile(p)
		default:
			p, err := tc.GetForumPost(ctx, questions[0].ID)
			if err != nil {
				return err
			}
			if p.ID != questions[0].ID {
				return fmt.Errorf("got post %q", p.ID)
			}
			return nil
		}
	})

	for id, err := range errs {
		if err != nil {
			t.Errorf("operation %d failed: %v", id, err)
		}
	}

	// every request carries its own identifiers
	seen := make(map[string]bool)
	log := tc.Server.GetRequestLog()
	if len(log) != numOps {
		t.Fatalf("expected %d requests, got %d", numOps, len(log))
	}
	for _, req := range log {
		for _, header := range []string{"X-Session-Id", "X-Device-Id"} {
			id := req.Headers.Get(header)
			if !validation.IsUUIDv4(id) {
				t.Errorf("%s %q is not a UUIDv4", header, id)
			}
			if seen[id] {
				t.Errorf("identifier %q reused", id)
			}
			seen[id] = true
		}
	}
}

// TestNoGoroutineLeakOnCancel checks that canceled requests do not leave
// goroutines behind.
func TestNoGoroutineLeakOnCancel(t *testing.T) {
	tc, err := test_helpers.NewTestClient(false)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer tc.Close()

	tc.Server.SetResponse("public/qna/questions", &test_helpers.MockResponse{
		Status: 200,
		Body:   `{"results":[]}`,
		Delay:  5 * time.Second,
	})

	before := helpers.TakeGoroutineSnapshot()

	errs := helpers.CoordinatedStart(20, func(id int) error {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := tc.GetForumPage(ctx, nil)
		return test_utils.AssertErrorType(err, "RequestError")
	})
	for id, err := range errs {
		if err != nil {
			t.Errorf("operation %d: %v", id, err)
		}
	}

	// idle keep-alive connections may linger briefly
	if _, err := helpers.WaitForGoroutineCleanup(2*time.Second, before.Count, 10); err != nil {
		t.Error(err)
	}
}
