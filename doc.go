// Package studygo is a thin Go client for the StudyGo (wrts.nl) study platform API.
//
// # Overview
//
// Each method performs one HTTP round trip and reshapes the JSON response into
// a stable record from pkg/types. The client keeps no state between calls: no
// token cache, no retries, no rate limiting and no pagination cursor. It is
// safe for concurrent use.
//
// # Features
//
//   - Credential exchange for a session token triple
//   - Flattened user profiles, tolerant of nested or flat locale, country,
//     theme, profile image and streak fields
//   - Public Q&A forum listing and question detail
//   - Public vocabulary lists with source and target language derived from
//     the list's locales
//   - Browser-like request headers with a fresh session id, device id and
//     user agent on every request
//   - Optional strict mode and structured logging via Go's slog package
//
// # Quick Start
//
//	client, err := studygo.NewClient(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	token, err := client.GetToken(ctx, "user@example.com", "secret")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	profile, err := client.GetUserData(ctx, token.Token)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(profile.Username, profile.Theme)
//
// # Forum
//
// GetForumPage takes an optional offset. A nil request fetches the first page:
//
//	posts, err := client.GetForumPage(ctx, nil)
//	more, err := client.GetForumPage(ctx, &types.ForumPageRequest{Offset: len(posts)})
//
// GetForumPost returns the full question; answers and attachments are
// untyped values exactly as the API sent them.
//
// # Vocabulary Lists
//
//	list, err := client.GetListByID(ctx, 178805126)
//	for _, w := range list.Words {
//		fmt.Printf("%s = %s\n", w.Source, w.Target)
//	}
//
// FromLanguage is the first locale not marked default, or the first locale.
// ToLanguage is the first default locale, or the second locale, and is empty
// when neither exists.
//
// # Error Handling
//
// Errors are typed and live in pkg/errors:
//
//   - *errors.ConfigError for invalid configuration or arguments
//   - *errors.RequestError for transport failures (DNS, refused, timeout, cancel)
//   - *errors.ParseError for bodies that are not valid JSON
//   - *errors.APIError and *errors.AuthError for non-2xx statuses (strict mode only)
//   - *errors.ShapeError for responses missing required fields (strict mode only)
//
// By default the client is lenient: it never checks the status code and
// returns zero values for fields the response does not carry, so a failed
// login yields a TokenData with an empty Token. Set Config.Strict to turn
// these cases into errors.
//
// # Logging
//
// The client logs nothing unless Config.Logger is set. With a logger, every
// response is logged at debug level with its operation, path, status and a
// short body preview (token responses are never previewed).
//
// # Testing
//
// Config.IDs and Config.UserAgents accept deterministic stubs, and BaseURL can
// point at an httptest server.
package studygo
