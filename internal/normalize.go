package internal

import (
	"time"

	pkgerrs "github.com/polarlearn/go-studygo/pkg/errors"
	"github.com/polarlearn/go-studygo/pkg/types"
	"github.com/tidwall/gjson"
)

// Normalizer maps raw StudyGo response bodies to the records in pkg/types.
//
// A lenient normalizer (the default) maps anything it cannot find, or finds
// with an unexpected type, to zero values. A strict normalizer fails with
// *errors.ShapeError when a required field is absent, and with
// *errors.ParseError on mistyped fields and unparseable timestamps.
type Normalizer struct {
	strict bool
}

// NewNormalizer creates a new normalizer.
func NewNormalizer(strict bool) *Normalizer {
	return &Normalizer{strict: strict}
}

func (n *Normalizer) prepare(op string, body []byte) error {
	if err := validateBody(op, body); err != nil {
		return err
	}
	if n.strict {
		return checkShape(op, body)
	}
	return nil
}

// decodeObject decodes raw into v when raw is a JSON object and leaves v
// untouched otherwise, mirroring field access on a non-object payload.
func (n *Normalizer) decodeObject(op string, raw string, v any) error {
	if !gjson.Parse(raw).IsObject() {
		return nil
	}
	return decode(op, []byte(raw), v, n.strict)
}

// Token extracts the token triple from a get_token response.
func (n *Normalizer) Token(body []byte) (*types.TokenData, error) {
	if err := n.prepare(OpGetToken, body); err != nil {
		return nil, err
	}

	var raw rawToken
	if err := n.decodeObject(OpGetToken, string(body), &raw); err != nil {
		return nil, err
	}

	return &types.TokenData{
		Token:     raw.AuthToken,
		ExpiresAt: raw.ExpiresAt,
		RenewFrom: raw.RenewFrom,
	}, nil
}

// UserProfile flattens a get_user_data response.
func (n *Normalizer) UserProfile(body []byte) (*types.UserProfile, error) {
	if err := n.prepare(OpGetUserData, body); err != nil {
		return nil, err
	}

	var raw rawUser
	if err := n.decodeObject(OpGetUserData, string(body), &raw); err != nil {
		return nil, err
	}

	return &types.UserProfile{
		ID:                          raw.ID,
		Username:                    raw.Username,
		FullName:                    raw.FullName,
		FirstName:                   raw.FirstName,
		LastName:                    raw.LastName,
		PublicProfileName:           raw.PublicProfileName,
		Email:                       raw.Email,
		RoleName:                    raw.RoleName,
		PromoBanner:                 raw.PromoBanner,
		NeedsToFillEducationDetails: raw.NeedsToFillEducationDetails,
		CanUseChat:                  raw.CanUseChat,
		CanAccessQnA:                raw.CanAccessQnA,
		NewNotificationsCount:       raw.NewNotificationsCount,
		Locale:                      raw.Locale.Value,
		Country:                     raw.Country.Value,
		Theme:                       raw.Theme.Normalized(),
		IsPayingCustomer:            raw.IsPayingCustomer,
		ProfileImage:                raw.ProfileImage.Value,
		NeedsToVerifyEmail:          raw.NeedsToVerifyEmail,
		FormattedGrade:              raw.FormattedGrade,
		Streak:                      raw.Streak.Value,
	}, nil
}

// ForumPage maps every entry of a Q&A listing, preserving order.
func (n *Normalizer) ForumPage(body []byte) ([]*types.ForumPostSummary, error) {
	if err := n.prepare(OpGetForumPage, body); err != nil {
		return nil, err
	}

	results := gjson.GetBytes(body, "results")
	if !results.IsArray() {
		if n.strict {
			return nil, &pkgerrs.ShapeError{Operation: OpGetForumPage, Path: "results"}
		}
		return []*types.ForumPostSummary{}, nil
	}

	entries := results.Array()
	posts := make([]*types.ForumPostSummary, 0, len(entries))
	for _, entry := range entries {
		var raw rawForumSummary
		if err := n.decodeObject(OpGetForumPage, entry.Raw, &raw); err != nil {
			return nil, err
		}

		createdAt, err := n.parseTime(OpGetForumPage, raw.CreatedAt)
		if err != nil {
			return nil, err
		}

		posts = append(posts, &types.ForumPostSummary{
			ID:            raw.ID.String(),
			Title:         raw.Title,
			Content:       raw.Content,
			CreatedAt:     createdAt,
			AnswersCount:  raw.AnswersCount,
			CorrectAnswer: raw.CorrectAnswer,
			Statuses:      raw.Statuses,
			Subject:       raw.Subject.Value,
			User: types.ForumUser{
				ID:              raw.User.ID,
				Username:        raw.User.Username,
				FirstName:       raw.User.FirstName,
				ProfileImageURL: raw.User.ProfileImageURL,
			},
		})
	}

	return posts, nil
}

// ForumPost unwraps qna_question from a single question response.
func (n *Normalizer) ForumPost(body []byte) (*types.ForumPostDetail, error) {
	if err := n.prepare(OpGetForumPost, body); err != nil {
		return nil, err
	}

	var raw rawForumQuestion
	if err := n.decodeObject(OpGetForumPost, gjson.GetBytes(body, "qna_question").Raw, &raw); err != nil {
		return nil, err
	}

	createdAt, err := n.parseTime(OpGetForumPost, raw.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &types.ForumPostDetail{
		ID:            raw.ID.String(),
		Title:         raw.Title,
		Body:          raw.Body,
		Contents:      raw.Contents,
		Topic:         raw.Topic.Value,
		Subject:       raw.Subject.Value,
		CreatedAt:     createdAt,
		AnswersCount:  raw.AnswersCount,
		CorrectAnswer: raw.CorrectAnswer,
		Statuses:      raw.Statuses,
		IsLocked:      raw.IsLocked,
		IsFlagged:     raw.IsFlagged,
		IsHidden:      raw.IsHidden,
		CanEdit:       raw.CanEdit,
		CanDelete:     raw.CanDelete,
		User: types.ForumPostAuthor{
			ID:              raw.User.ID,
			Username:        raw.User.Username,
			FirstName:       raw.User.FirstName,
			ProfileImage:    raw.User.ProfileImage.Value,
			ProfileImageURL: raw.User.ProfileImageURL,
			IsTutor:         raw.User.IsTutor,
			IsModerator:     raw.User.IsModerator,
			IsBlocked:       raw.User.IsBlocked,
		},
		Answers:      raw.Answers,
		TutorAnswers: raw.TutorAnswers,
		Attachments:  raw.Attachments,
	}, nil
}

// VocabularyList normalizes the first element of a list response. Any
// further elements of results are ignored.
func (n *Normalizer) VocabularyList(body []byte) (*types.VocabularyList, error) {
	if err := n.prepare(OpGetListByID, body); err != nil {
		return nil, err
	}

	var raw rawList
	if err := n.decodeObject(OpGetListByID, gjson.GetBytes(body, "results.0").Raw, &raw); err != nil {
		return nil, err
	}

	from, to := DeriveLanguages(raw.Locales)

	return &types.VocabularyList{
		Name:        raw.Title,
		Description: raw.Description,
		Creator: types.ListCreator{
			ProfileImageURL:   raw.Creator.ProfileImageURL,
			PublicProfileName: raw.Creator.PublicProfileName,
			PublicProfileURL:  raw.Creator.PublicProfileURL,
			PackageName:       raw.Creator.PackageName,
			Name:              raw.Creator.Name,
		},
		Subject:      raw.Subject.Value,
		FromLanguage: from,
		ToLanguage:   to,
		Words:        ProjectWords(raw.WordsWithPerformance),
		Book:         raw.Book.Ptr(),
	}, nil
}

// DeriveLanguages picks the source and target language of a list.
//
// from is the code of the first non-default locale, falling back to locales[0].
// to is the code of the first default locale, falling back to locales[1]; it
// never falls back to locales[0] and is empty when neither exists.
func DeriveLanguages(locales []Locale) (from, to string) {
	for _, l := range locales {
		if !l.Default {
			from = l.Code
			break
		}
	}
	if from == "" && len(locales) > 0 {
		from = locales[0].Code
	}

	for _, l := range locales {
		if l.Default {
			to = l.Code
			break
		}
	}
	if to == "" && len(locales) > 1 {
		to = locales[1].Code
	}

	return from, to
}

// ProjectWords keeps the two words of each entry, in order, and drops the
// performance metadata.
func ProjectWords(entries []WordPerformance) []types.WordPair {
	words := make([]types.WordPair, 0, len(entries))
	for _, entry := range entries {
		var pair types.WordPair
		if len(entry.Words) > 0 {
			pair.Source = entry.Words[0]
		}
		if len(entry.Words) > 1 {
			pair.Target = entry.Words[1]
		}
		words = append(words, pair)
	}
	return words
}

// timeLayouts are the ISO-8601 forms accepted for created_at, tried in order.
// Forms without a zone are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// parseTime parses an ISO-8601 timestamp. Empty input yields the zero time;
// malformed input does too unless the normalizer is strict.
func (n *Normalizer) parseTime(op, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	if n.strict {
		return time.Time{}, &pkgerrs.ParseError{Operation: op, Message: "invalid created_at timestamp", Err: err}
	}
	return time.Time{}, nil
}
