package internal

import "github.com/polarlearn/go-studygo/pkg/types"

// Raw upstream payloads. Field names follow the StudyGo API; tolerant fields
// use the union types from pkg/types.

type rawToken struct {
	AuthToken string `json:"auth_token"`
	ExpiresAt int64  `json:"expires_at"`
	RenewFrom int64  `json:"renew_from"`
}

type rawUser struct {
	ID                          int64          `json:"id"`
	Username                    string         `json:"username"`
	FullName                    string         `json:"full_name"`
	FirstName                   string         `json:"first_name"`
	LastName                    string         `json:"last_name"`
	PublicProfileName           string         `json:"public_profile_name"`
	Email                       string         `json:"email"`
	RoleName                    string         `json:"role_name"`
	PromoBanner                 *string        `json:"promo_banner"`
	NeedsToFillEducationDetails bool           `json:"needs_to_fill_education_details"`
	CanUseChat                  bool           `json:"can_use_chat"`
	CanAccessQnA                bool           `json:"can_access_qna"`
	NewNotificationsCount       int            `json:"new_notifications_count"`
	Locale                      types.Code     `json:"locale"`
	Country                     types.Code     `json:"country"`
	Theme                       types.Theme    `json:"theme"`
	IsPayingCustomer            bool           `json:"is_paying_customer"`
	ProfileImage                types.ImageURL `json:"profile_image"`
	NeedsToVerifyEmail          bool           `json:"needs_to_verify_email"`
	FormattedGrade              string         `json:"formatted_grade"`
	Streak                      types.Count    `json:"streak"`
}

type rawForumUser struct {
	ID              int64          `json:"id"`
	Username        string         `json:"username"`
	FirstName       string         `json:"first_name"`
	ProfileImage    types.ImageURL `json:"profile_image"`
	ProfileImageURL string         `json:"profile_image_url"`
	IsTutor         bool           `json:"is_tutor"`
	IsModerator     bool           `json:"is_moderator"`
	IsBlocked       bool           `json:"is_blocked"`
}

type rawForumSummary struct {
	ID            types.Identifier `json:"id"`
	Title         string           `json:"title"`
	Content       string           `json:"content"`
	CreatedAt     string           `json:"created_at"`
	AnswersCount  int              `json:"answers_count"`
	CorrectAnswer bool             `json:"correct_answer"`
	Statuses      []string         `json:"statuses"`
	Subject       types.Name       `json:"subject"`
	User          rawForumUser     `json:"user"`
}

type rawForumQuestion struct {
	ID            types.Identifier `json:"id"`
	Title         string           `json:"title"`
	Body          string           `json:"body"`
	Contents      any              `json:"contents"`
	Topic         types.Name       `json:"topic"`
	Subject       types.Name       `json:"subject"`
	CreatedAt     string           `json:"created_at"`
	AnswersCount  int              `json:"answers_count"`
	CorrectAnswer bool             `json:"correct_answer"`
	Statuses      []string         `json:"statuses"`
	IsLocked      bool             `json:"is_locked"`
	IsFlagged     bool             `json:"is_flagged"`
	IsHidden      bool             `json:"is_hidden"`
	CanEdit       bool             `json:"can_edit"`
	CanDelete     bool             `json:"can_delete"`
	User          rawForumUser     `json:"user"`
	Answers       []any            `json:"qna_answers"`
	TutorAnswers  []any            `json:"tutor_qna_answers"`
	Attachments   []any            `json:"qna_attachments"`
}

// Locale is one entry of a list's locales array.
type Locale struct {
	Code    string `json:"code"`
	Default bool   `json:"default"`
}

// WordPerformance is one entry of words_with_performance; only the word
// pair is kept.
type WordPerformance struct {
	Words []string `json:"words"`
}

type rawCreator struct {
	ProfileImageURL   string  `json:"profile_image_url"`
	PublicProfileName string  `json:"public_profile_name"`
	PublicProfileURL  *string `json:"public_profile_url"`
	PackageName       *string `json:"package_name"`
	Name              string  `json:"name"`
}

type rawList struct {
	Title                string            `json:"title"`
	Description          *string           `json:"description"`
	Creator              rawCreator        `json:"creator"`
	Subject              types.Name        `json:"subject"`
	Locales              []Locale          `json:"locales"`
	WordsWithPerformance []WordPerformance `json:"words_with_performance"`
	Book                 *types.Name       `json:"book"`
}
