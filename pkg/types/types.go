// Package types holds the normalized records returned by the StudyGo client
// and the tolerant field types used while decoding upstream payloads.
package types

import (
	"time"

	"golang.org/x/text/language"
)

// TokenData is the session token triple returned by the credential exchange.
// Renewal policy is left to the caller.
type TokenData struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // epoch seconds
	RenewFrom int64  `json:"renew_from"` // epoch seconds
}

// ExpiresTime returns ExpiresAt as a time.Time.
func (t *TokenData) ExpiresTime() time.Time {
	return time.Unix(t.ExpiresAt, 0)
}

// RenewTime returns RenewFrom as a time.Time.
func (t *TokenData) RenewTime() time.Time {
	return time.Unix(t.RenewFrom, 0)
}

// UserProfile is the flattened profile of the authenticated user. Locale,
// Country, Theme, ProfileImage and Streak are always scalars regardless of
// the shape the API used.
type UserProfile struct {
	ID                          int64   `json:"id"`
	Username                    string  `json:"username"`
	FullName                    string  `json:"full_name"`
	FirstName                   string  `json:"first_name"`
	LastName                    string  `json:"last_name"`
	PublicProfileName           string  `json:"public_profile_name"`
	Email                       string  `json:"email"`
	RoleName                    string  `json:"role_name"`
	PromoBanner                 *string `json:"promo_banner"`
	NeedsToFillEducationDetails bool    `json:"needs_to_fill_education_details"`
	CanUseChat                  bool    `json:"can_use_chat"`
	CanAccessQnA                bool    `json:"can_access_qna"`
	NewNotificationsCount       int     `json:"new_notifications_count"`
	Locale                      string  `json:"locale"`
	Country                     string  `json:"country"`
	Theme                       string  `json:"theme"`
	IsPayingCustomer            bool    `json:"is_paying_customer"`
	ProfileImage                string  `json:"profile_image"`
	NeedsToVerifyEmail          bool    `json:"needs_to_verify_email"`
	FormattedGrade              string  `json:"formatted_grade"`
	Streak                      int     `json:"streak"`
}

// ForumUser is the author block of a forum listing entry.
type ForumUser struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	ProfileImageURL string `json:"profile_image_url"`
}

// ForumPostSummary is one entry of the public Q&A listing.
type ForumPostSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title,omitempty"`
	Content       string    `json:"content,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	AnswersCount  int       `json:"answers_count"`
	CorrectAnswer bool      `json:"correct_answer"`
	Statuses      []string  `json:"statuses,omitempty"`
	Subject       string    `json:"subject"`
	User          ForumUser `json:"user"`
}

// ForumPageRequest selects a page of the Q&A listing. A zero Offset requests
// the first page.
type ForumPageRequest struct {
	Offset int
}

// ForumPostAuthor is the author block of a single forum question.
type ForumPostAuthor struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	// ProfileImage is taken from profile_image.image_url.
	ProfileImage string `json:"profile_image"`
	// ProfileImageURL is passed through as sent.
	ProfileImageURL string `json:"profile_image_url"`
	IsTutor         bool   `json:"is_tutor"`
	IsModerator     bool   `json:"is_moderator"`
	IsBlocked       bool   `json:"is_blocked"`
}

// ForumPostDetail is the full view of one forum question. Answers, tutor
// answers and attachments are passed through untyped.
type ForumPostDetail struct {
	ID            string          `json:"id"`
	Title         string          `json:"title,omitempty"`
	Body          string          `json:"body,omitempty"`
	Contents      any             `json:"contents,omitempty"`
	Topic         string          `json:"topic,omitempty"`
	Subject       string          `json:"subject"`
	CreatedAt     time.Time       `json:"created_at"`
	AnswersCount  int             `json:"answers_count"`
	CorrectAnswer bool            `json:"correct_answer"`
	Statuses      []string        `json:"statuses,omitempty"`
	IsLocked      bool            `json:"is_locked"`
	IsFlagged     bool            `json:"is_flagged"`
	IsHidden      bool            `json:"is_hidden"`
	CanEdit       bool            `json:"can_edit"`
	CanDelete     bool            `json:"can_delete"`
	User          ForumPostAuthor `json:"user"`
	Answers       []any           `json:"qna_answers"`
	TutorAnswers  []any           `json:"tutor_qna_answers"`
	Attachments   []any           `json:"qna_attachments"`
}

// ListCreator describes who published a vocabulary list.
type ListCreator struct {
	ProfileImageURL   string  `json:"profile_image_url"`
	PublicProfileName string  `json:"public_profile_name"`
	PublicProfileURL  *string `json:"public_profile_url"`
	PackageName       *string `json:"package_name"`
	Name              string  `json:"name"`
}

// WordPair is one entry of a vocabulary list: the word in the source
// language and its translation. It serializes as {"0": ..., "1": ...}; the
// "1" key is left out when the entry has no translation.
type WordPair struct {
	Source string `json:"0"`
	Target string `json:"1,omitempty"`
}

// VocabularyList is a public word list.
//
// FromLanguage is the code of the first non-default locale (or the first
// locale). ToLanguage is the code of the first default locale (or the second
// locale) and is empty when neither exists.
type VocabularyList struct {
	Name         string      `json:"name"`
	Description  *string     `json:"description"`
	Creator      ListCreator `json:"creator"`
	Subject      string      `json:"subject"`
	FromLanguage string      `json:"from_language,omitempty"`
	ToLanguage   string      `json:"to_language,omitempty"`
	Words        []WordPair  `json:"words"`
	Book         *string     `json:"book"`
}

// FromTag parses FromLanguage as a BCP 47 tag.
func (l *VocabularyList) FromTag() (language.Tag, error) {
	return language.Parse(l.FromLanguage)
}

// ToTag parses ToLanguage as a BCP 47 tag.
func (l *VocabularyList) ToTag() (language.Tag, error) {
	return language.Parse(l.ToLanguage)
}
