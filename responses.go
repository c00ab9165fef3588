package studygo

import "github.com/polarlearn/go-studygo/pkg/types"

// Normalizer maps raw StudyGo response bodies to typed records.
// The internal normalizer implements it; Client uses it for every operation.
type Normalizer interface {
	Token(body []byte) (*types.TokenData, error)
	UserProfile(body []byte) (*types.UserProfile, error)
	ForumPage(body []byte) ([]*types.ForumPostSummary, error)
	ForumPost(body []byte) (*types.ForumPostDetail, error)
	VocabularyList(body []byte) (*types.VocabularyList, error)
}
