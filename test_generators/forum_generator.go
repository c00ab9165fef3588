package test_generators

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// ForumQuestion is a raw Q&A listing entry as the StudyGo API sends it.
type ForumQuestion struct {
	ID            string         `json:"id"`
	Title         string         `json:"title,omitempty"`
	Content       string         `json:"content,omitempty"`
	CreatedAt     string         `json:"created_at"`
	AnswersCount  int            `json:"answers_count"`
	CorrectAnswer bool           `json:"correct_answer"`
	Statuses      []string       `json:"statuses,omitempty"`
	Subject       ForumSubject   `json:"subject"`
	User          map[string]any `json:"user"`
}

// ForumSubject is the nested subject object of a listing entry.
type ForumSubject struct {
	Name string `json:"name"`
}

// ForumGenerator generates realistic forum listings for testing
type ForumGenerator struct {
	rand     *rand.Rand
	titles   []string
	subjects []string
	users    []string
	statuses []string
	base     time.Time
	nextID   int
}

// NewForumGenerator creates a new forum generator. A zero seed uses the clock.
func NewForumGenerator(seed int64) *ForumGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &ForumGenerator{
		rand: rand.New(rand.NewSource(seed)),
		titles: []string{
			"Vraag Van De Week:",
			"Hoe werkt de stelling van Pythagoras?",
			"Wat is het verschil tussen passé composé en imparfait?",
			"Kan iemand mij helpen met mijn boekverslag?",
			"Welke tijd gebruik je bij if-zinnen?",
		},
		subjects: []string{"Anders", "Wiskunde", "Frans", "Engels", "Nederlands", "Duits"},
		users:    []string{"anna-devries", "polarlearn", "tutor-jan", "lisa2009", "mo_b"},
		statuses: []string{"answered", "pinned", "open"},
		base:     time.Date(2025, 5, 14, 14, 55, 56, 0, time.UTC),
		nextID:   600000,
	}
}

// GenerateQuestion creates one listing entry.
func (fg *ForumGenerator) GenerateQuestion() ForumQuestion {
	username := fg.users[fg.rand.Intn(len(fg.users))]
	created := fg.base.Add(-time.Duration(fg.rand.Intn(86400)) * time.Second)

	q := ForumQuestion{
		ID:            strconv.Itoa(fg.nextID),
		Content:       fmt.Sprintf("Vraag %d over dit onderwerp.", fg.rand.Intn(1000)),
		CreatedAt:     created.Format("2006-01-02T15:04:05.000Z"),
		AnswersCount:  fg.rand.Intn(80),
		CorrectAnswer: fg.rand.Intn(2) == 1,
		Subject:       ForumSubject{Name: fg.subjects[fg.rand.Intn(len(fg.subjects))]},
		User: map[string]any{
			"id":                100000000 + fg.rand.Intn(1000000),
			"username":          username,
			"first_name":        username,
			"profile_image_url": "https://wrts-production.s3.eu-west-2.amazonaws.com/user/" + username + ".png",
		},
	}

	// listings are newest first
	fg.nextID -= 1 + fg.rand.Intn(50)

	// title and statuses are optional upstream
	if fg.rand.Intn(3) > 0 {
		q.Title = fg.titles[fg.rand.Intn(len(fg.titles))]
	}
	if fg.rand.Intn(2) == 1 {
		q.Statuses = []string{fg.statuses[fg.rand.Intn(len(fg.statuses))]}
	}

	return q
}

// GenerateQuestions creates n listing entries.
func (fg *ForumGenerator) GenerateQuestions(n int) []ForumQuestion {
	questions := make([]ForumQuestion, n)
	for i := range questions {
		questions[i] = fg.GenerateQuestion()
	}
	return questions
}

// ListingBody wraps questions in a {"results": [...]} listing payload.
func ListingBody(questions []ForumQuestion) string {
	body, err := json.Marshal(map[string]any{"results": questions})
	if err != nil {
		panic(err)
	}
	return string(body)
}
