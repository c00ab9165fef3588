package test_generators

import (
	"encoding/json"
	"math/rand"
	"time"
)

// ListLocale is one entry of a raw list's locales array.
type ListLocale struct {
	Code    string `json:"code"`
	Default bool   `json:"default"`
}

// WordPerformance mirrors an entry of words_with_performance.
type WordPerformance struct {
	Words        []string `json:"words"`
	Score        float64  `json:"score"`
	TimesCorrect int      `json:"times_correct"`
}

// ListGenerator generates raw vocabulary list payloads for testing
type ListGenerator struct {
	rand  *rand.Rand
	pairs [][2]string
}

// NewListGenerator creates a new list generator. A zero seed uses the clock.
func NewListGenerator(seed int64) *ListGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &ListGenerator{
		rand: rand.New(rand.NewSource(seed)),
		pairs: [][2]string{
			{"en Angleterre", "in/naar Engeland"},
			{"en Espagne", "in/naar Spanje"},
			{"le chat", "de kat"},
			{"le chien", "de hond"},
			{"la maison", "het huis"},
			{"l'école", "de school"},
		},
	}
}

// GenerateWords creates n word entries with random performance metadata.
func (lg *ListGenerator) GenerateWords(n int) []WordPerformance {
	words := make([]WordPerformance, n)
	for i := range words {
		pair := lg.pairs[lg.rand.Intn(len(lg.pairs))]
		words[i] = WordPerformance{
			Words:        []string{pair[0], pair[1]},
			Score:        lg.rand.Float64(),
			TimesCorrect: lg.rand.Intn(10),
		}
	}
	return words
}

// GenerateList creates a raw list object with the given title, locales and n words.
func (lg *ListGenerator) GenerateList(title string, locales []ListLocale, n int) map[string]any {
	return map[string]any{
		"title":       title,
		"description": nil,
		"creator": map[string]any{
			"profile_image_url":   "https://wrts-production.s3.eu-west-2.amazonaws.com/user/polarlearn.png",
			"public_profile_name": "polarlearn",
			"public_profile_url":  "/polarlearn",
			"package_name":        nil,
			"name":                "andrei1010",
		},
		"subject":                map[string]any{"name": "Frans", "id": 4},
		"locales":                locales,
		"words_with_performance": lg.GenerateWords(n),
		"book":                   nil,
	}
}

// ResultsBody wraps lists in a {"results": [...]} payload.
func ResultsBody(lists ...map[string]any) string {
	if lists == nil {
		lists = []map[string]any{}
	}
	body, err := json.Marshal(map[string]any{"results": lists})
	if err != nil {
		panic(err)
	}
	return string(body)
}
