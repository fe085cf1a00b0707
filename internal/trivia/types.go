package trivia

import "errors"

// QuestionsPerPage is the fixed window size for every paginated question listing.
const QuestionsPerPage = 10

// AllCategories is the reserved quiz_category id meaning "no category filter".
// The categories table starts ids at 1, so 0 is never a real category.
const AllCategories = 0

var (
	// ErrNotFound covers missing entities, empty pages, and exhausted quiz
	// candidate sets. The empty-page conflation is a compatibility guarantee
	// of the public API, not an accident.
	ErrNotFound = errors.New("resource not found")

	// ErrNoCategories is returned when the categories table is empty. The API
	// historically reports this as 405, so it gets its own sentinel.
	ErrNoCategories = errors.New("no categories available")

	// ErrUnprocessable wraps store failures during mutations; callers never
	// see the underlying cause.
	ErrUnprocessable = errors.New("unprocessable")
)

// Question is a single trivia item as stored and as serialized to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category labels a group of questions.
type Category struct {
	ID   int
	Type string
}

// NewQuestion carries the create payload. Pointer fields keep "absent"
// distinguishable from zero values; this layer passes them through and lets
// the store's constraints decide what is acceptable.
type NewQuestion struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// QuizCategory is the category filter of a quiz request. An ID of
// AllCategories disables filtering.
type QuizCategory struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// QuestionPage is the result of the generic paginated listing.
type QuestionPage struct {
	Questions  []Question
	Categories map[int]string
	Total      int
}

// SearchResult holds one page of substring matches plus the unpaginated
// match count.
type SearchResult struct {
	Questions []Question
	Total     int
}

// CategoryList maps category ids to their labels.
type CategoryList struct {
	Categories map[int]string
	Total      int
}

// MutationResult is returned by create and delete: the affected id, the first
// page of the refreshed listing, and the new total.
type MutationResult struct {
	ID        int
	Questions []Question
	Total     int
}
