package trivia

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// QuestionStore is the persistence contract the service needs for questions.
// Implementations return questions ordered by ascending id and report a
// missing row as ErrNotFound.
type QuestionStore interface {
	List(ctx context.Context) ([]Question, error)
	Search(ctx context.Context, term string) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	GetByID(ctx context.Context, id int) (Question, error)
	Insert(ctx context.Context, q NewQuestion) (int, error)
	Delete(ctx context.Context, id int) error
}

// CategoryStore lists categories ordered by ascending id.
type CategoryStore interface {
	List(ctx context.Context) ([]Category, error)
}

// Service implements the trivia API operations over the two stores.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	pick       func(n int) int
	logger     zerolog.Logger
}

// ServiceOptions tunes service construction.
type ServiceOptions struct {
	// Pick selects an index in [0, n) for quiz selection. Defaults to the
	// shared seeded source in math/rand/v2, which is safe for concurrent
	// handlers. Tests inject a deterministic function.
	Pick func(n int) int
}

func NewService(questions QuestionStore, categories CategoryStore, opts ServiceOptions, logger zerolog.Logger) *Service {
	pick := opts.Pick
	if pick == nil {
		pick = rand.IntN
	}
	return &Service{
		questions:  questions,
		categories: categories,
		pick:       pick,
		logger:     logger.With().Str("component", "trivia_service").Logger(),
	}
}

// Categories returns every category as an id -> label map plus the count.
// An empty table is reported as ErrNoCategories for API compatibility.
func (s *Service) Categories(ctx context.Context) (CategoryList, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return CategoryList{}, fmt.Errorf("list categories: %w", err)
	}
	if len(cats) == 0 {
		return CategoryList{}, ErrNoCategories
	}
	return CategoryList{Categories: categoryMap(cats), Total: len(cats)}, nil
}

// Questions returns one page of the full question list, the category map,
// and the unpaginated total. An empty page is ErrNotFound.
func (s *Service) Questions(ctx context.Context, page int) (QuestionPage, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}
	current := paginate(all, page)
	if len(current) == 0 {
		return QuestionPage{}, ErrNotFound
	}
	cats, err := s.categories.List(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list categories: %w", err)
	}
	return QuestionPage{
		Questions:  current,
		Categories: categoryMap(cats),
		Total:      len(all),
	}, nil
}

// SearchQuestions pages through the case-insensitive substring matches on the
// question text. No matches is still a successful, empty result.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (SearchResult, error) {
	matches, err := s.questions.Search(ctx, term)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search questions: %w", err)
	}
	return SearchResult{
		Questions: paginate(matches, page),
		Total:     len(matches),
	}, nil
}

// QuestionsByCategory pages through the questions with an exact category
// match. Like search, an empty result is not an error.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID, page int) (SearchResult, error) {
	matches, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return SearchResult{}, fmt.Errorf("list questions by category: %w", err)
	}
	return SearchResult{
		Questions: paginate(matches, page),
		Total:     len(matches),
	}, nil
}

// CreateQuestion persists q and returns the assigned id, the refreshed first
// page, and the new total. Any store failure is collapsed to ErrUnprocessable.
func (s *Service) CreateQuestion(ctx context.Context, q NewQuestion) (MutationResult, error) {
	id, err := s.questions.Insert(ctx, q)
	if err != nil {
		s.logger.Warn().Err(err).Msg("question insert failed")
		return MutationResult{}, ErrUnprocessable
	}
	res, err := s.refreshedListing(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("listing refresh after create failed")
		return MutationResult{}, ErrUnprocessable
	}
	res.ID = id
	return res, nil
}

// DeleteQuestion removes the question with the given id. A missing id is
// ErrNotFound; failures after the lookup succeed are ErrUnprocessable, so a
// concurrent delete loser sees the generic failure.
func (s *Service) DeleteQuestion(ctx context.Context, id int) (MutationResult, error) {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		if err == ErrNotFound {
			return MutationResult{}, ErrNotFound
		}
		s.logger.Warn().Err(err).Int("question_id", id).Msg("question lookup failed")
		return MutationResult{}, ErrUnprocessable
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int("question_id", id).Msg("question delete failed")
		return MutationResult{}, ErrUnprocessable
	}
	res, err := s.refreshedListing(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("listing refresh after delete failed")
		return MutationResult{}, ErrUnprocessable
	}
	res.ID = id
	return res, nil
}

func (s *Service) refreshedListing(ctx context.Context) (MutationResult, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return MutationResult{}, err
	}
	return MutationResult{
		Questions: paginate(all, 1),
		Total:     len(all),
	}, nil
}

func categoryMap(cats []Category) map[int]string {
	m := make(map[int]string, len(cats))
	for _, c := range cats {
		m[c.ID] = c.Type
	}
	return m
}
