package trivia

import "context"

// NextQuizQuestion picks one uniformly random question from the requested
// category (or all categories when the id is AllCategories), excluding every
// id in previous. The server keeps no state between calls; the client appends
// the returned id to its own previous list.
//
// A nil category and an exhausted candidate set both yield ErrNotFound, which
// the client treats as "quiz over".
func (s *Service) NextQuizQuestion(ctx context.Context, previous []int, category *QuizCategory) (Question, error) {
	if category == nil {
		return Question{}, ErrNotFound
	}

	var (
		pool []Question
		err  error
	)
	if category.ID != AllCategories {
		pool, err = s.questions.ListByCategory(ctx, category.ID)
	} else {
		pool, err = s.questions.List(ctx)
	}
	if err != nil {
		s.logger.Warn().Err(err).Int("category_id", category.ID).Msg("quiz pool fetch failed")
		return Question{}, ErrNotFound
	}

	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	candidates := make([]Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return Question{}, ErrNotFound
	}

	return candidates[s.pick(len(candidates))], nil
}
