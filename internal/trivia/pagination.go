package trivia

// paginate returns the 1-based page of size QuestionsPerPage from qs.
// Out-of-range pages yield an empty (non-nil) slice; callers decide whether
// an empty page is an error. Pages below 1 are clamped to 1.
func paginate(qs []Question, page int) []Question {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(qs) {
		return []Question{}
	}
	end := start + QuestionsPerPage
	if end > len(qs) {
		end = len(qs)
	}
	return qs[start:end]
}
