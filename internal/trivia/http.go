package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/pkg/http/api"
)

// HTTPHandlers exposes the trivia operations over REST.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

type categoriesResponse struct {
	Success         bool           `json:"success"`
	Categories      map[int]string `json:"categories"`
	TotalCategories int            `json:"total_categories"`
}

type questionsResponse struct {
	Success        bool           `json:"success"`
	Questions      []Question     `json:"questions"`
	Categories     map[int]string `json:"categories"`
	TotalQuestions int            `json:"total_questions"`
}

type searchResponse struct {
	Success        bool       `json:"success"`
	Questions      []Question `json:"questions"`
	Message        string     `json:"message"`
	TotalQuestions int        `json:"total_questions"`
}

// categoryQuestionsResponse intentionally uses the legacy singular
// "category_question" key; it differs from the generic listing shape.
type categoryQuestionsResponse struct {
	Success          bool       `json:"success"`
	CategoryQuestion []Question `json:"category_question"`
	TotalQuestions   int        `json:"total_questions"`
}

type mutationResponse struct {
	Success        bool       `json:"success"`
	Created        int        `json:"created,omitempty"`
	Deleted        int        `json:"deleted,omitempty"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type quizResponse struct {
	Success  bool     `json:"success"`
	Question Question `json:"question"`
}

type searchRequest struct {
	SearchTerm string `json:"search_term"`
}

type quizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// Categories handles GET /categories.
func (h *HTTPHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.RespondMethodNotAllowed(w)
		return
	}
	list, err := h.svc.Categories(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, categoriesResponse{
		Success:         true,
		Categories:      list.Categories,
		TotalCategories: list.Total,
	})
}

// Questions handles GET /questions (paginated listing) and POST /questions
// (create).
func (h *HTTPHandlers) Questions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.createQuestion(w, r)
	default:
		api.RespondMethodNotAllowed(w)
	}
}

func (h *HTTPHandlers) listQuestions(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParam(r)
	if !ok {
		api.RespondBadRequest(w)
		return
	}
	res, err := h.svc.Questions(r.Context(), page)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, questionsResponse{
		Success:        true,
		Questions:      res.Questions,
		Categories:     res.Categories,
		TotalQuestions: res.Total,
	})
}

func (h *HTTPHandlers) createQuestion(w http.ResponseWriter, r *http.Request) {
	var req NewQuestion
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.RespondBadRequest(w)
		return
	}
	res, err := h.svc.CreateQuestion(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, mutationResponse{
		Success:        true,
		Created:        res.ID,
		Questions:      res.Questions,
		TotalQuestions: res.Total,
	})
}

// DeleteQuestion handles DELETE /questions/{id}. A non-numeric id behaves
// like an unknown route.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		api.RespondMethodNotAllowed(w)
		return
	}
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		api.RespondNotFound(w)
		return
	}
	res, err := h.svc.DeleteQuestion(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, mutationResponse{
		Success:        true,
		Deleted:        res.ID,
		Questions:      res.Questions,
		TotalQuestions: res.Total,
	})
}

// SearchQuestions handles POST /questions/search.
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.RespondMethodNotAllowed(w)
		return
	}
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.RespondBadRequest(w)
		return
	}
	// An absent term previously produced no body at all; it is now an
	// explicit bad request.
	if req.SearchTerm == "" {
		api.RespondBadRequest(w)
		return
	}
	page, ok := pageParam(r)
	if !ok {
		api.RespondBadRequest(w)
		return
	}
	res, err := h.svc.SearchQuestions(r.Context(), req.SearchTerm, page)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, searchResponse{
		Success:        true,
		Questions:      res.Questions,
		Message:        "search completed",
		TotalQuestions: res.Total,
	})
}

// QuestionsByCategory handles GET /categories/{id}/questions.
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.RespondMethodNotAllowed(w)
		return
	}
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		api.RespondNotFound(w)
		return
	}
	page, ok := pageParam(r)
	if !ok {
		api.RespondBadRequest(w)
		return
	}
	res, err := h.svc.QuestionsByCategory(r.Context(), categoryID, page)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, categoryQuestionsResponse{
		Success:          true,
		CategoryQuestion: res.Questions,
		TotalQuestions:   res.Total,
	})
}

// NextQuizQuestion handles POST /quizzes.
func (h *HTTPHandlers) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.RespondMethodNotAllowed(w)
		return
	}
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.RespondBadRequest(w)
		return
	}
	question, err := h.svc.NextQuizQuestion(r.Context(), req.PreviousQuestions, req.QuizCategory)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, quizResponse{Success: true, Question: question})
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoCategories):
		api.RespondMethodNotAllowed(w)
	case errors.Is(err, ErrNotFound):
		api.RespondNotFound(w)
	case errors.Is(err, ErrUnprocessable):
		api.RespondUnprocessable(w)
	default:
		h.logger.Error().Err(err).Msg("unhandled service error")
		api.RespondInternalError(w)
	}
}

// pageParam parses the optional 1-based ?page= query parameter.
func pageParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}
