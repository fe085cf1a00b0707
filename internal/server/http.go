package server

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
	"github.com/gokatarajesh/trivia-api/pkg/http/api"
)

// NewHTTPServer wires the trivia routes plus health and metrics endpoints.
// Every route goes through the CORS, request-id and logging middleware; wrong
// methods and unknown paths get the JSON error envelope, never a plain-text
// response.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, handlers *trivia.HTTPHandlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			logger.Error().Err(err).Msg("postgres ping failed")
			api.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		api.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/categories", handlers.Categories)
	mux.HandleFunc("/categories/{id}/questions", handlers.QuestionsByCategory)
	mux.HandleFunc("/questions", handlers.Questions)
	mux.HandleFunc("/questions/{id}", handlers.DeleteQuestion)
	mux.HandleFunc("/questions/search", handlers.SearchQuestions)
	mux.HandleFunc("/quizzes", handlers.NextQuizQuestion)

	// Unknown routes answer with the standard envelope.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		api.RespondNotFound(w)
	})

	var handler http.Handler = mux
	handler = RequestLogger(logger)(handler)
	handler = Metrics(handler)
	handler = RequestID(handler)
	handler = CORS(cfg.CORS)(handler)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}
