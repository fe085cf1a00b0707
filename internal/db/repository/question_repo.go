package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// querier is the subset of pgxpool.Pool the repositories use, kept narrow so
// tests can swap in a stub.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// QuestionRepository persists questions in Postgres.
type QuestionRepository struct {
	db querier
}

var _ trivia.QuestionStore = (*QuestionRepository)(nil)

func NewQuestionRepository(db querier) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionColumns = "id, question, answer, COALESCE(category, 0), COALESCE(difficulty, 0)"

// List returns every question ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	return collectQuestions(rows)
}

// Search returns questions whose text contains term, case-insensitively,
// ordered by id.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id",
		term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return collectQuestions(rows)
}

// ListByCategory returns the questions with an exact category match, ordered
// by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE category = $1 ORDER BY id",
		categoryID)
	if err != nil {
		return nil, fmt.Errorf("query questions by category: %w", err)
	}
	return collectQuestions(rows)
}

// GetByID returns one question, or trivia.ErrNotFound.
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (trivia.Question, error) {
	var q trivia.Question
	err := r.db.QueryRow(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE id = $1", id).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if errors.Is(err, pgx.ErrNoRows) {
		return trivia.Question{}, trivia.ErrNotFound
	}
	if err != nil {
		return trivia.Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	return q, nil
}

// Insert persists a new question and returns its assigned id. Nil fields are
// stored as NULL; the table's constraints decide whether that is acceptable.
func (r *QuestionRepository) Insert(ctx context.Context, q trivia.NewQuestion) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		"INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING id",
		q.Question, q.Answer, q.Category, q.Difficulty).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// Delete removes one question. Deleting an id that no longer exists reports
// trivia.ErrNotFound, which mutation callers fold into their generic failure.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return trivia.ErrNotFound
	}
	return nil
}

func collectQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	defer rows.Close()
	var qs []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		qs = append(qs, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return qs, nil
}
