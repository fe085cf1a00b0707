package repository

import (
	"context"
	"fmt"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// CategoryRepository reads categories from Postgres. Categories are seed
// data; the API never writes them.
type CategoryRepository struct {
	db querier
}

var _ trivia.CategoryStore = (*CategoryRepository)(nil)

func NewCategoryRepository(db querier) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns every category ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.db.Query(ctx, "SELECT id, type FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var cats []trivia.Category
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return cats, nil
}
