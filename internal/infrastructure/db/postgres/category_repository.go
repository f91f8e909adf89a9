package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewCategoryRepository(pool *pgxpool.Pool, log zerolog.Logger) *CategoryRepository {
	return &CategoryRepository{pool: pool, log: log}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT category_id, category_name, reason
		FROM categories
		ORDER BY category_id
	`)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to list categories")
		return nil, classify(err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.CategoryName, &c.Reason); err != nil {
			return nil, classify(err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID int) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var c domain.Category
	err := r.pool.QueryRow(ctx, `
		SELECT category_id, category_name, reason
		FROM categories
		WHERE category_id = $1
	`, categoryID).Scan(&c.CategoryID, &c.CategoryName, &c.Reason)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		r.log.Error().Err(err).Int("category_id", categoryID).Msg("failed to fetch category")
		return nil, classify(err)
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (category_name, reason)
		VALUES ($1, $2)
		RETURNING category_id
	`, category.CategoryName, category.Reason).Scan(&category.CategoryID)
	if err != nil {
		r.log.Error().Err(err).Str("name", category.CategoryName).Msg("failed to create category")
		return nil, classify(err)
	}
	return category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE categories
		SET category_name = $2, reason = $3
		WHERE category_id = $1
	`, category.CategoryID, category.CategoryName, category.Reason)
	if err != nil {
		r.log.Error().Err(err).Int("category_id", category.CategoryID).Msg("failed to update category")
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		r.log.Error().Err(err).Int("category_id", categoryID).Msg("failed to delete category")
		return classifyDelete(err, domain.ErrCategoryInUse)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
