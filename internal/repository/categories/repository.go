package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keepnote/core/internal/model"
	_ "github.com/lib/pq"

	"github.com/Masterminds/squirrel"
)

type DefaultRepository struct {
	db *sql.DB
}

func NewDefaultRepository(pg *sql.DB) *DefaultRepository {
	return &DefaultRepository{pg}
}

func (d *DefaultRepository) Create(ctx context.Context, category model.Category) (model.CategoryID, error) {
	query := `
		INSERT INTO categories (name, description, created_by, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`

	var categoryID model.CategoryID
	err := d.db.QueryRowContext(ctx, query, category.Name, category.Description, category.CreatedBy).
		Scan(&categoryID)
	if err != nil {
		return 0, fmt.Errorf("failed to create category: %w", err)
	}

	return categoryID, nil
}

func (d *DefaultRepository) GetByID(ctx context.Context, categoryID model.CategoryID) (*model.Category, error) {
	category := &model.Category{}
	query := `SELECT id, name, description, created_by, created_at FROM categories WHERE id = $1`
	err := d.db.QueryRowContext(ctx, query, categoryID).
		Scan(&category.ID, &category.Name, &category.Description, &category.CreatedBy, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category '%d': %w", categoryID, err)
	}
	return category, nil
}

func (d *DefaultRepository) Update(ctx context.Context, category model.Category) error {
	if _, err := d.GetByID(ctx, category.ID); err != nil {
		return err
	}

	query := `UPDATE categories SET name = $2, description = $3 WHERE id = $1`
	if _, err := d.db.ExecContext(ctx, query, category.ID, category.Name, category.Description); err != nil {
		return fmt.Errorf("failed to update category '%d': %w", category.ID, err)
	}

	return nil
}

func (d *DefaultRepository) Delete(ctx context.Context, categoryID model.CategoryID) (bool, error) {
	if _, err := d.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			return false, nil
		}
		return false, err
	}

	if _, err := d.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, categoryID); err != nil {
		return false, fmt.Errorf("failed to delete category '%d': %w", categoryID, err)
	}

	return true, nil
}

func (d *DefaultRepository) ListByUser(ctx context.Context, userID model.UserID) ([]model.Category, error) {
	queryBuilder := squirrel.
		Select("id",
			"name",
			"description",
			"created_by",
			"created_at").
		From("categories").
		Where(squirrel.Eq{"created_by": userID}).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var category model.Category
		if err = rows.Scan(&category.ID, &category.Name, &category.Description,
			&category.CreatedBy, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, nil
}
