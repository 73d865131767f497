package repositories

import (
	"context"
	"database/sql"
	"time"

	"rentora/internal/models"
)

type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	query := `
		INSERT INTO categories (name, slug, description, image_path, parent_id, is_active, display_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	category.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		category.Name, category.Slug, category.Description, category.ImagePath,
		category.ParentID, category.IsActive, category.DisplayOrder, category.CreatedAt)
	if err != nil {
		return models.Category{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Category{}, err
	}
	category.ID = int(id)
	return category, nil
}

func (r *CategoryRepository) GetActiveCategories(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, slug, description, image_path, parent_id, is_active, display_order, created_at, updated_at
		FROM categories
		WHERE is_active = TRUE AND parent_id IS NULL
		ORDER BY display_order, name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		countQuery := `SELECT COUNT(*) FROM products WHERE category_id = ? AND is_active = TRUE`
		_ = r.DB.QueryRowContext(ctx, countQuery, category.ID).Scan(&category.ProductCount)

		subs, err := r.getSubcategories(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		category.Subcategories = subs
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	query := `
		SELECT id, name, slug, description, image_path, parent_id, is_active, display_order, created_at, updated_at
		FROM categories
		WHERE slug = ?
	`
	row := r.DB.QueryRowContext(ctx, query, slug)
	category, err := scanCategory(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Category{}, models.ErrCategoryNotFound
		}
		return models.Category{}, err
	}

	countQuery := `SELECT COUNT(*) FROM products WHERE category_id = ? AND is_active = TRUE`
	_ = r.DB.QueryRowContext(ctx, countQuery, category.ID).Scan(&category.ProductCount)

	subs, err := r.getSubcategories(ctx, category.ID)
	if err != nil {
		return category, err
	}
	category.Subcategories = subs
	return category, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	query := `
		UPDATE categories
		SET name = ?, description = ?, image_path = COALESCE(NULLIF(?, ''), image_path),
		    is_active = ?, display_order = ?, updated_at = ?
		WHERE slug = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		category.Name, category.Description, category.ImagePath,
		category.IsActive, category.DisplayOrder, time.Now(), category.Slug)
	if err != nil {
		return models.Category{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.Category{}, err
	}
	if affected == 0 {
		if _, err := r.GetCategoryBySlug(ctx, category.Slug); err != nil {
			return models.Category{}, err
		}
	}
	return r.GetCategoryBySlug(ctx, category.Slug)
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, slug string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE slug = ?`, slug)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) getSubcategories(ctx context.Context, parentID int) ([]models.Category, error) {
	query := `
		SELECT id, name, slug, description, image_path, parent_id, is_active, display_order, created_at, updated_at
		FROM categories
		WHERE parent_id = ? AND is_active = TRUE
		ORDER BY display_order, name
	`
	rows, err := r.DB.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Category
	for rows.Next() {
		sub, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func scanCategory(scanner interface{ Scan(dest ...any) error }) (models.Category, error) {
	var category models.Category
	var parentID sql.NullInt64
	var updated sql.NullTime
	err := scanner.Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description, &category.ImagePath,
		&parentID, &category.IsActive, &category.DisplayOrder, &category.CreatedAt, &updated)
	if err != nil {
		return models.Category{}, err
	}
	if parentID.Valid {
		p := int(parentID.Int64)
		category.ParentID = &p
	}
	if updated.Valid {
		t := updated.Time
		category.UpdatedAt = &t
	}
	return category, nil
}
