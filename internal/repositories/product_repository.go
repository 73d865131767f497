package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"rentora/internal/models"
)

type ProductRepository struct {
	DB *sql.DB
}

const productColumns = `
	p.id, p.name, p.slug, p.description, p.category_id, c.name, p.vendor_id,
	CONCAT(u.first_name, ' ', u.last_name),
	p.daily_price, p.weekly_price, p.monthly_price, p.security_deposit,
	p.quantity, p.available_quantity, p.main_image, p.city, p.state,
	p.is_active, p.is_featured, p.is_available, p.view_count, p.rental_count,
	p.created_at, p.updated_at`

func (r *ProductRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	query := `
		INSERT INTO products (name, slug, description, category_id, vendor_id,
			daily_price, weekly_price, monthly_price, security_deposit,
			quantity, available_quantity, main_image, city, state,
			is_active, is_featured, is_available, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	product.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		product.Name, product.Slug, product.Description, product.CategoryID, product.VendorID,
		product.DailyPrice, product.WeeklyPrice, product.MonthlyPrice, product.SecurityDeposit,
		product.Quantity, product.AvailableQuantity, product.MainImage, product.City, product.State,
		product.IsActive, product.IsFeatured, product.IsAvailable, product.CreatedAt)
	if err != nil {
		return models.Product{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Product{}, err
	}
	product.ID = int(id)
	return product, nil
}

func (r *ProductRepository) GetProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	var conditions []string
	var args []any

	conditions = append(conditions, "p.is_active = TRUE")
	if filter.CategoryID != 0 {
		conditions = append(conditions, "p.category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.City != "" {
		conditions = append(conditions, "p.city = ?")
		args = append(args, filter.City)
	}
	if filter.Featured != nil {
		conditions = append(conditions, "p.is_featured = ?")
		args = append(args, *filter.Featured)
	}
	if filter.Search != "" {
		conditions = append(conditions, "(p.name LIKE ? OR p.description LIKE ? OR p.city LIKE ?)")
		like := "%" + filter.Search + "%"
		args = append(args, like, like, like)
	}

	orderBy := "p.created_at DESC"
	switch filter.OrderBy {
	case "daily_price":
		orderBy = "p.daily_price"
	case "-daily_price":
		orderBy = "p.daily_price DESC"
	case "view_count":
		orderBy = "p.view_count"
	case "-view_count":
		orderBy = "p.view_count DESC"
	case "created_at":
		orderBy = "p.created_at"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN users u ON u.id = p.vendor_id
		WHERE %s
		ORDER BY %s
	`, productColumns, strings.Join(conditions, " AND "), orderBy)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetProductBySlug(ctx context.Context, slug string) (models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN users u ON u.id = p.vendor_id
		WHERE p.slug = ?
	`, productColumns)
	row := r.DB.QueryRowContext(ctx, query, slug)
	product, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return models.Product{}, models.ErrProductNotFound
	}
	return product, err
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN users u ON u.id = p.vendor_id
		WHERE p.id = ?
	`, productColumns)
	row := r.DB.QueryRowContext(ctx, query, id)
	product, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return models.Product{}, models.ErrProductNotFound
	}
	return product, err
}

func (r *ProductRepository) GetProductsByCategorySlug(ctx context.Context, categorySlug string) ([]models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN users u ON u.id = p.vendor_id
		WHERE c.slug = ? AND p.is_active = TRUE
		ORDER BY p.created_at DESC
	`, productColumns)
	rows, err := r.DB.QueryContext(ctx, query, categorySlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	query := `
		UPDATE products
		SET name = ?, description = ?, category_id = ?,
		    daily_price = ?, weekly_price = ?, monthly_price = ?, security_deposit = ?,
		    quantity = ?, available_quantity = ?,
		    main_image = COALESCE(NULLIF(?, ''), main_image),
		    city = ?, state = ?, is_active = ?, is_featured = ?, is_available = ?,
		    updated_at = ?
		WHERE slug = ?
	`
	_, err := r.DB.ExecContext(ctx, query,
		product.Name, product.Description, product.CategoryID,
		product.DailyPrice, product.WeeklyPrice, product.MonthlyPrice, product.SecurityDeposit,
		product.Quantity, product.AvailableQuantity, product.MainImage,
		product.City, product.State, product.IsActive, product.IsFeatured, product.IsAvailable,
		time.Now(), product.Slug)
	if err != nil {
		return models.Product{}, err
	}
	return r.GetProductBySlug(ctx, product.Slug)
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, slug string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE slug = ?`, slug)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

// AddViewCounts folds drained counter values into the stored view counts.
// Used by the background flusher, not by request handlers.
func (r *ProductRepository) AddViewCounts(ctx context.Context, counts map[int]int) error {
	if len(counts) == 0 {
		return nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	query := `UPDATE products SET view_count = view_count + ? WHERE id = ?`
	for id, n := range counts {
		if _, err := tx.ExecContext(ctx, query, n, id); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func scanProduct(scanner interface{ Scan(dest ...any) error }) (models.Product, error) {
	var product models.Product
	var updated sql.NullTime
	err := scanner.Scan(
		&product.ID, &product.Name, &product.Slug, &product.Description,
		&product.CategoryID, &product.CategoryName, &product.VendorID, &product.VendorName,
		&product.DailyPrice, &product.WeeklyPrice, &product.MonthlyPrice, &product.SecurityDeposit,
		&product.Quantity, &product.AvailableQuantity, &product.MainImage, &product.City, &product.State,
		&product.IsActive, &product.IsFeatured, &product.IsAvailable, &product.ViewCount, &product.RentalCount,
		&product.CreatedAt, &updated)
	if err != nil {
		return models.Product{}, err
	}
	if updated.Valid {
		t := updated.Time
		product.UpdatedAt = &t
	}
	return product, nil
}
