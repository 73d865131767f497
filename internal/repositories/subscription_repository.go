package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"rentora/internal/models"
)

type SubscriptionRepository struct {
	DB *sql.DB
}

func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, sub models.Subscription) (models.Subscription, error) {
	query := `
		INSERT INTO subscriptions (customer_id, product_id, duration_type, start_date, end_date,
			total_amount, security_deposit, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	sub.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		sub.CustomerID, sub.ProductID, sub.DurationType, sub.StartDate, sub.EndDate,
		sub.TotalAmount, sub.SecurityDeposit, sub.Status, sub.CreatedAt)
	if err != nil {
		return models.Subscription{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Subscription{}, err
	}
	sub.ID = int(id)
	return sub, nil
}

func (r *SubscriptionRepository) GetSubscriptionByID(ctx context.Context, id int) (models.Subscription, error) {
	query := `
		SELECT s.id, s.customer_id, s.product_id, p.name, s.duration_type, s.start_date, s.end_date,
		       s.total_amount, s.security_deposit, s.status, s.created_at, s.updated_at
		FROM subscriptions s
		JOIN products p ON p.id = s.product_id
		WHERE s.id = ?
	`
	row := r.DB.QueryRowContext(ctx, query, id)
	sub, err := scanSubscription(row)
	if err == sql.ErrNoRows {
		return models.Subscription{}, models.ErrSubscriptionNotFound
	}
	return sub, err
}

func (r *SubscriptionRepository) GetSubscriptionsByCustomerID(ctx context.Context, customerID int) ([]models.Subscription, error) {
	query := `
		SELECT s.id, s.customer_id, s.product_id, p.name, s.duration_type, s.start_date, s.end_date,
		       s.total_amount, s.security_deposit, s.status, s.created_at, s.updated_at
		FROM subscriptions s
		JOIN products p ON p.id = s.product_id
		WHERE s.customer_id = ?
		ORDER BY s.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (r *SubscriptionRepository) UpdateSubscriptionStatus(ctx context.Context, id int, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE subscriptions SET status = ?, updated_at = ? WHERE id = ?`, status, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrSubscriptionNotFound
	}
	return nil
}

// ExpireEndedSubscriptions marks active subscriptions whose rental period has
// ended. Returns the number of rows touched.
func (r *SubscriptionRepository) ExpireEndedSubscriptions(ctx context.Context, now time.Time) (int, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE subscriptions SET status = ?, updated_at = ? WHERE status = ? AND end_date < ?`,
		models.SubscriptionStatusExpired, now, models.SubscriptionStatusActive, now)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	return int(affected), err
}

func scanSubscription(scanner interface{ Scan(dest ...any) error }) (models.Subscription, error) {
	var sub models.Subscription
	var deposit decimal.NullDecimal
	var updated sql.NullTime
	err := scanner.Scan(
		&sub.ID, &sub.CustomerID, &sub.ProductID, &sub.ProductName, &sub.DurationType,
		&sub.StartDate, &sub.EndDate, &sub.TotalAmount, &deposit, &sub.Status,
		&sub.CreatedAt, &updated)
	if err != nil {
		return models.Subscription{}, err
	}
	if deposit.Valid {
		d := deposit.Decimal
		sub.SecurityDeposit = &d
	}
	if updated.Valid {
		t := updated.Time
		sub.UpdatedAt = &t
	}
	return sub, nil
}
