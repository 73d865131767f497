package repositories

import (
	"context"
	"database/sql"
	"time"

	"rentora/internal/models"
)

type CustomerRepository struct {
	DB *sql.DB
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	query := `INSERT INTO customers (user_id, address, city, created_at) VALUES (?, ?, ?, ?)`
	customer.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query, customer.UserID, customer.Address, customer.City, customer.CreatedAt)
	if err != nil {
		return models.Customer{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Customer{}, err
	}
	customer.ID = int(id)
	return customer, nil
}

func (r *CustomerRepository) GetCustomerByUserID(ctx context.Context, userID int) (models.Customer, error) {
	query := `SELECT id, user_id, address, city, created_at FROM customers WHERE user_id = ?`
	var customer models.Customer
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&customer.ID, &customer.UserID, &customer.Address, &customer.City, &customer.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Customer{}, models.ErrCustomerNotFound
	}
	if err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (r *CustomerRepository) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	query := `
		SELECT c.id, c.user_id, c.address, c.city, c.created_at,
		       u.id, u.email, u.phone, u.first_name, u.last_name, u.role
		FROM customers c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var customer models.Customer
		var user models.User
		err := rows.Scan(
			&customer.ID, &customer.UserID, &customer.Address, &customer.City, &customer.CreatedAt,
			&user.ID, &user.Email, &user.Phone, &user.FirstName, &user.LastName, &user.Role)
		if err != nil {
			return nil, err
		}
		customer.User = &user
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, userID int, address, city string) error {
	query := `
		UPDATE customers
		SET address = COALESCE(NULLIF(?, ''), address),
		    city    = COALESCE(NULLIF(?, ''), city)
		WHERE user_id = ?
	`
	result, err := r.DB.ExecContext(ctx, query, address, city, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// COALESCE updates can touch zero rows even when the profile exists,
		// so only report missing profiles after an explicit lookup.
		if _, err := r.GetCustomerByUserID(ctx, userID); err != nil {
			return err
		}
	}
	return nil
}
