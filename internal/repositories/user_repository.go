package repositories

import (
	"context"
	"database/sql"
	"time"

	"rentora/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
		INSERT INTO users (email, phone, first_name, last_name, password_hash, role, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	user.CreatedAt = time.Now()
	user.IsActive = true
	result, err := r.DB.ExecContext(ctx, query,
		user.Email, user.Phone, user.FirstName, user.LastName, user.Password, user.Role, user.IsActive, user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	user.Password = ""
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `
		SELECT id, email, phone, first_name, last_name, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE email = ?
	`
	row := r.DB.QueryRowContext(ctx, query, email)
	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, nil
	}
	return user, err
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `
		SELECT id, email, phone, first_name, last_name, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE id = ?
	`
	row := r.DB.QueryRowContext(ctx, query, id)
	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	return user, err
}

func (r *UserRepository) UpdateUserNames(ctx context.Context, userID int, firstName, lastName, phone string) error {
	query := `
		UPDATE users
		SET first_name = COALESCE(NULLIF(?, ''), first_name),
		    last_name  = COALESCE(NULLIF(?, ''), last_name),
		    phone      = COALESCE(NULLIF(?, ''), phone),
		    updated_at = ?
		WHERE id = ?
	`
	_, err := r.DB.ExecContext(ctx, query, firstName, lastName, phone, time.Now(), userID)
	return err
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `
		INSERT INTO sessions (user_id, role, refresh_token, expires_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at)
	`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `SELECT user_id, role, refresh_token, expires_at FROM sessions WHERE refresh_token = ?`
	var session models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt)
	if err == sql.ErrNoRows {
		return models.Session{}, nil
	}
	return session, err
}

func scanUser(scanner interface{ Scan(dest ...any) error }) (models.User, error) {
	var user models.User
	var updated sql.NullTime
	err := scanner.Scan(
		&user.ID, &user.Email, &user.Phone, &user.FirstName, &user.LastName,
		&user.Password, &user.Role, &user.IsActive, &user.CreatedAt, &updated)
	if err != nil {
		return models.User{}, err
	}
	if updated.Valid {
		t := updated.Time
		user.UpdatedAt = &t
	}
	return user, nil
}
