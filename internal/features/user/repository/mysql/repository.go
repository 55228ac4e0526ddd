package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	apperrors "supermercado-backend/internal/common/errors"
	"supermercado-backend/internal/features/user/models"
	"supermercado-backend/internal/features/user/repository"
)

type mysqlRepository struct {
	db *sql.DB
}

// New returns the MySQL-backed user repository. Driver failures surface as
// STORAGE_ERROR app errors so handlers never leak SQL details.
func New(db *sql.DB) repository.Repository {
	return &mysqlRepository{db: db}
}

func (r *mysqlRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID != 0 {
		if _, err := r.GetByID(ctx, user.ID); err == nil {
			return nil, apperrors.Conflict("user", user.ID)
		}

		query := "INSERT INTO users (id, name, email, phone, address) VALUES (?, ?, ?, ?, ?)"
		if _, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.Phone, user.Address); err != nil {
			return nil, apperrors.Storage(err)
		}
		result := *user
		return &result, nil
	}

	query := "INSERT INTO users (name, email, phone, address) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.Phone, user.Address)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	result := *user
	result.ID = int(id)
	return &result, nil
}

func (r *mysqlRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := "SELECT id, name, email, phone, address FROM users WHERE id = ?"

	var user models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user", id)
		}
		return nil, apperrors.Storage(err)
	}

	return &user, nil
}

func (r *mysqlRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := "SELECT id, name, email, phone, address FROM users ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *mysqlRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	query := "UPDATE users SET name = ?, email = ?, phone = ?, address = ? WHERE id = ?"

	res, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.Phone, user.Address, user.ID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if affected == 0 {
		// RowsAffected is also zero when the update is a no-op on an
		// existing row, so double-check existence.
		if _, err := r.GetByID(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	result := *user
	return &result, nil
}

func (r *mysqlRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return apperrors.Storage(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.Storage(err)
	}
	if affected == 0 {
		return apperrors.NotFound("user", id)
	}

	return nil
}

func (r *mysqlRepository) SearchByName(ctx context.Context, name string) ([]*models.User, error) {
	query := "SELECT id, name, email, phone, address FROM users WHERE LOWER(name) LIKE ? ORDER BY id"

	pattern := "%" + strings.ToLower(name) + "%"
	rows, err := r.db.QueryContext(ctx, query, pattern)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func scanUsers(rows *sql.Rows) ([]*models.User, error) {
	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.Address); err != nil {
			return nil, apperrors.Storage(err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return users, nil
}
