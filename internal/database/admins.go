package database

import (
	"context"

	"assessment-portal/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
)

// GetAdminByEmail matches email exactly as stored. It returns nil, nil when
// no admin has that email.
func (q *Queries) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, name, created_at
		FROM admins
		WHERE email = $1
	`
	var admin models.Admin
	if err := pgxscan.Get(ctx, q.db, &admin, query, email); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (q *Queries) GetAdminByID(ctx context.Context, id int64) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, name, created_at
		FROM admins
		WHERE id = $1
	`
	var admin models.Admin
	if err := pgxscan.Get(ctx, q.db, &admin, query, id); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

type CreateAdminParams struct {
	Email        string
	PasswordHash string
	Name         string
}

func (q *Queries) CreateAdmin(ctx context.Context, arg CreateAdminParams) (*models.Admin, error) {
	query := `
		INSERT INTO admins (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, name, created_at
	`
	var admin models.Admin
	err := q.db.QueryRow(ctx, query, arg.Email, arg.PasswordHash, arg.Name).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Name,
		&admin.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &admin, nil
}
