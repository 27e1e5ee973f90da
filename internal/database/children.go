package database

import (
	"context"
	"time"

	"assessment-portal/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
)

const childColumns = `
	id,
	COALESCE(child_id, '') AS child_id,
	name,
	to_char(dob, 'YYYY-MM-DD') AS dob,
	gender,
	mobile,
	status,
	created_at
`

type CreateChildParams struct {
	Name   string
	DOB    time.Time
	Gender string
	Mobile string
	Status string
}

// CreateChild inserts a child without a public identifier and returns the
// generated serial key. Callers assign the identifier with AssignChildID.
func (q *Queries) CreateChild(ctx context.Context, arg CreateChildParams) (int64, error) {
	status := arg.Status
	if status == "" {
		status = models.ChildStatusActive
	}

	query := `
		INSERT INTO children (name, dob, gender, mobile, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := q.db.QueryRow(ctx, query, arg.Name, arg.DOB, arg.Gender, arg.Mobile, status).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (q *Queries) AssignChildID(ctx context.Context, id int64, childID string) error {
	query := `UPDATE children SET child_id = $1 WHERE id = $2 AND child_id IS NULL`
	res, err := q.db.Exec(ctx, query, childID, id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrChildNotFound
	}
	return nil
}

// GetChildByChildID matches the stored identifier exactly. It returns nil, nil
// when no child matches.
func (q *Queries) GetChildByChildID(ctx context.Context, childID string) (*models.Child, error) {
	query := `SELECT ` + childColumns + ` FROM children WHERE child_id = $1`

	var child models.Child
	if err := pgxscan.Get(ctx, q.db, &child, query, childID); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &child, nil
}

func (q *Queries) ListChildren(ctx context.Context) ([]models.Child, error) {
	query := `SELECT ` + childColumns + ` FROM children ORDER BY created_at DESC, id DESC`

	var children []models.Child
	if err := pgxscan.Select(ctx, q.db, &children, query); err != nil {
		return nil, err
	}

	if children == nil {
		return []models.Child{}, nil
	}

	return children, nil
}

type UpdateChildParams struct {
	ChildID string
	Name    string
	DOB     time.Time
	Gender  string
	Mobile  string
	Status  string
}

func (q *Queries) UpdateChild(ctx context.Context, arg UpdateChildParams) (bool, error) {
	query := `
		UPDATE children
		SET name = $1, dob = $2, gender = $3, mobile = $4, status = $5
		WHERE child_id = $6
	`
	res, err := q.db.Exec(ctx, query, arg.Name, arg.DOB, arg.Gender, arg.Mobile, arg.Status, arg.ChildID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) SetChildStatus(ctx context.Context, childID string, status string) (bool, error) {
	query := `UPDATE children SET status = $1 WHERE child_id = $2`
	res, err := q.db.Exec(ctx, query, status, childID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
