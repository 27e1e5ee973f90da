package database

import (
	"context"
	"fmt"

	"assessment-portal/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
)

// ledger describes the table backing one principal kind. Both tables share
// every column except the principal reference.
type ledger struct {
	table     string
	principal string
}

var ledgers = map[models.PrincipalKind]ledger{
	models.PrincipalChild: {table: "login_sessions", principal: "child_id"},
	models.PrincipalAdmin: {table: "admin_login_sessions", principal: "admin_id"},
}

func ledgerFor(kind models.PrincipalKind) (ledger, error) {
	l, ok := ledgers[kind]
	if !ok {
		return ledger{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return l, nil
}

func (l ledger) columns() string {
	return `id, ` + l.principal + `, status, login_time, logout_time, session_duration,
		ip_address, device_type, browser, os, location`
}

type CreateSessionParams struct {
	Kind       models.PrincipalKind
	ChildID    *string
	AdminID    *int64
	Status     string
	IPAddress  string
	DeviceType string
	Browser    string
	OS         string
	Location   string
}

func (arg CreateSessionParams) principal() interface{} {
	if arg.Kind == models.PrincipalAdmin {
		return arg.AdminID
	}
	return arg.ChildID
}

// CreateSession appends a row to the ledger of arg.Kind with login_time set by
// the database clock.
func (q *Queries) CreateSession(ctx context.Context, arg CreateSessionParams) (*models.Session, error) {
	l, err := ledgerFor(arg.Kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, status, login_time, ip_address, device_type, browser, os, location)
		VALUES ($1, $2, NOW(), $3, $4, $5, $6, $7)
		RETURNING %s
	`, l.table, l.principal, l.columns())

	var session models.Session
	err = pgxscan.Get(ctx, q.db, &session, query,
		arg.principal(), arg.Status, arg.IPAddress, arg.DeviceType, arg.Browser, arg.OS, arg.Location,
	)
	if err != nil {
		return nil, err
	}
	session.Kind = arg.Kind
	return &session, nil
}

// CloseSession stamps logout_time and session_duration on an open session.
// The WHERE clause is the only guard against double closing: a second call,
// an unknown id or a failed attempt all affect zero rows and yield
// ErrSessionNotFound.
func (q *Queries) CloseSession(ctx context.Context, kind models.PrincipalKind, id int64) (*models.Session, error) {
	l, err := ledgerFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET
			logout_time = NOW(),
			session_duration = FLOOR(EXTRACT(EPOCH FROM (NOW() - login_time)))::BIGINT
		WHERE id = $1 AND status = 'success' AND logout_time IS NULL
		RETURNING %s
	`, l.table, l.columns())

	var session models.Session
	if err := pgxscan.Get(ctx, q.db, &session, query, id); err != nil {
		if pgxscan.NotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	session.Kind = kind
	return &session, nil
}

// GetSession returns nil, nil when the id does not exist in the kind's ledger.
func (q *Queries) GetSession(ctx context.Context, kind models.PrincipalKind, id int64) (*models.Session, error) {
	l, err := ledgerFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, l.columns(), l.table)

	var session models.Session
	if err := pgxscan.Get(ctx, q.db, &session, query, id); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	session.Kind = kind
	return &session, nil
}

func (q *Queries) ListSessionsSince(ctx context.Context, kind models.PrincipalKind, sinceID int64, limit int) ([]models.Session, error) {
	l, err := ledgerFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id > $1
		ORDER BY id ASC
		LIMIT $2
	`, l.columns(), l.table)

	var sessions []models.Session
	if err := pgxscan.Select(ctx, q.db, &sessions, query, sinceID, limit); err != nil {
		return nil, err
	}

	if sessions == nil {
		return []models.Session{}, nil
	}

	for i := range sessions {
		sessions[i].Kind = kind
	}
	return sessions, nil
}
