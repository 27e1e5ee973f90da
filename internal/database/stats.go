package database

import "context"

type DashboardStats struct {
	TotalChildren            int64 `json:"total_children" db:"total_children"`
	ActiveChildren           int64 `json:"active_children" db:"active_children"`
	InactiveChildren         int64 `json:"inactive_children" db:"inactive_children"`
	OpenChildSessions        int64 `json:"open_child_sessions" db:"open_child_sessions"`
	ChildSessionsToday       int64 `json:"child_sessions_today" db:"child_sessions_today"`
	FailedChildAttemptsToday int64 `json:"failed_child_attempts_today" db:"failed_child_attempts_today"`
	AdminLoginsToday         int64 `json:"admin_logins_today" db:"admin_logins_today"`
}

func (q *Queries) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	query := `
		SELECT
			(SELECT count(*) FROM children) AS total_children,
			(SELECT count(*) FROM children WHERE status = 'active') AS active_children,
			(SELECT count(*) FROM children WHERE status = 'inactive') AS inactive_children,
			(SELECT count(*) FROM login_sessions
				WHERE status = 'success' AND logout_time IS NULL) AS open_child_sessions,
			(SELECT count(*) FROM login_sessions
				WHERE status = 'success' AND login_time >= date_trunc('day', NOW())) AS child_sessions_today,
			(SELECT count(*) FROM login_sessions
				WHERE status = 'failed' AND login_time >= date_trunc('day', NOW())) AS failed_child_attempts_today,
			(SELECT count(*) FROM admin_login_sessions
				WHERE status = 'success' AND login_time >= date_trunc('day', NOW())) AS admin_logins_today
	`
	var stats DashboardStats
	err := q.db.QueryRow(ctx, query).Scan(
		&stats.TotalChildren,
		&stats.ActiveChildren,
		&stats.InactiveChildren,
		&stats.OpenChildSessions,
		&stats.ChildSessionsToday,
		&stats.FailedChildAttemptsToday,
		&stats.AdminLoginsToday,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
