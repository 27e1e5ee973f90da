package models

import "time"

// PrincipalKind tags which ledger a session belongs to.
type PrincipalKind string

const (
	PrincipalChild PrincipalKind = "child"
	PrincipalAdmin PrincipalKind = "admin"
)

func (k PrincipalKind) Valid() bool {
	return k == PrincipalChild || k == PrincipalAdmin
}

const (
	SessionSuccess = "success"
	SessionFailed  = "failed"
)

// UnknownPrincipal is stored for failed child attempts that carried no identifier.
const UnknownPrincipal = "UNKNOWN"

// Session is one row of either login_sessions or admin_login_sessions.
// Exactly one of ChildID and AdminID is meaningful, depending on Kind; AdminID
// stays nil for failed admin logins with an unknown email.
type Session struct {
	ID         int64         `json:"id" db:"id" example:"7"`
	Kind       PrincipalKind `json:"kind" db:"-" example:"child"`
	ChildID    *string       `json:"child_id,omitempty" db:"child_id" example:"CH001"`
	AdminID    *int64        `json:"admin_id,omitempty" db:"admin_id"`
	Status     string        `json:"status" db:"status" example:"success"`
	LoginTime  time.Time     `json:"login_time" db:"login_time"`
	LogoutTime *time.Time    `json:"logout_time" db:"logout_time"`
	Duration   *int64        `json:"session_duration" db:"session_duration" example:"95"`
	IPAddress  string        `json:"ip_address" db:"ip_address" example:"198.51.100.10"`
	DeviceType string        `json:"device_type" db:"device_type" example:"Desktop"`
	Browser    string        `json:"browser" db:"browser" example:"Chrome"`
	OS         string        `json:"os" db:"os" example:"Windows"`
	Location   string        `json:"location" db:"location" example:"Pune, Maharashtra, India"`
}

// IsOpen reports whether the session can still be closed.
func (s *Session) IsOpen() bool {
	return s.Status == SessionSuccess && s.LogoutTime == nil
}
