package service

import (
	"context"
	"fmt"
	"strings"

	"assessment-portal/internal/database"
	"assessment-portal/internal/enrich"
	"assessment-portal/internal/models"

	"github.com/rs/zerolog/log"
)

const (
	EventSessionOpened = "session_opened"
	EventSessionFailed = "session_failed"
	EventSessionClosed = "session_closed"
)

// ListLimit caps how many ledger rows one List call returns.
const ListLimit = 100

type SessionLedger interface {
	CreateSession(ctx context.Context, arg database.CreateSessionParams) (*models.Session, error)
	CloseSession(ctx context.Context, kind models.PrincipalKind, id int64) (*models.Session, error)
	ListSessionsSince(ctx context.Context, kind models.PrincipalKind, sinceID int64, limit int) ([]models.Session, error)
}

type Locator interface {
	Resolve(ctx context.Context, address string) string
}

// Publisher receives every ledger change after it has been committed.
type Publisher interface {
	PublishSessionEvent(eventType string, session *models.Session)
}

type SessionRecorder interface {
	SessionOpened(kind, status string)
	SessionClosed(kind string, durationSeconds int64)
}

type SessionService struct {
	ledger    SessionLedger
	locator   Locator
	publisher Publisher
	recorder  SessionRecorder
}

// NewSessionService wires the ledger. publisher and recorder may be nil.
func NewSessionService(ledger SessionLedger, locator Locator, publisher Publisher, recorder SessionRecorder) *SessionService {
	return &SessionService{
		ledger:    ledger,
		locator:   locator,
		publisher: publisher,
		recorder:  recorder,
	}
}

type OpenSessionParams struct {
	Kind models.PrincipalKind
	// ChildID is used for child sessions, AdminID for admin sessions.
	ChildID         string
	AdminID         *int64
	Outcome         string
	ClientSignature string
	ClientAddress   string
}

// Open appends one row to the ledger of p.Kind. For a success outcome it
// returns the new session id; failed attempts are recorded and return nil.
func (s *SessionService) Open(ctx context.Context, p OpenSessionParams) (*int64, error) {
	if !p.Kind.Valid() {
		return nil, invalid(fmt.Sprintf("unknown session kind %q", p.Kind))
	}
	if p.Outcome != models.SessionSuccess && p.Outcome != models.SessionFailed {
		return nil, invalid(fmt.Sprintf("unknown session outcome %q", p.Outcome))
	}

	arg := database.CreateSessionParams{
		Kind:   p.Kind,
		Status: p.Outcome,
	}

	switch p.Kind {
	case models.PrincipalChild:
		childID := strings.TrimSpace(p.ChildID)
		if p.Outcome == models.SessionSuccess {
			if childID == "" {
				return nil, &ValidationError{
					Message: "Child ID is required",
					Fields:  []FieldError{{Field: "childId", Message: "is required"}},
				}
			}
			childID = strings.ToUpper(childID)
		} else if childID == "" {
			childID = models.UnknownPrincipal
		}
		arg.ChildID = &childID
	case models.PrincipalAdmin:
		if p.Outcome == models.SessionSuccess && p.AdminID == nil {
			return nil, invalid("admin id is required for a successful admin session")
		}
		arg.AdminID = p.AdminID
	}

	info := enrich.ParseClientSignature(p.ClientSignature)
	arg.Browser = info.Browser
	arg.OS = info.OS
	arg.DeviceType = info.DeviceType
	arg.IPAddress = p.ClientAddress
	if arg.IPAddress == "" {
		arg.IPAddress = enrich.Unknown
	}
	arg.Location = s.locator.Resolve(ctx, p.ClientAddress)

	session, err := s.ledger.CreateSession(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("record %s session: %w", p.Kind, err)
	}

	if s.recorder != nil {
		s.recorder.SessionOpened(string(p.Kind), p.Outcome)
	}

	if p.Outcome == models.SessionFailed {
		s.publish(EventSessionFailed, session)
		return nil, nil
	}

	s.publish(EventSessionOpened, session)
	id := session.ID
	return &id, nil
}

// Close ends an open session. It returns ErrSessionNotFound when the id is
// unknown, already closed or belongs to a failed attempt.
func (s *SessionService) Close(ctx context.Context, kind models.PrincipalKind, id int64) (*models.Session, error) {
	if !kind.Valid() {
		return nil, invalid(fmt.Sprintf("unknown session kind %q", kind))
	}
	if id <= 0 {
		return nil, ErrSessionNotFound
	}

	session, err := s.ledger.CloseSession(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		var duration int64
		if session.Duration != nil {
			duration = *session.Duration
		}
		s.recorder.SessionClosed(string(kind), duration)
	}
	s.publish(EventSessionClosed, session)

	return session, nil
}

func (s *SessionService) List(ctx context.Context, kind models.PrincipalKind, sinceID int64) ([]models.Session, error) {
	if !kind.Valid() {
		return nil, &ValidationError{
			Message: "Invalid session kind",
			Fields:  []FieldError{{Field: "kind", Message: "must be child or admin"}},
		}
	}
	if sinceID < 0 {
		sinceID = 0
	}
	return s.ledger.ListSessionsSince(ctx, kind, sinceID, ListLimit)
}

func (s *SessionService) StartChild(ctx context.Context, childID, clientSignature, clientAddress string) (int64, error) {
	id, err := s.Open(ctx, OpenSessionParams{
		Kind:            models.PrincipalChild,
		ChildID:         childID,
		Outcome:         models.SessionSuccess,
		ClientSignature: clientSignature,
		ClientAddress:   clientAddress,
	})
	if err != nil {
		return 0, err
	}
	return *id, nil
}

func (s *SessionService) FailChild(ctx context.Context, attemptedChildID, clientSignature, clientAddress string) error {
	_, err := s.Open(ctx, OpenSessionParams{
		Kind:            models.PrincipalChild,
		ChildID:         attemptedChildID,
		Outcome:         models.SessionFailed,
		ClientSignature: clientSignature,
		ClientAddress:   clientAddress,
	})
	return err
}

func (s *SessionService) EndChild(ctx context.Context, id int64) (*models.Session, error) {
	return s.Close(ctx, models.PrincipalChild, id)
}

func (s *SessionService) OpenAdmin(ctx context.Context, adminID int64, clientSignature, clientAddress string) (int64, error) {
	id, err := s.Open(ctx, OpenSessionParams{
		Kind:            models.PrincipalAdmin,
		AdminID:         &adminID,
		Outcome:         models.SessionSuccess,
		ClientSignature: clientSignature,
		ClientAddress:   clientAddress,
	})
	if err != nil {
		return 0, err
	}
	return *id, nil
}

// FailAdmin records a rejected admin login. adminID is nil when the email
// matched no admin.
func (s *SessionService) FailAdmin(ctx context.Context, adminID *int64, clientSignature, clientAddress string) error {
	_, err := s.Open(ctx, OpenSessionParams{
		Kind:            models.PrincipalAdmin,
		AdminID:         adminID,
		Outcome:         models.SessionFailed,
		ClientSignature: clientSignature,
		ClientAddress:   clientAddress,
	})
	return err
}

func (s *SessionService) EndAdmin(ctx context.Context, id int64) (*models.Session, error) {
	return s.Close(ctx, models.PrincipalAdmin, id)
}

func (s *SessionService) publish(eventType string, session *models.Session) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishSessionEvent(eventType, session)
	log.Debug().Str("event", eventType).Str("kind", string(session.Kind)).Int64("session_id", session.ID).Msg("session event published")
}
