package service

import (
	"context"
	"sync"
	"time"

	"assessment-portal/internal/database"
	"assessment-portal/internal/models"
)

type fakeLedger struct {
	mu       sync.Mutex
	nextID   int64
	sessions map[models.PrincipalKind]map[int64]*models.Session
	created  []database.CreateSessionParams
	failNext error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		sessions: map[models.PrincipalKind]map[int64]*models.Session{
			models.PrincipalChild: {},
			models.PrincipalAdmin: {},
		},
	}
}

func (f *fakeLedger) CreateSession(_ context.Context, arg database.CreateSessionParams) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return nil, err
	}
	f.nextID++
	f.created = append(f.created, arg)
	s := &models.Session{
		ID:         f.nextID,
		Kind:       arg.Kind,
		ChildID:    arg.ChildID,
		AdminID:    arg.AdminID,
		Status:     arg.Status,
		LoginTime:  time.Now().Add(-90 * time.Second),
		IPAddress:  arg.IPAddress,
		DeviceType: arg.DeviceType,
		Browser:    arg.Browser,
		OS:         arg.OS,
		Location:   arg.Location,
	}
	f.sessions[arg.Kind][s.ID] = s
	copied := *s
	return &copied, nil
}

func (f *fakeLedger) CloseSession(_ context.Context, kind models.PrincipalKind, id int64) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[kind][id]
	if !ok || !s.IsOpen() {
		return nil, database.ErrSessionNotFound
	}
	now := time.Now()
	duration := int64(now.Sub(s.LoginTime).Seconds())
	s.LogoutTime = &now
	s.Duration = &duration
	copied := *s
	return &copied, nil
}

func (f *fakeLedger) ListSessionsSince(_ context.Context, kind models.PrincipalKind, sinceID int64, limit int) ([]models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Session{}
	for id := sinceID + 1; id <= f.nextID && len(out) < limit; id++ {
		if s, ok := f.sessions[kind][id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeLocator struct {
	calls []string
}

func (f *fakeLocator) Resolve(_ context.Context, address string) string {
	f.calls = append(f.calls, address)
	return "Pune, Maharashtra, India"
}

type publishedEvent struct {
	eventType string
	session   models.Session
}

type fakePublisher struct {
	events []publishedEvent
}

func (f *fakePublisher) PublishSessionEvent(eventType string, session *models.Session) {
	f.events = append(f.events, publishedEvent{eventType: eventType, session: *session})
}

type fakeRecorder struct {
	opened map[string]int
	closed map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{opened: map[string]int{}, closed: map[string]int{}}
}

func (f *fakeRecorder) SessionOpened(kind, status string) {
	f.opened[kind+"/"+status]++
}

func (f *fakeRecorder) SessionClosed(kind string, _ int64) {
	f.closed[kind]++
}

type fakeAdmins struct {
	byEmail map[string]*models.Admin
	nextID  int64
}

func newFakeAdmins() *fakeAdmins {
	return &fakeAdmins{byEmail: map[string]*models.Admin{}}
}

func (f *fakeAdmins) GetAdminByEmail(_ context.Context, email string) (*models.Admin, error) {
	return f.byEmail[email], nil
}

func (f *fakeAdmins) GetAdminByID(_ context.Context, id int64) (*models.Admin, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdmins) CreateAdmin(_ context.Context, arg database.CreateAdminParams) (*models.Admin, error) {
	if _, ok := f.byEmail[arg.Email]; ok {
		return nil, database.ErrDuplicate
	}
	f.nextID++
	a := &models.Admin{ID: f.nextID, Email: arg.Email, PasswordHash: arg.PasswordHash, Name: arg.Name}
	f.byEmail[arg.Email] = a
	return a, nil
}

type fakeChildren struct {
	children map[string]*models.Child
	updates  []database.UpdateChildParams
}

func (f *fakeChildren) ExecTx(context.Context, func(*database.Queries) error) error {
	panic("ExecTx is not expected in this test")
}

func (f *fakeChildren) GetChildByChildID(_ context.Context, childID string) (*models.Child, error) {
	c, ok := f.children[childID]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeChildren) ListChildren(context.Context) ([]models.Child, error) {
	out := []models.Child{}
	for _, c := range f.children {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeChildren) UpdateChild(_ context.Context, arg database.UpdateChildParams) (bool, error) {
	c, ok := f.children[arg.ChildID]
	if !ok {
		return false, nil
	}
	f.updates = append(f.updates, arg)
	c.Name = arg.Name
	c.DOB = arg.DOB.Format(dateLayout)
	c.Gender = arg.Gender
	c.Mobile = arg.Mobile
	c.Status = arg.Status
	return true, nil
}

func (f *fakeChildren) SetChildStatus(_ context.Context, childID string, status string) (bool, error) {
	c, ok := f.children[childID]
	if !ok {
		return false, nil
	}
	c.Status = status
	return true, nil
}
