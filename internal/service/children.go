package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"assessment-portal/internal/database"
	"assessment-portal/internal/models"
)

const dateLayout = "2006-01-02"

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

type ChildStore interface {
	ExecTx(ctx context.Context, fn func(*database.Queries) error) error
	GetChildByChildID(ctx context.Context, childID string) (*models.Child, error)
	ListChildren(ctx context.Context) ([]models.Child, error)
	UpdateChild(ctx context.Context, arg database.UpdateChildParams) (bool, error)
	SetChildStatus(ctx context.Context, childID string, status string) (bool, error)
}

type ChildService struct {
	store ChildStore
}

func NewChildService(store ChildStore) *ChildService {
	return &ChildService{store: store}
}

// FormatChildID derives the public identifier from the serial key.
func FormatChildID(id int64) string {
	return fmt.Sprintf("CH%03d", id)
}

// NormalizeChildID makes identifier matching case-insensitive.
func NormalizeChildID(childID string) string {
	return strings.ToUpper(strings.TrimSpace(childID))
}

type RegisterChildParams struct {
	Name   string
	DOB    string
	Gender string
	Mobile string
}

// Register validates p, inserts the child and assigns its public identifier
// in one transaction.
func (s *ChildService) Register(ctx context.Context, p RegisterChildParams) (string, error) {
	arg, err := validateRegistration(p)
	if err != nil {
		return "", err
	}

	var childID string
	err = s.store.ExecTx(ctx, func(q *database.Queries) error {
		id, err := q.CreateChild(ctx, arg)
		if err != nil {
			return err
		}
		childID = FormatChildID(id)
		return q.AssignChildID(ctx, id, childID)
	})
	if err != nil {
		return "", fmt.Errorf("register child: %w", err)
	}
	return childID, nil
}

func (s *ChildService) Lookup(ctx context.Context, childID string) (*models.PublicChild, error) {
	child, err := s.Get(ctx, childID)
	if err != nil {
		return nil, err
	}
	public := child.Public()
	return &public, nil
}

func (s *ChildService) Get(ctx context.Context, childID string) (*models.Child, error) {
	childID = NormalizeChildID(childID)
	if childID == "" {
		return nil, ErrChildNotFound
	}
	child, err := s.store.GetChildByChildID(ctx, childID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, ErrChildNotFound
	}
	return child, nil
}

func (s *ChildService) ListAll(ctx context.Context) ([]models.Child, error) {
	return s.store.ListChildren(ctx)
}

// UpdateChildParams carries the fields to change; nil keeps the stored value.
type UpdateChildParams struct {
	Name   *string
	DOB    *string
	Gender *string
	Mobile *string
	Status *string
}

func (s *ChildService) Update(ctx context.Context, childID string, p UpdateChildParams) error {
	current, err := s.Get(ctx, childID)
	if err != nil {
		return err
	}

	merged := RegisterChildParams{
		Name:   current.Name,
		DOB:    current.DOB,
		Gender: current.Gender,
		Mobile: current.Mobile,
	}
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.DOB != nil {
		merged.DOB = *p.DOB
	}
	if p.Gender != nil {
		merged.Gender = *p.Gender
	}
	if p.Mobile != nil {
		merged.Mobile = *p.Mobile
	}
	status := current.Status
	if p.Status != nil {
		status = strings.ToLower(strings.TrimSpace(*p.Status))
	}

	arg, verr := validateFields(merged)
	if !models.ValidChildStatus(status) {
		verr.add("status", "must be active or inactive")
	}
	if err := verr.orNil(); err != nil {
		return err
	}

	ok, err := s.store.UpdateChild(ctx, database.UpdateChildParams{
		ChildID: current.ChildID,
		Name:    arg.Name,
		DOB:     arg.DOB,
		Gender:  arg.Gender,
		Mobile:  arg.Mobile,
		Status:  status,
	})
	if err != nil {
		return err
	}
	if !ok {
		return ErrChildNotFound
	}
	return nil
}

func (s *ChildService) SetStatus(ctx context.Context, childID, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if !models.ValidChildStatus(status) {
		return &ValidationError{
			Message: "Invalid status",
			Fields:  []FieldError{{Field: "status", Message: "must be active or inactive"}},
		}
	}

	ok, err := s.store.SetChildStatus(ctx, NormalizeChildID(childID), status)
	if err != nil {
		return err
	}
	if !ok {
		return ErrChildNotFound
	}
	return nil
}

func validateRegistration(p RegisterChildParams) (database.CreateChildParams, error) {
	arg, verr := validateFields(p)
	if err := verr.orNil(); err != nil {
		return database.CreateChildParams{}, err
	}
	arg.Status = models.ChildStatusActive
	return arg, nil
}

func validateFields(p RegisterChildParams) (database.CreateChildParams, *ValidationError) {
	verr := invalid("Invalid child details")
	arg := database.CreateChildParams{
		Name:   strings.TrimSpace(p.Name),
		Gender: strings.ToLower(strings.TrimSpace(p.Gender)),
		Mobile: strings.TrimSpace(p.Mobile),
	}

	if arg.Name == "" {
		verr.add("name", "is required")
	}

	dob := strings.TrimSpace(p.DOB)
	if dob == "" {
		verr.add("dob", "is required")
	} else if parsed, ok := parseDate(dob); ok {
		arg.DOB = parsed
	} else {
		verr.add("dob", "must be a date in YYYY-MM-DD format")
	}

	switch {
	case arg.Gender == "":
		verr.add("gender", "is required")
	case !models.ValidGender(arg.Gender):
		verr.add("gender", "must be one of female, male, other, prefer_not_to_say")
	}

	switch {
	case arg.Mobile == "":
		verr.add("mobile", "is required")
	case !mobilePattern.MatchString(arg.Mobile):
		verr.add("mobile", "must be exactly 10 digits")
	}

	return arg, verr
}

func parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
