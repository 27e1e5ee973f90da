package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"assessment-portal/internal/auth"
	"assessment-portal/internal/database"
	"assessment-portal/internal/models"

	nanoid "github.com/jaevor/go-nanoid"
	"github.com/rs/zerolog/log"
)

const generatedPasswordLength = 16

type AdminStore interface {
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id int64) (*models.Admin, error)
	CreateAdmin(ctx context.Context, arg database.CreateAdminParams) (*models.Admin, error)
}

type TokenConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type AuthService struct {
	admins   AdminStore
	sessions *SessionService
	token    TokenConfig
}

func NewAuthService(admins AdminStore, sessions *SessionService, token TokenConfig) *AuthService {
	return &AuthService{
		admins:   admins,
		sessions: sessions,
		token:    token,
	}
}

type LoginParams struct {
	Email           string
	Password        string
	ClientSignature string
	ClientAddress   string
}

type LoginResult struct {
	Token     string              `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	SessionID int64               `json:"sessionId" example:"12"`
	Admin     models.AdminProfile `json:"admin"`
}

// Login checks credentials and opens an admin session. An unknown email and a
// wrong password both record a failed session and return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, p LoginParams) (*LoginResult, error) {
	email := strings.TrimSpace(p.Email)
	if email == "" || p.Password == "" {
		verr := invalid("Email and password are required")
		if email == "" {
			verr.add("email", "is required")
		}
		if p.Password == "" {
			verr.add("password", "is required")
		}
		return nil, verr
	}

	admin, err := s.admins.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}

	if admin == nil {
		auth.BurnPasswordCheck(p.Password)
	}
	if admin == nil || !auth.CheckPasswordHash(p.Password, admin.PasswordHash) {
		var adminID *int64
		if admin != nil {
			adminID = &admin.ID
		}
		if err := s.sessions.FailAdmin(ctx, adminID, p.ClientSignature, p.ClientAddress); err != nil {
			log.Error().Err(err).Str("email", email).Msg("failed to record rejected admin login")
		}
		return nil, ErrInvalidCredentials
	}

	sessionID, err := s.sessions.OpenAdmin(ctx, admin.ID, p.ClientSignature, p.ClientAddress)
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateJWT(admin, s.token.Secret, s.token.Issuer, s.token.TTL)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResult{
		Token:     token,
		SessionID: sessionID,
		Admin:     admin.Profile(),
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID int64) error {
	_, err := s.sessions.EndAdmin(ctx, sessionID)
	return err
}

func (s *AuthService) Profile(ctx context.Context, adminID int64) (*models.AdminProfile, error) {
	admin, err := s.admins.GetAdminByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	profile := admin.Profile()
	return &profile, nil
}

type CreateAdminParams struct {
	Email    string
	Name     string
	Password string
}

// CreateAdmin stores a new admin. When p.Password is empty a random password
// is generated; the returned password is the only copy of it in plain text.
func (s *AuthService) CreateAdmin(ctx context.Context, p CreateAdminParams) (*models.Admin, string, error) {
	verr := invalid("Invalid admin")
	email := strings.TrimSpace(p.Email)
	name := strings.TrimSpace(p.Name)
	if email == "" || !strings.Contains(email, "@") {
		verr.add("email", "must be a valid email address")
	}
	if name == "" {
		verr.add("name", "is required")
	}
	if err := verr.orNil(); err != nil {
		return nil, "", err
	}

	password := p.Password
	if password == "" {
		generate, err := nanoid.Standard(generatedPasswordLength)
		if err != nil {
			return nil, "", err
		}
		password = generate()
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	admin, err := s.admins.CreateAdmin(ctx, database.CreateAdminParams{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	})
	if err != nil {
		return nil, "", err
	}
	return admin, password, nil
}
