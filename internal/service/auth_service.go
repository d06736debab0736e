package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bitinglip/internal/model"
	"bitinglip/pkg/auth"
	"bitinglip/pkg/logger"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	mockUserID    = "user-001"
	adminUsername = "admin"
	adminRole     = "admin"
	tokenType     = "bearer"
)

var userCreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// AuthService mock authentication. Every login succeeds and no session is tracked.
type AuthService struct {
	issuer      *auth.Issuer
	emailDomain string
	now         func() time.Time
}

// NewAuthService creates auth service
func NewAuthService(issuer *auth.Issuer, emailDomain string) *AuthService {
	return &AuthService{issuer: issuer, emailDomain: emailDomain, now: utcNow}
}

// Login issues a session for any credentials. An empty username logs in as admin.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	username := adminUsername
	if req != nil && strings.TrimSpace(req.Username) != "" {
		username = strings.TrimSpace(req.Username)
	}

	resp, err := s.session(s.user(username))
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "user logged in, username: %s", username)
	return resp, nil
}

// Refresh issues a new session for the admin profile
func (s *AuthService) Refresh(ctx context.Context) (*model.AuthResponse, error) {
	return s.session(s.Profile(ctx))
}

// Profile returns the fixed admin profile
func (s *AuthService) Profile(ctx context.Context) model.User {
	return s.user(adminUsername)
}

func (s *AuthService) user(username string) model.User {
	return model.User{
		ID:        mockUserID,
		Username:  username,
		Email:     fmt.Sprintf("%s@%s", username, s.emailDomain),
		Name:      cases.Title(language.Und).String(username) + " User",
		Role:      adminRole,
		CreatedAt: userCreatedAt,
		LastLogin: s.now(),
	}
}

func (s *AuthService) session(user model.User) (*model.AuthResponse, error) {
	token, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &model.AuthResponse{
		AccessToken: token,
		TokenType:   tokenType,
		ExpiresIn:   int(s.issuer.TTL().Seconds()),
		User:        user,
	}, nil
}

// Logout acknowledges a logout; there is no session to invalidate
func (s *AuthService) Logout(ctx context.Context) string {
	return "Logged out successfully"
}
