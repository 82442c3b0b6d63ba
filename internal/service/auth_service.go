package service

import (
	"context"

	"recipebox/internal/auth"
	apperrors "recipebox/internal/errors"
)

// AuthService exchanges credentials for bearer tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	users  UserService
	tokens auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users UserService, tokens auth.TokenService) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Login verifies the credentials and returns the user's token key,
// reusing any existing token. Bad credentials surface as a validation
// failure of the token form, never as 401.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperrors.ErrInvalidCredentials
	}
	return s.tokens.IssueOrGet(ctx, user.ID)
}
