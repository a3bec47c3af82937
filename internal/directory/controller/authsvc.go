package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ybotev/staffdesk/internal/directory/auth"
	e "github.com/ybotev/staffdesk/internal/directory/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates administrators and issues bearer tokens.
type AuthService struct {
	repo     AdminRepository
	secret   string
	tokenTTL time.Duration
	logger   *zap.Logger
}

func NewAuthService(repo AdminRepository, secret string, tokenTTL time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   logger.Named("auth_service"),
	}
}

// Login verifies the credentials and returns a signed token. Unknown
// email, wrong password and inactive account all map to the same
// Unauthorized error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return "", fmt.Errorf("%w: invalid credentials", e.ErrUnauthorized)
		}
		return "", fmt.Errorf("failed to look up admin: %w", err)
	}
	if !admin.IsActive {
		return "", fmt.Errorf("%w: invalid credentials", e.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("%w: invalid credentials", e.ErrUnauthorized)
	}

	token, err := auth.GenerateToken(admin.ID.String(), s.secret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
