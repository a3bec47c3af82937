package controller

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	e "github.com/ybotev/staffdesk/internal/directory/errors"
	"github.com/ybotev/staffdesk/internal/directory/models"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

type MockAdminRepo struct {
	getAdminByEmail func(context.Context, string) (*models.Admin, error)
	getAdminByID    func(context.Context, uuid.UUID) (*models.Admin, error)
	createAdmin     func(context.Context, *models.Admin) error
}

func (m *MockAdminRepo) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return m.getAdminByEmail(ctx, email)
}

func (m *MockAdminRepo) GetAdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	return m.getAdminByID(ctx, id)
}

func (m *MockAdminRepo) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	return m.createAdmin(ctx, admin)
}

func TestAuthLogin(t *testing.T) {
	logger := zaptest.NewLogger(t)
	secret := "test-secret"

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &models.Admin{
		ID:           uuid.New(),
		FullName:     "Root Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}

	repoFor := func(a *models.Admin) *MockAdminRepo {
		return &MockAdminRepo{
			getAdminByEmail: func(_ context.Context, email string) (*models.Admin, error) {
				if a != nil && email == a.Email {
					return a, nil
				}
				return nil, e.ErrNotFound
			},
		}
	}

	t.Run("success returns a token with the admin id as subject", func(t *testing.T) {
		svc := NewAuthService(repoFor(admin), secret, time.Hour, logger)

		token, err := svc.Login(context.Background(), "admin@example.com", "correct horse")
		require.NoError(t, err)

		parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		require.NoError(t, err)
		sub, err := parsed.Claims.GetSubject()
		require.NoError(t, err)
		assert.Equal(t, admin.ID.String(), sub)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewAuthService(repoFor(admin), secret, time.Hour, logger)

		_, err := svc.Login(context.Background(), "admin@example.com", "wrong")
		assert.ErrorIs(t, err, e.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewAuthService(repoFor(admin), secret, time.Hour, logger)

		_, err := svc.Login(context.Background(), "nobody@example.com", "correct horse")
		assert.ErrorIs(t, err, e.ErrUnauthorized)
	})

	t.Run("inactive account", func(t *testing.T) {
		inactive := *admin
		inactive.IsActive = false
		svc := NewAuthService(repoFor(&inactive), secret, time.Hour, logger)

		_, err := svc.Login(context.Background(), "admin@example.com", "correct horse")
		assert.ErrorIs(t, err, e.ErrUnauthorized)
	})
}
