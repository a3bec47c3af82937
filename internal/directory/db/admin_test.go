package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	e "github.com/ybotev/staffdesk/internal/directory/errors"
	"github.com/ybotev/staffdesk/internal/directory/models"
)

func TestAdminLookup(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	admin := &models.Admin{
		ID:           uuid.New(),
		FullName:     "Root Admin",
		Email:        "Admin@Example.com",
		PhoneNumber:  "+1000000001",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}
	require.NoError(t, repo.CreateAdmin(ctx, admin), "CreateAdmin should succeed")

	byID, err := repo.GetAdminByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", byID.Email, "email should be stored lowercased")

	// Lookup is case-insensitive on the caller side too.
	byEmail, err := repo.GetAdminByEmail(ctx, "ADMIN@example.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, byEmail.ID)

	_, err = repo.GetAdminByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, e.ErrNotFound)

	_, err = repo.GetAdminByID(ctx, uuid.New())
	assert.ErrorIs(t, err, e.ErrNotFound)
}
