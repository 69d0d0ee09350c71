package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/mocks"
	"nutritrack/models"
)

func TestCreateUser(t *testing.T) {
	var created *models.User
	store := &mocks.MockUserStore{
		CreateFunc: func(ctx context.Context, u *models.User) error {
			u.ID = 1
			created = u
			return nil
		},
	}
	svc := NewUserService(store, newTestLogger())

	u, err := svc.CreateUser(context.Background(), CreateUserRequest{Email: "  Ada@Example.com ", DisplayName: " Ada "})
	require.NoError(t, err)
	assert.Same(t, created, u)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, "Ada", u.DisplayName)
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	svc := NewUserService(&mocks.MockUserStore{}, newTestLogger())

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrInvalidUser)
}
