package auth

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdckl/library/internal/config"
	"github.com/sdckl/library/internal/database"
)

func setupService(t *testing.T) (*Service, func()) {
	t.Helper()

	dbPath := "./test_auth_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cfg := config.Auth{
		SessionLifetime:  24 * time.Hour,
		BcryptCost:       4, // Low cost for faster tests
		MaxLoginAttempts: 3,
		LockoutDuration:  time.Hour,
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return NewService(db.DB, cfg), cleanup
}

func TestService_CreateUser(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	user, err := svc.CreateUser("Alice", "a@x.com", "Librarian", "secret")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Librarian", user.Role)
	assert.NotEqual(t, "secret", user.PasswordHash)
}

func TestService_CreateUser_DuplicateEmail(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.CreateUser("Alice", "a@x.com", "Librarian", "secret")
	require.NoError(t, err)

	_, err = svc.CreateUser("Alex", "a@x.com", "Member", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Authenticate(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	created, err := svc.CreateUser("Alice", "a@x.com", "Librarian", "secret")
	require.NoError(t, err)

	user, err := svc.Authenticate("a@x.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestService_Authenticate_WrongPassword(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.CreateUser("Alice", "a@x.com", "Librarian", "secret")
	require.NoError(t, err)

	_, err = svc.Authenticate("a@x.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Authenticate_UnknownEmail(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.Authenticate("nobody@x.com", "secret")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Authenticate_LockoutAfterFailures(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.CreateUser("Alice", "a@x.com", "Librarian", "secret")
	require.NoError(t, err)

	// Exhaust the configured attempt budget
	for i := 0; i < 3; i++ {
		_, err = svc.Authenticate("a@x.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// Even the correct password is rejected while locked
	_, err = svc.Authenticate("a@x.com", "secret")
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestService_Authenticate_ResetsCounterOnSuccess(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	created, err := svc.CreateUser("Alice", "a@x.com", "Librarian", "secret")
	require.NoError(t, err)

	_, err = svc.Authenticate("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("a@x.com", "secret")
	require.NoError(t, err)

	user, err := svc.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Zero(t, user.FailedLoginCount)
	assert.NotNil(t, user.LastLoginAt)
}

func TestService_HasUsers(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	hasUsers, err := svc.HasUsers()
	require.NoError(t, err)
	assert.False(t, hasUsers)

	_, err = svc.CreateUser("Alice", "a@x.com", "Librarian", "secret")
	require.NoError(t, err)

	hasUsers, err = svc.HasUsers()
	require.NoError(t, err)
	assert.True(t, hasUsers)
}

func TestService_GetUserByID_NotFound(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.GetUserByID(999)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
