package user

import (
	"testing"

	userRepo "stellartours/database/repository/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService() (*DefaultUserService, *userRepo.MemoryUserRepo) {
	repo := userRepo.NewMemoryUserRepo()
	return &DefaultUserService{Repo: repo}, repo
}

func sampleRegistration() RegistrationInput {
	return RegistrationInput{
		Username:  "alice",
		Password:  "s3cret-pass",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Chen",
	}
}

func TestRegisterUser_Success(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.RegisterUser(sampleRegistration())
	require.NoError(t, err)

	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "user", u.Role)
	assert.True(t, u.IsVerified)

	// The stored password is a hash, never the plaintext.
	assert.NotEqual(t, "s3cret-pass", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret-pass")))
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.RegisterUser(sampleRegistration())
	require.NoError(t, err)

	_, err = svc.RegisterUser(sampleRegistration())
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The duplicate attempt must not have created a second row.
	u, err := repo.GetByID(2)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestAuthenticateUser_Success(t *testing.T) {
	svc, _ := newTestService()

	registered, err := svc.RegisterUser(sampleRegistration())
	require.NoError(t, err)

	u, err := svc.AuthenticateUser("alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)
	assert.NotNil(t, u.LastLogin)
}

func TestAuthenticateUser_StampsLastLogin(t *testing.T) {
	svc, repo := newTestService()

	registered, err := svc.RegisterUser(sampleRegistration())
	require.NoError(t, err)

	_, err = svc.AuthenticateUser("alice", "s3cret-pass")
	require.NoError(t, err)

	stored, err := repo.GetByID(registered.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotNil(t, stored.LastLogin)
}

func TestAuthenticateUser_WrongPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RegisterUser(sampleRegistration())
	require.NoError(t, err)

	_, err = svc.AuthenticateUser("alice", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUser_UnknownUsername(t *testing.T) {
	svc, _ := newTestService()

	// The unknown-user and wrong-password cases are indistinguishable to
	// the caller.
	_, err := svc.AuthenticateUser("nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserByID_Missing(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.GetUserByID(99)
	require.NoError(t, err)
	assert.Nil(t, u)
}
