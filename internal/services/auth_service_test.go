package services

import (
	"testing"

	"github.com/Q-Tify/inno-trackify/internal/models"
	"github.com/Q-Tify/inno-trackify/internal/repository"
	"github.com/Q-Tify/inno-trackify/internal/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.ActivityType{}, &models.Activity{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewAuthService(repository.NewUserRepository(db)), db
}

func TestAuthService_RegisterAndAuthenticate(t *testing.T) {
	svc, _ := setupAuthService(t)

	created, err := svc.Register(RegisterInput{
		Username: "alice",
		Email:    "a@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.NotEqual(t, "supersecret", created.PasswordHash)

	authenticated, err := svc.Authenticate("alice", "supersecret")
	require.NoError(t, err)
	require.Equal(t, created.Username, authenticated.Username)
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	svc, db := setupAuthService(t)

	for _, email := range []string{"invalid-email", "", "missing@", "@example.com", "Alice <a@example.com>"} {
		_, err := svc.Register(RegisterInput{
			Username: "alice",
			Email:    email,
			Password: "p",
		})
		require.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "a@example.com", Password: "p"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Username: "alice", Email: "other@example.com", Password: "p"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Register(RegisterInput{Username: "bob", Email: "a@example.com", Password: "p"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Authenticate_Rejected(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "a@example.com", Password: "supersecret"})
	require.NoError(t, err)

	// Wrong password and unknown user both surface as rejected credentials,
	// not as a missing-row error.
	_, err = svc.Authenticate("alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody", "supersecret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_UpdateUser(t *testing.T) {
	svc, _ := setupAuthService(t)

	created, err := svc.Register(RegisterInput{Username: "alice", Email: "a@example.com", Password: "old"})
	require.NoError(t, err)

	newEmail := "new@example.com"
	newPassword := "brandnew"
	updated, err := svc.UpdateUser(created.ID, UpdateUserInput{
		Email:    &newEmail,
		Password: &newPassword,
	})
	require.NoError(t, err)
	require.Equal(t, newEmail, updated.Email)
	require.Equal(t, "alice", updated.Username)

	// The new password takes effect immediately; the old one stops working.
	_, err = svc.Authenticate("alice", "brandnew")
	require.NoError(t, err)
	_, err = svc.Authenticate("alice", "old")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_UpdateUser_NotFound(t *testing.T) {
	svc, _ := setupAuthService(t)

	email := "new@example.com"
	_, err := svc.UpdateUser(999, UpdateUserInput{Email: &email})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_DeleteUser_Idempotent(t *testing.T) {
	svc, _ := setupAuthService(t)

	created, err := svc.Register(RegisterInput{Username: "alice", Email: "a@example.com", Password: "p"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(created.ID))
	require.NoError(t, svc.DeleteUser(created.ID))

	_, err = svc.GetUser(created.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_ListUsers_InsertionOrder(t *testing.T) {
	svc, _ := setupAuthService(t)

	for _, u := range []struct{ username, email string }{
		{"charlie", "c@example.com"},
		{"alice", "a@example.com"},
		{"bob", "b@example.com"},
	} {
		_, err := svc.Register(RegisterInput{Username: u.username, Email: u.email, Password: "p"})
		require.NoError(t, err)
	}

	users, err := svc.ListUsers(utils.PaginationParams{})
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "charlie", users[0].Username)
	require.Equal(t, "alice", users[1].Username)
	require.Equal(t, "bob", users[2].Username)
}
