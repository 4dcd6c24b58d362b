package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/Q-Tify/inno-trackify/internal/dto"
	"github.com/Q-Tify/inno-trackify/internal/models"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_List(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice", "a@example.com", "p")
	env.registerUser(t, "bob", "b@example.com", "p")

	w := env.doJSON(t, http.MethodGet, "/users/", nil, env.bearerToken(t, "alice"))

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 2)
	require.Equal(t, "alice", response[0].Username)
	require.Equal(t, "bob", response[1].Username)
}

func TestUserHandler_List_ReturnsFullCollection(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice", "a@example.com", "p")

	// Bulk rows go in through the database directly; hashing 120 passwords
	// would dominate the test.
	users := make([]models.User, 120)
	for i := range users {
		users[i] = models.User{
			Username:     fmt.Sprintf("user%03d", i),
			Email:        fmt.Sprintf("user%03d@example.com", i),
			PasswordHash: "x",
		}
	}
	require.NoError(t, env.db.Create(&users).Error)

	// Without a limit the whole collection comes back.
	w := env.doJSON(t, http.MethodGet, "/users/", nil, env.bearerToken(t, "alice"))
	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 121)

	// An explicit limit still pages.
	w = env.doJSON(t, http.MethodGet, "/users/?page=2&limit=50", nil, env.bearerToken(t, "alice"))
	require.Equal(t, http.StatusOK, w.Code)

	response = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 50)
}

func TestUserHandler_List_MissingToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/users/", nil, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestUserHandler_List_TamperedToken(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice", "a@example.com", "p")

	token := env.bearerToken(t, "alice")

	w := env.doJSON(t, http.MethodGet, "/users/", nil, token+"tampered")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestUserHandler_List_DeletedUserToken(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "alice", "a@example.com", "p")
	token := env.bearerToken(t, "alice")

	require.NoError(t, env.userRepo.Delete(user.ID))

	w := env.doJSON(t, http.MethodGet, "/users/", nil, token)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestUserHandler_Get(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "alice", "a@example.com", "p")

	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil, env.bearerToken(t, "alice"))

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.ID, response.ID)
	require.Equal(t, "a@example.com", response.Email)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice", "a@example.com", "p")

	w := env.doJSON(t, http.MethodGet, "/users/999", nil, env.bearerToken(t, "alice"))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "User not found")
}

func TestUserHandler_Update(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "alice", "a@example.com", "p")

	payload := map[string]string{"email": "new@example.com"}

	w := env.doJSON(t, http.MethodPut, fmt.Sprintf("/users/%d", user.ID), payload, env.bearerToken(t, "alice"))

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "new@example.com", response.Email)
	require.Equal(t, "alice", response.Username)

	updated, err := env.authService.GetUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", updated.Email)
}

func TestUserHandler_Update_InvalidEmail(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "alice", "a@example.com", "p")

	payload := map[string]string{"email": "not-an-email"}

	w := env.doJSON(t, http.MethodPut, fmt.Sprintf("/users/%d", user.ID), payload, env.bearerToken(t, "alice"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid email address")
}

func TestUserHandler_Update_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice", "a@example.com", "p")

	payload := map[string]string{"email": "new@example.com"}

	w := env.doJSON(t, http.MethodPut, "/users/999", payload, env.bearerToken(t, "alice"))

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_Delete_Idempotent(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice", "a@example.com", "p")
	victim := env.registerUser(t, "bob", "b@example.com", "p")
	token := env.bearerToken(t, "alice")

	w := env.doJSON(t, http.MethodDelete, fmt.Sprintf("/users/%d", victim.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Deleting again must not fail.
	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/users/%d", victim.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	// The row is gone.
	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/users/%d", victim.ID), nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_Delete_WithActivities(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "alice", "a@example.com", "p")
	victim := env.registerUser(t, "bob", "b@example.com", "p")
	env.createActivity(t, victim.ID)
	env.createActivity(t, victim.ID)
	token := env.bearerToken(t, "alice")

	// Deleting a user who still owns activities must succeed, not surface a
	// foreign key violation.
	w := env.doJSON(t, http.MethodDelete, fmt.Sprintf("/users/%d", victim.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/users/%d", victim.ID), nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)

	// The owned activities go with the user.
	var count int64
	require.NoError(t, env.db.Model(&models.Activity{}).Where("user_id = ?", victim.ID).Count(&count).Error)
	require.Zero(t, count)
}
