package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytebites/backend/internal/types"
)

func TestRegisterAndLogin(t *testing.T) {
	api := setupAPI(t)
	token, user := api.register("Alice", "alice@example.com")
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)

	claims, err := api.auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID())
	assert.Equal(t, "Alice", claims.Name)

	w := api.do(http.MethodPost, "/api/auth/login", "", types.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	api := setupAPI(t)
	api.register("Alice", "alice@example.com")

	w := api.do(http.MethodPost, "/api/auth/register", "", types.RegisterRequest{
		Name:     "Impostor",
		Email:    "Alice@Example.com",
		Password: "another-password",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	api := setupAPI(t)

	w := api.do(http.MethodPost, "/api/auth/register", "", types.RegisterRequest{
		Name:     "Alice",
		Email:    "not-an-email",
		Password: "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	details, ok := decodeError(t, w)["details"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}

func TestLoginWrongPassword(t *testing.T) {
	api := setupAPI(t)
	api.register("Alice", "alice@example.com")

	w := api.do(http.MethodPost, "/api/auth/login", "", types.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/auth/login", "", types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealth(t *testing.T) {
	api := setupAPI(t)

	w := api.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","database":"ok"}`, w.Body.String())
}
