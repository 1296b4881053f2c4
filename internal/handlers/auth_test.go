package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irinaLuta25/creative-writing-platform/internal/models"
	"github.com/irinaLuta25/creative-writing-platform/pkg/utils"
)

func TestRegisterThenLogin(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, "POST", "/api/user/register", map[string]interface{}{
		"displayName": "Ana Popescu",
		"email":       "ana.reg@example.com",
		"password":    "parola123",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var registered struct {
		Token string `json:"token"`
		User  struct {
			ID      string   `json:"id"`
			Email   string   `json:"email"`
			Roles   []string `json:"roles"`
			Profile struct {
				DisplayName string `json:"displayName"`
				Username    string `json:"username"`
			} `json:"profile"`
		} `json:"user"`
	}
	decode(t, w, &registered)

	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "ana.reg@example.com", registered.User.Email)
	assert.Equal(t, []string{"user"}, registered.User.Roles)
	// Username defaults to the email's local part.
	assert.Equal(t, "ana.reg", registered.User.Profile.Username)
	// The password hash must never appear in the response.
	assert.NotContains(t, w.Body.String(), "passwordHash")

	w = e.do(t, "POST", "/api/user/login", map[string]interface{}{
		"email":    "ana.reg@example.com",
		"password": "parola123",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var loggedIn struct {
		Token string `json:"token"`
	}
	decode(t, w, &loggedIn)

	claims, err := utils.ValidateToken(loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "ana.reg@example.com", claims.Email)
	assert.Equal(t, []string{"user"}, claims.Roles)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := setupEnv(t)

	body := map[string]interface{}{
		"displayName": "Mihai",
		"email":       "dup@example.com",
		"password":    "parola123",
	}

	w := e.do(t, "POST", "/api/user/register", body, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = e.do(t, "POST", "/api/user/register", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterValidation(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, "POST", "/api/user/register", map[string]interface{}{
		"displayName": "A",
		"email":       "not-an-email",
		"password":    "short",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	decode(t, w, &response)

	fields := make([]string, 0, len(response.Errors))
	for _, fe := range response.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "displayName")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestLoginInvalid(t *testing.T) {
	e := setupEnv(t)
	e.createUser(t, "exists@example.com", "Exists")

	// Unknown user and wrong password get the same generic answer.
	w := e.do(t, "POST", "/api/user/login", map[string]interface{}{
		"email":    "missing@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid login")

	w = e.do(t, "POST", "/api/user/login", map[string]interface{}{
		"email":    "exists@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid login")
}

func TestGetAndUpdateProfile(t *testing.T) {
	e := setupEnv(t)
	user, token := e.createUser(t, "profile@example.com", "Before Edit")

	w := e.do(t, "GET", "/api/user/me", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, "PUT", "/api/user/me", map[string]interface{}{
		"displayName": "After Edit",
		"bio":         "Scriu seara.",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	decode(t, w, &updated)
	assert.Equal(t, "After Edit", updated.Profile.DisplayName)
	assert.Equal(t, "Scriu seara.", updated.Profile.Bio)
	assert.Equal(t, user.ID, updated.ID)

	w = e.do(t, "GET", "/api/user/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
