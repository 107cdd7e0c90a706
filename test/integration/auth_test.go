package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestAuthFlow - регистрация и логин
func TestAuthFlow(t *testing.T) {
	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"email":        "freelancer@test.com",
		"password":     "super_password123",
		"display_name": "Test Freelancer",
		"role":         "freelancer",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "freelancer@test.com")

	loginBody := map[string]interface{}{
		"email":    "freelancer@test.com",
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "access_token")
}

// TestRegister_StaffRoleRejected - support/manager/admin не регистрируются сами
func TestRegister_StaffRoleRejected(t *testing.T) {
	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"email":        "wannabe_admin@test.com",
		"password":     "super_password123",
		"display_name": "Wannabe Admin",
		"role":         "admin",
	}

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestRegister_FieldValidationMessages - ошибки валидации приходят
// с деталями по каждому полю
func TestRegister_FieldValidationMessages(t *testing.T) {
	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"email":        "not-an-email",
		"password":     "short",
		"display_name": "X",
		"role":         "freelancer",
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, `"code":"VALIDATION_FAILED"`)
	assert.Contains(t, bodyStr, `"email":"Must be a valid email address"`)
	assert.Contains(t, bodyStr, `"password":"Must be at least 8 items/characters long"`)
	assert.Contains(t, bodyStr, `"display_name":"Must be at least 2 items/characters long"`)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        "duplicate@test.com",
		PasswordHash: "pass12345",
		DisplayName:  "User One",
		Role:         models.UserRoleFreelancer,
	})
	assert.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"email":        "duplicate@test.com",
		"password":     "password_is_long_enough_123",
		"display_name": "User Two",
		"role":         "employer",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", duplicateBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "already registered")
}

func TestLogin_BadPassword(t *testing.T) {
	ts := GetTestServer(t)

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        "user@test.com",
		PasswordHash: "correct-password",
		DisplayName:  "Test User",
		Role:         models.UserRoleFreelancer,
	})
	assert.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    "user@test.com",
		"password": "wrong-password",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestLogin_LockoutAfterFailedAttempts - после N неудач вход временно закрыт
// даже с правильным паролем
func TestLogin_LockoutAfterFailedAttempts(t *testing.T) {
	ts := GetTestServer(t)

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        "lockout@test.com",
		PasswordHash: "correct-password",
		DisplayName:  "Lockout Victim",
		Role:         models.UserRoleFreelancer,
	})
	assert.NoError(t, err)

	badLogin := map[string]interface{}{
		"email":    "lockout@test.com",
		"password": "wrong-password",
	}
	for i := 0; i < 5; i++ {
		res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", badLogin)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	}

	goodLogin := map[string]interface{}{
		"email":    "lockout@test.com",
		"password": "correct-password",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", goodLogin)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "locked")
}

// TestRefreshRotation - refresh token одноразовый
func TestRefreshRotation(t *testing.T) {
	ts := GetTestServer(t)

	_, user := helpers.CreateAndLoginUser(t, ts, "Refresh User", helpers.UniqueEmail("refresh"), "password123", models.UserRoleFreelancer)

	// Логинимся повторно, чтобы получить refresh в явном виде
	loginBody := map[string]interface{}{
		"email":    user.Email,
		"password": "password123",
	}
	_, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)

	var loginResponse struct {
		Data struct {
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	refreshToken := loginResponse.Data.RefreshToken
	assert.NotEmpty(t, refreshToken)

	refreshBody := map[string]interface{}{"refresh_token": refreshToken}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Повторное использование того же refresh - 401
	res, _ = ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestBlockedUserCannotUseToken - блокировка отрезает и действующие токены
func TestBlockedUserCannotUseToken(t *testing.T) {
	ts := GetTestServer(t)

	token, user := helpers.CreateAndLoginUser(t, ts, "Soon Blocked", helpers.UniqueEmail("blocked"), "password123", models.UserRoleFreelancer)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/users/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	assert.NoError(t, ts.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("is_blocked", true).Error)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/users/me", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, `"success":false`)
	assert.Contains(t, bodyStr, `"code":"ACCOUNT_BLOCKED"`)
}
