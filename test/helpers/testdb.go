package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя, хешируя пароль при необходимости
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		DisplayName:  name,
		Role:         role,
	}
	err := CreateUser(t, ts.DB, user)
	assert.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Data struct {
			Token string `json:"access_token"`
		} `json:"data"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Data.Token, "Токен не должен быть пустым")

	return loginResponse.Data.Token, user
}

// UniqueEmail - уникальный email на базе префикса
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateTestJob создает объявление напрямую в БД
func CreateTestJob(t *testing.T, db *gorm.DB, employerID, title string) models.Job {
	job := models.Job{
		EmployerID:  employerID,
		Title:       title,
		Description: "Test description, long enough to be plausible",
		Budget:      1000,
		Status:      models.JobStatusOpen,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}
	return job
}

// CreateTestFlag создает жалобу напрямую в БД
func CreateTestFlag(t *testing.T, db *gorm.DB, jobID, flaggerID string) models.JobFlag {
	flag := models.JobFlag{
		JobID:     jobID,
		FlaggerID: flaggerID,
		Reason:    "spam",
		Status:    models.FlagStatusPending,
	}
	if err := db.Create(&flag).Error; err != nil {
		t.Fatalf("Failed to create test flag: %v", err)
	}
	return flag
}

// CreateTestTicket создает тикет напрямую в БД
func CreateTestTicket(t *testing.T, db *gorm.DB, userID, subject string) models.SupportTicket {
	ticket := models.SupportTicket{
		UserID:   userID,
		Subject:  subject,
		Body:     "Something went wrong, please take a look",
		Status:   models.TicketStatusOpen,
		Priority: models.TicketPriorityMedium,
	}
	if err := db.Create(&ticket).Error; err != nil {
		t.Fatalf("Failed to create test ticket: %v", err)
	}
	return ticket
}
