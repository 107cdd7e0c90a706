package integration_test

import (
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestFlagReviewFlow - жалоба проходит pending -> reviewed ровно один раз
func TestFlagReviewFlow(t *testing.T) {
	ts := GetTestServer(t)

	_, employer := helpers.CreateAndLoginUser(t, ts, "Employer", helpers.UniqueEmail("employer"), "password123", models.UserRoleEmployer)
	freelancerToken, _ := helpers.CreateAndLoginUser(t, ts, "Freelancer", helpers.UniqueEmail("freelancer"), "password123", models.UserRoleFreelancer)
	supportToken, _ := helpers.CreateAndLoginUser(t, ts, "Support", helpers.UniqueEmail("support"), "password123", models.UserRoleSupport)

	job := helpers.CreateTestJob(t, ts.DB, employer.ID, "Suspicious job")

	// Жалоба от фрилансера
	flagBody := map[string]interface{}{"reason": "Looks like a scam"}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/flags", freelancerToken, flagBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "pending")

	var flag models.JobFlag
	assert.NoError(t, ts.DB.Where("job_id = ?", job.ID).First(&flag).Error)

	// Ревью support-ом
	reviewBody := map[string]interface{}{"status": "reviewed"}
	res, bodyStr = ts.SendRequest(t, "PUT", "/api/v1/moderation/flags/"+flag.ID, supportToken, reviewBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "reviewed")

	// Повторное ревью запрещено
	res, bodyStr = ts.SendRequest(t, "PUT", "/api/v1/moderation/flags/"+flag.ID, supportToken, reviewBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "already been reviewed")

	// В аудите ровно одна запись о ревью
	var count int64
	ts.DB.Model(&models.AuditLog{}).Where("action = ? AND entity_id = ?", models.AuditFlagReviewed, flag.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

// TestReviewFlag_BadDecision - произвольный статус не принимается
func TestReviewFlag_BadDecision(t *testing.T) {
	ts := GetTestServer(t)

	_, employer := helpers.CreateAndLoginUser(t, ts, "Employer", helpers.UniqueEmail("employer"), "password123", models.UserRoleEmployer)
	supportToken, support := helpers.CreateAndLoginUser(t, ts, "Support", helpers.UniqueEmail("support"), "password123", models.UserRoleSupport)

	job := helpers.CreateTestJob(t, ts.DB, employer.ID, "Some job")
	flag := helpers.CreateTestFlag(t, ts.DB, job.ID, support.ID)

	reviewBody := map[string]interface{}{"status": "approved"}
	res, _ := ts.SendRequest(t, "PUT", "/api/v1/moderation/flags/"+flag.ID, supportToken, reviewBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestModeration_RequiresStaff - обычные роли в зону модерации не попадают
func TestModeration_RequiresStaff(t *testing.T) {
	ts := GetTestServer(t)

	freelancerToken, _ := helpers.CreateAndLoginUser(t, ts, "Freelancer", helpers.UniqueEmail("freelancer"), "password123", models.UserRoleFreelancer)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/moderation/flags/pending", freelancerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestHideRestoreJob - скрытие убирает объявление из выдачи,
// восстановление возвращает; повторы дают 400
func TestHideRestoreJob(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, employer := helpers.CreateAndLoginUser(t, ts, "Employer", helpers.UniqueEmail("employer"), "password123", models.UserRoleEmployer)
	supportToken, _ := helpers.CreateAndLoginUser(t, ts, "Support", helpers.UniqueEmail("support"), "password123", models.UserRoleSupport)

	job := helpers.CreateTestJob(t, ts.DB, employer.ID, "Job to hide")

	hideBody := map[string]interface{}{"reason": "Spam content"}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/moderation/jobs/"+job.ID+"/hide", supportToken, hideBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Повторное скрытие - 400
	res, _ = ts.SendRequest(t, "POST", "/api/v1/moderation/jobs/"+job.ID+"/hide", supportToken, hideBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Скрытое объявление не видно в публичной выдаче
	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, "Job to hide")

	// Аноним по прямой ссылке получает 404
	res, _ = ts.SendRequest(t, "GET", "/api/v1/jobs/"+job.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Владелец видит свое скрытое объявление
	res, _ = ts.SendRequest(t, "GET", "/api/v1/jobs/"+job.ID, employerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Восстановление
	res, _ = ts.SendRequest(t, "POST", "/api/v1/moderation/jobs/"+job.ID+"/restore", supportToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Повторное восстановление - 400
	res, _ = ts.SendRequest(t, "POST", "/api/v1/moderation/jobs/"+job.ID+"/restore", supportToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Снова в публичной выдаче
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/jobs", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Job to hide")

	// Пара записей в аудите: одно скрытие и одно восстановление
	var hidden, restored int64
	ts.DB.Model(&models.AuditLog{}).Where("action = ? AND entity_id = ?", models.AuditJobHidden, job.ID).Count(&hidden)
	ts.DB.Model(&models.AuditLog{}).Where("action = ? AND entity_id = ?", models.AuditJobRestored, job.ID).Count(&restored)
	assert.Equal(t, int64(1), hidden)
	assert.Equal(t, int64(1), restored)
}

// TestListHiddenJobs - listing для staff
func TestListHiddenJobs(t *testing.T) {
	ts := GetTestServer(t)

	_, employer := helpers.CreateAndLoginUser(t, ts, "Employer", helpers.UniqueEmail("employer"), "password123", models.UserRoleEmployer)
	supportToken, _ := helpers.CreateAndLoginUser(t, ts, "Support", helpers.UniqueEmail("support"), "password123", models.UserRoleSupport)

	job := helpers.CreateTestJob(t, ts.DB, employer.ID, "Hidden inventory")
	hideBody := map[string]interface{}{"reason": "Duplicate posting"}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/moderation/jobs/"+job.ID+"/hide", supportToken, hideBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/moderation/jobs/hidden", supportToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Hidden inventory")
}
