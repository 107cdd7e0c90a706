package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestJobProposalFlow - полный цикл: объявление, отклик, принятие, завершение
func TestJobProposalFlow(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, _ := helpers.CreateAndLoginUser(t, ts, "Employer", helpers.UniqueEmail("employer"), "password123", models.UserRoleEmployer)
	freelancerToken, freelancer := helpers.CreateAndLoginUser(t, ts, "Freelancer", helpers.UniqueEmail("freelancer"), "password123", models.UserRoleFreelancer)

	// Создание объявления
	jobBody := map[string]interface{}{
		"title":       "Build a landing page",
		"description": "Need a responsive landing page for a product launch",
		"budget":      500.0,
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs", employerToken, jobBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var jobResponse struct {
		Data models.Job `json:"data"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &jobResponse))
	jobID := jobResponse.Data.ID
	assert.NotEmpty(t, jobID)

	// Отклик фрилансера
	proposalBody := map[string]interface{}{
		"cover_letter": "I have built dozens of these",
		"bid_amount":   450.0,
	}
	res, _ = ts.SendRequest(t, "POST", "/api/v1/jobs/"+jobID+"/proposals", freelancerToken, proposalBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	// Повторный отклик того же фрилансера - 409
	res, _ = ts.SendRequest(t, "POST", "/api/v1/jobs/"+jobID+"/proposals", freelancerToken, proposalBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	var proposal models.Proposal
	assert.NoError(t, ts.DB.Where("job_id = ? AND freelancer_id = ?", jobID, freelancer.ID).First(&proposal).Error)

	// Чужой не видит отклики, владелец видит
	res, _ = ts.SendRequest(t, "GET", "/api/v1/jobs/"+jobID+"/proposals", freelancerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	res, _ = ts.SendRequest(t, "GET", "/api/v1/jobs/"+jobID+"/proposals", employerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Принятие переводит объявление в работу
	res, _ = ts.SendRequest(t, "PUT", "/api/v1/proposals/"+proposal.ID, employerToken, map[string]interface{}{"status": "accepted"})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var job models.Job
	assert.NoError(t, ts.DB.First(&job, "id = ?", jobID).Error)
	assert.Equal(t, models.JobStatusInProgress, job.Status)

	// Повторное решение по финализированному отклику - 400
	res, _ = ts.SendRequest(t, "PUT", "/api/v1/proposals/"+proposal.ID, employerToken, map[string]interface{}{"status": "rejected"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Завершение работы создает запись оплаты
	res, _ = ts.SendRequest(t, "PUT", "/api/v1/jobs/"+jobID+"/status", employerToken, map[string]interface{}{"status": "completed"})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var payment models.Payment
	assert.NoError(t, ts.DB.Where("job_id = ?", jobID).First(&payment).Error)
	assert.Equal(t, 450.0, payment.Amount)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
}

// TestProposal_OwnJobRejected - на свое объявление не откликнуться
func TestProposal_OwnJobRejected(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, employer := helpers.CreateAndLoginUser(t, ts, "Employer", helpers.UniqueEmail("employer"), "password123", models.UserRoleEmployer)
	job := helpers.CreateTestJob(t, ts.DB, employer.ID, "My own job")

	proposalBody := map[string]interface{}{
		"cover_letter": "Hiring myself sounds great",
		"bid_amount":   100.0,
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/proposals", employerToken, proposalBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestJobStatus_OnlyOwner - статус меняет только владелец
func TestJobStatus_OnlyOwner(t *testing.T) {
	ts := GetTestServer(t)

	_, employer := helpers.CreateAndLoginUser(t, ts, "Employer", helpers.UniqueEmail("employer"), "password123", models.UserRoleEmployer)
	strangerToken, _ := helpers.CreateAndLoginUser(t, ts, "Stranger", helpers.UniqueEmail("stranger"), "password123", models.UserRoleEmployer)

	job := helpers.CreateTestJob(t, ts.DB, employer.ID, "Not yours")

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+job.ID+"/status", strangerToken, map[string]interface{}{"status": "cancelled"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
