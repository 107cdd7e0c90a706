package services

import (
	"context"
	"errors"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
)

type fakeProposalRepo struct {
	proposals []models.Proposal
}

func (r *fakeProposalRepo) Create(proposal *models.Proposal) error { return nil }

func (r *fakeProposalRepo) FindByID(id string) (*models.Proposal, error) {
	return nil, repositories.ErrProposalNotFound
}

func (r *fakeProposalRepo) FindByJob(jobID string) ([]models.Proposal, error) {
	return r.proposals, nil
}

func (r *fakeProposalRepo) FindByJobAndFreelancer(jobID, freelancerID string) (*models.Proposal, error) {
	return nil, repositories.ErrProposalNotFound
}

func (r *fakeProposalRepo) UpdateStatus(proposalID string, status models.ProposalStatus) error {
	return nil
}

type failingPaymentRepo struct {
	calls int
}

func (r *failingPaymentRepo) Create(payment *models.Payment) error {
	r.calls++
	return errors.New("payments table unavailable")
}

func (r *failingPaymentRepo) FindByJob(jobID string) ([]models.Payment, error) {
	return nil, nil
}

// TestCompleteJob_PaymentWriteFailureDoesNotBlock - запись оплаты best-effort:
// ее ошибка не откатывает перевод объявления в completed
func TestCompleteJob_PaymentWriteFailureDoesNotBlock(t *testing.T) {
	employer := &models.User{
		BaseModel: models.BaseModel{ID: "employer-1"},
		Role:      models.UserRoleEmployer,
	}
	jobRepo := newFakeJobRepo(&models.Job{
		BaseModel:  models.BaseModel{ID: "job-1"},
		EmployerID: employer.ID,
		Status:     models.JobStatusInProgress,
	})
	proposalRepo := &fakeProposalRepo{proposals: []models.Proposal{{
		BaseModel:    models.BaseModel{ID: "proposal-1"},
		JobID:        "job-1",
		FreelancerID: "freelancer-1",
		BidAmount:    500,
		Status:       models.ProposalStatusAccepted,
	}}}
	paymentRepo := &failingPaymentRepo{}
	svc := NewJobService(jobRepo, proposalRepo, paymentRepo)

	job, err := svc.UpdateStatus(context.Background(), employer, "job-1", "completed")
	assert.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, job.Status)
	assert.Equal(t, 1, paymentRepo.calls)
}
