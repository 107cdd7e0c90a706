package services

import (
	"context"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ProposalService interface {
	Submit(ctx context.Context, actor *models.User, jobID string, req *dto.CreateProposalRequest) (*models.Proposal, error)
	ListByJob(actor *models.User, jobID string) ([]models.Proposal, error)
	// Decide: accepted/rejected решает владелец объявления,
	// withdrawn - сам фрилансер
	Decide(ctx context.Context, actor *models.User, proposalID, status string) (*models.Proposal, error)
}

type ProposalServiceImpl struct {
	proposalRepo repositories.ProposalRepository
	jobRepo      repositories.JobRepository
}

func NewProposalService(proposalRepo repositories.ProposalRepository, jobRepo repositories.JobRepository) ProposalService {
	return &ProposalServiceImpl{
		proposalRepo: proposalRepo,
		jobRepo:      jobRepo,
	}
}

func (s *ProposalServiceImpl) Submit(ctx context.Context, actor *models.User, jobID string, req *dto.CreateProposalRequest) (*models.Proposal, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.IsHidden {
		return nil, apperrors.ErrJobNotFound
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobNotOpen
	}
	if job.EmployerID == actor.ID {
		return nil, apperrors.ErrOwnJobProposal
	}

	// Одно активное предложение на пару (job, freelancer)
	if existing, err := s.proposalRepo.FindByJobAndFreelancer(jobID, actor.ID); err == nil {
		if existing.Status == models.ProposalStatusPending || existing.Status == models.ProposalStatusAccepted {
			return nil, apperrors.NewConflictError("You already have an active proposal for this job")
		}
	}

	proposal := &models.Proposal{
		JobID:        jobID,
		FreelancerID: actor.ID,
		CoverLetter:  req.CoverLetter,
		BidAmount:    req.BidAmount,
		Status:       models.ProposalStatusPending,
	}
	if err := s.proposalRepo.Create(proposal); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return proposal, nil
}

// ListByJob - предложения видят владелец объявления и staff
func (s *ProposalServiceImpl) ListByJob(actor *models.User, jobID string) ([]models.Proposal, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.EmployerID != actor.ID && !auth.IsStaff(string(actor.Role)) {
		return nil, apperrors.NewForbiddenError("Only the job owner can view its proposals")
	}

	proposals, err := s.proposalRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return proposals, nil
}

func (s *ProposalServiceImpl) Decide(ctx context.Context, actor *models.User, proposalID, status string) (*models.Proposal, error) {
	proposal, err := s.proposalRepo.FindByID(proposalID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProposalNotFound) {
			return nil, apperrors.ErrProposalNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if proposal.Status != models.ProposalStatusPending {
		return nil, apperrors.ErrProposalFinalized
	}

	job, err := s.jobRepo.FindByID(proposal.JobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	newStatus := models.ProposalStatus(status)
	switch newStatus {
	case models.ProposalStatusWithdrawn:
		if proposal.FreelancerID != actor.ID {
			return nil, apperrors.ErrProposalNotYours
		}
	case models.ProposalStatusAccepted, models.ProposalStatusRejected:
		if job.EmployerID != actor.ID {
			return nil, apperrors.ErrProposalNotYours
		}
	default:
		return nil, apperrors.NewBadRequestError("status must be one of: accepted, rejected, withdrawn")
	}

	if err := s.proposalRepo.UpdateStatus(proposalID, newStatus); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Принятие предложения переводит объявление в работу
	if newStatus == models.ProposalStatusAccepted && job.Status == models.JobStatusOpen {
		if err := s.jobRepo.UpdateStatus(job.ID, models.JobStatusInProgress); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.proposalRepo.FindByID(proposalID)
}
