package services

import (
	"context"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobService interface {
	Create(ctx context.Context, actor *models.User, req *dto.CreateJobRequest) (*models.Job, error)
	List(filter dto.JobListFilter, page, pageSize int) ([]models.Job, int64, error)
	// Get учитывает скрытие: скрытое объявление видит только staff и владелец
	Get(actor *models.User, jobID string) (*models.Job, error)
	UpdateStatus(ctx context.Context, actor *models.User, jobID, status string) (*models.Job, error)
}

type JobServiceImpl struct {
	jobRepo      repositories.JobRepository
	proposalRepo repositories.ProposalRepository
	paymentRepo  repositories.PaymentRepository
}

// Комиссия платформы с завершенной работы
const platformCommissionRate = 0.10

func NewJobService(jobRepo repositories.JobRepository, proposalRepo repositories.ProposalRepository, paymentRepo repositories.PaymentRepository) JobService {
	return &JobServiceImpl{
		jobRepo:      jobRepo,
		proposalRepo: proposalRepo,
		paymentRepo:  paymentRepo,
	}
}

func (s *JobServiceImpl) Create(ctx context.Context, actor *models.User, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		EmployerID:  actor.ID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Status:      models.JobStatusOpen,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) List(filter dto.JobListFilter, page, pageSize int) ([]models.Job, int64, error) {
	jobs, total, err := s.jobRepo.FindVisible(repositories.JobFilter{
		Status:   models.JobStatus(filter.Status),
		Search:   filter.Search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return jobs, total, nil
}

func (s *JobServiceImpl) Get(actor *models.User, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.IsHidden {
		// Для обычных пользователей скрытое объявление не существует
		if actor == nil || (!auth.IsStaff(string(actor.Role)) && actor.ID != job.EmployerID) {
			return nil, apperrors.ErrJobNotFound
		}
	}
	return job, nil
}

// UpdateStatus - смена статуса владельцем.
// Перевод в completed создает запись оплаты по принятому предложению.
func (s *JobServiceImpl) UpdateStatus(ctx context.Context, actor *models.User, jobID, status string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.EmployerID != actor.ID {
		return nil, apperrors.NewForbiddenError("Only the job owner can change its status")
	}

	newStatus := models.JobStatus(status)
	if err := s.jobRepo.UpdateStatus(jobID, newStatus); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if newStatus == models.JobStatusCompleted && job.Status != models.JobStatusCompleted {
		s.recordPayment(ctx, job)
	}

	return s.jobRepo.FindByID(jobID)
}

// recordPayment фиксирует оплату по принятому предложению. Работает
// best-effort: смена статуса не откатывается из-за пропавшей записи оплаты.
// Отсутствие принятого предложения - не ошибка (работа могла вестись вне платформы).
func (s *JobServiceImpl) recordPayment(ctx context.Context, job *models.Job) {
	proposals, err := s.proposalRepo.FindByJob(job.ID)
	if err != nil {
		logger.CtxWithError(ctx, "payment record skipped: proposals lookup failed (swallowed)", err, "job_id", job.ID)
		return
	}
	for _, p := range proposals {
		if p.Status != models.ProposalStatusAccepted {
			continue
		}
		now := time.Now()
		payment := &models.Payment{
			JobID:        job.ID,
			EmployerID:   job.EmployerID,
			FreelancerID: p.FreelancerID,
			Amount:       p.BidAmount,
			Commission:   p.BidAmount * platformCommissionRate,
			Status:       models.PaymentStatusPaid,
			PaidAt:       &now,
		}
		if err := s.paymentRepo.Create(payment); err != nil {
			logger.CtxWithError(ctx, "payment record failed (swallowed)", err, "job_id", job.ID)
		}
		return
	}
}
