package services

import (
	"context"
	"sync"

	"jobboard_backend/internal/metrics"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// ModerationService - жалобы, скрытие и восстановление объявлений.
//
// hide/restore для одного job_id сериализуются keyed-мьютексом:
// окно между "проверили, что не скрыто" и "скрыли" закрыто в рамках
// одного процесса, двух параллельных JOB_HIDDEN для одного действия
// в журнале не будет.
type ModerationService interface {
	FlagJob(ctx context.Context, actor *models.User, jobID, reason, ip string) (*models.JobFlag, error)
	ListJobFlags(jobID string) ([]models.JobFlag, error)
	ListPendingFlags(page, pageSize int) ([]models.JobFlag, int64, error)
	ReviewFlag(ctx context.Context, actor *models.User, flagID, status, ip string) (*models.JobFlag, error)
	HideJob(ctx context.Context, actor *models.User, jobID, reason, ip string) error
	RestoreJob(ctx context.Context, actor *models.User, jobID, ip string) error
	ListHiddenJobs(page, pageSize int) ([]models.Job, int64, error)
}

type ModerationServiceImpl struct {
	jobRepo  repositories.JobRepository
	flagRepo repositories.FlagRepository
	audit    AuditService

	mu       sync.Mutex
	jobLocks map[string]*jobLock
}

// jobLock считает держателей: запись в jobLocks живет, только пока
// мьютекс кому-то нужен, и удаляется последним держателем.
type jobLock struct {
	mu   sync.Mutex
	refs int
}

func NewModerationService(jobRepo repositories.JobRepository, flagRepo repositories.FlagRepository, audit AuditService) ModerationService {
	return &ModerationServiceImpl{
		jobRepo:  jobRepo,
		flagRepo: flagRepo,
		audit:    audit,
		jobLocks: make(map[string]*jobLock),
	}
}

// lockJob захватывает мьютекс конкретного объявления
func (s *ModerationServiceImpl) lockJob(jobID string) *jobLock {
	s.mu.Lock()
	lock, ok := s.jobLocks[jobID]
	if !ok {
		lock = &jobLock{}
		s.jobLocks[jobID] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.mu.Lock()
	return lock
}

func (s *ModerationServiceImpl) unlockJob(jobID string, lock *jobLock) {
	lock.mu.Unlock()

	s.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(s.jobLocks, jobID)
	}
	s.mu.Unlock()
}

func (s *ModerationServiceImpl) FlagJob(ctx context.Context, actor *models.User, jobID, reason, ip string) (*models.JobFlag, error) {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	flag := &models.JobFlag{
		JobID:     jobID,
		FlaggerID: actor.ID,
		Reason:    reason,
		Status:    models.FlagStatusPending,
	}
	if err := s.flagRepo.Create(flag); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return flag, nil
}

func (s *ModerationServiceImpl) ListJobFlags(jobID string) ([]models.JobFlag, error) {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	flags, err := s.flagRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return flags, nil
}

func (s *ModerationServiceImpl) ListPendingFlags(page, pageSize int) ([]models.JobFlag, int64, error) {
	flags, total, err := s.flagRepo.FindPending(page, pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return flags, total, nil
}

// ReviewFlag переводит жалобу pending -> reviewed|dismissed.
// Повторное ревью запрещено: не-pending жалоба дает 400.
func (s *ModerationServiceImpl) ReviewFlag(ctx context.Context, actor *models.User, flagID, status, ip string) (*models.JobFlag, error) {
	decision := models.FlagStatus(status)
	if decision != models.FlagStatusReviewed && decision != models.FlagStatusDismissed {
		return nil, apperrors.ErrBadFlagDecision
	}

	flag, err := s.flagRepo.FindByID(flagID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFlagNotFound) {
			return nil, apperrors.ErrFlagNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if flag.Status != models.FlagStatusPending {
		return nil, apperrors.ErrFlagNotPending
	}

	oldStatus := flag.Status
	if err := s.flagRepo.SetReviewed(flagID, decision, actor.ID); err != nil {
		if apperrors.Is(err, repositories.ErrFlagNotFound) {
			// Гонка: кто-то успел отревьюить между чтением и записью
			return nil, apperrors.ErrFlagNotPending
		}
		return nil, apperrors.InternalError(err)
	}

	action := models.AuditFlagReviewed
	if decision == models.FlagStatusDismissed {
		action = models.AuditFlagDismissed
	}
	s.audit.LogAction(ctx, &actor.ID, action, "job_flag", &flagID,
		map[string]any{"status": oldStatus},
		map[string]any{"status": decision, "reviewed_by": actor.ID},
		ip,
	)
	metrics.ModerationActionsTotal.WithLabelValues(action).Inc()

	return s.flagRepo.FindByID(flagID)
}

func (s *ModerationServiceImpl) HideJob(ctx context.Context, actor *models.User, jobID, reason, ip string) error {
	lock := s.lockJob(jobID)
	defer s.unlockJob(jobID, lock)

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	if job.IsHidden {
		return apperrors.ErrJobHidden
	}

	if err := s.jobRepo.SetHidden(jobID, reason, actor.ID); err != nil {
		return apperrors.InternalError(err)
	}

	s.audit.LogAction(ctx, &actor.ID, models.AuditJobHidden, "job", &jobID,
		map[string]any{"is_hidden": false},
		map[string]any{"is_hidden": true, "hidden_reason": reason},
		ip,
	)
	metrics.ModerationActionsTotal.WithLabelValues(models.AuditJobHidden).Inc()
	return nil
}

func (s *ModerationServiceImpl) RestoreJob(ctx context.Context, actor *models.User, jobID, ip string) error {
	lock := s.lockJob(jobID)
	defer s.unlockJob(jobID, lock)

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	if !job.IsHidden {
		return apperrors.ErrJobNotHidden
	}

	if err := s.jobRepo.ClearHidden(jobID); err != nil {
		return apperrors.InternalError(err)
	}

	s.audit.LogAction(ctx, &actor.ID, models.AuditJobRestored, "job", &jobID,
		map[string]any{"is_hidden": true, "hidden_reason": job.HiddenReason},
		map[string]any{"is_hidden": false},
		ip,
	)
	metrics.ModerationActionsTotal.WithLabelValues(models.AuditJobRestored).Inc()
	return nil
}

func (s *ModerationServiceImpl) ListHiddenJobs(page, pageSize int) ([]models.Job, int64, error) {
	jobs, total, err := s.jobRepo.FindHidden(page, pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return jobs, total, nil
}
