package services

import (
	"context"
	"sync"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

// Фейковые репозитории в памяти для юнит-тестов сервисов.

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
}

func newFakeJobRepo(jobs ...*models.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: make(map[string]*models.Job)}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	snapshot := *job
	return &snapshot, nil
}

func (r *fakeJobRepo) UpdateStatus(jobID string, status models.JobStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	job.Status = status
	return nil
}

func (r *fakeJobRepo) FindVisible(filter repositories.JobFilter) ([]models.Job, int64, error) {
	return nil, 0, nil
}

func (r *fakeJobRepo) SetHidden(jobID, reason, actorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	job.IsHidden = true
	job.HiddenReason = reason
	return nil
}

func (r *fakeJobRepo) ClearHidden(jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	job.IsHidden = false
	job.HiddenReason = ""
	return nil
}

func (r *fakeJobRepo) FindHidden(page, pageSize int) ([]models.Job, int64, error) {
	return nil, 0, nil
}

type fakeFlagRepo struct{}

func (r *fakeFlagRepo) Create(flag *models.JobFlag) error { return nil }

func (r *fakeFlagRepo) FindByID(id string) (*models.JobFlag, error) {
	return nil, repositories.ErrFlagNotFound
}

func (r *fakeFlagRepo) FindByJob(jobID string) ([]models.JobFlag, error) { return nil, nil }

func (r *fakeFlagRepo) FindPending(page, pageSize int) ([]models.JobFlag, int64, error) {
	return nil, 0, nil
}

func (r *fakeFlagRepo) SetReviewed(flagID string, status models.FlagStatus, reviewerID string) error {
	return nil
}

type fakeAudit struct{}

func (a *fakeAudit) LogAction(ctx context.Context, actorID *string, action, entityType string, entityID *string, oldValue, newValue any, ip string) *string {
	return nil
}

func (a *fakeAudit) GetLogs(filter dto.AuditLogFilter) ([]models.AuditLog, int64, error) {
	return nil, 0, nil
}

func testModerator() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: "moderator-1"},
		Role:      models.UserRoleManager,
	}
}

// TestJobLocks_ReleasedAfterUse - запись мьютекса не переживает операцию
func TestJobLocks_ReleasedAfterUse(t *testing.T) {
	jobRepo := newFakeJobRepo(&models.Job{
		BaseModel:  models.BaseModel{ID: "job-1"},
		EmployerID: "employer-1",
		Status:     models.JobStatusOpen,
	})
	svc := NewModerationService(jobRepo, &fakeFlagRepo{}, &fakeAudit{}).(*ModerationServiceImpl)
	actor := testModerator()

	assert.NoError(t, svc.HideJob(context.Background(), actor, "job-1", "spam", "127.0.0.1"))
	assert.Empty(t, svc.jobLocks)

	assert.NoError(t, svc.RestoreJob(context.Background(), actor, "job-1", "127.0.0.1"))
	assert.Empty(t, svc.jobLocks)

	// Ошибочный путь тоже освобождает запись
	err := svc.HideJob(context.Background(), actor, "missing-job", "spam", "127.0.0.1")
	assert.True(t, apperrors.Is(err, apperrors.ErrJobNotFound))
	assert.Empty(t, svc.jobLocks)
}

// TestJobLocks_ConcurrentHide - из параллельных скрытий проходит ровно одно
func TestJobLocks_ConcurrentHide(t *testing.T) {
	jobRepo := newFakeJobRepo(&models.Job{
		BaseModel:  models.BaseModel{ID: "job-1"},
		EmployerID: "employer-1",
		Status:     models.JobStatusOpen,
	})
	svc := NewModerationService(jobRepo, &fakeFlagRepo{}, &fakeAudit{}).(*ModerationServiceImpl)
	actor := testModerator()

	const workers = 16
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.HideJob(context.Background(), actor, "job-1", "spam", "127.0.0.1")
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, alreadyHidden int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case apperrors.Is(err, apperrors.ErrJobHidden):
			alreadyHidden++
		default:
			t.Fatalf("неожиданная ошибка: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, alreadyHidden)
	assert.Empty(t, svc.jobLocks)
}
