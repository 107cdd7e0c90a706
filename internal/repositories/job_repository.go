package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	UpdateStatus(jobID string, status models.JobStatus) error
	FindVisible(filter JobFilter) ([]models.Job, int64, error)

	// Модерация
	SetHidden(jobID, reason, actorID string) error
	ClearHidden(jobID string) error
	FindHidden(page, pageSize int) ([]models.Job, int64, error)
}

type JobFilter struct {
	EmployerID string
	Status     models.JobStatus
	Search     string
	Page       int
	PageSize   int
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) UpdateStatus(jobID string, status models.JobStatus) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", jobID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// FindVisible возвращает только нескрытые объявления
func (r *JobRepositoryImpl) FindVisible(filter JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job
	query := r.db.Model(&models.Job{}).Where("is_hidden = ?", false)

	if filter.EmployerID != "" {
		query = query.Where("employer_id = ?", filter.EmployerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := query.Order("created_at DESC").Limit(filter.PageSize).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) SetHidden(jobID, reason, actorID string) error {
	now := time.Now()
	result := r.db.Model(&models.Job{}).Where("id = ?", jobID).Updates(map[string]interface{}{
		"is_hidden":     true,
		"hidden_reason": reason,
		"hidden_at":     now,
		"hidden_by":     actorID,
		"updated_at":    now,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) ClearHidden(jobID string) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", jobID).Updates(map[string]interface{}{
		"is_hidden":     false,
		"hidden_reason": "",
		"hidden_at":     nil,
		"hidden_by":     nil,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) FindHidden(page, pageSize int) ([]models.Job, int64, error) {
	var jobs []models.Job
	query := r.db.Model(&models.Job{}).Where("is_hidden = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("hidden_at DESC").Limit(pageSize).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}
