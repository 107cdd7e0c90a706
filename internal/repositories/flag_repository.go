package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFlagNotFound = errors.New("flag not found")

type FlagRepository interface {
	Create(flag *models.JobFlag) error
	FindByID(id string) (*models.JobFlag, error)
	FindByJob(jobID string) ([]models.JobFlag, error)
	FindPending(page, pageSize int) ([]models.JobFlag, int64, error)
	SetReviewed(flagID string, status models.FlagStatus, reviewerID string) error
}

type FlagRepositoryImpl struct {
	db *gorm.DB
}

func NewFlagRepository(db *gorm.DB) FlagRepository {
	return &FlagRepositoryImpl{db: db}
}

func (r *FlagRepositoryImpl) Create(flag *models.JobFlag) error {
	return r.db.Create(flag).Error
}

func (r *FlagRepositoryImpl) FindByID(id string) (*models.JobFlag, error) {
	var flag models.JobFlag
	err := r.db.First(&flag, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlagNotFound
		}
		return nil, err
	}
	return &flag, nil
}

func (r *FlagRepositoryImpl) FindByJob(jobID string) ([]models.JobFlag, error) {
	var flags []models.JobFlag
	err := r.db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&flags).Error
	return flags, err
}

func (r *FlagRepositoryImpl) FindPending(page, pageSize int) ([]models.JobFlag, int64, error) {
	var flags []models.JobFlag
	query := r.db.Model(&models.JobFlag{}).Where("status = ?", models.FlagStatusPending)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at ASC").Limit(pageSize).Offset(offset).Find(&flags).Error
	return flags, total, err
}

// SetReviewed переводит pending-жалобу в терминальный статус.
// Условие status = 'pending' в WHERE защищает от двойного ревью на уровне БД.
func (r *FlagRepositoryImpl) SetReviewed(flagID string, status models.FlagStatus, reviewerID string) error {
	now := time.Now()
	result := r.db.Model(&models.JobFlag{}).
		Where("id = ? AND status = ?", flagID, models.FlagStatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"reviewed_by": reviewerID,
			"reviewed_at": now,
			"updated_at":  now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFlagNotFound
	}
	return nil
}
