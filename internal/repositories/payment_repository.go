package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(payment *models.Payment) error
	FindByJob(jobID string) ([]models.Payment, error)
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByJob(jobID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&payments).Error
	return payments, err
}
