package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// AuditRepository - append-only журнал.
// Update/Delete намеренно отсутствуют в интерфейсе.
type AuditRepository interface {
	Create(entry *models.AuditLog) error
	FindWithFilter(filter AuditFilter) ([]models.AuditLog, int64, error)
}

type AuditFilter struct {
	ActorID    string
	EntityType string
	Action     string
	Page       int
	PageSize   int
}

type AuditRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &AuditRepositoryImpl{db: db}
}

func (r *AuditRepositoryImpl) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *AuditRepositoryImpl) FindWithFilter(filter AuditFilter) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	query := r.db.Model(&models.AuditLog{})

	if filter.ActorID != "" {
		query = query.Where("actor_id = ?", filter.ActorID)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := query.Order("created_at DESC").Limit(filter.PageSize).Offset(offset).Find(&entries).Error
	return entries, total, err
}
