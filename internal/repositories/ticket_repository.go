package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found")

type TicketRepository interface {
	Create(ticket *models.SupportTicket) error
	FindByID(id string) (*models.SupportTicket, error)
	FindByUser(userID string) ([]models.SupportTicket, error)
	FindWithFilter(filter TicketFilter) ([]models.SupportTicket, int64, error)
	UpdateStatus(ticketID string, status models.TicketStatus, assignedTo *string) error

	// Bulk operations возвращают число затронутых строк
	BulkUpdateStatus(ids []string, status models.TicketStatus) (int64, error)
	BulkDelete(ids []string) (int64, error)
}

type TicketFilter struct {
	Status   models.TicketStatus
	Priority models.TicketPriority
	Page     int
	PageSize int
}

type TicketRepositoryImpl struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &TicketRepositoryImpl{db: db}
}

func (r *TicketRepositoryImpl) Create(ticket *models.SupportTicket) error {
	return r.db.Create(ticket).Error
}

func (r *TicketRepositoryImpl) FindByID(id string) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	err := r.db.First(&ticket, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepositoryImpl) FindByUser(userID string) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tickets).Error
	return tickets, err
}

func (r *TicketRepositoryImpl) FindWithFilter(filter TicketFilter) ([]models.SupportTicket, int64, error) {
	var tickets []models.SupportTicket
	query := r.db.Model(&models.SupportTicket{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := query.Order("created_at DESC").Limit(filter.PageSize).Offset(offset).Find(&tickets).Error
	return tickets, total, err
}

func (r *TicketRepositoryImpl) UpdateStatus(ticketID string, status models.TicketStatus, assignedTo *string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if assignedTo != nil {
		updates["assigned_to"] = *assignedTo
	}

	result := r.db.Model(&models.SupportTicket{}).Where("id = ?", ticketID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}

func (r *TicketRepositoryImpl) BulkUpdateStatus(ids []string, status models.TicketStatus) (int64, error) {
	result := r.db.Model(&models.SupportTicket{}).Where("id IN ?", ids).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	return result.RowsAffected, result.Error
}

func (r *TicketRepositoryImpl) BulkDelete(ids []string) (int64, error) {
	result := r.db.Where("id IN ?", ids).Delete(&models.SupportTicket{})
	return result.RowsAffected, result.Error
}
