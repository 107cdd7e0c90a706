package services

import (
	"context"
	"fmt"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type TicketService interface {
	Create(ctx context.Context, actor *models.User, req *dto.CreateTicketRequest) (*models.SupportTicket, error)
	Get(actor *models.User, ticketID string) (*models.SupportTicket, error)
	ListMine(actor *models.User) ([]models.SupportTicket, error)
	ListAll(filter dto.TicketListFilter, page, pageSize int) ([]models.SupportTicket, int64, error)
	UpdateStatus(ctx context.Context, actor *models.User, ticketID, status, ip string) (*models.SupportTicket, error)
	BulkUpdateStatus(ctx context.Context, actor *models.User, ticketIDs []string, status, ip string) (*dto.BulkResult, error)
	BulkDelete(ctx context.Context, actor *models.User, ticketIDs []string, ip string) (*dto.BulkResult, error)
}

type TicketServiceImpl struct {
	ticketRepo repositories.TicketRepository
	userRepo   repositories.UserRepository
	audit      AuditService
	email      email.Provider
}

func NewTicketService(ticketRepo repositories.TicketRepository, userRepo repositories.UserRepository, audit AuditService, emailProvider email.Provider) TicketService {
	return &TicketServiceImpl{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		audit:      audit,
		email:      emailProvider,
	}
}

func (s *TicketServiceImpl) Create(ctx context.Context, actor *models.User, req *dto.CreateTicketRequest) (*models.SupportTicket, error) {
	priority := models.TicketPriority(req.Priority)
	if priority == "" {
		priority = models.TicketPriorityMedium
	}

	ticket := &models.SupportTicket{
		UserID:   actor.ID,
		Subject:  req.Subject,
		Body:     req.Body,
		Status:   models.TicketStatusOpen,
		Priority: priority,
	}
	if err := s.ticketRepo.Create(ticket); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ticket, nil
}

// Get - тикет видят автор и staff
func (s *TicketServiceImpl) Get(actor *models.User, ticketID string) (*models.SupportTicket, error) {
	ticket, err := s.findTicket(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != actor.ID && !auth.IsStaff(string(actor.Role)) {
		return nil, apperrors.ErrTicketNotFound
	}
	return ticket, nil
}

func (s *TicketServiceImpl) ListMine(actor *models.User) ([]models.SupportTicket, error) {
	tickets, err := s.ticketRepo.FindByUser(actor.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tickets, nil
}

func (s *TicketServiceImpl) ListAll(filter dto.TicketListFilter, page, pageSize int) ([]models.SupportTicket, int64, error) {
	tickets, total, err := s.ticketRepo.FindWithFilter(repositories.TicketFilter{
		Status:   models.TicketStatus(filter.Status),
		Priority: models.TicketPriority(filter.Priority),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return tickets, total, nil
}

// UpdateStatus - смена статуса тикета сотрудником поддержки.
// Взятый в работу тикет закрепляется за актором; перевод в resolved
// уведомляет автора письмом.
func (s *TicketServiceImpl) UpdateStatus(ctx context.Context, actor *models.User, ticketID, status, ip string) (*models.SupportTicket, error) {
	newStatus := models.TicketStatus(status)
	if !models.ValidTicketStatus(newStatus) {
		return nil, apperrors.ErrInvalidTicketStatus
	}

	ticket, err := s.findTicket(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == newStatus {
		return ticket, nil
	}

	var assignedTo *string
	if newStatus == models.TicketStatusInProgress && ticket.AssignedTo == nil {
		assignedTo = &actor.ID
	}

	if err := s.ticketRepo.UpdateStatus(ticketID, newStatus, assignedTo); err != nil {
		if apperrors.Is(err, repositories.ErrTicketNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	s.audit.LogAction(ctx, &actor.ID, models.AuditTicketStatusChanged, "support_ticket", &ticketID,
		map[string]any{"status": ticket.Status},
		map[string]any{"status": newStatus},
		ip,
	)

	if newStatus == models.TicketStatusResolved {
		s.notifyResolved(ctx, ticket)
	}

	return s.ticketRepo.FindByID(ticketID)
}

func (s *TicketServiceImpl) BulkUpdateStatus(ctx context.Context, actor *models.User, ticketIDs []string, status, ip string) (*dto.BulkResult, error) {
	if err := validateBulkIDs(ticketIDs); err != nil {
		return nil, err
	}
	newStatus := models.TicketStatus(status)
	if !models.ValidTicketStatus(newStatus) {
		return nil, apperrors.ErrInvalidTicketStatus
	}

	affected, err := s.ticketRepo.BulkUpdateStatus(ticketIDs, newStatus)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit.LogAction(ctx, &actor.ID, models.AuditTicketStatusChanged, "support_ticket", nil,
		nil,
		map[string]any{"status": newStatus, "ticket_ids": ticketIDs, "affected": affected},
		ip,
	)
	return &dto.BulkResult{Affected: int(affected)}, nil
}

func (s *TicketServiceImpl) BulkDelete(ctx context.Context, actor *models.User, ticketIDs []string, ip string) (*dto.BulkResult, error) {
	if err := validateBulkIDs(ticketIDs); err != nil {
		return nil, err
	}

	affected, err := s.ticketRepo.BulkDelete(ticketIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit.LogAction(ctx, &actor.ID, models.AuditTicketDeleted, "support_ticket", nil,
		map[string]any{"ticket_ids": ticketIDs, "affected": affected},
		nil,
		ip,
	)
	return &dto.BulkResult{Affected: int(affected)}, nil
}

func (s *TicketServiceImpl) notifyResolved(ctx context.Context, ticket *models.SupportTicket) {
	author, err := s.userRepo.FindByID(ticket.UserID)
	if err != nil {
		return
	}
	if err := s.email.Send(author.Email, "Your support ticket has been resolved",
		fmt.Sprintf("Your ticket %q has been resolved. Reply to reopen it.", ticket.Subject)); err != nil {
		logger.CtxWithError(ctx, "ticket resolved email failed", err, "ticket_id", ticket.ID)
	}
}

func (s *TicketServiceImpl) findTicket(id string) (*models.SupportTicket, error) {
	ticket, err := s.ticketRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTicketNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return ticket, nil
}
