package services

import (
	"jobboard_backend/internal/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService       AuthService
	UserService       UserService
	JobService        JobService
	ProposalService   ProposalService
	ModerationService ModerationService
	AdminService      AdminService
	TicketService     TicketService
	AuditService      AuditService
	EmailService      email.Provider
}
