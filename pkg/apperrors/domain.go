package apperrors

import "net/http"

// Предопределенные доменные ошибки.
// Сервисы возвращают их напрямую, хендлеры отдают как есть.
var (
	// auth
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
	ErrAccountBlocked     = New(CodeAccountBlocked, "auth", "Account is blocked", http.StatusForbidden)
	ErrAccountLocked      = New(CodeAccountLocked, "auth", "Account is temporarily locked. Try again later", http.StatusForbidden)
	ErrEmailTaken         = New(CodeAlreadyExists, "auth", "Email is already registered", http.StatusConflict)
	ErrWeakPassword       = New(CodeValidationFailed, "auth", "Password must be at least 8 characters long", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeValidationFailed, "user", "Invalid user role", http.StatusBadRequest)

	// users / admin
	ErrUserNotFound     = New(CodeNotFound, "user", "User not found", http.StatusNotFound)
	ErrSelfRoleChange   = New(CodeInvalidOperation, "admin", "You cannot change your own role", http.StatusBadRequest)
	ErrSelfBlock        = New(CodeInvalidOperation, "admin", "You cannot block yourself", http.StatusBadRequest)
	ErrSelfDelete       = New(CodeInvalidOperation, "admin", "You cannot delete yourself", http.StatusBadRequest)
	ErrAdminNotBlocking = New(CodeForbidden, "admin", "Admin accounts cannot be blocked", http.StatusForbidden)
	ErrRoleEscalation   = New(CodeForbidden, "admin", "Managers cannot assign or revoke admin/manager roles", http.StatusForbidden)
	ErrAlreadyBlocked   = New(CodeConflict, "admin", "User is already blocked", http.StatusBadRequest)
	ErrNotBlocked       = New(CodeConflict, "admin", "User is not blocked", http.StatusBadRequest)
	ErrBulkLimit        = New(CodeLimitExceeded, "admin", "Bulk operations accept at most 100 ids", http.StatusBadRequest)
	ErrBulkEmpty        = New(CodeValidationFailed, "admin", "user_ids must not be empty", http.StatusBadRequest)

	// jobs / moderation
	ErrJobNotFound     = New(CodeNotFound, "job", "Job not found", http.StatusNotFound)
	ErrJobHidden       = New(CodeConflict, "moderation", "Job is already hidden", http.StatusBadRequest)
	ErrJobNotHidden    = New(CodeConflict, "moderation", "Job is not hidden", http.StatusBadRequest)
	ErrFlagNotFound    = New(CodeNotFound, "moderation", "Flag not found", http.StatusNotFound)
	ErrFlagNotPending  = New(CodeInvalidStatus, "moderation", "Flag has already been reviewed", http.StatusBadRequest)
	ErrBadFlagDecision = New(CodeValidationFailed, "moderation", "Status must be 'reviewed' or 'dismissed'", http.StatusBadRequest)

	// proposals
	ErrProposalNotFound  = New(CodeNotFound, "proposal", "Proposal not found", http.StatusNotFound)
	ErrProposalNotYours  = New(CodeForbidden, "proposal", "Proposal belongs to another user", http.StatusForbidden)
	ErrProposalFinalized = New(CodeInvalidStatus, "proposal", "Proposal is no longer pending", http.StatusBadRequest)
	ErrOwnJobProposal    = New(CodeInvalidOperation, "proposal", "You cannot submit a proposal to your own job", http.StatusBadRequest)
	ErrJobNotOpen        = New(CodeInvalidStatus, "proposal", "Job is not accepting proposals", http.StatusBadRequest)

	// tickets
	ErrTicketNotFound      = New(CodeNotFound, "ticket", "Ticket not found", http.StatusNotFound)
	ErrInvalidTicketStatus = New(CodeInvalidStatus, "ticket", "Invalid ticket status", http.StatusBadRequest)
)
