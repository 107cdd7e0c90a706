package services

import (
	"context"
	"fmt"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// AdminService - управление пользователями и агрегаты админки.
// Правила самозащиты (нельзя менять свою роль, блокировать себя,
// блокировать админов, менеджер не трогает admin/manager) живут здесь,
// а не в gate: gate отвечает только за ранги.
type AdminService interface {
	ListUsers(filter dto.AdminUserFilter) ([]models.User, int64, error)
	ChangeRole(ctx context.Context, actor *models.User, targetID, role, ip string) error
	BlockUser(ctx context.Context, actor *models.User, targetID, reason, ip string) error
	UnblockUser(ctx context.Context, actor *models.User, targetID, ip string) error
	DeleteUser(ctx context.Context, actor *models.User, targetID, ip string) error

	BulkBlock(ctx context.Context, actor *models.User, userIDs []string, reason, ip string) (*dto.BulkResult, error)
	BulkUnblock(ctx context.Context, actor *models.User, userIDs []string, ip string) (*dto.BulkResult, error)
	BulkChangeRole(ctx context.Context, actor *models.User, userIDs []string, role, ip string) (*dto.BulkResult, error)

	GetAuditLogs(filter dto.AuditLogFilter) ([]models.AuditLog, int64, error)

	StatsOverview(period string) (*repositories.OverviewStats, error)
	StatsRevenue(period string) (*repositories.RevenueStats, error)
	StatsUsers(period string) (*repositories.UserStats, error)
	StatsJobs(period string) (*repositories.JobStats, error)
}

type AdminServiceImpl struct {
	userRepo  repositories.UserRepository
	statsRepo repositories.StatsRepository
	audit     AuditService
	email     email.Provider
}

func NewAdminService(userRepo repositories.UserRepository, statsRepo repositories.StatsRepository, audit AuditService, emailProvider email.Provider) AdminService {
	return &AdminServiceImpl{
		userRepo:  userRepo,
		statsRepo: statsRepo,
		audit:     audit,
		email:     emailProvider,
	}
}

func (s *AdminServiceImpl) ListUsers(filter dto.AdminUserFilter) ([]models.User, int64, error) {
	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:      models.UserRole(filter.Role),
		IsBlocked: filter.IsBlocked,
		Search:    filter.Search,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return users, total, nil
}

// canAssignRole проверяет правила иерархии для смены роли.
// Менеджеру запрещены обе стороны перехода с участием admin/manager.
func canAssignRole(actor *models.User, target *models.User, newRole string) error {
	if err := auth.ValidateRole(newRole); err != nil {
		return apperrors.ErrInvalidUserRole
	}
	if actor.ID == target.ID {
		return apperrors.ErrSelfRoleChange
	}
	if actor.Role != models.UserRoleAdmin {
		if !auth.AssignableByManager(newRole) || !auth.AssignableByManager(string(target.Role)) {
			return apperrors.ErrRoleEscalation
		}
	}
	return nil
}

func (s *AdminServiceImpl) ChangeRole(ctx context.Context, actor *models.User, targetID, role, ip string) error {
	target, err := s.findUser(targetID)
	if err != nil {
		return err
	}
	if err := canAssignRole(actor, target, role); err != nil {
		return err
	}
	if string(target.Role) == role {
		// Роль не меняется - ничего не пишем, в том числе в аудит
		return nil
	}

	oldRole := target.Role
	if err := s.userRepo.SetRole(targetID, models.UserRole(role)); err != nil {
		return apperrors.InternalError(err)
	}

	s.audit.LogAction(ctx, &actor.ID, models.AuditRoleChanged, "user", &targetID,
		map[string]any{"role": oldRole},
		map[string]any{"role": role},
		ip,
	)
	return nil
}

func (s *AdminServiceImpl) BlockUser(ctx context.Context, actor *models.User, targetID, reason, ip string) error {
	target, err := s.findUser(targetID)
	if err != nil {
		return err
	}
	if actor.ID == target.ID {
		return apperrors.ErrSelfBlock
	}
	if target.Role == models.UserRoleAdmin {
		return apperrors.ErrAdminNotBlocking
	}
	if target.IsBlocked {
		return apperrors.ErrAlreadyBlocked
	}

	if err := s.userRepo.SetBlocked(targetID, true, reason); err != nil {
		return apperrors.InternalError(err)
	}

	s.audit.LogAction(ctx, &actor.ID, models.AuditUserBlocked, "user", &targetID,
		map[string]any{"is_blocked": false},
		map[string]any{"is_blocked": true, "reason": reason},
		ip,
	)

	// Уведомление - best-effort, как и аудит
	if err := s.email.Send(target.Email, "Your account has been blocked",
		fmt.Sprintf("Your account was blocked by the moderation team. Reason: %s", reason)); err != nil {
		logger.CtxWithError(ctx, "block notification email failed", err, "user_id", targetID)
	}
	return nil
}

func (s *AdminServiceImpl) UnblockUser(ctx context.Context, actor *models.User, targetID, ip string) error {
	target, err := s.findUser(targetID)
	if err != nil {
		return err
	}
	if !target.IsBlocked {
		return apperrors.ErrNotBlocked
	}

	if err := s.userRepo.SetBlocked(targetID, false, ""); err != nil {
		return apperrors.InternalError(err)
	}

	s.audit.LogAction(ctx, &actor.ID, models.AuditUserUnblocked, "user", &targetID,
		map[string]any{"is_blocked": true},
		map[string]any{"is_blocked": false},
		ip,
	)
	return nil
}

func (s *AdminServiceImpl) DeleteUser(ctx context.Context, actor *models.User, targetID, ip string) error {
	if actor.ID == targetID {
		return apperrors.ErrSelfDelete
	}
	target, err := s.findUser(targetID)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(targetID); err != nil {
		return apperrors.InternalError(err)
	}

	s.audit.LogAction(ctx, &actor.ID, models.AuditUserDeleted, "user", &targetID,
		map[string]any{"email": target.Email, "role": target.Role},
		nil,
		ip,
	)
	return nil
}

// BulkBlock блокирует пачку пользователей.
// Пропускает самого актора, админов и уже заблокированных; возвращает
// только агрегированный счетчик. Одна запись аудита на каждую мутацию.
func (s *AdminServiceImpl) BulkBlock(ctx context.Context, actor *models.User, userIDs []string, reason, ip string) (*dto.BulkResult, error) {
	if err := validateBulkIDs(userIDs); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	affected := 0
	for _, u := range users {
		if u.ID == actor.ID || u.Role == models.UserRoleAdmin || u.IsBlocked {
			continue
		}
		if err := s.userRepo.SetBlocked(u.ID, true, reason); err != nil {
			logger.CtxWithError(ctx, "bulk block failed for user", err, "user_id", u.ID)
			continue
		}
		uid := u.ID
		s.audit.LogAction(ctx, &actor.ID, models.AuditUserBlocked, "user", &uid,
			map[string]any{"is_blocked": false},
			map[string]any{"is_blocked": true, "reason": reason},
			ip,
		)
		affected++
	}
	return &dto.BulkResult{Affected: affected}, nil
}

func (s *AdminServiceImpl) BulkUnblock(ctx context.Context, actor *models.User, userIDs []string, ip string) (*dto.BulkResult, error) {
	if err := validateBulkIDs(userIDs); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	affected := 0
	for _, u := range users {
		if !u.IsBlocked {
			continue
		}
		if err := s.userRepo.SetBlocked(u.ID, false, ""); err != nil {
			logger.CtxWithError(ctx, "bulk unblock failed for user", err, "user_id", u.ID)
			continue
		}
		uid := u.ID
		s.audit.LogAction(ctx, &actor.ID, models.AuditUserUnblocked, "user", &uid,
			map[string]any{"is_blocked": true},
			map[string]any{"is_blocked": false},
			ip,
		)
		affected++
	}
	return &dto.BulkResult{Affected: affected}, nil
}

func (s *AdminServiceImpl) BulkChangeRole(ctx context.Context, actor *models.User, userIDs []string, role, ip string) (*dto.BulkResult, error) {
	if err := validateBulkIDs(userIDs); err != nil {
		return nil, err
	}
	if err := auth.ValidateRole(role); err != nil {
		return nil, apperrors.ErrInvalidUserRole
	}

	users, err := s.userRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	affected := 0
	for _, u := range users {
		target := u
		if canAssignRole(actor, &target, role) != nil {
			continue
		}
		if string(target.Role) == role {
			continue
		}
		if err := s.userRepo.SetRole(target.ID, models.UserRole(role)); err != nil {
			logger.CtxWithError(ctx, "bulk role change failed for user", err, "user_id", target.ID)
			continue
		}
		uid := target.ID
		s.audit.LogAction(ctx, &actor.ID, models.AuditRoleChanged, "user", &uid,
			map[string]any{"role": target.Role},
			map[string]any{"role": role},
			ip,
		)
		affected++
	}
	return &dto.BulkResult{Affected: affected}, nil
}

func (s *AdminServiceImpl) GetAuditLogs(filter dto.AuditLogFilter) ([]models.AuditLog, int64, error) {
	logs, total, err := s.audit.GetLogs(filter)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return logs, total, nil
}

// periodStart переводит period в начало интервала.
// nil означает "за все время".
func periodStart(period string) (*time.Time, error) {
	now := time.Now()
	var since time.Time

	switch period {
	case "week", "":
		since = now.AddDate(0, 0, -7)
	case "month":
		since = now.AddDate(0, -1, 0)
	case "year":
		since = now.AddDate(-1, 0, 0)
	case "all":
		return nil, nil
	default:
		return nil, apperrors.NewBadRequestError("period must be one of: week, month, year, all")
	}
	return &since, nil
}

func (s *AdminServiceImpl) StatsOverview(period string) (*repositories.OverviewStats, error) {
	since, err := periodStart(period)
	if err != nil {
		return nil, err
	}
	stats, err := s.statsRepo.Overview(since)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

func (s *AdminServiceImpl) StatsRevenue(period string) (*repositories.RevenueStats, error) {
	since, err := periodStart(period)
	if err != nil {
		return nil, err
	}
	stats, err := s.statsRepo.Revenue(since)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

func (s *AdminServiceImpl) StatsUsers(period string) (*repositories.UserStats, error) {
	since, err := periodStart(period)
	if err != nil {
		return nil, err
	}
	stats, err := s.statsRepo.Users(since)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

func (s *AdminServiceImpl) StatsJobs(period string) (*repositories.JobStats, error) {
	since, err := periodStart(period)
	if err != nil {
		return nil, err
	}
	stats, err := s.statsRepo.Jobs(since)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

func (s *AdminServiceImpl) findUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func validateBulkIDs(ids []string) error {
	if len(ids) == 0 {
		return apperrors.ErrBulkEmpty
	}
	if len(ids) > 100 {
		return apperrors.ErrBulkLimit
	}
	return nil
}
