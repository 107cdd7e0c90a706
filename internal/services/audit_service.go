package services

import (
	"context"
	"encoding/json"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/metrics"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

// AuditService - журнал привилегированных действий.
//
// LogAction работает по принципу best-effort: ошибка записи аудита
// логируется и НИКОГДА не доходит до вызывающего кода. Пользовательская
// мутация не должна откатываться из-за пропавшей записи журнала.
type AuditService interface {
	LogAction(ctx context.Context, actorID *string, action, entityType string, entityID *string, oldValue, newValue any, ip string) *string
	GetLogs(filter dto.AuditLogFilter) ([]models.AuditLog, int64, error)
}

type AuditServiceImpl struct {
	repo repositories.AuditRepository
}

func NewAuditService(repo repositories.AuditRepository) AuditService {
	return &AuditServiceImpl{repo: repo}
}

// LogAction сериализует снимки в JSON и добавляет запись.
// Возвращает id новой записи либо nil при любой ошибке.
func (s *AuditServiceImpl) LogAction(ctx context.Context, actorID *string, action, entityType string, entityID *string, oldValue, newValue any, ip string) *string {
	entry := &models.AuditLog{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldValue:   marshalSnapshot(ctx, oldValue),
		NewValue:   marshalSnapshot(ctx, newValue),
		IP:         ip,
	}

	if err := s.repo.Create(entry); err != nil {
		metrics.AuditWriteFailures.Inc()
		logger.CtxWithError(ctx, "audit write failed (swallowed)", err,
			"action", action,
			"entity_type", entityType,
		)
		return nil
	}
	return &entry.ID
}

func (s *AuditServiceImpl) GetLogs(filter dto.AuditLogFilter) ([]models.AuditLog, int64, error) {
	return s.repo.FindWithFilter(repositories.AuditFilter{
		ActorID:    filter.UserID,
		EntityType: filter.EntityType,
		Action:     filter.Action,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	})
}

func marshalSnapshot(ctx context.Context, v any) string {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		logger.CtxWithError(ctx, "audit snapshot marshal failed", err)
		return ""
	}
	return string(data)
}
