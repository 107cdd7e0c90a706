package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Действия аудита - фиксированный словарь
const (
	AuditUserBlocked         = "USER_BLOCKED"
	AuditUserUnblocked       = "USER_UNBLOCKED"
	AuditRoleChanged         = "ROLE_CHANGED"
	AuditUserDeleted         = "USER_DELETED"
	AuditJobHidden           = "JOB_HIDDEN"
	AuditJobRestored         = "JOB_RESTORED"
	AuditFlagReviewed        = "FLAG_REVIEWED"
	AuditFlagDismissed       = "FLAG_DISMISSED"
	AuditTicketStatusChanged = "TICKET_STATUS_CHANGED"
	AuditTicketDeleted       = "TICKET_DELETED"
)

// AuditLog - неизменяемая запись привилегированного действия.
// Неизменяемость обеспечена отсутствием update/delete в репозитории,
// а не проверками времени выполнения.
type AuditLog struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	ActorID    *string   `gorm:"type:uuid;index" json:"actor_id"` // nil = системное действие
	Action     string    `gorm:"type:varchar(40);not null;index" json:"action"`
	EntityType string    `gorm:"type:varchar(40);not null;index" json:"entity_type"`
	EntityID   *string   `json:"entity_id"`
	OldValue   string    `gorm:"type:text" json:"old_value,omitempty"` // JSON-снимок до
	NewValue   string    `gorm:"type:text" json:"new_value,omitempty"` // JSON-снимок после
	IP         string    `gorm:"type:varchar(45)" json:"ip,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
