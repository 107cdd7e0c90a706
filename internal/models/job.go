package models

import "time"

type Job struct {
	BaseModel
	EmployerID  string    `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Budget      float64   `json:"budget"`
	Status      JobStatus `gorm:"type:varchar(20);default:'open';index" json:"status"`

	// Скрытие модерацией. Независимо от жалоб: админ может скрыть напрямую.
	IsHidden     bool       `gorm:"default:false;index" json:"is_hidden"`
	HiddenReason string     `json:"hidden_reason,omitempty"`
	HiddenAt     *time.Time `json:"hidden_at,omitempty"`
	HiddenBy     *string    `gorm:"type:uuid" json:"hidden_by,omitempty"`
}
