package models

import "time"

// JobFlag - жалоба пользователя на объявление.
// pending -> reviewed|dismissed, переход выполняется ровно один раз.
type JobFlag struct {
	BaseModel
	JobID      string     `gorm:"type:uuid;not null;index" json:"job_id"`
	FlaggerID  string     `gorm:"type:uuid;not null;index" json:"flagger_id"`
	Reason     string     `gorm:"type:text;not null" json:"reason"`
	Status     FlagStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ReviewedBy *string    `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}
