package models

import "time"

type Payment struct {
	BaseModel
	JobID        string        `gorm:"type:uuid;not null;index" json:"job_id"`
	EmployerID   string        `gorm:"type:uuid;not null;index" json:"employer_id"`
	FreelancerID string        `gorm:"type:uuid;not null;index" json:"freelancer_id"`
	Amount       float64       `gorm:"not null" json:"amount"`
	Commission   float64       `json:"commission"`
	Status       PaymentStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	PaidAt       *time.Time    `json:"paid_at,omitempty"`
}
