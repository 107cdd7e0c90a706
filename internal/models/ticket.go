package models

type SupportTicket struct {
	BaseModel
	UserID     string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Subject    string         `gorm:"not null" json:"subject"`
	Body       string         `gorm:"type:text" json:"body"`
	Status     TicketStatus   `gorm:"type:varchar(20);default:'open';index" json:"status"`
	Priority   TicketPriority `gorm:"type:varchar(10);default:'medium'" json:"priority"`
	AssignedTo *string        `gorm:"type:uuid" json:"assigned_to,omitempty"`
}
