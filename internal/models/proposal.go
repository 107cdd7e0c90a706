package models

type Proposal struct {
	BaseModel
	JobID        string         `gorm:"type:uuid;not null;index" json:"job_id"`
	FreelancerID string         `gorm:"type:uuid;not null;index" json:"freelancer_id"`
	CoverLetter  string         `gorm:"type:text" json:"cover_letter"`
	BidAmount    float64        `json:"bid_amount"`
	Status       ProposalStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
}
