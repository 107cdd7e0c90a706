package dto

type CreateJobRequest struct {
	Title       string  `json:"title" validate:"required,min=5,max=200"`
	Description string  `json:"description" validate:"required,min=20"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress completed cancelled"`
}

type JobListFilter struct {
	Status string `form:"status" validate:"omitempty,oneof=open in_progress completed cancelled"`
	Search string `form:"search"`
}

type CreateProposalRequest struct {
	CoverLetter string  `json:"cover_letter" validate:"required,min=10"`
	BidAmount   float64 `json:"bid_amount" validate:"required,gt=0"`
}

type UpdateProposalRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected withdrawn"`
}
