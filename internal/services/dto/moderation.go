package dto

type FlagJobRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=2000"`
}

type ReviewFlagRequest struct {
	Status string `json:"status" validate:"required"`
}

type HideJobRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=2000"`
}
