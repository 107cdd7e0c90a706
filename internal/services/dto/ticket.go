package dto

type CreateTicketRequest struct {
	Subject  string `json:"subject" validate:"required,min=3,max=200"`
	Body     string `json:"body" validate:"required,min=10"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type TicketListFilter struct {
	Status   string `form:"status" validate:"omitempty,oneof=open in_progress escalated resolved closed"`
	Priority string `form:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

type BulkTicketStatusRequest struct {
	TicketIDs []string `json:"ticket_ids" validate:"required,min=1,max=100"`
	Status    string   `json:"status" validate:"required"`
}

type BulkTicketDeleteRequest struct {
	TicketIDs []string `json:"ticket_ids" validate:"required,min=1,max=100"`
}
