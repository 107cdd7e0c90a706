package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	*BaseHandler
	ticketService services.TicketService
}

func NewTicketHandler(base *BaseHandler, ticketService services.TicketService) *TicketHandler {
	return &TicketHandler{
		BaseHandler:   base,
		ticketService: ticketService,
	}
}

func (h *TicketHandler) Create(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateTicketRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ticket, err := h.ticketService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, ticket)
}

func (h *TicketHandler) Get(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	ticket, err := h.ticketService.Get(actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, ticket)
}

func (h *TicketHandler) ListMine(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	tickets, err := h.ticketService.ListMine(actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, tickets)
}

func (h *TicketHandler) ListAll(c *gin.Context) {
	var filter dto.TicketListFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}
	page, pageSize := ParsePagination(c)

	tickets, total, err := h.ticketService.ListAll(filter, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Paginated(c, tickets, total, page, pageSize)
}

func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateTicketStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ticket, err := h.ticketService.UpdateStatus(c.Request.Context(), actor, c.Param("id"), req.Status, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, ticket)
}

func (h *TicketHandler) BulkUpdateStatus(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.BulkTicketStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.ticketService.BulkUpdateStatus(c.Request.Context(), actor, req.TicketIDs, req.Status, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, result)
}

func (h *TicketHandler) BulkDelete(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.BulkTicketDeleteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.ticketService.BulkDelete(c.Request.Context(), actor, req.TicketIDs, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, result)
}
