package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	*BaseHandler
	moderationService services.ModerationService
}

func NewModerationHandler(base *BaseHandler, moderationService services.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		BaseHandler:       base,
		moderationService: moderationService,
	}
}

// FlagJob - пожаловаться может любой аутентифицированный пользователь
func (h *ModerationHandler) FlagJob(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.FlagJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	flag, err := h.moderationService.FlagJob(c.Request.Context(), actor, c.Param("id"), req.Reason, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, flag)
}

func (h *ModerationHandler) ListJobFlags(c *gin.Context) {
	flags, err := h.moderationService.ListJobFlags(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, flags)
}

func (h *ModerationHandler) ListPendingFlags(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	flags, total, err := h.moderationService.ListPendingFlags(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Paginated(c, flags, total, page, pageSize)
}

func (h *ModerationHandler) ReviewFlag(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.ReviewFlagRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	flag, err := h.moderationService.ReviewFlag(c.Request.Context(), actor, c.Param("id"), req.Status, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, flag)
}

func (h *ModerationHandler) HideJob(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.HideJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.moderationService.HideJob(c.Request.Context(), actor, c.Param("id"), req.Reason, c.ClientIP()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Job hidden"})
}

func (h *ModerationHandler) RestoreJob(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	if err := h.moderationService.RestoreJob(c.Request.Context(), actor, c.Param("id"), c.ClientIP()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Job restored"})
}

func (h *ModerationHandler) ListHiddenJobs(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	jobs, total, err := h.moderationService.ListHiddenJobs(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Paginated(c, jobs, total, page, pageSize)
}
