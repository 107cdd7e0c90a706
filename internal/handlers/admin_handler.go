package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var filter dto.AdminUserFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}
	filter.Page, filter.PageSize = ParsePagination(c)

	users, total, err := h.adminService.ListUsers(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Хеши паролей наружу не отдаем
	for i := range users {
		users[i].PasswordHash = ""
	}
	h.Paginated(c, users, total, filter.Page, filter.PageSize)
}

func (h *AdminHandler) ChangeRole(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.adminService.ChangeRole(c.Request.Context(), actor, c.Param("id"), req.Role, c.ClientIP()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Role updated"})
}

func (h *AdminHandler) BlockUser(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.BlockUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.adminService.BlockUser(c.Request.Context(), actor, c.Param("id"), req.Reason, c.ClientIP()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "User blocked"})
}

func (h *AdminHandler) UnblockUser(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	if err := h.adminService.UnblockUser(c.Request.Context(), actor, c.Param("id"), c.ClientIP()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "User unblocked"})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), actor, c.Param("id"), c.ClientIP()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "User deleted"})
}

func (h *AdminHandler) BulkBlock(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.BulkBlockRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.adminService.BulkBlock(c.Request.Context(), actor, req.UserIDs, req.Reason, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, result)
}

func (h *AdminHandler) BulkUnblock(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.BulkUserIDsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.adminService.BulkUnblock(c.Request.Context(), actor, req.UserIDs, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, result)
}

func (h *AdminHandler) BulkChangeRole(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.BulkRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.adminService.BulkChangeRole(c.Request.Context(), actor, req.UserIDs, req.Role, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, result)
}

func (h *AdminHandler) GetAuditLogs(c *gin.Context) {
	var filter dto.AuditLogFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}
	filter.Page, filter.PageSize = ParsePagination(c)

	logs, total, err := h.adminService.GetAuditLogs(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Paginated(c, logs, total, filter.Page, filter.PageSize)
}

func (h *AdminHandler) StatsOverview(c *gin.Context) {
	stats, err := h.adminService.StatsOverview(c.Query("period"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, stats)
}

func (h *AdminHandler) StatsRevenue(c *gin.Context) {
	stats, err := h.adminService.StatsRevenue(c.Query("period"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, stats)
}

func (h *AdminHandler) StatsUsers(c *gin.Context) {
	stats, err := h.adminService.StatsUsers(c.Query("period"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, stats)
}

func (h *AdminHandler) StatsJobs(c *gin.Context) {
	stats, err := h.adminService.StatsJobs(c.Query("period"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, stats)
}
