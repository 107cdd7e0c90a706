package routes

import (
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes - зона /admin.
// Вход - manager и выше, отдельные операции требуют admin;
// работа с тикетами открыта с роли support.
func SetupAdminRoutes(rg *gin.RouterGroup, appHandlers *handlers.AppHandlers, userRepo repositories.UserRepository) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(userRepo))

	staffOnly := admin.Group("")
	staffOnly.Use(middleware.RequireMinRole(models.UserRoleSupport))
	{
		staffOnly.GET("/tickets", appHandlers.TicketHandler.ListAll)
		staffOnly.PUT("/tickets/:id/status", appHandlers.TicketHandler.UpdateStatus)
		staffOnly.POST("/tickets/bulk/status", appHandlers.TicketHandler.BulkUpdateStatus)
	}

	managerUp := admin.Group("")
	managerUp.Use(middleware.RequireMinRole(models.UserRoleManager))
	{
		managerUp.GET("/users", appHandlers.AdminHandler.ListUsers)
		managerUp.PUT("/users/:id/role", appHandlers.AdminHandler.ChangeRole)
		managerUp.POST("/users/bulk/role", appHandlers.AdminHandler.BulkChangeRole)

		managerUp.GET("/stats/overview", appHandlers.AdminHandler.StatsOverview)
		managerUp.GET("/stats/revenue", appHandlers.AdminHandler.StatsRevenue)
		managerUp.GET("/stats/users", appHandlers.AdminHandler.StatsUsers)
		managerUp.GET("/stats/jobs", appHandlers.AdminHandler.StatsJobs)

		managerUp.POST("/tickets/bulk/delete", appHandlers.TicketHandler.BulkDelete)
	}

	adminOnly := admin.Group("")
	adminOnly.Use(middleware.RequireRole(models.UserRoleAdmin))
	{
		adminOnly.POST("/users/:id/block", appHandlers.AdminHandler.BlockUser)
		adminOnly.POST("/users/:id/unblock", appHandlers.AdminHandler.UnblockUser)
		adminOnly.DELETE("/users/:id", appHandlers.AdminHandler.DeleteUser)
		adminOnly.POST("/users/bulk/block", appHandlers.AdminHandler.BulkBlock)
		adminOnly.POST("/users/bulk/unblock", appHandlers.AdminHandler.BulkUnblock)

		adminOnly.GET("/audit-logs", appHandlers.AdminHandler.GetAuditLogs)
	}
}
