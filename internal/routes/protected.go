package routes

import (
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// SetupProtectedRoutes - маршруты для аутентифицированных пользователей
// и зона модерации (support и выше).
func SetupProtectedRoutes(rg *gin.RouterGroup, appHandlers *handlers.AppHandlers, userRepo repositories.UserRepository) {
	authed := rg.Group("")
	authed.Use(middleware.AuthMiddleware(userRepo))
	{
		users := authed.Group("/users")
		{
			users.GET("/me", appHandlers.UserHandler.Me)
			users.PUT("/me", appHandlers.UserHandler.UpdateMe)
		}

		jobs := authed.Group("/jobs")
		{
			jobs.POST("", appHandlers.JobHandler.Create)
			jobs.PUT("/:id/status", appHandlers.JobHandler.UpdateStatus)
			jobs.POST("/:id/proposals", appHandlers.JobHandler.SubmitProposal)
			jobs.GET("/:id/proposals", appHandlers.JobHandler.ListProposals)
			jobs.POST("/:id/flags", appHandlers.ModerationHandler.FlagJob)
		}

		authed.PUT("/proposals/:id", appHandlers.JobHandler.DecideProposal)

		tickets := authed.Group("/tickets")
		{
			tickets.POST("", appHandlers.TicketHandler.Create)
			tickets.GET("/my", appHandlers.TicketHandler.ListMine)
			tickets.GET("/:id", appHandlers.TicketHandler.Get)
		}
	}

	moderation := rg.Group("/moderation")
	moderation.Use(middleware.AuthMiddleware(userRepo), middleware.RequireMinRole(models.UserRoleSupport))
	{
		moderation.GET("/flags/pending", appHandlers.ModerationHandler.ListPendingFlags)
		moderation.PUT("/flags/:id", appHandlers.ModerationHandler.ReviewFlag)
		moderation.GET("/jobs/:id/flags", appHandlers.ModerationHandler.ListJobFlags)
		moderation.POST("/jobs/:id/hide", appHandlers.ModerationHandler.HideJob)
		moderation.POST("/jobs/:id/restore", appHandlers.ModerationHandler.RestoreJob)
		moderation.GET("/jobs/hidden", appHandlers.ModerationHandler.ListHiddenJobs)
	}
}
