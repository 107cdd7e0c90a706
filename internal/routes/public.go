package routes

import (
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func SetupPublicRoutes(rg *gin.RouterGroup, appHandlers *handlers.AppHandlers, userRepo repositories.UserRepository, loginLimiter *middleware.LoginRateLimiter) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", appHandlers.AuthHandler.Register)
		auth.POST("/login", loginLimiter.Middleware(), appHandlers.AuthHandler.Login)
		auth.POST("/refresh", appHandlers.AuthHandler.RefreshToken)
		auth.POST("/logout", appHandlers.AuthHandler.Logout)
	}

	// Листинг публичный; токен опционален, чтобы staff и владелец
	// видели скрытые объявления по прямой ссылке
	jobs := rg.Group("/jobs")
	jobs.Use(middleware.OptionalAuthMiddleware(userRepo))
	{
		jobs.GET("", appHandlers.JobHandler.List)
		jobs.GET("/:id", appHandlers.JobHandler.Get)
	}
}
