package middleware

import (
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// abortWithError пишет стандартный конверт ошибки и обрывает цепочку.
// Отказы гейтов выглядят для клиента так же, как ошибки хендлеров.
func abortWithError(c *gin.Context, err *apperrors.AppError) {
	apperrors.HandleError(c, err)
	c.Abort()
}

// AuthMiddleware - проверка JWT и загрузка актора из БД.
//
// Токен валиден только вместе с живым аккаунтом: несуществующий
// пользователь дает 401, заблокированный - 403. Загруженный *models.User
// кладется в контекст, хендлеры его не перечитывают.
func AuthMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			abortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			abortWithError(c, apperrors.ErrInvalidToken)
			return
		}
		if user.IsBlocked {
			abortWithError(c, apperrors.ErrAccountBlocked)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(contextkeys.ActorContextKey), user)
		c.Next()
	}
}

// OptionalAuthMiddleware - как AuthMiddleware, но без обязательного токена.
// Публичные роуты, меняющие выдачу для staff, используют его.
func OptionalAuthMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.Next()
			return
		}
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil || user.IsBlocked {
			c.Next()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(contextkeys.ActorContextKey), user)
		c.Next()
	}
}

// RequireRole - точное совпадение роли
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor == nil {
			abortWithError(c, apperrors.NewUnauthorizedError("User not authenticated"))
			return
		}
		if actor.Role != role {
			abortWithError(c, apperrors.NewForbiddenError("Access denied: insufficient permissions"))
			return
		}
		c.Next()
	}
}

// RequireMinRole пропускает роль с рангом не ниже minRole.
// Ранги: freelancer/employer < support < manager < admin.
func RequireMinRole(minRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor == nil {
			abortWithError(c, apperrors.NewUnauthorizedError("User not authenticated"))
			return
		}
		if !auth.AtLeast(string(actor.Role), string(minRole)) {
			abortWithError(c, apperrors.NewForbiddenError("Access denied: insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetActor извлекает загруженного пользователя из контекста.
// nil означает, что AuthMiddleware не отработал.
func GetActor(c *gin.Context) *models.User {
	val, exists := c.Get(string(contextkeys.ActorContextKey))
	if !exists {
		return nil
	}
	actor, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return actor
}
