package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// ActorContextKey - ключ, по которому AuthMiddleware кладет загруженного
// *models.User в gin.Context. Хендлеры не перечитывают актора из БД.
const ActorContextKey = contextKey("actor")
