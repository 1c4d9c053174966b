package routes

import (
	"flexygig/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты приложения.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.User.RegisterRoutes(api)
		appHandlers.WorkerProfile.RegisterRoutes(api)
		appHandlers.Tag.RegisterRoutes(api)
		appHandlers.Message.RegisterRoutes(api)
		appHandlers.Search.RegisterRoutes(api)
	}
}
