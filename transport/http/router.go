package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gatehouse/gatehouse/service"
)

// SetupRouter sets up the Gin router. The login route is the only
// unauthenticated entry under /api: it is registered outside the
// protected group, so the exempt set is this one exact route rather
// than a path-substring check.
func SetupRouter(authService *service.AuthService, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	handlers := NewAuthHandlers(authService, logger)

	api := router.Group("/api")
	api.POST("/login", handlers.Login)

	protected := api.Group("")
	protected.Use(AuthMiddleware(authService, logger))
	{
		protected.GET("/me", handlers.Me)
		protected.GET("/authorize", handlers.Authorize)
	}

	router.GET("/healthz", handlers.Health)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	return router
}
