package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthCheck is GET /api/v1/health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NewRouter wires middleware and routes. Everything under /applications and
// /sections requires a valid session.
func NewRouter(
	log *zap.SugaredLogger,
	auth Authenticator,
	authHandler *AuthHandler,
	appHandler *ApplicationHandler,
	sectionHandler *SectionHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowCredentials = false
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		protected := api.Group("", RequireAuth(auth))
		{
			protected.GET("/auth/me", authHandler.Me)

			protected.GET("/applications", appHandler.List)
			protected.POST("/applications", appHandler.Create)
			protected.GET("/applications/:id", appHandler.Get)
			protected.PUT("/applications/:id", appHandler.Update)
			protected.PATCH("/applications/:id/status", appHandler.UpdateStatus)
			protected.DELETE("/applications/:id", appHandler.Delete)

			protected.GET("/sections", sectionHandler.List)
			protected.POST("/sections", sectionHandler.Create)
			protected.PATCH("/sections/:id", sectionHandler.Rename)
			protected.DELETE("/sections/:id", sectionHandler.Delete)
		}
	}

	return r
}
