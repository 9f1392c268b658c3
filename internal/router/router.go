package router

import (
	"github.com/gin-gonic/gin"

	"docverify/internal/config"
	"docverify/internal/handler"
	"docverify/internal/middleware"
)

// Setup builds the gin engine with middleware and all routes registered.
func Setup(
	cfg *config.Config,
	verificationHandler *handler.VerificationHandler,
	documentTypesHandler *handler.DocumentTypesHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/verifications", verificationHandler.Create)
		v1.GET("/document-types", documentTypesHandler.List)
	}

	return r
}
