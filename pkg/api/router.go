package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"onboardly/pkg/middleware"
)

// NewRouter builds the gin engine serving the lead intake API
func NewRouter(handlers *Handlers, logger *zap.Logger, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins...))

	handlers.Register(router)
	return router
}
