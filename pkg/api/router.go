package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ragecodemaster/landing/pkg/middleware"
)

// NewRouter registers every route on a gin engine with the default
// logger and recovery middleware.
func NewRouter(h *Handlers, corsOrigin string) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())

	router.GET("/", h.Landing)
	router.POST("/consultation", h.SubmitConsultation)
	router.GET("/card-link", h.CardLinkPage)
	router.POST("/card-link", h.SubmitCardLink)
	router.GET("/health", h.HealthCheck)

	apiGroup := router.Group("/api", middleware.CORS(corsOrigin))
	apiGroup.POST("/format", h.Format)
	apiGroup.POST("/telegram", h.Notify)
	apiGroup.OPTIONS("/*path", func(c *gin.Context) {})

	return router
}
