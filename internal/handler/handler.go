package handler

import (
	"sightstory/internal/service"
	"sightstory/internal/story"

	"github.com/gin-gonic/gin"
)

// Handler serves the public HTTP API.
type Handler struct {
	authService      service.AuthService
	storyService     service.StoryService
	analyticsService service.AnalyticsService
	library          *story.Library
}

func NewHandler(
	authService service.AuthService,
	storyService service.StoryService,
	analyticsService service.AnalyticsService,
	library *story.Library,
) *Handler {
	if library == nil {
		library = story.Default()
	}
	return &Handler{
		authService:      authService,
		storyService:     storyService,
		analyticsService: analyticsService,
		library:          library,
	}
}

// RegisterRoutes mounts every route. authLimiter guards the credential
// endpoints and composeLimiter the compose endpoint; either may be nil.
func (h *Handler) RegisterRoutes(router *gin.Engine, authLimiter, composeLimiter gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	if authLimiter != nil {
		authGroup.Use(authLimiter)
	}
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.POST("/refresh", h.refresh)
		authGroup.POST("/logout", h.AuthMiddleware(), h.logout)
	}

	router.GET("/shared/:token", h.getSharedStory)

	api := router.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		api.GET("/me", h.getMe)
		api.GET("/scenes", h.listScenes)
		api.GET("/analytics/summary", h.getUsageSummary)

		compose := []gin.HandlerFunc{h.composeStory}
		if composeLimiter != nil {
			compose = append([]gin.HandlerFunc{composeLimiter}, compose...)
		}
		api.POST("/stories/compose", compose...)

		api.POST("/stories", h.saveStory)
		api.GET("/stories", h.listStories)
		api.GET("/stories/:id", h.getStory)
		api.DELETE("/stories/:id", h.deleteStory)
		api.POST("/stories/:id/share", h.shareStory)
	}
}
