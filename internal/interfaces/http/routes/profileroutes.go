package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jerphayes/Coogsnation-sub000/internal/interfaces/http/handlers"
	"github.com/jerphayes/Coogsnation-sub000/internal/interfaces/http/middleware"
)

// ProfileRouteConfig holds dependencies for profile routes.
type ProfileRouteConfig struct {
	ProfileHandler *handlers.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupProfileRoutes configures profile completion and the community
// membership probe.
func SetupProfileRoutes(engine *gin.Engine, cfg *ProfileRouteConfig) {
	api := engine.Group("/api")
	{
		api.PUT("/profile", cfg.AuthMiddleware.RequireAuth(), cfg.ProfileHandler.UpdateProfile)

		community := api.Group("/community")
		community.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireCommunityMember())
		{
			community.GET("/status", cfg.ProfileHandler.CommunityStatus)
		}
	}
}
