package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/ratelimit"
	"github.com/jerphayes/Coogsnation-sub000/internal/interfaces/http/handlers"
	"github.com/jerphayes/Coogsnation-sub000/internal/interfaces/http/middleware"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	MFAHandler     *handlers.MFAHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures the login, callback, logout, local account,
// and verification code routes. The callback paths are fixed per provider
// because each integration registers its own redirect URL.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	api := engine.Group("/api")
	{
		// Replit is the default provider and owns the bare login/callback pair.
		api.GET("/login", cfg.AuthHandler.Initiate(constants.ProviderReplit))
		api.GET("/callback", cfg.AuthHandler.Callback(constants.ProviderReplit))
		api.GET("/logout", cfg.AuthHandler.Logout)

		auth := api.Group("/auth")
		{
			auth.GET("/facebook", cfg.AuthHandler.Initiate(constants.ProviderFacebook))
			auth.GET("/facebook/callback", cfg.AuthHandler.Callback(constants.ProviderFacebook))
			auth.GET("/linkedin", cfg.AuthHandler.Initiate(constants.ProviderLinkedIn))
			auth.GET("/linkedin/callback", cfg.AuthHandler.Callback(constants.ProviderLinkedIn))

			auth.GET("/user", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetCurrentUser)

			auth.POST("/register", cfg.RateLimiter.Limit("login", ratelimit.LoginLimit), cfg.AuthHandler.Register)
			auth.POST("/login", cfg.RateLimiter.Limit("login", ratelimit.LoginLimit), cfg.AuthHandler.Login)

			mfa := auth.Group("/mfa")
			mfa.Use(cfg.AuthMiddleware.RequireAuth())
			{
				mfa.POST("/request", cfg.RateLimiter.Limit("verification", ratelimit.VerificationLimit), cfg.MFAHandler.RequestCode)
				mfa.POST("/verify", cfg.RateLimiter.Limit("verification", ratelimit.VerificationLimit), cfg.MFAHandler.VerifyCode)
				mfa.POST("/cancel", cfg.MFAHandler.CancelCode)
			}

			auth.POST("/forgot-password", cfg.RateLimiter.Limit("verification", ratelimit.VerificationLimit), cfg.MFAHandler.ForgotPassword)
			auth.POST("/reset-password", cfg.RateLimiter.Limit("verification", ratelimit.VerificationLimit), cfg.MFAHandler.ResetPassword)
		}
	}
}
