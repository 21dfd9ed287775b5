package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "github.com/jerphayes/Coogsnation-sub000/internal/application/auth/usecases"
	mfausecases "github.com/jerphayes/Coogsnation-sub000/internal/application/mfa/usecases"
	profileusecases "github.com/jerphayes/Coogsnation-sub000/internal/application/profile/usecases"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/auth"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/cache"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/config"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/notification"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/ratelimit"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/repository"
	"github.com/jerphayes/Coogsnation-sub000/internal/interfaces/http/handlers"
	"github.com/jerphayes/Coogsnation-sub000/internal/interfaces/http/middleware"
	"github.com/jerphayes/Coogsnation-sub000/internal/interfaces/http/routes"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

// loginStateTTL bounds how long a federated login attempt stays redeemable.
const loginStateTTL = 10 * time.Minute

// Router wires the HTTP surface together.
type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	mfaHandler     *handlers.MFAHandler
	profileHandler *handlers.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	logger         logger.Interface
	allowedOrigins []string
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db)
	identityRepo := repository.NewUserIdentityRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	providers := buildProviderRegistry(cfg, log)
	stateStore := cache.NewLoginStateStore(redisClient, "login_state", loginStateTTL)
	hasher := auth.NewBcryptHasher(cfg.Auth.Password.BcryptCost)

	emailTransport := notification.NewEmailTransportFromConfig(&cfg.Email, log)
	smsTransport := notification.NewSMSTransportFromConfig(&cfg.SMS, log)

	initiateUC := authusecases.NewInitiateLoginUseCase(providers, stateStore, log)
	callbackUC := authusecases.NewHandleCallbackUseCase(userRepo, identityRepo, sessionRepo, providers, stateStore, log)
	registerUC := authusecases.NewRegisterLocalUseCase(userRepo, sessionRepo, hasher, log)
	loginUC := authusecases.NewLoginLocalUseCase(userRepo, sessionRepo, hasher, log)
	logoutUC := authusecases.NewLogoutUseCase(sessionRepo, providers, cfg.Server.ClientURL, log)
	resolveUC := authusecases.NewResolveSessionUseCase(userRepo, sessionRepo, log)

	requestCodeUC := mfausecases.NewRequestCodeUseCase(userRepo, hasher, emailTransport, smsTransport, log)
	verifyCodeUC := mfausecases.NewVerifyCodeUseCase(userRepo, hasher, log)
	cancelCodeUC := mfausecases.NewCancelCodeUseCase(userRepo, log)

	requestResetUC := authusecases.NewRequestPasswordResetUseCase(userRepo, requestCodeUC, log)
	resetPasswordUC := authusecases.NewResetPasswordUseCase(userRepo, sessionRepo, verifyCodeUC, hasher, log)

	updateProfileUC := profileusecases.NewUpdateProfileUseCase(userRepo, log)

	cookieConfig := cfg.Auth.Cookie

	authHandler := handlers.NewAuthHandler(initiateUC, callbackUC, registerUC, loginUC, logoutUC, log, cookieConfig)
	mfaHandler := handlers.NewMFAHandler(requestCodeUC, verifyCodeUC, cancelCodeUC, requestResetUC, resetPasswordUC, log)
	profileHandler := handlers.NewProfileHandler(updateProfileUC, log)

	authMiddleware := middleware.NewAuthMiddleware(resolveUC, cookieConfig, log)
	rateLimiter := middleware.NewRateLimiter(ratelimit.NewRedisRateLimiter(redisClient), log)

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		mfaHandler:     mfaHandler,
		profileHandler: profileHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		logger:         log,
		allowedOrigins: cfg.Server.AllowedOrigins,
	}
}

// buildProviderRegistry registers every identity provider whose credentials
// are present. A provider with no credentials simply stays unregistered, and
// its routes answer "not configured".
func buildProviderRegistry(cfg *config.Config, log logger.Interface) *auth.ProviderRegistry {
	registry := auth.NewProviderRegistry()

	if cfg.OAuth.Replit.ClientID != "" && cfg.OAuth.Replit.ClientSecret != "" {
		registry.Register(auth.NewReplitOIDCProvider(auth.ReplitOIDCConfig{
			IssuerURL:    cfg.OAuth.Replit.IssuerURL,
			ClientID:     cfg.OAuth.Replit.ClientID,
			ClientSecret: cfg.OAuth.Replit.ClientSecret,
			RedirectURL:  cfg.OAuth.Replit.RedirectURL,
		}, nil))
	}

	if cfg.OAuth.Facebook.ClientID != "" && cfg.OAuth.Facebook.ClientSecret != "" {
		registry.Register(auth.NewFacebookOAuthProvider(auth.FacebookOAuthConfig{
			ClientID:     cfg.OAuth.Facebook.ClientID,
			ClientSecret: cfg.OAuth.Facebook.ClientSecret,
			RedirectURL:  cfg.OAuth.Facebook.RedirectURL,
		}))
	}

	if cfg.OAuth.LinkedIn.ClientID != "" && cfg.OAuth.LinkedIn.ClientSecret != "" {
		registry.Register(auth.NewLinkedInOAuthProvider(auth.LinkedInOAuthConfig{
			ClientID:     cfg.OAuth.LinkedIn.ClientID,
			ClientSecret: cfg.OAuth.LinkedIn.ClientSecret,
			RedirectURL:  cfg.OAuth.LinkedIn.RedirectURL,
		}))
	}

	log.Infow("identity providers registered", "providers", registry.Names())
	return registry
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		MFAHandler:     r.mfaHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupProfileRoutes(r.engine, &routes.ProfileRouteConfig{
		ProfileHandler: r.profileHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
