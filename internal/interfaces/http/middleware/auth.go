package middleware

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerphayes/Coogsnation-sub000/internal/application/auth/usecases"
	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/config"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/utils"
)

type sessionResolver interface {
	Execute(ctx context.Context, cmd usecases.ResolveSessionCommand) (*usecases.ResolveSessionResult, error)
}

// AuthMiddleware resolves the session cookie into an authenticated user.
// The user row is loaded fresh on every request; expired and stale
// sessions clear the browser cookie alongside the 401.
type AuthMiddleware struct {
	resolver     sessionResolver
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewAuthMiddleware(resolver sessionResolver, cookieConfig config.CookieConfig, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		resolver:     resolver,
		cookieConfig: cookieConfig,
		logger:       logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := utils.GetSessionCookie(c, m.cookieConfig)

		result, err := m.resolver.Execute(c.Request.Context(), usecases.ResolveSessionCommand{SessionID: sessionID})
		if err != nil {
			m.rejectUnauthenticated(c, err)
			return
		}

		c.Set(constants.ContextKeyUserID, result.User.ID)
		c.Set(constants.ContextKeySession, result.Session)
		c.Set(constants.ContextKeyCurrentUser, result.User)

		c.Next()
	}
}

// OptionalAuth resolves the session when a valid cookie is present but
// lets the request continue anonymously otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := utils.GetSessionCookie(c, m.cookieConfig)
		if sessionID == "" {
			c.Next()
			return
		}

		result, err := m.resolver.Execute(c.Request.Context(), usecases.ResolveSessionCommand{SessionID: sessionID})
		if err == nil {
			c.Set(constants.ContextKeyUserID, result.User.ID)
			c.Set(constants.ContextKeySession, result.Session)
			c.Set(constants.ContextKeyCurrentUser, result.User)
		}

		c.Next()
	}
}

// RequireCommunityMember gates a route on university community membership.
// Must run after RequireAuth. The check runs against the row RequireAuth
// just fetched, never a cached copy.
func (m *AuthMiddleware) RequireCommunityMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		currentUser := CurrentUser(c)
		if currentUser == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		if !currentUser.IsCommunityMember() {
			m.logger.Warnw("community access denied",
				"user_id", currentUser.ID,
				"path", c.Request.URL.Path,
			)
			utils.ErrorResponseWithError(c, errors.NewCommunityAccessError("a verified university email and a completed profile are required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) rejectUnauthenticated(c *gin.Context, err error) {
	var authErr *errors.AuthError
	if stderrors.As(err, &authErr) {
		if authErr.ShouldLog {
			m.logger.Warnw("session rejected",
				"path", c.Request.URL.Path,
				"security_event", authErr.SecurityEvent,
				"error", err,
			)
		}
	} else {
		m.logger.Errorw("session resolution failed", "path", c.Request.URL.Path, "error", err)
	}

	// The cookie is useless now either way; make the browser drop it.
	utils.ClearSessionCookie(c, m.cookieConfig)
	utils.ErrorResponseWithError(c, err)
	c.Abort()
}

// CurrentUser returns the authenticated user set by RequireAuth or
// OptionalAuth, or nil when the request is anonymous.
func CurrentUser(c *gin.Context) *user.User {
	v, exists := c.Get(constants.ContextKeyCurrentUser)
	if !exists {
		return nil
	}
	u, ok := v.(*user.User)
	if !ok {
		return nil
	}
	return u
}

// CurrentSession returns the session set by RequireAuth, or nil.
func CurrentSession(c *gin.Context) *user.Session {
	v, exists := c.Get(constants.ContextKeySession)
	if !exists {
		return nil
	}
	s, ok := v.(*user.Session)
	if !ok {
		return nil
	}
	return s
}
