package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jerphayes/Coogsnation-sub000/internal/application/auth/usecases"
	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/interfaces/http/middleware"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/config"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/utils"
)

// providerDisplayNames maps provider keys to the names shown in responses.
var providerDisplayNames = map[string]string{
	constants.ProviderReplit:   "Replit",
	constants.ProviderFacebook: "Facebook",
	constants.ProviderLinkedIn: "LinkedIn",
}

// AuthHandler serves the login, callback, logout, and local account routes.
// Federated flows answer with redirects; local flows answer with JSON.
type AuthHandler struct {
	initiateUseCase initiateLoginUseCase
	callbackUseCase handleCallbackUseCase
	registerUseCase registerLocalUseCase
	loginUseCase    loginLocalUseCase
	logoutUseCase   logoutUseCase
	logger          logger.Interface
	cookieConfig    config.CookieConfig
}

func NewAuthHandler(
	initiateUC initiateLoginUseCase,
	callbackUC handleCallbackUseCase,
	registerUC registerLocalUseCase,
	loginUC loginLocalUseCase,
	logoutUC logoutUseCase,
	logger logger.Interface,
	cookieConfig config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		initiateUseCase: initiateUC,
		callbackUseCase: callbackUC,
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		logoutUseCase:   logoutUC,
		logger:          logger,
		cookieConfig:    cookieConfig,
	}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Initiate returns the handler that starts a federated login with the named
// provider. An unconfigured provider answers 404 so the route does not
// advertise an integration that cannot complete.
func (h *AuthHandler) Initiate(provider string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cmd := usecases.InitiateLoginCommand{
			Provider: provider,
			ReturnTo: c.Query("returnTo"),
		}

		result, err := h.initiateUseCase.Execute(c.Request.Context(), cmd)
		if err != nil {
			if appErr := errors.GetAppError(err); appErr != nil && appErr.Type == errors.ErrorTypeBadRequest {
				c.JSON(http.StatusNotFound, gin.H{
					"message": fmt.Sprintf("%s OAuth is not configured", displayName(provider)),
				})
				return
			}
			h.logger.Errorw("login initiation failed", "error", err, "provider", provider)
			utils.ErrorResponseWithError(c, err)
			return
		}

		c.Redirect(http.StatusTemporaryRedirect, result.AuthURL)
	}
}

// Callback returns the handler that completes a federated login with the
// named provider. Failures never render JSON; the browser is mid-redirect,
// so it is sent back to a login surface with an error code in the query.
func (h *AuthHandler) Callback(provider string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if errParam := c.Query("error"); errParam != "" {
			h.logger.Warnw("provider returned error on callback",
				"provider", provider,
				"error_code", errParam,
				"error_description", c.Query("error_description"),
			)
			h.redirectCallbackFailure(c, provider, "auth_failed")
			return
		}

		cmd := usecases.HandleCallbackCommand{
			Provider:       provider,
			Code:           c.Query("code"),
			State:          c.Query("state"),
			PriorSessionID: utils.GetSessionCookie(c, h.cookieConfig),
		}

		result, err := h.callbackUseCase.Execute(c.Request.Context(), cmd)
		if err != nil {
			h.logger.Errorw("callback failed", "error", err, "provider", provider)
			h.redirectCallbackFailure(c, provider, classifyCallbackError(err))
			return
		}

		utils.SetSessionCookie(c, h.cookieConfig, result.Session.ID, sessionCookieMaxAge())

		if result.IsNewUser {
			h.logger.Infow("new user registered via provider",
				"provider", provider,
				"user_id", result.User.ID,
			)
		}

		// The stored target was sanitized at login time, but the state row
		// is attacker-influenced input; validate again before redirecting.
		c.Redirect(http.StatusFound, utils.SanitizeReturnURL(result.ReturnTo))
	}
}

// Register creates a local email+password account and logs it in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RegisterLocalCommand{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("registration failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, result.Session.ID, sessionCookieMaxAge())
	utils.SuccessResponse(c, http.StatusCreated, "registration successful", UserResponse(result.User))
}

// Login authenticates a local account. Failures all carry the same message
// regardless of cause.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.LoginLocalCommand{
		Email:          req.Email,
		Password:       req.Password,
		PriorSessionID: utils.GetSessionCookie(c, h.cookieConfig),
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, result.Session.ID, sessionCookieMaxAge())
	utils.SuccessResponse(c, http.StatusOK, "login successful", UserResponse(result.User))
}

// Logout destroys the session and sends the browser on: to the provider's
// end-session endpoint for logins that have one, home otherwise.
func (h *AuthHandler) Logout(c *gin.Context) {
	cmd := usecases.LogoutCommand{
		SessionID: utils.GetSessionCookie(c, h.cookieConfig),
	}

	result, err := h.logoutUseCase.Execute(c.Request.Context(), cmd)

	utils.ClearSessionCookie(c, h.cookieConfig)

	redirect := "/"
	if err == nil && result.RedirectURL != "" {
		redirect = result.RedirectURL
	}
	c.Redirect(http.StatusFound, redirect)
}

// GetCurrentUser returns the authenticated user's profile. Runs behind
// RequireAuth, which re-fetched the user row for this request.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)
	if currentUser == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", UserResponse(currentUser))
}

func (h *AuthHandler) redirectCallbackFailure(c *gin.Context, provider, code string) {
	var target string
	if provider == constants.ProviderReplit {
		target = "/api/login?error=" + code
	} else {
		target = fmt.Sprintf("/?error=%s_auth_failed", provider)
	}
	c.Redirect(http.StatusFound, target)
}

// classifyCallbackError buckets a callback failure into the error code the
// login page understands. Session persistence problems are separated from
// authentication problems so support can tell them apart.
func classifyCallbackError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "session"):
		return "session_error"
	case strings.Contains(msg, "state"),
		strings.Contains(msg, "code"),
		strings.Contains(msg, "exchange"),
		strings.Contains(msg, "authorization"):
		return "auth_failed"
	default:
		return "login_failed"
	}
}

func sessionCookieMaxAge() int {
	return int(user.SessionTTL.Seconds())
}

func displayName(provider string) string {
	if name, ok := providerDisplayNames[provider]; ok {
		return name
	}
	if provider == "" {
		return "Unknown"
	}
	return strings.ToUpper(provider[:1]) + provider[1:]
}
