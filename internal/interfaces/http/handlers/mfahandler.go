package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	authusecases "github.com/jerphayes/Coogsnation-sub000/internal/application/auth/usecases"
	"github.com/jerphayes/Coogsnation-sub000/internal/application/mfa/usecases"
	"github.com/jerphayes/Coogsnation-sub000/internal/interfaces/http/middleware"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/utils"
)

// Use case interfaces for MFAHandler - enables unit testing with mocks.

type requestCodeUseCase interface {
	Execute(ctx context.Context, cmd usecases.RequestCodeCommand) (*usecases.RequestCodeResult, error)
}

type verifyCodeUseCase interface {
	Execute(ctx context.Context, cmd usecases.VerifyCodeCommand) (*usecases.VerifyCodeResult, error)
}

type cancelCodeUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelCodeCommand) error
}

type requestPasswordResetUseCase interface {
	Execute(ctx context.Context, cmd authusecases.RequestPasswordResetCommand) error
}

type resetPasswordUseCase interface {
	Execute(ctx context.Context, cmd authusecases.ResetPasswordCommand) error
}

// MFAHandler serves the verification code routes plus the code-based
// password reset pair.
type MFAHandler struct {
	requestCodeUseCase   requestCodeUseCase
	verifyCodeUseCase    verifyCodeUseCase
	cancelCodeUseCase    cancelCodeUseCase
	requestResetUseCase  requestPasswordResetUseCase
	resetPasswordUseCase resetPasswordUseCase
	logger               logger.Interface
}

func NewMFAHandler(
	requestCodeUC requestCodeUseCase,
	verifyCodeUC verifyCodeUseCase,
	cancelCodeUC cancelCodeUseCase,
	requestResetUC requestPasswordResetUseCase,
	resetPasswordUC resetPasswordUseCase,
	logger logger.Interface,
) *MFAHandler {
	return &MFAHandler{
		requestCodeUseCase:   requestCodeUC,
		verifyCodeUseCase:    verifyCodeUC,
		cancelCodeUseCase:    cancelCodeUC,
		requestResetUseCase:  requestResetUC,
		resetPasswordUseCase: resetPasswordUC,
		logger:               logger,
	}
}

type RequestCodeRequest struct {
	Purpose string `json:"purpose" binding:"required,oneof=login password_reset"`
}

type VerifyCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// RequestCode issues a verification code for the authenticated user and
// reports which channels it went out on.
func (h *MFAHandler) RequestCode(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)
	if currentUser == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return
	}

	var req RequestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RequestCodeCommand{
		UserID:  currentUser.ID,
		Purpose: req.Purpose,
	}

	result, err := h.requestCodeUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("verification code request failed", "error", err, "user_id", currentUser.ID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "verification code sent", gin.H{
		"email_sent": result.EmailSent,
		"sms_sent":   result.SMSSent,
		"expires_at": result.ExpiresAt,
	})
}

// VerifyCode checks a submitted code. Codes are single-use; success here
// consumes the code.
func (h *MFAHandler) VerifyCode(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)
	if currentUser == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return
	}

	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.VerifyCodeCommand{
		UserID: currentUser.ID,
		Code:   req.Code,
	}

	result, err := h.verifyCodeUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "verification successful", gin.H{
		"verified": result.Verified,
	})
}

// CancelCode discards any outstanding code for the authenticated user.
func (h *MFAHandler) CancelCode(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)
	if currentUser == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return
	}

	cmd := usecases.CancelCodeCommand{UserID: currentUser.ID}

	if err := h.cancelCodeUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("verification code cancel failed", "error", err, "user_id", currentUser.ID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "verification code cancelled", nil)
}

// ForgotPassword starts a code-based password reset. The response is the
// same whether or not the email maps to an account.
func (h *MFAHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := authusecases.RequestPasswordResetCommand{Email: req.Email}

	if err := h.requestResetUseCase.Execute(c.Request.Context(), cmd); err != nil {
		// The use case swallows issuance errors itself; anything surfacing
		// here is unexpected, and still must not change the response.
		h.logger.Errorw("password reset request failed", "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK, "if the email exists, a verification code has been sent", nil)
}

// ResetPassword completes a code-based password reset.
func (h *MFAHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := authusecases.ResetPasswordCommand{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	}

	if err := h.resetPasswordUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password reset successfully", nil)
}
