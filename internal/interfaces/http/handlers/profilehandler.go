package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerphayes/Coogsnation-sub000/internal/application/profile/usecases"
	"github.com/jerphayes/Coogsnation-sub000/internal/interfaces/http/middleware"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/utils"
)

type updateProfileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*usecases.UpdateProfileResult, error)
}

// ProfileHandler serves profile completion and the community membership
// probe.
type ProfileHandler struct {
	updateUseCase updateProfileUseCase
	logger        logger.Interface
}

func NewProfileHandler(updateUC updateProfileUseCase, logger logger.Interface) *ProfileHandler {
	return &ProfileHandler{
		updateUseCase: updateUC,
		logger:        logger,
	}
}

// UpdateProfileRequest carries partial profile updates. Absent fields stay
// untouched; empty strings clear the field.
type UpdateProfileRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profile_image_url"`
	PhoneNumber     *string `json:"phone_number"`

	EmailNotifications *bool `json:"email_notifications"`
	SMSNotifications   *bool `json:"sms_notifications"`
}

// UpdateProfile applies profile changes for the authenticated user.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)
	if currentUser == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateProfileCommand{
		UserID:             currentUser.ID,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Bio:                req.Bio,
		ProfileImageURL:    req.ProfileImageURL,
		PhoneNumber:        req.PhoneNumber,
		EmailNotifications: req.EmailNotifications,
		SMSNotifications:   req.SMSNotifications,
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("profile update failed", "error", err, "user_id", currentUser.ID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated", UserResponse(result.User))
}

// CommunityStatus runs behind the community membership middleware, so
// reaching the handler means the requirement passed.
func (h *ProfileHandler) CommunityStatus(c *gin.Context) {
	currentUser := middleware.CurrentUser(c)
	if currentUser == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", gin.H{
		"member":       true,
		"display_name": currentUser.DisplayName(),
	})
}
