package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerphayes/Coogsnation-sub000/internal/application/profile/usecases"
	"github.com/jerphayes/Coogsnation-sub000/internal/interfaces/http/handlers/testutil"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
)

type mockUpdateProfileUC struct {
	result *usecases.UpdateProfileResult
	err    error
	gotCmd usecases.UpdateProfileCommand
}

func (m *mockUpdateProfileUC) Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*usecases.UpdateProfileResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

func TestProfileHandler_UpdateProfile_Success(t *testing.T) {
	updated := testUser()
	updated.Bio = strPtr("Forever a Coog")

	mockUC := &mockUpdateProfileUC{result: &usecases.UpdateProfileResult{User: updated}}
	handler := NewProfileHandler(mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/api/profile", UpdateProfileRequest{
		Bio:         strPtr("Forever a Coog"),
		PhoneNumber: strPtr("(713) 555-1234"),
	})
	c.Set(constants.ContextKeyCurrentUser, testUser())

	handler.UpdateProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.gotCmd.UserID)
	require.NotNil(t, mockUC.gotCmd.PhoneNumber)
	assert.Equal(t, "(713) 555-1234", *mockUC.gotCmd.PhoneNumber)

	// Fields absent from the request stay nil so the use case leaves them be.
	assert.Nil(t, mockUC.gotCmd.FirstName)
	assert.Nil(t, mockUC.gotCmd.EmailNotifications)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data UserResponseBody
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "Forever a Coog", *data.Bio)
}

func TestProfileHandler_UpdateProfile_InvalidPhone(t *testing.T) {
	mockUC := &mockUpdateProfileUC{err: errors.NewValidationError("Invalid phone number")}
	handler := NewProfileHandler(mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/api/profile", UpdateProfileRequest{
		PhoneNumber: strPtr("not a phone"),
	})
	c.Set(constants.ContextKeyCurrentUser, testUser())

	handler.UpdateProfile(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileHandler_UpdateProfile_Unauthenticated(t *testing.T) {
	handler := NewProfileHandler(&mockUpdateProfileUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/api/profile", UpdateProfileRequest{})

	handler.UpdateProfile(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileHandler_CommunityStatus(t *testing.T) {
	handler := NewProfileHandler(&mockUpdateProfileUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/community/status", nil)
	c.Set(constants.ContextKeyCurrentUser, testUser())

	handler.CommunityStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"member":true`)
}
