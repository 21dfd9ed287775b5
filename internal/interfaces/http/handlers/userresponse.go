package handlers

import (
	"time"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
)

// UserResponseBody is the JSON shape returned for a user across the auth
// and profile routes. Pointer fields serialize to null when absent.
type UserResponseBody struct {
	ID              uint    `json:"id"`
	Email           *string `json:"email"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	DisplayName     string  `json:"display_name"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profile_image_url"`
	PhoneNumber     *string `json:"phone_number"`

	IsLocalAccount    bool `json:"is_local_account"`
	IsCommunityMember bool `json:"is_community_member"`

	EmailNotifications bool `json:"email_notifications"`
	SMSNotifications   bool `json:"sms_notifications"`

	PostCount   int `json:"post_count"`
	ThreadCount int `json:"thread_count"`

	CreatedAt time.Time `json:"created_at"`
}

// UserResponse maps a user aggregate to its response body.
func UserResponse(u *user.User) UserResponseBody {
	return UserResponseBody{
		ID:                 u.ID,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		DisplayName:        u.DisplayName(),
		Bio:                u.Bio,
		ProfileImageURL:    u.ProfileImageURL,
		PhoneNumber:        u.PhoneNumber,
		IsLocalAccount:     u.IsLocalAccount,
		IsCommunityMember:  u.IsCommunityMember(),
		EmailNotifications: u.EmailNotifications,
		SMSNotifications:   u.SMSNotifications,
		PostCount:          u.PostCount,
		ThreadCount:        u.ThreadCount,
		CreatedAt:          u.CreatedAt,
	}
}
