package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/biztime"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
	vo "github.com/jerphayes/Coogsnation-sub000/internal/domain/user/valueobjects"
)

const (
	// MaxVerificationAttempts is the number of wrong codes tolerated before
	// the outstanding code is invalidated.
	MaxVerificationAttempts = 3

	// VerificationCodeTTL is how long an issued verification code stays valid.
	VerificationCodeTTL = 10 * time.Minute
)

// User is the aggregate root for a community member. Accounts originate
// either from a federated identity provider or from local registration;
// federated accounts have no password hash.
type User struct {
	ID              uint
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	PhoneNumber     *string // E.164
	Bio             *string

	IsLocalAccount bool
	PasswordHash   *string

	// Outstanding verification code, if any. Only the bcrypt hash is ever
	// held; the plaintext code exists solely in the delivery message.
	MFACodeHash      *string
	MFACodeExpiresAt *time.Time
	MFAAttempts      int

	EmailNotifications bool
	SMSNotifications   bool

	PostCount   int
	ThreadCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLocalUser creates a user registered with email and password.
func NewLocalUser(email *vo.Email, firstName, lastName, passwordHash string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	emailStr := email.String()
	return &User{
		Email:              &emailStr,
		FirstName:          optional(firstName),
		LastName:           optional(lastName),
		IsLocalAccount:     true,
		PasswordHash:       &passwordHash,
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// NewFederatedUser creates a user from identity provider claims. Every
// field except the provider subject may be absent.
func NewFederatedUser(email, firstName, lastName, profileImageURL *string) *User {
	now := biztime.NowUTC()
	return &User{
		Email:              email,
		FirstName:          firstName,
		LastName:           lastName,
		ProfileImageURL:    profileImageURL,
		IsLocalAccount:     false,
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// DisplayName returns a presentable name, preferring first+last and
// falling back to the email local part.
func (u *User) DisplayName() string {
	first := deref(u.FirstName)
	last := deref(u.LastName)
	if first != "" || last != "" {
		return strings.TrimSpace(first + " " + last)
	}
	if u.Email != nil {
		if at := strings.Index(*u.Email, "@"); at > 0 {
			return (*u.Email)[:at]
		}
	}
	return "Member"
}

// IsCommunityMember reports whether the account qualifies for
// university-community-gated resources: a recognized institution email
// plus a completed name.
func (u *User) IsCommunityMember() bool {
	if u.Email == nil {
		return false
	}
	if deref(u.FirstName) == "" || deref(u.LastName) == "" {
		return false
	}

	email := strings.ToLower(*u.Email)
	for _, suffix := range constants.CommunityEmailDomains {
		if strings.HasSuffix(email, suffix) {
			return true
		}
	}
	return false
}

// IssueVerificationCode stores the hash of a freshly generated code,
// replacing any outstanding code and resetting the attempt counter.
func (u *User) IssueVerificationCode(codeHash string, now time.Time) error {
	if codeHash == "" {
		return fmt.Errorf("code hash is required")
	}

	expiresAt := now.Add(VerificationCodeTTL)
	u.MFACodeHash = &codeHash
	u.MFACodeExpiresAt = &expiresAt
	u.MFAAttempts = 0
	u.UpdatedAt = now
	return nil
}

// HasActiveVerificationCode reports whether an unexpired code is outstanding.
func (u *User) HasActiveVerificationCode(now time.Time) bool {
	return u.MFACodeHash != nil && u.MFACodeExpiresAt != nil && now.Before(*u.MFACodeExpiresAt)
}

// ClearVerificationCode discards any outstanding code. Called after a
// successful verification, a cancel, or lazily when an expired code is seen.
func (u *User) ClearVerificationCode(now time.Time) {
	u.MFACodeHash = nil
	u.MFACodeExpiresAt = nil
	u.MFAAttempts = 0
	u.UpdatedAt = now
}

// RecordFailedVerification increments the attempt counter and reports
// whether the code is now locked out.
func (u *User) RecordFailedVerification(now time.Time) (locked bool) {
	u.MFAAttempts++
	u.UpdatedAt = now
	if u.MFAAttempts >= MaxVerificationAttempts {
		u.ClearVerificationCode(now)
		return true
	}
	return false
}

// CanReceiveSMS reports whether SMS delivery is possible for this user.
func (u *User) CanReceiveSMS() bool {
	return u.PhoneNumber != nil && *u.PhoneNumber != ""
}

// CanReceiveEmail reports whether email delivery is possible for this user.
func (u *User) CanReceiveEmail() bool {
	return u.Email != nil && *u.Email != ""
}

// UpdateProfile applies sanitized profile fields. Nil pointers mean
// "leave unchanged"; pointers to empty strings clear the field.
func (u *User) UpdateProfile(firstName, lastName, bio, profileImageURL *string, now time.Time) {
	if firstName != nil {
		u.FirstName = nilIfEmpty(*firstName)
	}
	if lastName != nil {
		u.LastName = nilIfEmpty(*lastName)
	}
	if bio != nil {
		u.Bio = nilIfEmpty(*bio)
	}
	if profileImageURL != nil {
		u.ProfileImageURL = nilIfEmpty(*profileImageURL)
	}
	u.UpdatedAt = now
}

// SetPhoneNumber stores a normalized phone number, or clears it when nil.
func (u *User) SetPhoneNumber(phone *vo.Phone, now time.Time) {
	if phone == nil {
		u.PhoneNumber = nil
	} else {
		v := phone.String()
		u.PhoneNumber = &v
	}
	u.UpdatedAt = now
}

// SetNotificationPreferences updates the delivery consent flags.
func (u *User) SetNotificationPreferences(email, sms bool, now time.Time) {
	u.EmailNotifications = email
	u.SMSNotifications = sms
	u.UpdatedAt = now
}

func optional(s string) *string {
	return nilIfEmpty(strings.TrimSpace(s))
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
