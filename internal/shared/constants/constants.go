package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyUserID      = "user_id"
	ContextKeySession     = "session"
	ContextKeyCurrentUser = "current_user"
	ContextKeyRequestID   = "request_id"

	// Identity providers
	ProviderReplit   = "replit"
	ProviderFacebook = "facebook"
	ProviderLinkedIn = "linkedin"
	ProviderLocal    = "local"

	// Verification code delivery channels
	ChannelEmail = "email"
	ChannelSMS   = "sms"

	// Database table names
	TableUsers          = "users"
	TableUserIdentities = "user_identities"
	TableSessions       = "sessions"

	// Session cookie defaults
	DefaultSessionCookie = "coogs_session"
	DefaultRedirectPath  = "/dashboard"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)

// CommunityEmailDomains are the email suffixes that qualify a user as a
// member of the university community. Matching is case-insensitive.
var CommunityEmailDomains = []string{
	"@cougarnet.uh.edu",
	"@uh.edu",
	"@central.uh.edu",
	"@alumni.uh.edu",
}
