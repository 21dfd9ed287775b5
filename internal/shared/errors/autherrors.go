package errors

// AuthError wraps an AppError with metadata for the auth flows: whether the
// failure should be logged, and whether it counts as a security event worth
// flagging in the structured logs.
type AuthError struct {
	*AppError
	ShouldLog     bool
	SecurityEvent bool
}

// Unwrap exposes the embedded AppError so errors.As and the Is* helpers
// see the underlying taxonomy.
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError is returned for bad email/password combinations.
// The message is deliberately generic so callers cannot enumerate accounts.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError:      NewUnauthorizedError("Invalid email or password"),
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// NewSessionExpiredError is returned when the session row is missing or past
// its expiry. The browser cookie should be cleared alongside this error.
func NewSessionExpiredError() *AuthError {
	return &AuthError{
		AppError:      NewUnauthorizedError("Session expired, please log in again"),
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewStaleSessionError is returned when a session decodes but references a
// user that no longer exists.
func NewStaleSessionError() *AuthError {
	return &AuthError{
		AppError:      NewUnauthorizedError("Session references an unknown account"),
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// NewVerificationCodeError is returned for any failed verification code
// attempt: wrong code, expired code, or no code outstanding. One message for
// all three so the response does not leak which case occurred.
func NewVerificationCodeError() *AuthError {
	return &AuthError{
		AppError:      NewUnauthorizedError("Invalid or expired verification code"),
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// NewVerificationLockedError is returned once the attempt counter for an
// outstanding code is exhausted. The caller must request a fresh code.
func NewVerificationLockedError() *AuthError {
	return &AuthError{
		AppError:      NewUnauthorizedError("Too many attempts, request a new code"),
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// NewProviderNotConfiguredError is returned when a login route is hit for an
// identity provider whose credentials are absent from the configuration.
func NewProviderNotConfiguredError(provider string) *AuthError {
	return &AuthError{
		AppError:      NewBadRequestError("Authentication provider not available", provider),
		ShouldLog:     true,
		SecurityEvent: false,
	}
}

// NewCommunityAccessError is returned when an authenticated user does not
// meet the university community requirements for a gated resource.
func NewCommunityAccessError(reason string) *AuthError {
	return &AuthError{
		AppError:      NewForbiddenError("University community membership required", reason),
		ShouldLog:     false,
		SecurityEvent: false,
	}
}
