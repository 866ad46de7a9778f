package anthropic

import "errors"

// AuthError indicates the service rejected the credential (HTTP 401/403).
type AuthError struct {
	message string
}

func (e *AuthError) Error() string {
	return "authentication error: " + e.message
}

// IsAuthError checks if an error is (or wraps) an authentication error.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
