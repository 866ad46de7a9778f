package review

import "errors"

// ErrInvalidInput is returned when the submitted code is empty after
// trimming. No network call is made in that case.
var ErrInvalidInput = errors.New("no code provided for review")

// ServiceError wraps any failure from the completion service. The underlying
// message is passed through verbatim; sub-causes are not classified here and
// the call is not retried.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return "completion service: " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error { return e.Err }

// IsServiceError checks if an error is (or wraps) a ServiceError.
func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}
