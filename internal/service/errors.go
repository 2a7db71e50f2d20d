package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrWrongPassword       = errors.New("wrong password")
	ErrInvalidCategory     = errors.New("category does not belong to user")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError reports input rejected by a validator. Its message is
// safe to return to the caller; errors.Is matches ErrInvalidDataProvided.
type ValidationError struct {
	Err error
}

func newValidationError(err error) error {
	return &ValidationError{Err: err}
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidDataProvided, e.Err}
}
