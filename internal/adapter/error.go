package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrNilApplication     = errors.New("nil application")
	ErrInvalidProxySource = errors.New("invalid proxy source")
	ErrDecodeEvent        = errors.New("failed to decode event")
	ErrEncodeResponse     = errors.New("failed to encode response")
)

// AppError is returned when the wrapped application panics while
// handling an event. Value holds the recovered value as-is.
type AppError struct {
	Value any
}

func (e *AppError) Error() string {
	return fmt.Sprintf("application failed: %v", e.Value)
}

// Unwrap returns the recovered value if it is an error.
func (e *AppError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}

// IsAppError reports whether err originates from the wrapped application.
func IsAppError(err error) bool {
	if err == nil {
		return false
	}

	var appErr *AppError
	return errors.As(err, &appErr)
}

// recoverApp converts a panic of the wrapped application into an
// *AppError assigned to err. It must be deferred directly.
func recoverApp(err *error) {
	if v := recover(); v != nil {
		*err = &AppError{Value: v}
	}
}
