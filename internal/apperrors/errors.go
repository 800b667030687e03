package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNotEligible indicates that a business rule forbids the requested action on the records.
var ErrNotEligible = errors.New("not eligible")

// ErrConfigurationRequired is matched by every RedirectError.
var ErrConfigurationRequired = errors.New("configuration required")

// AppError carries an HTTP-ish status code alongside the underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// RedirectAction points the caller at the record that must be configured.
type RedirectAction struct {
	ResModel string `json:"res_model"`
	ResID    string `json:"res_id"`
	ViewMode string `json:"view_mode"`
	Target   string `json:"target"`
}

// RedirectError is a configuration error: the operation is blocked until the record named
// by Action is fixed.
type RedirectError struct {
	Message    string         `json:"message"`
	Action     RedirectAction `json:"action"`
	ButtonText string         `json:"button_text"`
}

// NewRedirectError creates a RedirectError opening resModel/resID in a form.
func NewRedirectError(message, resModel, resID, buttonText string) *RedirectError {
	return &RedirectError{
		Message: message,
		Action: RedirectAction{
			ResModel: resModel,
			ResID:    resID,
			ViewMode: "form",
			Target:   "new",
		},
		ButtonText: buttonText,
	}
}

func (e *RedirectError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrConfigurationRequired) match.
func (e *RedirectError) Is(target error) bool {
	return target == ErrConfigurationRequired
}

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotEligiblef wraps ErrNotEligible with a formatted message.
func NotEligiblef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotEligible, fmt.Sprintf(format, args...))
}
