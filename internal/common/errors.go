package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline error taxonomy. Match with errors.Is.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrExtraction    = errors.New("extraction failed")
	ErrNormalization = errors.New("normalization failed")
	ErrSchemaParse   = errors.New("model output does not match schema")
	ErrPersistence   = errors.New("persistence failed")
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
)

// Error codes carried on AppError.
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeExtraction    = "EXTRACTION_ERROR"
	CodeNormalization = "NORMALIZATION_ERROR"
	CodeSchemaParse   = "SCHEMA_PARSE_ERROR"
	CodePersistence   = "PERSISTENCE_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeConfig        = "CONFIG_ERROR"
)

// NewAppError builds an AppError whose chain includes cause.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// joined lets an AppError match both its sentinel and the underlying cause.
func joined(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return errors.Join(sentinel, cause)
}

func BadRequestError(message string) error {
	return NewAppError(CodeBadRequest, message, ErrBadRequest)
}

func ExtractionError(message string, cause error) error {
	return NewAppError(CodeExtraction, message, joined(ErrExtraction, cause))
}

func NormalizationError(message string, cause error) error {
	return NewAppError(CodeNormalization, message, joined(ErrNormalization, cause))
}

func SchemaParseError(message string, cause error) error {
	return NewAppError(CodeSchemaParse, message, joined(ErrSchemaParse, cause))
}

func PersistenceError(message string, cause error) error {
	return NewAppError(CodePersistence, message, joined(ErrPersistence, cause))
}

func NotFoundError(message string) error {
	return NewAppError(CodeNotFound, message, ErrNotFound)
}

func NotFoundErrorf(format string, args ...any) error {
	return NotFoundError(fmt.Sprintf(format, args...))
}

// ErrorCode returns the AppError code in err's chain, or "" if there is none.
func ErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
