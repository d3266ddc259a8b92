package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"siparis/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    Classify(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code of the outermost AppError, or classifies a
// domain error when there is none
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return Classify(err)
}

// Predefined error codes
const (
	CodeConfigInvalid        = "CONFIG_INVALID"
	CodeDatabaseError        = "DATABASE_ERROR"
	CodeValidationError      = "VALIDATION_ERROR"
	CodeNotFound             = "NOT_FOUND"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeInvalidInput         = "INVALID_INPUT"
	CodeTemplateNotFound     = "TEMPLATE_NOT_FOUND"
	CodeWorksheetMissing     = "WORKSHEET_MISSING"
	CodeUnreadableWorkbook   = "UNREADABLE_WORKBOOK"
	CodeSerializationFailure = "SERIALIZATION_FAILURE"
	CodeBusy                 = "BUSY"
)

// Classify maps domain sentinel errors to codes
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, core.ErrTemplateNotFound):
		return CodeTemplateNotFound
	case stderrors.Is(err, core.ErrWorksheetMissing):
		return CodeWorksheetMissing
	case stderrors.Is(err, core.ErrUnreadableWorkbook):
		return CodeUnreadableWorkbook
	case stderrors.Is(err, core.ErrSerializationFailure):
		return CodeSerializationFailure
	case stderrors.Is(err, core.ErrNotFound):
		return CodeNotFound
	case stderrors.Is(err, core.ErrForbidden):
		return CodeForbidden
	case stderrors.Is(err, core.ErrInvalidInput), stderrors.Is(err, core.ErrNoProducts):
		return CodeInvalidInput
	default:
		return CodeInternalError
	}
}

// HTTPStatus returns the response status for a code
func HTTPStatus(code string) int {
	switch code {
	case CodeInvalidInput, CodeValidationError, CodeWorksheetMissing, CodeUnreadableWorkbook:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeTemplateNotFound:
		return http.StatusNotFound
	case CodeBusy:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage is the text shown to the caller for a code; technical detail
// stays in the logs
func UserMessage(code string) string {
	switch code {
	case CodeTemplateNotFound:
		return "The requested template does not exist"
	case CodeWorksheetMissing:
		return "No valid worksheet found"
	case CodeUnreadableWorkbook:
		return "The uploaded file is not a readable Excel workbook"
	case CodeSerializationFailure:
		return "Error generating Excel file"
	case CodeNotFound:
		return "Resource not found"
	case CodeForbidden:
		return "You do not have access to this resource"
	case CodeUnauthorized:
		return "Authentication required"
	case CodeInvalidInput, CodeValidationError:
		return "Invalid input"
	case CodeBusy:
		return "Server is busy, please retry"
	default:
		return "Internal server error"
	}
}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func DatabaseError(message string, cause error) *AppError {
	return &AppError{Code: CodeDatabaseError, Message: message, Cause: cause}
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message)
}

func Busy(message string, cause error) *AppError {
	return &AppError{Code: CodeBusy, Message: message, Cause: cause}
}

// BadRequest marks malformed request input, keeping the decoder error as cause
func BadRequest(message string, cause error) *AppError {
	return &AppError{Code: CodeInvalidInput, Message: message, Cause: cause}
}
