// Package response renders the JSON envelopes returned by every API endpoint.
package response

import (
	"net/http"
	"strings"

	deliverycontext "mentorship/internal/delivery/context"
	domainerrors "mentorship/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	CodeInternalError    = "INTERNAL_ERROR"
	messageInternalError = "Internal server error, please try again later"
)

// SuccessResponse is the envelope of every 2xx response.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope of every 4xx/5xx response.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "MENTOR_AT_CAPACITY"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// NewErrorInfo maps err onto the payload clients see and its HTTP status.
// The boolean is false when err carries no AppError and was replaced by a generic internal error.
func NewErrorInfo(err error) (*ErrorInfo, int, bool) {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return &ErrorInfo{Code: CodeInternalError, Message: messageInternalError}, http.StatusInternalServerError, false
	}

	info := &ErrorInfo{Code: appErr.ErrorCode(), Message: appErr.Message()}
	if appErr.HTTPCode() < http.StatusInternalServerError {
		info.Details = errorDetails(err, appErr)
	}

	return info, appErr.HTTPCode(), true
}

// errorDetails returns the context added around appErr by the usecase layer,
// e.g. "request message is required" for a wrapped validation failure.
func errorDetails(err error, appErr domainerrors.AppError) any {
	if details := strings.TrimSuffix(err.Error(), ": "+appErr.Error()); details != err.Error() && details != "" {
		return details
	}

	if appErr.Details() != "" {
		return appErr.Details()
	}

	return nil
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: newMeta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return writeError(c, statusCode, &ErrorInfo{Code: errorCode, Message: message, Details: details})
}

func writeError(c echo.Context, statusCode int, info *ErrorInfo) error {
	// Auth failures and server errors never leak details.
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		info.Details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: info,
		Meta:  newMeta(c),
	})
}

func newMeta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a 400 error for a body or path that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// HandleAppError renders domain errors directly. Anything else is returned
// with a stack so the central error handler logs it.
func HandleAppError(c echo.Context, err error) error {
	info, status, ok := NewErrorInfo(err)
	if !ok {
		return errors.WithStack(err)
	}

	return writeError(c, status, info)
}
