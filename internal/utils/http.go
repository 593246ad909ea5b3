package utils

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Error codes surfaced to clients. Internal error text never leaks; the
// code plus message is the whole contract.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	CodeOTPSendFailed      = "OTP_SEND_FAILED"
	CodeInvalidOTP         = "INVALID_OTP"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeInvalidSession     = "INVALID_SESSION"
	CodeInvalidMember      = "INVALID_MEMBER"
	CodeMemberNotSelected  = "MEMBER_NOT_SELECTED"
	CodeInvalidAadhaar     = "INVALID_AADHAAR"
	CodeMissingToken       = "MISSING_TOKEN"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeForbidden          = "FORBIDDEN"
	CodeShopNotFound       = "SHOP_NOT_FOUND"
	CodeItemNotFound       = "ITEM_NOT_FOUND"
	CodeMissingParameters  = "MISSING_PARAMETERS"
	CodeInsufficientQuota  = "INSUFFICIENT_QUOTA"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodePaymentFailed      = "PAYMENT_FAILED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// Response is the standard API envelope
type Response struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Data    interface{}   `json:"data,omitempty"`
	Error   *ErrorPayload `json:"error,omitempty"`
}

// ErrorPayload carries the structured error block of the envelope
type ErrorPayload struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// SuccessResponse sends a success envelope with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error envelope
func ErrorResponseHandler(c echo.Context, statusCode int, code, message string) error {
	return c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorPayload{
			Code:      code,
			Message:   message,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// ErrorResponseWithDetails sends an error envelope with structured detail,
// used for business-rule rejections the client has to explain to the user
func ErrorResponseWithDetails(c echo.Context, statusCode int, code, message string, details interface{}) error {
	return c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorPayload{
			Code:      code,
			Message:   message,
			Details:   details,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// BadRequestResponse sends a 400 Bad Request envelope
func BadRequestResponse(c echo.Context, code, message string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, code, message)
}

// UnauthorizedResponse sends a 401 Unauthorized envelope
func UnauthorizedResponse(c echo.Context, code, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, code, message)
}

// ForbiddenResponse sends a 403 Forbidden envelope
func ForbiddenResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, CodeForbidden, message)
}

// NotFoundResponse sends a 404 Not Found envelope
func NotFoundResponse(c echo.Context, code, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, code, message)
}

// TooManyRequestsResponse sends a 429 envelope
func TooManyRequestsResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Too many requests"
	}
	return ErrorResponseHandler(c, http.StatusTooManyRequests, CodeRateLimitExceeded, message)
}

// InternalServerErrorResponse sends a generic 500 envelope
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, CodeInternalError, message)
}
