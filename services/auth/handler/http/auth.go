package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/digiration/digiration/internal/pkg/logger"
	"github.com/digiration/digiration/internal/pkg/middleware"
	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/internal/utils"
	"github.com/digiration/digiration/services/auth"
)

// AuthHandler handles HTTP requests for the authentication flow
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Initiate handles the first authentication step: credentials in, OTP out
func (h *AuthHandler) Initiate(c echo.Context) error {
	var req models.InitiateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeValidationError, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeValidationError, "Ration card ID and phone number are required")
	}

	resp, err := h.authUC.InitiateLogin(c.Request().Context(), req.RationCardID, req.PhoneNumber)
	if err != nil {
		return h.mapAuthError(c, err, "Initiate")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", resp)
}

// VerifyOTP handles OTP verification
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeValidationError, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeValidationError, "Session ID and a 6-digit OTP are required")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.SessionID, req.OTPCode)
	if err != nil {
		return h.mapAuthError(c, err, "VerifyOTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", resp)
}

// SelectMember handles family member selection on a verified session
func (h *AuthHandler) SelectMember(c echo.Context) error {
	var req models.SelectMemberRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeValidationError, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeValidationError, "Session ID and member ID are required")
	}

	resp, err := h.authUC.SelectMember(c.Request().Context(), req.SessionID, req.MemberID)
	if err != nil {
		return h.mapAuthError(c, err, "SelectMember")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Member selected successfully", resp)
}

// VerifyAadhaar handles the final identity check and token issuance
func (h *AuthHandler) VerifyAadhaar(c echo.Context) error {
	var req models.VerifyAadhaarRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeValidationError, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeValidationError, "Session ID and a 12-digit Aadhaar number are required")
	}

	resp, err := h.authUC.VerifyAadhaar(c.Request().Context(), req.SessionID, req.AadhaarNumber)
	if err != nil {
		return h.mapAuthError(c, err, "VerifyAadhaar")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Authentication successful", resp)
}

// ResendOTP handles OTP reissue requests
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req models.ResendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeValidationError, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeValidationError, "Session ID is required")
	}

	if err := h.authUC.ResendOTP(c.Request().Context(), req.SessionID); err != nil {
		return h.mapAuthError(c, err, "ResendOTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP resent successfully", nil)
}

// Logout deletes the session behind the caller's token
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID := middleware.SessionIDFromContext(c)
	if sessionID == "" {
		return utils.UnauthorizedResponse(c, utils.CodeInvalidToken, "Invalid token: missing session claim")
	}

	if err := h.authUC.Logout(c.Request().Context(), sessionID); err != nil {
		return h.mapAuthError(c, err, "Logout")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// mapAuthError translates usecase sentinels into the client error
// contract. Unrecognized errors are logged and surfaced generically.
func (h *AuthHandler) mapAuthError(c echo.Context, err error, endpoint string) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, utils.CodeInvalidCredentials, "Invalid ration card ID or phone number")
	case errors.Is(err, auth.ErrRateLimited):
		return utils.TooManyRequestsResponse(c, "Too many OTP requests. Please try again later")
	case errors.Is(err, auth.ErrOTPSendFailed), errors.Is(err, auth.ErrDeliveryUnknown):
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, utils.CodeOTPSendFailed, "Failed to send OTP. Please try again")
	case errors.Is(err, auth.ErrInvalidOTP):
		return utils.UnauthorizedResponse(c, utils.CodeInvalidOTP, "Invalid or expired OTP")
	case errors.Is(err, auth.ErrSessionNotFound):
		return utils.NotFoundResponse(c, utils.CodeSessionNotFound, "Session not found")
	case errors.Is(err, auth.ErrInvalidSession):
		return utils.UnauthorizedResponse(c, utils.CodeInvalidSession, "Invalid or expired session")
	case errors.Is(err, auth.ErrInvalidMember):
		return utils.ErrorResponseHandler(c, http.StatusForbidden, utils.CodeInvalidMember, "Member does not belong to this family")
	case errors.Is(err, auth.ErrMemberNotSelected):
		return utils.BadRequestResponse(c, utils.CodeMemberNotSelected, "Select a family member first")
	case errors.Is(err, auth.ErrInvalidAadhaar):
		return utils.BadRequestResponse(c, utils.CodeInvalidAadhaar, "Aadhaar verification failed")
	default:
		logger.Error("Unhandled auth error",
			logger.ErrorField(err),
			logger.String("endpoint", endpoint))
		return utils.InternalServerErrorResponse(c, "")
	}
}
