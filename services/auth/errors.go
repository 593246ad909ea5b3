package auth

import (
	"errors"
)

// Sentinel errors for the authentication flow. Handlers map these to
// the client-facing error codes; anything else surfaces as a generic
// internal error.
var (
	ErrInvalidCredentials = errors.New("invalid ration card ID or phone number")
	ErrRateLimited        = errors.New("too many OTP requests")
	ErrOTPSendFailed      = errors.New("failed to send OTP")
	ErrDeliveryUnknown    = errors.New("OTP delivery outcome unknown")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrInvalidMember      = errors.New("member does not belong to this family")
	ErrMemberNotSelected  = errors.New("no family member selected")
	ErrInvalidAadhaar     = errors.New("invalid Aadhaar number")
	ErrUserNotFound       = errors.New("user not found")
	ErrMemberNotFound     = errors.New("member not found")
)
