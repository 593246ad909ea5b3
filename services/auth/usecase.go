package auth

import (
	"context"

	"github.com/digiration/digiration/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/digiration/digiration/services/auth AuthUC

// AuthUC drives a login attempt through its stages:
// created -> otp pending -> verified -> member selected -> token issued.
type AuthUC interface {
	InitiateLogin(ctx context.Context, rationCardID, phoneNumber string) (*models.InitiateResponse, error)
	VerifyOTP(ctx context.Context, sessionID, otpCode string) (*models.VerifyOTPResponse, error)
	SelectMember(ctx context.Context, sessionID, memberID string) (*models.SelectMemberResponse, error)
	VerifyAadhaar(ctx context.Context, sessionID, aadhaarNumber string) (*models.AuthResponse, error)
	ResendOTP(ctx context.Context, sessionID string) error
	Logout(ctx context.Context, sessionID string) error

	// CleanupExpiredSessions removes dead sessions and abandoned logins;
	// run periodically by the process entry point.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
