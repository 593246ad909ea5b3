package usecase

import (
	"time"

	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/auth"
)

// AuthUC implements auth.AuthUC
type AuthUC struct {
	authRepo    auth.AuthRepo
	smsGW       auth.SMSGateway
	aadhaarGW   auth.AadhaarVerifier
	rateLimiter *OTPRateLimiter
	cfg         *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	smsGW auth.SMSGateway,
	aadhaarGW auth.AadhaarVerifier,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo:  authRepo,
		smsGW:     smsGW,
		aadhaarGW: aadhaarGW,
		rateLimiter: NewOTPRateLimiter(
			cfg.OTP.MaxRequests,
			time.Duration(cfg.OTP.WindowMinutes)*time.Minute,
		),
		cfg: cfg,
	}
}

func (u *AuthUC) otpTTL() time.Duration {
	return time.Duration(u.cfg.OTP.TTLMinutes) * time.Minute
}
