package gateway

import (
	"context"
	"time"

	"github.com/digiration/digiration/internal/pkg/logger"
	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/auth"
)

// simulatedSendDelay approximates a provider round trip in environments
// without a real SMS channel.
const simulatedSendDelay = 100 * time.Millisecond

// SMSGateway is a stand-in for an SMS provider integration. Outside
// production it logs the code instead of dispatching it.
type SMSGateway struct {
	cfg *models.Config
}

// NewSMSGateway creates a new SMS gateway instance
func NewSMSGateway(cfg *models.Config) *SMSGateway {
	return &SMSGateway{cfg: cfg}
}

// SendOTP dispatches the one-time code to the phone number. The wait is
// bounded by the caller's context; when the deadline fires mid-send the
// outcome is unknown, not failed.
func (g *SMSGateway) SendOTP(ctx context.Context, phoneNumber, otpCode string) (bool, error) {
	select {
	case <-time.After(simulatedSendDelay):
	case <-ctx.Done():
		return false, auth.ErrDeliveryUnknown
	}

	logger.Info("OTP dispatched",
		logger.String("phone_number", phoneNumber),
		logger.String("otp_code", otpCode))

	return true, nil
}
