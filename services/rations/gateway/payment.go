package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/digiration/digiration/internal/pkg/logger"
	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/rations"
)

// simulatedChargeDelay approximates a payment provider round trip.
const simulatedChargeDelay = 150 * time.Millisecond

// PaymentGateway is a stand-in for a UPI/payment provider integration.
// Every charge succeeds after a simulated delay.
type PaymentGateway struct {
	cfg *models.Config
}

// NewPaymentGateway creates a new payment gateway instance
func NewPaymentGateway(cfg *models.Config) *PaymentGateway {
	return &PaymentGateway{cfg: cfg}
}

// ProcessPayment charges the member. The wait is bounded by the
// caller's context; when the deadline fires mid-charge the outcome is
// unknown, not declined.
func (g *PaymentGateway) ProcessPayment(ctx context.Context, memberID string, amount float64) (string, bool, error) {
	select {
	case <-time.After(simulatedChargeDelay):
	case <-ctx.Done():
		return "", false, rations.ErrPaymentUnknown
	}

	ref := fmt.Sprintf("PAY-%s", uuid.New().String())

	logger.Info("Payment processed",
		logger.String("payment_ref", ref),
		logger.String("member_id", memberID),
		logger.Float64("amount", amount))

	return ref, true, nil
}
