package rations

import (
	"context"

	"github.com/digiration/digiration/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/digiration/digiration/services/rations PaymentGateway,PurchasePublisher

// PaymentGateway charges the member before a purchase commits. A false
// return means the charge was declined and may be retried; an
// ErrPaymentUnknown error means the outcome could not be observed
// within the bounded wait.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, memberID string, amount float64) (ref string, ok bool, err error)
}

// PurchasePublisher emits purchase-completed events for downstream
// consumers. Publishing is best-effort; a failure never unwinds the
// purchase.
type PurchasePublisher interface {
	PublishPurchaseCompleted(ctx context.Context, event *models.PurchaseEvent) error
}
