package usecase

import (
	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/rations"
)

// RationUC implements rations.RationUC
type RationUC struct {
	rationRepo rations.RationRepo
	paymentGW  rations.PaymentGateway
	publisher  rations.PurchasePublisher
	cfg        *models.Config
}

// NewRationUC creates a new ration usecase instance
func NewRationUC(
	rationRepo rations.RationRepo,
	paymentGW rations.PaymentGateway,
	publisher rations.PurchasePublisher,
	cfg *models.Config,
) *RationUC {
	return &RationUC{
		rationRepo: rationRepo,
		paymentGW:  paymentGW,
		publisher:  publisher,
		cfg:        cfg,
	}
}
