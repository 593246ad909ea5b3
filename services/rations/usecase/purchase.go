package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/digiration/digiration/internal/pkg/logger"
	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/rations"
)

// Purchase completes a confirmed purchase intent: availability is
// re-checked, payment is taken, then stock and quota move together in
// one transaction. Payment runs before the commit; the conditional
// updates inside the transaction are the authoritative gate, so a race
// between the check and the commit surfaces as a rolled-back purchase,
// never as oversold stock.
func (u *RationUC) Purchase(ctx context.Context, memberID string, req *models.PurchaseRequest) (*models.Purchase, error) {
	item, err := u.rationRepo.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if _, err := u.rationRepo.GetShop(ctx, req.ShopID); err != nil {
		return nil, err
	}

	quotaCheck, err := u.rationRepo.CheckQuota(ctx, memberID, req.ItemID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if !quotaCheck.Available {
		return nil, rations.ErrInsufficientQuota
	}

	stockCheck, err := u.rationRepo.CheckStock(ctx, req.ShopID, req.ItemID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if !stockCheck.Available {
		return nil, rations.ErrInsufficientStock
	}

	totalCost := req.Quantity * item.PricePerUnit

	paymentRef, paid, err := u.paymentGW.ProcessPayment(ctx, memberID, totalCost)
	if err != nil {
		if errors.Is(err, rations.ErrPaymentUnknown) {
			logger.Warn("Payment outcome unknown",
				logger.String("member_id", memberID),
				logger.Float64("amount", totalCost))
			return nil, rations.ErrPaymentUnknown
		}
		return nil, fmt.Errorf("payment processing failed: %w", err)
	}
	if !paid {
		return nil, rations.ErrPaymentFailed
	}

	purchase := &models.Purchase{
		ID:          uuid.New().String(),
		MemberID:    memberID,
		ItemID:      req.ItemID,
		ShopID:      req.ShopID,
		Quantity:    req.Quantity,
		TotalCost:   totalCost,
		PaymentRef:  paymentRef,
		CompletedAt: time.Now(),
	}

	if err := u.rationRepo.RecordPurchase(ctx, purchase); err != nil {
		return nil, err
	}

	logger.Info("Purchase completed",
		logger.String("purchase_id", purchase.ID),
		logger.String("member_id", memberID),
		logger.String("item_id", req.ItemID),
		logger.Float64("quantity", req.Quantity),
		logger.Float64("total_cost", totalCost))

	u.publishPurchase(ctx, purchase)

	return purchase, nil
}

// publishPurchase emits the purchase event best-effort. A publish
// failure is logged and dropped; the purchase already committed.
func (u *RationUC) publishPurchase(ctx context.Context, purchase *models.Purchase) {
	if u.publisher == nil {
		return
	}

	event := &models.PurchaseEvent{
		PurchaseID: purchase.ID,
		MemberID:   purchase.MemberID,
		ItemID:     purchase.ItemID,
		ShopID:     purchase.ShopID,
		Quantity:   purchase.Quantity,
		TotalCost:  purchase.TotalCost,
		Timestamp:  purchase.CompletedAt,
	}

	if err := u.publisher.PublishPurchaseCompleted(ctx, event); err != nil {
		logger.Warn("Failed to publish purchase event",
			logger.ErrorField(err),
			logger.String("purchase_id", purchase.ID))
	}
}
