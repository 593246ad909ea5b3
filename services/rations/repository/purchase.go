package repository

import (
	"context"
	"fmt"

	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/rations"
)

// RecordPurchase commits a purchase atomically: conditional stock
// decrement, conditional quota consume, then the audit insert. Either
// conditional coming back empty rolls the transaction back with the
// matching sentinel, so quota and stock can never drift apart.
func (r *RationRepo) RecordPurchase(ctx context.Context, purchase *models.Purchase) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin purchase transaction: %w", err)
	}
	defer tx.Rollback()

	reduced, err := reduceStock(ctx, tx, purchase.ShopID, purchase.ItemID, purchase.Quantity)
	if err != nil {
		return err
	}
	if !reduced {
		return rations.ErrInsufficientStock
	}

	consumed, err := consumeQuota(ctx, tx, purchase.MemberID, purchase.ItemID, purchase.Quantity)
	if err != nil {
		return err
	}
	if !consumed {
		return rations.ErrInsufficientQuota
	}

	insert := `
		INSERT INTO purchases (id, member_id, item_id, shop_id, quantity, total_cost, payment_ref, completed_at)
		VALUES (:id, :member_id, :item_id, :shop_id, :quantity, :total_cost, :payment_ref, :completed_at)
	`
	if _, err := tx.NamedExecContext(ctx, insert, purchase); err != nil {
		return fmt.Errorf("failed to record purchase: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit purchase: %w", err)
	}

	return nil
}
