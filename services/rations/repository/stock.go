package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/digiration/digiration/internal/pkg/models"
)

// lowStockThreshold marks a stocked item as running out.
const lowStockThreshold = 10.0

const stockColumns = `
	s.id, s.shop_id, s.item_id, s.available_quantity, s.price_override, s.last_updated,
	i.name AS item_name, i.unit AS item_unit, i.price_per_unit AS base_price
`

// GetShopStock returns the shop's stock rows for active items, joined
// with the item catalog.
func (r *RationRepo) GetShopStock(ctx context.Context, shopID string) ([]models.ShopStock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM shop_stock s
		JOIN ration_items i ON i.id = s.item_id
		WHERE s.shop_id = ? AND i.is_active = 1
		ORDER BY i.category, i.name
	`

	stock := []models.ShopStock{}
	if err := r.db.SelectContext(ctx, &stock, query, shopID); err != nil {
		return nil, fmt.Errorf("failed to get shop stock: %w", err)
	}

	return stock, nil
}

// CheckStock answers whether the shop holds the requested quantity. A
// missing stock row reads as zero on hand.
func (r *RationRepo) CheckStock(ctx context.Context, shopID, itemID string, quantity float64) (*models.StockCheck, error) {
	query := `
		SELECT available_quantity
		FROM shop_stock
		WHERE shop_id = ? AND item_id = ?
	`

	var available float64
	err := r.db.GetContext(ctx, &available, query, shopID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.StockCheck{
				Available:         false,
				RequestedQuantity: quantity,
			}, nil
		}
		return nil, fmt.Errorf("failed to check stock: %w", err)
	}

	return &models.StockCheck{
		Available:         available >= quantity,
		AvailableQuantity: available,
		RequestedQuantity: quantity,
	}, nil
}

// ReduceStock decrements on-hand quantity only while enough remains.
// The condition and the decrement travel in one statement, so two
// concurrent purchases can never drive the quantity negative; the loser
// sees zero affected rows.
func (r *RationRepo) ReduceStock(ctx context.Context, shopID, itemID string, quantity float64) (bool, error) {
	return reduceStock(ctx, r.db, shopID, itemID, quantity)
}

func reduceStock(ctx context.Context, ext sqlx.ExtContext, shopID, itemID string, quantity float64) (bool, error) {
	query := `
		UPDATE shop_stock
		SET available_quantity = available_quantity - ?, last_updated = ?
		WHERE shop_id = ? AND item_id = ? AND available_quantity >= ?
	`

	result, err := ext.ExecContext(ctx, query, quantity, time.Now(), shopID, itemID, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to reduce stock: %w", err)
	}

	return affected(result)
}

// UpdateStockQuantity sets the absolute on-hand quantity (restock)
func (r *RationRepo) UpdateStockQuantity(ctx context.Context, shopID, itemID string, quantity float64) error {
	query := `
		UPDATE shop_stock
		SET available_quantity = ?, last_updated = ?
		WHERE shop_id = ? AND item_id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, quantity, time.Now(), shopID, itemID); err != nil {
		return fmt.Errorf("failed to update stock quantity: %w", err)
	}

	return nil
}

// GetLowStockItems returns the shop's rows at or below the low-stock
// threshold, emptiest first.
func (r *RationRepo) GetLowStockItems(ctx context.Context, shopID string) ([]models.ShopStock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM shop_stock s
		JOIN ration_items i ON i.id = s.item_id
		WHERE s.shop_id = ? AND i.is_active = 1 AND s.available_quantity <= ?
		ORDER BY s.available_quantity ASC
	`

	stock := []models.ShopStock{}
	if err := r.db.SelectContext(ctx, &stock, query, shopID, lowStockThreshold); err != nil {
		return nil, fmt.Errorf("failed to get low stock items: %w", err)
	}

	return stock, nil
}

// GetStockSummary aggregates the shop's stock rows. Total value prices
// each row at its override when set, the catalog base price otherwise.
func (r *RationRepo) GetStockSummary(ctx context.Context, shopID string) (*models.StockSummary, error) {
	query := `
		SELECT COUNT(*) AS total_items,
		       COALESCE(SUM(CASE WHEN s.available_quantity > 0 THEN 1 ELSE 0 END), 0) AS in_stock,
		       COALESCE(SUM(CASE WHEN s.available_quantity <= 0 THEN 1 ELSE 0 END), 0) AS out_of_stock,
		       COALESCE(SUM(CASE WHEN s.available_quantity > 0 AND s.available_quantity <= ? THEN 1 ELSE 0 END), 0) AS low_stock,
		       COALESCE(SUM(s.available_quantity * COALESCE(s.price_override, i.price_per_unit)), 0) AS total_value
		FROM shop_stock s
		JOIN ration_items i ON i.id = s.item_id
		WHERE s.shop_id = ?
	`

	var summary models.StockSummary
	if err := r.db.GetContext(ctx, &summary, query, lowStockThreshold, shopID); err != nil {
		return nil, fmt.Errorf("failed to get stock summary: %w", err)
	}

	return &summary, nil
}
