package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/rations"
)

// GetItem retrieves a catalog item by ID
func (r *RationRepo) GetItem(ctx context.Context, itemID string) (*models.RationItem, error) {
	query := `SELECT * FROM ration_items WHERE id = ?`

	var item models.RationItem
	err := r.db.GetContext(ctx, &item, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rations.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get ration item: %w", err)
	}

	return &item, nil
}

// ListActiveItems returns active catalog items, optionally narrowed by
// category and a name search.
func (r *RationRepo) ListActiveItems(ctx context.Context, category, search string) ([]models.RationItem, error) {
	query := `SELECT * FROM ration_items WHERE is_active = 1`
	args := []interface{}{}

	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	if search != "" {
		query += ` AND (name LIKE ? OR name_hindi LIKE ?)`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY category, name`

	items := []models.RationItem{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list ration items: %w", err)
	}

	return items, nil
}

// GetShop retrieves a shop by ID
func (r *RationRepo) GetShop(ctx context.Context, shopID string) (*models.Shop, error) {
	query := `SELECT * FROM shops WHERE id = ?`

	var shop models.Shop
	err := r.db.GetContext(ctx, &shop, query, shopID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rations.ErrShopNotFound
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return &shop, nil
}

// ListActiveShops returns active shops, optionally narrowed by city
// and pincode.
func (r *RationRepo) ListActiveShops(ctx context.Context, city, pincode string) ([]models.Shop, error) {
	query := `SELECT * FROM shops WHERE is_active = 1`
	args := []interface{}{}

	if city != "" {
		query += ` AND city = ?`
		args = append(args, city)
	}
	if pincode != "" {
		query += ` AND pincode = ?`
		args = append(args, pincode)
	}
	query += ` ORDER BY name`

	shops := []models.Shop{}
	if err := r.db.SelectContext(ctx, &shops, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}

	return shops, nil
}

// ValidateMemberBelongsToUser checks that the member is part of the
// user's family before any member-scoped read is served.
func (r *RationRepo) ValidateMemberBelongsToUser(ctx context.Context, memberID, userID string) (bool, error) {
	query := `SELECT COUNT(*) FROM family_members WHERE id = ? AND user_id = ?`

	var count int
	if err := r.db.GetContext(ctx, &count, query, memberID, userID); err != nil {
		return false, fmt.Errorf("failed to validate member ownership: %w", err)
	}

	return count > 0, nil
}
