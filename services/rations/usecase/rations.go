package usecase

import (
	"context"
	"fmt"

	"github.com/digiration/digiration/internal/pkg/logger"
	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/rations"
)

// GetMemberQuotas returns the member's quota rows plus the aggregate
// view. Requests for a member outside the caller's family come back
// forbidden; whether the member exists at all is not revealed.
func (u *RationUC) GetMemberQuotas(ctx context.Context, memberID, requestingUserID string) ([]models.MemberQuota, *models.QuotaSummary, error) {
	owned, err := u.rationRepo.ValidateMemberBelongsToUser(ctx, memberID, requestingUserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to validate member ownership: %w", err)
	}
	if !owned {
		logger.Warn("Quota access rejected",
			logger.String("member_id", memberID),
			logger.String("user_id", requestingUserID))
		return nil, nil, rations.ErrForbidden
	}

	quotas, err := u.rationRepo.GetMemberQuotas(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}

	summary, err := u.rationRepo.GetQuotaSummary(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}

	return quotas, summary, nil
}

// GetShopStock returns the shop's stock rows plus the aggregate view
func (u *RationUC) GetShopStock(ctx context.Context, shopID string) ([]models.ShopStock, *models.StockSummary, error) {
	if _, err := u.rationRepo.GetShop(ctx, shopID); err != nil {
		return nil, nil, err
	}

	stock, err := u.rationRepo.GetShopStock(ctx, shopID)
	if err != nil {
		return nil, nil, err
	}

	summary, err := u.rationRepo.GetStockSummary(ctx, shopID)
	if err != nil {
		return nil, nil, err
	}

	return stock, summary, nil
}

// CheckAvailability composes the quota and stock ledgers for a purchase
// intent. The estimated cost is only priced when both checks pass.
func (u *RationUC) CheckAvailability(ctx context.Context, memberID, itemID, shopID string, quantity float64) (*models.AvailabilityResult, error) {
	item, err := u.rationRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if _, err := u.rationRepo.GetShop(ctx, shopID); err != nil {
		return nil, err
	}

	quotaCheck, err := u.rationRepo.CheckQuota(ctx, memberID, itemID, quantity)
	if err != nil {
		return nil, err
	}

	stockCheck, err := u.rationRepo.CheckStock(ctx, shopID, itemID, quantity)
	if err != nil {
		return nil, err
	}

	result := &models.AvailabilityResult{
		QuotaCheck:  *quotaCheck,
		StockCheck:  *stockCheck,
		CanPurchase: quotaCheck.Available && stockCheck.Available,
	}
	if result.CanPurchase {
		result.EstimatedCost = quantity * item.PricePerUnit
	}

	return result, nil
}

// ListItems returns the active item catalog
func (u *RationUC) ListItems(ctx context.Context, category, search string) ([]models.RationItem, error) {
	return u.rationRepo.ListActiveItems(ctx, category, search)
}

// ListShops returns the active shop directory
func (u *RationUC) ListShops(ctx context.Context, city, pincode string) ([]models.Shop, error) {
	return u.rationRepo.ListActiveShops(ctx, city, pincode)
}

// ResetMonthlyQuotas advances quota rows past their reset date
func (u *RationUC) ResetMonthlyQuotas(ctx context.Context) (int64, error) {
	count, err := u.rationRepo.ResetMonthlyQuotas(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Info("Monthly quotas reset", logger.Int64("count", count))
	}
	return count, nil
}
