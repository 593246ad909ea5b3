package rations

import (
	"context"

	"github.com/digiration/digiration/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/digiration/digiration/services/rations RationRepo

// RationRepo is the storage boundary for the quota ledger, the stock
// ledger, the catalog and the purchase audit trail. Conditional
// mutations report whether they took effect; a false return is a
// business-rule refusal, not an error.
type RationRepo interface {
	// Quota ledger
	GetMemberQuotas(ctx context.Context, memberID string) ([]models.MemberQuota, error)
	CheckQuota(ctx context.Context, memberID, itemID string, quantity float64) (*models.QuotaCheck, error)
	UpdateUsage(ctx context.Context, memberID, itemID string, quantity float64) error
	ConsumeQuota(ctx context.Context, memberID, itemID string, quantity float64) (bool, error)
	ResetMonthlyQuotas(ctx context.Context) (int64, error)
	GetQuotaSummary(ctx context.Context, memberID string) (*models.QuotaSummary, error)

	// Stock ledger
	GetShopStock(ctx context.Context, shopID string) ([]models.ShopStock, error)
	CheckStock(ctx context.Context, shopID, itemID string, quantity float64) (*models.StockCheck, error)
	ReduceStock(ctx context.Context, shopID, itemID string, quantity float64) (bool, error)
	UpdateStockQuantity(ctx context.Context, shopID, itemID string, quantity float64) error
	GetLowStockItems(ctx context.Context, shopID string) ([]models.ShopStock, error)
	GetStockSummary(ctx context.Context, shopID string) (*models.StockSummary, error)

	// Catalog
	GetItem(ctx context.Context, itemID string) (*models.RationItem, error)
	ListActiveItems(ctx context.Context, category, search string) ([]models.RationItem, error)
	GetShop(ctx context.Context, shopID string) (*models.Shop, error)
	ListActiveShops(ctx context.Context, city, pincode string) ([]models.Shop, error)

	// ValidateMemberBelongsToUser is the ownership check applied before
	// any member-scoped read.
	ValidateMemberBelongsToUser(ctx context.Context, memberID, userID string) (bool, error)

	// RecordPurchase runs the stock decrement, the quota consume and the
	// audit insert in one transaction; either conditional failing rolls
	// the whole thing back.
	RecordPurchase(ctx context.Context, purchase *models.Purchase) error
}
