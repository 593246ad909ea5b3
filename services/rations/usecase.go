package rations

import (
	"context"

	"github.com/digiration/digiration/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/digiration/digiration/services/rations RationUC

// RationUC exposes the member-facing ration operations. The calling
// user and member always come from verified token claims, never from
// the request body.
type RationUC interface {
	GetMemberQuotas(ctx context.Context, memberID, requestingUserID string) ([]models.MemberQuota, *models.QuotaSummary, error)
	GetShopStock(ctx context.Context, shopID string) ([]models.ShopStock, *models.StockSummary, error)
	CheckAvailability(ctx context.Context, memberID, itemID, shopID string, quantity float64) (*models.AvailabilityResult, error)
	Purchase(ctx context.Context, memberID string, req *models.PurchaseRequest) (*models.Purchase, error)

	ListItems(ctx context.Context, category, search string) ([]models.RationItem, error)
	ListShops(ctx context.Context, city, pincode string) ([]models.Shop, error)

	// ResetMonthlyQuotas zeroes usage for rows past their reset date;
	// run periodically by the process entry point.
	ResetMonthlyQuotas(ctx context.Context) (int64, error)
}
