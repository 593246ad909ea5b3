package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/rations"
	"github.com/digiration/digiration/services/rations/mocks"
)

func setupRationUCTest(t *testing.T) (*RationUC, *mocks.MockRationRepo, *mocks.MockPaymentGateway, *mocks.MockPurchasePublisher, func()) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockRationRepo(ctrl)
	mockPayment := mocks.NewMockPaymentGateway(ctrl)
	mockPublisher := mocks.NewMockPurchasePublisher(ctrl)

	uc := NewRationUC(mockRepo, mockPayment, mockPublisher, &models.Config{})

	return uc, mockRepo, mockPayment, mockPublisher, ctrl.Finish
}

func TestGetMemberQuotas_Success(t *testing.T) {
	uc, mockRepo, _, _, finish := setupRationUCTest(t)
	defer finish()

	quotas := []models.MemberQuota{{ID: "quota-1", MemberID: "member-1", ItemID: "item-1"}}
	summary := &models.QuotaSummary{TotalItems: 1}

	mockRepo.EXPECT().ValidateMemberBelongsToUser(gomock.Any(), "member-1", "user-1").Return(true, nil)
	mockRepo.EXPECT().GetMemberQuotas(gomock.Any(), "member-1").Return(quotas, nil)
	mockRepo.EXPECT().GetQuotaSummary(gomock.Any(), "member-1").Return(summary, nil)

	got, gotSummary, err := uc.GetMemberQuotas(context.Background(), "member-1", "user-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, gotSummary.TotalItems)
}

func TestGetMemberQuotas_ForeignMemberForbidden(t *testing.T) {
	uc, mockRepo, _, _, finish := setupRationUCTest(t)
	defer finish()

	// Nonexistent and not-owned members are indistinguishable to the caller
	mockRepo.EXPECT().ValidateMemberBelongsToUser(gomock.Any(), "member-other", "user-1").Return(false, nil)

	_, _, err := uc.GetMemberQuotas(context.Background(), "member-other", "user-1")
	assert.ErrorIs(t, err, rations.ErrForbidden)
}

func TestGetShopStock_UnknownShop(t *testing.T) {
	uc, mockRepo, _, _, finish := setupRationUCTest(t)
	defer finish()

	mockRepo.EXPECT().GetShop(gomock.Any(), "missing").Return(nil, rations.ErrShopNotFound)

	_, _, err := uc.GetShopStock(context.Background(), "missing")
	assert.ErrorIs(t, err, rations.ErrShopNotFound)
}

func TestCheckAvailability(t *testing.T) {
	testCases := []struct {
		name            string
		quota           *models.QuotaCheck
		stock           *models.StockCheck
		wantCanPurchase bool
		wantCost        float64
	}{
		{
			name:            "both pass",
			quota:           &models.QuotaCheck{Available: true, RemainingQuota: 8},
			stock:           &models.StockCheck{Available: true, AvailableQuantity: 20},
			wantCanPurchase: true,
			wantCost:        15, // 5 x 3.0
		},
		{
			name:            "quota blocks",
			quota:           &models.QuotaCheck{Available: false, RemainingQuota: 1},
			stock:           &models.StockCheck{Available: true, AvailableQuantity: 20},
			wantCanPurchase: false,
			wantCost:        0,
		},
		{
			name:            "stock blocks",
			quota:           &models.QuotaCheck{Available: true, RemainingQuota: 8},
			stock:           &models.StockCheck{Available: false, AvailableQuantity: 2},
			wantCanPurchase: false,
			wantCost:        0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, mockRepo, _, _, finish := setupRationUCTest(t)
			defer finish()

			item := &models.RationItem{ID: "item-1", PricePerUnit: 3.0}

			mockRepo.EXPECT().GetItem(gomock.Any(), "item-1").Return(item, nil)
			mockRepo.EXPECT().GetShop(gomock.Any(), "shop-1").Return(&models.Shop{ID: "shop-1"}, nil)
			mockRepo.EXPECT().CheckQuota(gomock.Any(), "member-1", "item-1", 5.0).Return(tc.quota, nil)
			mockRepo.EXPECT().CheckStock(gomock.Any(), "shop-1", "item-1", 5.0).Return(tc.stock, nil)

			result, err := uc.CheckAvailability(context.Background(), "member-1", "item-1", "shop-1", 5)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCanPurchase, result.CanPurchase)
			assert.Equal(t, tc.wantCost, result.EstimatedCost)
		})
	}
}

func TestCheckAvailability_UnknownItem(t *testing.T) {
	uc, mockRepo, _, _, finish := setupRationUCTest(t)
	defer finish()

	mockRepo.EXPECT().GetItem(gomock.Any(), "missing").Return(nil, rations.ErrItemNotFound)

	_, err := uc.CheckAvailability(context.Background(), "member-1", "missing", "shop-1", 5)
	assert.ErrorIs(t, err, rations.ErrItemNotFound)
}

func TestResetMonthlyQuotas(t *testing.T) {
	uc, mockRepo, _, _, finish := setupRationUCTest(t)
	defer finish()

	mockRepo.EXPECT().ResetMonthlyQuotas(gomock.Any()).Return(int64(7), nil)

	count, err := uc.ResetMonthlyQuotas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
