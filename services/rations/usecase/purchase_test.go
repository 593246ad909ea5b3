package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/rations"
	"github.com/digiration/digiration/services/rations/mocks"
)

func purchaseRequest() *models.PurchaseRequest {
	return &models.PurchaseRequest{
		ItemID:   "item-1",
		ShopID:   "shop-1",
		Quantity: 5,
	}
}

func passingChecks(mockRepo *mocks.MockRationRepo) {
	mockRepo.EXPECT().GetItem(gomock.Any(), "item-1").
		Return(&models.RationItem{ID: "item-1", PricePerUnit: 3.0}, nil)
	mockRepo.EXPECT().GetShop(gomock.Any(), "shop-1").
		Return(&models.Shop{ID: "shop-1"}, nil)
	mockRepo.EXPECT().CheckQuota(gomock.Any(), "member-1", "item-1", 5.0).
		Return(&models.QuotaCheck{Available: true, RemainingQuota: 8}, nil)
	mockRepo.EXPECT().CheckStock(gomock.Any(), "shop-1", "item-1", 5.0).
		Return(&models.StockCheck{Available: true, AvailableQuantity: 20}, nil)
}

func TestPurchase_Success(t *testing.T) {
	uc, mockRepo, mockPayment, mockPublisher, finish := setupRationUCTest(t)
	defer finish()

	passingChecks(mockRepo)
	mockPayment.EXPECT().ProcessPayment(gomock.Any(), "member-1", 15.0).
		Return("PAY-abc", true, nil)
	mockRepo.EXPECT().RecordPurchase(gomock.Any(), gomock.Any()).Return(nil)
	mockPublisher.EXPECT().PublishPurchaseCompleted(gomock.Any(), gomock.Any()).Return(nil)

	purchase, err := uc.Purchase(context.Background(), "member-1", purchaseRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, purchase.ID)
	assert.Equal(t, "PAY-abc", purchase.PaymentRef)
	assert.Equal(t, 15.0, purchase.TotalCost)
}

func TestPurchase_QuotaPrecheckRejects(t *testing.T) {
	uc, mockRepo, _, _, finish := setupRationUCTest(t)
	defer finish()

	mockRepo.EXPECT().GetItem(gomock.Any(), "item-1").
		Return(&models.RationItem{ID: "item-1", PricePerUnit: 3.0}, nil)
	mockRepo.EXPECT().GetShop(gomock.Any(), "shop-1").
		Return(&models.Shop{ID: "shop-1"}, nil)
	mockRepo.EXPECT().CheckQuota(gomock.Any(), "member-1", "item-1", 5.0).
		Return(&models.QuotaCheck{Available: false, RemainingQuota: 2}, nil)

	_, err := uc.Purchase(context.Background(), "member-1", purchaseRequest())
	assert.ErrorIs(t, err, rations.ErrInsufficientQuota)
}

func TestPurchase_StockPrecheckRejects(t *testing.T) {
	uc, mockRepo, _, _, finish := setupRationUCTest(t)
	defer finish()

	mockRepo.EXPECT().GetItem(gomock.Any(), "item-1").
		Return(&models.RationItem{ID: "item-1", PricePerUnit: 3.0}, nil)
	mockRepo.EXPECT().GetShop(gomock.Any(), "shop-1").
		Return(&models.Shop{ID: "shop-1"}, nil)
	mockRepo.EXPECT().CheckQuota(gomock.Any(), "member-1", "item-1", 5.0).
		Return(&models.QuotaCheck{Available: true, RemainingQuota: 8}, nil)
	mockRepo.EXPECT().CheckStock(gomock.Any(), "shop-1", "item-1", 5.0).
		Return(&models.StockCheck{Available: false, AvailableQuantity: 2}, nil)

	_, err := uc.Purchase(context.Background(), "member-1", purchaseRequest())
	assert.ErrorIs(t, err, rations.ErrInsufficientStock)
}

func TestPurchase_PaymentDeclined(t *testing.T) {
	uc, mockRepo, mockPayment, _, finish := setupRationUCTest(t)
	defer finish()

	passingChecks(mockRepo)
	mockPayment.EXPECT().ProcessPayment(gomock.Any(), "member-1", 15.0).
		Return("", false, nil)

	_, err := uc.Purchase(context.Background(), "member-1", purchaseRequest())
	assert.ErrorIs(t, err, rations.ErrPaymentFailed)
}

func TestPurchase_PaymentOutcomeUnknown(t *testing.T) {
	uc, mockRepo, mockPayment, _, finish := setupRationUCTest(t)
	defer finish()

	passingChecks(mockRepo)
	mockPayment.EXPECT().ProcessPayment(gomock.Any(), "member-1", 15.0).
		Return("", false, rations.ErrPaymentUnknown)

	_, err := uc.Purchase(context.Background(), "member-1", purchaseRequest())
	assert.ErrorIs(t, err, rations.ErrPaymentUnknown)
}

func TestPurchase_TransactionLosesRace(t *testing.T) {
	// Pre-checks passed but another purchase drained the stock before the
	// conditional update ran
	uc, mockRepo, mockPayment, _, finish := setupRationUCTest(t)
	defer finish()

	passingChecks(mockRepo)
	mockPayment.EXPECT().ProcessPayment(gomock.Any(), "member-1", 15.0).
		Return("PAY-abc", true, nil)
	mockRepo.EXPECT().RecordPurchase(gomock.Any(), gomock.Any()).
		Return(rations.ErrInsufficientStock)

	_, err := uc.Purchase(context.Background(), "member-1", purchaseRequest())
	assert.ErrorIs(t, err, rations.ErrInsufficientStock)
}

func TestPurchase_PublishFailureDoesNotFailPurchase(t *testing.T) {
	uc, mockRepo, mockPayment, mockPublisher, finish := setupRationUCTest(t)
	defer finish()

	passingChecks(mockRepo)
	mockPayment.EXPECT().ProcessPayment(gomock.Any(), "member-1", 15.0).
		Return("PAY-abc", true, nil)
	mockRepo.EXPECT().RecordPurchase(gomock.Any(), gomock.Any()).Return(nil)
	mockPublisher.EXPECT().PublishPurchaseCompleted(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))

	purchase, err := uc.Purchase(context.Background(), "member-1", purchaseRequest())
	require.NoError(t, err)
	assert.NotNil(t, purchase)
}
