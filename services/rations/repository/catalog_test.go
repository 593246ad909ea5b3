package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/rations"
)

func testPurchase() *models.Purchase {
	return &models.Purchase{
		ID:          "purchase-1",
		MemberID:    "member-1",
		ItemID:      "item-1",
		ShopID:      "shop-1",
		Quantity:    5,
		TotalCost:   150,
		PaymentRef:  "PAY-abc",
		CompletedAt: time.Now(),
	}
}

func TestGetItem_NotFound(t *testing.T) {
	repo, mock, cleanup := setupRationRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM ration_items").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	item, err := repo.GetItem(context.Background(), "missing")
	assert.Nil(t, item)
	assert.ErrorIs(t, err, rations.ErrItemNotFound)
}

func TestGetShop_NotFound(t *testing.T) {
	repo, mock, cleanup := setupRationRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM shops").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	shop, err := repo.GetShop(context.Background(), "missing")
	assert.Nil(t, shop)
	assert.ErrorIs(t, err, rations.ErrShopNotFound)
}

func TestListActiveItems_Filters(t *testing.T) {
	repo, mock, cleanup := setupRationRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "name_hindi", "category", "unit",
		"price_per_unit", "is_active", "created_at"}).
		AddRow("item-1", "Rice", "", "grains", "kg", 3.0, true, time.Now())
	mock.ExpectQuery("SELECT \\* FROM ration_items WHERE is_active = 1 AND category").
		WithArgs("grains", "%rice%", "%rice%").
		WillReturnRows(rows)

	items, err := repo.ListActiveItems(context.Background(), "grains", "rice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Rice", items[0].Name)
}

func TestValidateMemberBelongsToUser(t *testing.T) {
	repo, mock, cleanup := setupRationRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM family_members").
		WithArgs("member-1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	owned, err := repo.ValidateMemberBelongsToUser(context.Background(), "member-1", "user-1")
	require.NoError(t, err)
	assert.True(t, owned)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM family_members").
		WithArgs("member-1", "user-other").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	owned, err = repo.ValidateMemberBelongsToUser(context.Background(), "member-1", "user-other")
	require.NoError(t, err)
	assert.False(t, owned)
}
