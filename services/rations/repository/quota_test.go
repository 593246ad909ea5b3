package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiration/digiration/internal/pkg/models"
)

func setupRationRepoTest(t *testing.T) (*RationRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &RationRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func quotaRow(used, limit float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "member_id", "item_id", "monthly_limit",
		"current_used", "reset_date", "created_at"}).
		AddRow("quota-1", "member-1", "item-1", limit, used, "2026-09-01", time.Now())
}

func TestCheckQuota(t *testing.T) {
	testCases := []struct {
		name          string
		used          float64
		limit         float64
		quantity      float64
		wantAvailable bool
	}{
		{name: "within limit", used: 2, limit: 10, quantity: 3, wantAvailable: true},
		{name: "exactly exhausts limit", used: 7, limit: 10, quantity: 3, wantAvailable: true},
		{name: "exceeds limit", used: 8, limit: 10, quantity: 3, wantAvailable: false},
		{name: "already exhausted", used: 10, limit: 10, quantity: 1, wantAvailable: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupRationRepoTest(t)
			defer cleanup()

			mock.ExpectQuery("SELECT (.+) FROM member_quotas").
				WithArgs("member-1", "item-1").
				WillReturnRows(quotaRow(tc.used, tc.limit))

			check, err := repo.CheckQuota(context.Background(), "member-1", "item-1", tc.quantity)
			require.NoError(t, err)
			assert.Equal(t, tc.wantAvailable, check.Available)
			assert.Equal(t, tc.limit-tc.used, check.RemainingQuota)
			assert.Equal(t, tc.used, check.CurrentUsed)
		})
	}
}

func TestCheckQuota_NoEntitlement(t *testing.T) {
	repo, mock, cleanup := setupRationRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM member_quotas").
		WithArgs("member-1", "item-unknown").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	check, err := repo.CheckQuota(context.Background(), "member-1", "item-unknown", 1)
	require.NoError(t, err)
	assert.False(t, check.Available)
	assert.Zero(t, check.RemainingQuota)
	assert.Zero(t, check.MonthlyLimit)
}

func TestConsumeQuota_RespectsLimit(t *testing.T) {
	repo, mock, cleanup := setupRationRepoTest(t)
	defer cleanup()

	// Draw fits: one row updated
	mock.ExpectExec("UPDATE member_quotas").
		WithArgs(3.0, "member-1", "item-1", 3.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.ConsumeQuota(context.Background(), "member-1", "item-1", 3)
	require.NoError(t, err)
	assert.True(t, ok)

	// Draw would exceed the limit: condition filters the row out
	mock.ExpectExec("UPDATE member_quotas").
		WithArgs(100.0, "member-1", "item-1", 100.0).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.ConsumeQuota(context.Background(), "member-1", "item-1", 100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateUsage_Unconditional(t *testing.T) {
	repo, mock, cleanup := setupRationRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE member_quotas").
		WithArgs(5.0, "member-1", "item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUsage(context.Background(), "member-1", "item-1", 5)
	assert.NoError(t, err)
}

func TestResetMonthlyQuotas(t *testing.T) {
	repo, mock, cleanup := setupRationRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE member_quotas").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 4))

	count, err := repo.ResetMonthlyQuotas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	// A second run finds nothing left to advance
	mock.ExpectExec("UPDATE member_quotas").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	count, err = repo.ResetMonthlyQuotas(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetQuotaSummary(t *testing.T) {
	repo, mock, cleanup := setupRationRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"total_items", "items_with_quota", "total_quota_used", "avg_usage_percent"}).
		AddRow(4, 3, 12.5, 41.7)
	mock.ExpectQuery("SELECT (.+) FROM member_quotas").
		WithArgs("member-1").
		WillReturnRows(rows)

	summary, err := repo.GetQuotaSummary(context.Background(), "member-1")
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalItems)
	assert.Equal(t, 3, summary.ItemsWithQuota)
	assert.Equal(t, 12.5, summary.TotalQuotaUsed)
	assert.Equal(t, 41.7, summary.AverageUsagePercent)
}
