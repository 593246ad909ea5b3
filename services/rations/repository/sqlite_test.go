package repository

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiration/digiration/internal/pkg/database"
	"github.com/digiration/digiration/internal/pkg/models"
)

// setupSQLiteRepoTest opens a throwaway database file with the real
// schema applied. A single pooled connection keeps concurrent writers
// queued on the pool instead of surfacing driver busy errors.
func setupSQLiteRepoTest(t *testing.T) (*RationRepo, func()) {
	t.Helper()

	client, err := database.NewSQLiteClient(models.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "digiration.db"),
		BusyTimeout: 5000,
		MaxConns:    1,
	})
	require.NoError(t, err)

	repo := NewRationRepo(&models.Config{}, client.GetDB())

	cleanup := func() {
		client.Close()
	}

	return repo, cleanup
}

func seedMemberWithQuotas(t *testing.T, repo *RationRepo) {
	t.Helper()

	now := time.Now()
	statements := []struct {
		query string
		args  []interface{}
	}{
		{`INSERT INTO users (id, ration_card_id, family_name, phone_number, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			[]interface{}{"user-1", "DL01A1234567", "Sharma", "+919876543210", now, now}},
		{`INSERT INTO family_members (id, user_id, name, age, gender, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			[]interface{}{"member-1", "user-1", "Asha", 34, "female", now}},
		{`INSERT INTO ration_items (id, name, category, unit, price_per_unit, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			[]interface{}{"item-rice", "Rice", "grains", "kg", 3.0, now}},
		{`INSERT INTO ration_items (id, name, category, unit, price_per_unit, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			[]interface{}{"item-sugar", "Sugar", "essentials", "kg", 13.5, now}},
		{`INSERT INTO member_quotas (id, member_id, item_id, monthly_limit, current_used, reset_date, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			[]interface{}{"quota-rice", "member-1", "item-rice", 10.0, 10.0, "2026-10-01", now}},
		{`INSERT INTO member_quotas (id, member_id, item_id, monthly_limit, current_used, reset_date, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			[]interface{}{"quota-sugar", "member-1", "item-sugar", 0.0, 0.0, "2026-10-01", now}},
	}

	for _, stmt := range statements {
		_, err := repo.db.Exec(stmt.query, stmt.args...)
		require.NoError(t, err)
	}
}

func seedShopWithStock(t *testing.T, repo *RationRepo, quantity float64) {
	t.Helper()

	now := time.Now()
	statements := []struct {
		query string
		args  []interface{}
	}{
		{`INSERT INTO ration_items (id, name, category, unit, price_per_unit, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			[]interface{}{"item-rice", "Rice", "grains", "kg", 3.0, now}},
		{`INSERT INTO shops (id, name, address_line1, city, state, pincode, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			[]interface{}{"shop-1", "FPS Karol Bagh", "12 Ajmal Khan Rd", "New Delhi", "Delhi", "110005", now}},
		{`INSERT INTO shop_stock (id, shop_id, item_id, available_quantity, last_updated)
			VALUES (?, ?, ?, ?, ?)`,
			[]interface{}{"stock-1", "shop-1", "item-rice", quantity, now}},
	}

	for _, stmt := range statements {
		_, err := repo.db.Exec(stmt.query, stmt.args...)
		require.NoError(t, err)
	}
}

func TestGetQuotaSummary_CountsEntitlementsNotHeadroom(t *testing.T) {
	repo, cleanup := setupSQLiteRepoTest(t)
	defer cleanup()

	seedMemberWithQuotas(t, repo)

	// Rice is fully drawn down but still an entitlement; the zero-limit
	// sugar row is not one.
	summary, err := repo.GetQuotaSummary(context.Background(), "member-1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalItems)
	assert.Equal(t, 1, summary.ItemsWithQuota)
	assert.Equal(t, 10.0, summary.TotalQuotaUsed)
	assert.Equal(t, 100.0, summary.AverageUsagePercent)
}

func TestReduceStock_ConcurrentDrainNeverOverdraws(t *testing.T) {
	repo, cleanup := setupSQLiteRepoTest(t)
	defer cleanup()

	const (
		onHand  = 10.0
		buyers  = 20
		perDraw = 1.0
	)

	seedShopWithStock(t, repo, onHand)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.ReduceStock(context.Background(), "shop-1", "item-rice", perDraw)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Exactly the on-hand quantity was sold; the other buyers were
	// refused and the shelf reads zero, not negative.
	assert.Equal(t, int(onHand/perDraw), succeeded)

	check, err := repo.CheckStock(context.Background(), "shop-1", "item-rice", perDraw)
	require.NoError(t, err)
	assert.Equal(t, 0.0, check.AvailableQuantity)
	assert.False(t, check.Available)
}
