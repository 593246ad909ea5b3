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

// GetMemberQuotas returns the member's quota rows joined with the item
// catalog, ordered for display.
func (r *RationRepo) GetMemberQuotas(ctx context.Context, memberID string) ([]models.MemberQuota, error) {
	query := `
		SELECT q.id, q.member_id, q.item_id, q.monthly_limit, q.current_used,
		       q.reset_date, q.created_at,
		       i.name AS item_name, i.unit AS item_unit
		FROM member_quotas q
		JOIN ration_items i ON i.id = q.item_id
		WHERE q.member_id = ?
		ORDER BY i.category, i.name
	`

	quotas := []models.MemberQuota{}
	if err := r.db.SelectContext(ctx, &quotas, query, memberID); err != nil {
		return nil, fmt.Errorf("failed to get member quotas: %w", err)
	}

	return quotas, nil
}

// CheckQuota answers whether the member may draw the requested quantity
// of the item. A member with no quota row is not entitled: the check
// comes back unavailable with zeroed numbers, not an error.
func (r *RationRepo) CheckQuota(ctx context.Context, memberID, itemID string, quantity float64) (*models.QuotaCheck, error) {
	query := `
		SELECT id, member_id, item_id, monthly_limit, current_used, reset_date, created_at
		FROM member_quotas
		WHERE member_id = ? AND item_id = ?
	`

	var quota models.MemberQuota
	err := r.db.GetContext(ctx, &quota, query, memberID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.QuotaCheck{Available: false}, nil
		}
		return nil, fmt.Errorf("failed to check quota: %w", err)
	}

	return &models.QuotaCheck{
		Available:      quota.CurrentUsed+quantity <= quota.MonthlyLimit,
		RemainingQuota: quota.RemainingQuota(),
		MonthlyLimit:   quota.MonthlyLimit,
		CurrentUsed:    quota.CurrentUsed,
	}, nil
}

// UpdateUsage adds to the member's usage unconditionally. Callers that
// need the limit enforced use ConsumeQuota instead.
func (r *RationRepo) UpdateUsage(ctx context.Context, memberID, itemID string, quantity float64) error {
	query := `
		UPDATE member_quotas
		SET current_used = current_used + ?
		WHERE member_id = ? AND item_id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, quantity, memberID, itemID); err != nil {
		return fmt.Errorf("failed to update quota usage: %w", err)
	}

	return nil
}

// ConsumeQuota adds to usage only while the monthly limit holds. Zero
// affected rows means the draw would exceed the limit (or no quota row
// exists) and nothing was written.
func (r *RationRepo) ConsumeQuota(ctx context.Context, memberID, itemID string, quantity float64) (bool, error) {
	return consumeQuota(ctx, r.db, memberID, itemID, quantity)
}

func consumeQuota(ctx context.Context, ext sqlx.ExtContext, memberID, itemID string, quantity float64) (bool, error) {
	query := `
		UPDATE member_quotas
		SET current_used = current_used + ?
		WHERE member_id = ? AND item_id = ? AND current_used + ? <= monthly_limit
	`

	result, err := ext.ExecContext(ctx, query, quantity, memberID, itemID, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to consume quota: %w", err)
	}

	return affected(result)
}

// ResetMonthlyQuotas zeroes usage for rows whose reset date has passed
// and advances them to the first of the next month. Rows already
// advanced are untouched, so repeated runs are harmless.
func (r *RationRepo) ResetMonthlyQuotas(ctx context.Context) (int64, error) {
	now := time.Now()
	today := now.Format("2006-01-02")
	nextReset := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, 1, 0).Format("2006-01-02")

	query := `
		UPDATE member_quotas
		SET current_used = 0, reset_date = ?
		WHERE reset_date <= ?
	`

	result, err := r.db.ExecContext(ctx, query, nextReset, today)
	if err != nil {
		return 0, fmt.Errorf("failed to reset monthly quotas: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return count, nil
}

// GetQuotaSummary aggregates the member's quota rows. An item counts as
// "with quota" when it carries any entitlement at all, exhausted or not.
// The usage average only considers rows with a positive monthly limit;
// zero-limit rows would otherwise divide by zero or skew the figure.
func (r *RationRepo) GetQuotaSummary(ctx context.Context, memberID string) (*models.QuotaSummary, error) {
	query := `
		SELECT COUNT(*) AS total_items,
		       COALESCE(SUM(CASE WHEN monthly_limit > 0 THEN 1 ELSE 0 END), 0) AS items_with_quota,
		       COALESCE(SUM(current_used), 0) AS total_quota_used,
		       COALESCE(AVG(CASE WHEN monthly_limit > 0 THEN current_used * 100.0 / monthly_limit END), 0) AS avg_usage_percent
		FROM member_quotas
		WHERE member_id = ?
	`

	var summary models.QuotaSummary
	if err := r.db.GetContext(ctx, &summary, query, memberID); err != nil {
		return nil, fmt.Errorf("failed to get quota summary: %w", err)
	}

	return &summary, nil
}
