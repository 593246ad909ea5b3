package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/auth"
)

// GetUserByCredentials retrieves the user identified by the
// (rationCardID, phoneNumber) pair. Both values must already be
// normalized by the caller.
func (r *AuthRepo) GetUserByCredentials(ctx context.Context, rationCardID, phoneNumber string) (*models.User, error) {
	query := `
		SELECT * FROM users
		WHERE ration_card_id = ? AND phone_number = ?
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, rationCardID, phoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by credentials: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *AuthRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT * FROM users WHERE id = ?`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetFamilyMembers lists all members of the user's household, head first
func (r *AuthRepo) GetFamilyMembers(ctx context.Context, userID string) ([]models.FamilyMember, error) {
	query := `
		SELECT * FROM family_members
		WHERE user_id = ?
		ORDER BY is_head DESC, age DESC
	`

	members := []models.FamilyMember{}
	if err := r.db.SelectContext(ctx, &members, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get family members: %w", err)
	}

	return members, nil
}

// GetFamilyMember retrieves a single family member by ID
func (r *AuthRepo) GetFamilyMember(ctx context.Context, memberID string) (*models.FamilyMember, error) {
	query := `SELECT * FROM family_members WHERE id = ?`

	var member models.FamilyMember
	err := r.db.GetContext(ctx, &member, query, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get family member: %w", err)
	}

	return &member, nil
}

// ValidateMemberBelongsToUser reports whether the member is owned by the
// user. A missing member and a foreign member are indistinguishable here
// on purpose.
func (r *AuthRepo) ValidateMemberBelongsToUser(ctx context.Context, memberID, userID string) (bool, error) {
	query := `
		SELECT COUNT(*) FROM family_members
		WHERE id = ? AND user_id = ?
	`

	var count int
	if err := r.db.GetContext(ctx, &count, query, memberID, userID); err != nil {
		return false, fmt.Errorf("failed to validate member ownership: %w", err)
	}

	return count > 0, nil
}
