package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/auth"
)

// sessionLifetime is the absolute lifetime of a login attempt.
const sessionLifetime = 24 * time.Hour

// CreateSession starts a new login attempt for the user
func (r *AuthRepo) CreateSession(ctx context.Context, userID, phoneNumber string) (*models.AuthSession, error) {
	now := time.Now()
	session := &models.AuthSession{
		ID:          uuid.New().String(),
		UserID:      userID,
		PhoneNumber: phoneNumber,
		IsVerified:  false,
		CreatedAt:   now,
		ExpiresAt:   now.Add(sessionLifetime),
	}

	query := `
		INSERT INTO auth_sessions (id, user_id, phone_number, is_verified, created_at, expires_at)
		VALUES (:id, :user_id, :phone_number, :is_verified, :created_at, :expires_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return nil, fmt.Errorf("failed to create auth session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by ID. Absence is reported as
// auth.ErrSessionNotFound, distinct from any validity judgement.
func (r *AuthRepo) GetSession(ctx context.Context, sessionID string) (*models.AuthSession, error) {
	query := `SELECT * FROM auth_sessions WHERE id = ?`

	var session models.AuthSession
	err := r.db.GetContext(ctx, &session, query, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get auth session: %w", err)
	}

	return &session, nil
}

// SetOTP records a fresh OTP on the session, overwriting any prior one.
// Code and expiry are always written together.
func (r *AuthRepo) SetOTP(ctx context.Context, sessionID, otpCode string, ttl time.Duration) (bool, error) {
	query := `
		UPDATE auth_sessions
		SET otp_code = ?, otp_expires_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, otpCode, time.Now().Add(ttl), sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to set OTP: %w", err)
	}

	return affected(result)
}

// VerifyOTP consumes the OTP in a single conditional update: the row is
// only touched when the submitted code matches an unexpired OTP. On
// success the session becomes verified and the code is cleared, which
// makes the OTP single-use even under concurrent submissions.
func (r *AuthRepo) VerifyOTP(ctx context.Context, sessionID, otpCode string) (bool, error) {
	query := `
		UPDATE auth_sessions
		SET is_verified = 1, otp_code = NULL, otp_expires_at = NULL
		WHERE id = ? AND otp_code = ? AND otp_expires_at > ?
	`

	result, err := r.db.ExecContext(ctx, query, sessionID, otpCode, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to verify OTP: %w", err)
	}

	return affected(result)
}

// SetMember binds a family member to the session. The condition on
// is_verified carries the state machine: an unverified session yields
// zero affected rows, never a bad write.
func (r *AuthRepo) SetMember(ctx context.Context, sessionID, memberID string) (bool, error) {
	query := `
		UPDATE auth_sessions
		SET member_id = ?
		WHERE id = ? AND is_verified = 1
	`

	result, err := r.db.ExecContext(ctx, query, memberID, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to set member: %w", err)
	}

	return affected(result)
}

// SetJWTToken stores the minted token. Gated on a selected member so a
// token can never attach to a session that skipped member selection.
func (r *AuthRepo) SetJWTToken(ctx context.Context, sessionID, token string) (bool, error) {
	query := `
		UPDATE auth_sessions
		SET jwt_token = ?
		WHERE id = ? AND member_id IS NOT NULL
	`

	result, err := r.db.ExecContext(ctx, query, token, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to set JWT token: %w", err)
	}

	return affected(result)
}

// IsValidSession reports whether the session exists, is not past its
// absolute expiry and has been verified.
func (r *AuthRepo) IsValidSession(ctx context.Context, sessionID string) (bool, error) {
	session, err := r.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	if time.Now().After(session.ExpiresAt) {
		return false, nil
	}

	return session.IsVerified, nil
}

// DeleteSession removes a session explicitly (logout)
func (r *AuthRepo) DeleteSession(ctx context.Context, sessionID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM auth_sessions WHERE id = ?`, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to delete auth session: %w", err)
	}

	return affected(result)
}

// CleanupExpiredSessions sweeps sessions past their absolute lifetime
// and abandoned logins whose OTP expired without verification.
func (r *AuthRepo) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM auth_sessions
		WHERE expires_at < ? OR (otp_expires_at IS NOT NULL AND otp_expires_at < ?)
	`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, now, now)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired sessions: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return count, nil
}

// affected converts a result's row count into a took-effect boolean
func affected(result sql.Result) (bool, error) {
	count, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return count > 0, nil
}
