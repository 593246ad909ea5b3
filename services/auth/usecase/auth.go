package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwtpkg "github.com/digiration/digiration/internal/pkg/jwt"
	"github.com/digiration/digiration/internal/pkg/logger"
	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/internal/utils"
	"github.com/digiration/digiration/services/auth"
)

// InitiateLogin validates the credential pair, creates a session and
// dispatches the first OTP.
func (u *AuthUC) InitiateLogin(ctx context.Context, rationCardID, phoneNumber string) (*models.InitiateResponse, error) {
	cardID, err := utils.NormalizeRationCardID(rationCardID)
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	phone, err := utils.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	user, err := u.authRepo.GetUserByCredentials(ctx, cardID, phone)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to validate credentials: %w", err)
	}

	if !u.rateLimiter.Allow(phone) {
		logger.Warn("OTP rate limit exceeded", logger.String("phone_number", phone))
		return nil, auth.ErrRateLimited
	}

	session, err := u.authRepo.CreateSession(ctx, user.ID, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := u.issueOTP(ctx, session.ID, phone); err != nil {
		return nil, err
	}

	logger.Info("Authentication initiated",
		logger.String("session_id", session.ID),
		logger.String("ration_card_id", cardID))

	return &models.InitiateResponse{SessionID: session.ID}, nil
}

// VerifyOTP consumes the session's OTP and returns the household for
// member selection. The repository update is conditional, so a stale or
// reused code can never flip the session to verified.
func (u *AuthUC) VerifyOTP(ctx context.Context, sessionID, otpCode string) (*models.VerifyOTPResponse, error) {
	session, err := u.authRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	verified, err := u.authRepo.VerifyOTP(ctx, sessionID, otpCode)
	if err != nil {
		return nil, fmt.Errorf("failed to verify OTP: %w", err)
	}
	if !verified {
		logger.Warn("OTP verification failed", logger.String("session_id", sessionID))
		return nil, auth.ErrInvalidOTP
	}

	user, err := u.authRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	members, err := u.authRepo.GetFamilyMembers(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load family members: %w", err)
	}

	logger.Info("OTP verified", logger.String("session_id", sessionID))

	return &models.VerifyOTPResponse{
		SessionID:     sessionID,
		User:          user,
		FamilyMembers: members,
	}, nil
}

// SelectMember binds a family member to a verified session. Ownership is
// checked with an explicit query before the conditional update; a member
// that does not exist and a member of another family are rejected alike.
func (u *AuthUC) SelectMember(ctx context.Context, sessionID, memberID string) (*models.SelectMemberResponse, error) {
	valid, err := u.authRepo.IsValidSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !valid {
		return nil, auth.ErrInvalidSession
	}

	session, err := u.authRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	owned, err := u.authRepo.ValidateMemberBelongsToUser(ctx, memberID, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate member ownership: %w", err)
	}
	if !owned {
		logger.Warn("Member selection rejected",
			logger.String("session_id", sessionID),
			logger.String("member_id", memberID))
		return nil, auth.ErrInvalidMember
	}

	set, err := u.authRepo.SetMember(ctx, sessionID, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to set member: %w", err)
	}
	if !set {
		return nil, auth.ErrInvalidSession
	}

	member, err := u.authRepo.GetFamilyMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load member: %w", err)
	}

	logger.Info("Member selected",
		logger.String("session_id", sessionID),
		logger.String("member_id", memberID))

	return &models.SelectMemberResponse{
		SessionID: sessionID,
		Member:    member,
	}, nil
}

// VerifyAadhaar runs the identity collaborator and mints the access
// token for the session's bound member.
func (u *AuthUC) VerifyAadhaar(ctx context.Context, sessionID, aadhaarNumber string) (*models.AuthResponse, error) {
	valid, err := u.authRepo.IsValidSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !valid {
		return nil, auth.ErrInvalidSession
	}

	session, err := u.authRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.MemberID == nil {
		return nil, auth.ErrMemberNotSelected
	}

	ok, err := u.aadhaarGW.Verify(ctx, aadhaarNumber)
	if err != nil {
		return nil, fmt.Errorf("identity verification failed: %w", err)
	}
	if !ok {
		return nil, auth.ErrInvalidAadhaar
	}

	token, expiresAt, err := jwtpkg.GenerateToken(session.UserID, *session.MemberID, session.ID, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	stored, err := u.authRepo.SetJWTToken(ctx, sessionID, token)
	if err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	if !stored {
		return nil, auth.ErrMemberNotSelected
	}

	user, err := u.authRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	member, err := u.authRepo.GetFamilyMember(ctx, *session.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load member: %w", err)
	}

	logger.Info("Authentication completed",
		logger.String("session_id", sessionID),
		logger.String("user_id", user.ID))

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
		Member:    member,
	}, nil
}

// ResendOTP reissues the OTP for an existing session, subject to the
// per-phone rate limit.
func (u *AuthUC) ResendOTP(ctx context.Context, sessionID string) error {
	session, err := u.authRepo.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if !u.rateLimiter.Allow(session.PhoneNumber) {
		logger.Warn("OTP rate limit exceeded",
			logger.String("phone_number", session.PhoneNumber))
		return auth.ErrRateLimited
	}

	return u.issueOTP(ctx, session.ID, session.PhoneNumber)
}

// Logout deletes the session. Deleting an already-gone session is not
// an error.
func (u *AuthUC) Logout(ctx context.Context, sessionID string) error {
	deleted, err := u.authRepo.DeleteSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if deleted {
		logger.Info("Session deleted", logger.String("session_id", sessionID))
	}
	return nil
}

// CleanupExpiredSessions sweeps dead sessions and prunes stale rate
// limit records.
func (u *AuthUC) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	u.rateLimiter.Cleanup()

	count, err := u.authRepo.CleanupExpiredSessions(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Info("Cleaned up expired sessions", logger.Int64("count", count))
	}
	return count, nil
}

// issueOTP generates a code, records it on the session and dispatches
// it. Send failures are retryable; a timed-out dispatch is reported as
// delivery-unknown rather than failed.
func (u *AuthUC) issueOTP(ctx context.Context, sessionID, phoneNumber string) error {
	code, err := u.generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	set, err := u.authRepo.SetOTP(ctx, sessionID, code, u.otpTTL())
	if err != nil {
		return fmt.Errorf("failed to set OTP: %w", err)
	}
	if !set {
		return auth.ErrSessionNotFound
	}

	sendCtx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.OTP.SendTimeout)*time.Second)
	defer cancel()

	delivered, err := u.smsGW.SendOTP(sendCtx, phoneNumber, code)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, auth.ErrDeliveryUnknown) {
			logger.Warn("OTP delivery outcome unknown", logger.String("session_id", sessionID))
			return auth.ErrDeliveryUnknown
		}
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	if !delivered {
		return auth.ErrOTPSendFailed
	}

	return nil
}
