package auth

import (
	"context"
	"time"

	"github.com/digiration/digiration/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/digiration/digiration/services/auth AuthRepo

// AuthRepo is the storage boundary for users, family members and auth
// sessions. Every mutating session operation reports whether it took
// effect; lookups return ErrSessionNotFound / ErrUserNotFound /
// ErrMemberNotFound rather than a silent nil.
type AuthRepo interface {
	GetUserByCredentials(ctx context.Context, rationCardID, phoneNumber string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetFamilyMembers(ctx context.Context, userID string) ([]models.FamilyMember, error)
	GetFamilyMember(ctx context.Context, memberID string) (*models.FamilyMember, error)

	// ValidateMemberBelongsToUser is the explicit ownership check called
	// at every access boundary; ownership is never inferred.
	ValidateMemberBelongsToUser(ctx context.Context, memberID, userID string) (bool, error)

	CreateSession(ctx context.Context, userID, phoneNumber string) (*models.AuthSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.AuthSession, error)
	SetOTP(ctx context.Context, sessionID, otpCode string, ttl time.Duration) (bool, error)
	VerifyOTP(ctx context.Context, sessionID, otpCode string) (bool, error)
	SetMember(ctx context.Context, sessionID, memberID string) (bool, error)
	SetJWTToken(ctx context.Context, sessionID, token string) (bool, error)
	IsValidSession(ctx context.Context, sessionID string) (bool, error)
	DeleteSession(ctx context.Context, sessionID string) (bool, error)
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
