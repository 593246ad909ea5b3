package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/services/auth"
)

func setupAuthRepoTest(t *testing.T) (*AuthRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &AuthRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestVerifyOTP_ConsumesCodeOnce(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	// First submission matches an unexpired code and flips the session
	mock.ExpectExec("UPDATE auth_sessions").
		WithArgs("session-1", "123456", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.VerifyOTP(context.Background(), "session-1", "123456")
	assert.NoError(t, err)
	assert.True(t, ok)

	// The code was cleared on success, so a replay touches no rows
	mock.ExpectExec("UPDATE auth_sessions").
		WithArgs("session-1", "123456", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.VerifyOTP(context.Background(), "session-1", "123456")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE auth_sessions").
		WithArgs("session-1", "999999", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.VerifyOTP(context.Background(), "session-1", "999999")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSetMember_RequiresVerifiedSession(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	// Unverified session: the is_verified condition filters the row out
	mock.ExpectExec("UPDATE auth_sessions").
		WithArgs("member-1", "session-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.SetMember(context.Background(), "session-1", "member-1")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSetJWTToken_RequiresSelectedMember(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE auth_sessions").
		WithArgs("token-abc", "session-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.SetJWTToken(context.Background(), "session-1", "token-abc")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestGetSession_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM auth_sessions").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	session, err := repo.GetSession(context.Background(), "missing")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestIsValidSession(t *testing.T) {
	sessionColumns := []string{"id", "user_id", "member_id", "phone_number", "otp_code",
		"otp_expires_at", "is_verified", "jwt_token", "created_at", "expires_at"}

	testCases := []struct {
		name      string
		verified  bool
		expiresAt time.Time
		want      bool
	}{
		{name: "verified and live", verified: true, expiresAt: time.Now().Add(time.Hour), want: true},
		{name: "unverified", verified: false, expiresAt: time.Now().Add(time.Hour), want: false},
		{name: "expired", verified: true, expiresAt: time.Now().Add(-time.Hour), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAuthRepoTest(t)
			defer cleanup()

			rows := sqlmock.NewRows(sessionColumns).
				AddRow("session-1", "user-1", nil, "+919876543210", nil,
					nil, tc.verified, nil, time.Now(), tc.expiresAt)
			mock.ExpectQuery("SELECT \\* FROM auth_sessions").
				WithArgs("session-1").
				WillReturnRows(rows)

			ok, err := repo.IsValidSession(context.Background(), "session-1")
			assert.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestCleanupExpiredSessions(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM auth_sessions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.CleanupExpiredSessions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestDeleteSession_Idempotent(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM auth_sessions WHERE id").
		WithArgs("session-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM auth_sessions WHERE id").
		WithArgs("session-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.DeleteSession(context.Background(), "session-1")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.DeleteSession(context.Background(), "session-1")
	assert.NoError(t, err)
	assert.False(t, ok)
}
