package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiration/digiration/internal/pkg/middleware"
	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/internal/utils"
	"github.com/digiration/digiration/services/auth"
	"github.com/digiration/digiration/services/auth/mocks"
)

const (
	testSessionID = "8d7f3b5a-9f0c-4e9a-b7d1-2c3e4f5a6b7c"
	testMemberID  = "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d"
)

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	response := decodeEnvelope(t, rec)
	errBlock, ok := response["error"].(map[string]interface{})
	require.True(t, ok, "expected error block in response")
	code, _ := errBlock["code"].(string)
	return code
}

func TestInitiate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/initiate",
		`{"rationCardId": "DL01A1234567", "phoneNumber": "9876543210"}`)

	mockUC.EXPECT().
		InitiateLogin(gomock.Any(), "DL01A1234567", "9876543210").
		Return(&models.InitiateResponse{SessionID: testSessionID}, nil)

	require.NoError(t, handler.Initiate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeEnvelope(t, rec)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "OTP sent successfully", response["message"])
}

func TestInitiate_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewAuthHandler(mocks.NewMockAuthUC(ctrl))

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/initiate", `{"rationCardId": ""}`)

	require.NoError(t, handler.Initiate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utils.CodeValidationError, errorCode(t, rec))
}

func TestInitiate_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/initiate",
		`{"rationCardId": "DL01A1234567", "phoneNumber": "9876543210"}`)

	mockUC.EXPECT().
		InitiateLogin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrInvalidCredentials)

	require.NoError(t, handler.Initiate(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, utils.CodeInvalidCredentials, errorCode(t, rec))
}

func TestInitiate_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/initiate",
		`{"rationCardId": "DL01A1234567", "phoneNumber": "9876543210"}`)

	mockUC.EXPECT().
		InitiateLogin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrRateLimited)

	require.NoError(t, handler.Initiate(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, utils.CodeRateLimitExceeded, errorCode(t, rec))
}

func TestVerifyOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/verify-otp",
		`{"sessionId": "`+testSessionID+`", "otpCode": "123456"}`)

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), testSessionID, "123456").
		Return(&models.VerifyOTPResponse{
			SessionID:     testSessionID,
			User:          &models.User{ID: "user-1", FamilyName: "Sharma"},
			FamilyMembers: []models.FamilyMember{{ID: testMemberID, Name: "Asha"}},
		}, nil)

	require.NoError(t, handler.VerifyOTP(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeEnvelope(t, rec)
	assert.Equal(t, true, response["success"])
}

func TestVerifyOTP_InvalidCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/verify-otp",
		`{"sessionId": "`+testSessionID+`", "otpCode": "999999"}`)

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), testSessionID, "999999").
		Return(nil, auth.ErrInvalidOTP)

	require.NoError(t, handler.VerifyOTP(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, utils.CodeInvalidOTP, errorCode(t, rec))
}

func TestVerifyOTP_BadCodeFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewAuthHandler(mocks.NewMockAuthUC(ctrl))

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/verify-otp",
		`{"sessionId": "`+testSessionID+`", "otpCode": "12ab56"}`)

	require.NoError(t, handler.VerifyOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utils.CodeValidationError, errorCode(t, rec))
}

func TestSelectMember_ForeignMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/select-member",
		`{"sessionId": "`+testSessionID+`", "memberId": "`+testMemberID+`"}`)

	mockUC.EXPECT().
		SelectMember(gomock.Any(), testSessionID, testMemberID).
		Return(nil, auth.ErrInvalidMember)

	require.NoError(t, handler.SelectMember(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, utils.CodeInvalidMember, errorCode(t, rec))
}

func TestVerifyAadhaar_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/verify-aadhaar",
		`{"sessionId": "`+testSessionID+`", "aadhaarNumber": "234567890123"}`)

	mockUC.EXPECT().
		VerifyAadhaar(gomock.Any(), testSessionID, "234567890123").
		Return(&models.AuthResponse{
			Token:  "jwt-token",
			User:   &models.User{ID: "user-1"},
			Member: &models.FamilyMember{ID: testMemberID},
		}, nil)

	require.NoError(t, handler.VerifyAadhaar(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeEnvelope(t, rec)
	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "jwt-token", data["token"])
}

func TestVerifyAadhaar_InvalidNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/verify-aadhaar",
		`{"sessionId": "`+testSessionID+`", "aadhaarNumber": "111111111111"}`)

	mockUC.EXPECT().
		VerifyAadhaar(gomock.Any(), testSessionID, "111111111111").
		Return(nil, auth.ErrInvalidAadhaar)

	require.NoError(t, handler.VerifyAadhaar(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utils.CodeInvalidAadhaar, errorCode(t, rec))
}

func TestVerifyAadhaar_SessionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/verify-aadhaar",
		`{"sessionId": "`+testSessionID+`", "aadhaarNumber": "234567890123"}`)

	mockUC.EXPECT().
		VerifyAadhaar(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrSessionNotFound)

	require.NoError(t, handler.VerifyAadhaar(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, utils.CodeSessionNotFound, errorCode(t, rec))
}

func TestLogout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Set(middleware.ContextSessionID, testSessionID)

	mockUC.EXPECT().Logout(gomock.Any(), testSessionID).Return(nil)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout_MissingSessionClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewAuthHandler(mocks.NewMockAuthUC(ctrl))

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/logout", "")

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, utils.CodeInvalidToken, errorCode(t, rec))
}
