package models

import (
	"time"
)

// AuthSession is the server-side record of one login attempt. It moves
// through created -> otp pending -> verified -> member selected -> token
// issued, and dies by deletion or by the expiry sweep.
type AuthSession struct {
	ID           string     `json:"id" db:"id"`
	UserID       string     `json:"userId" db:"user_id"`
	MemberID     *string    `json:"memberId,omitempty" db:"member_id"`
	PhoneNumber  string     `json:"phoneNumber" db:"phone_number"`
	OTPCode      *string    `json:"-" db:"otp_code"`
	OTPExpiresAt *time.Time `json:"-" db:"otp_expires_at"`
	IsVerified   bool       `json:"isVerified" db:"is_verified"`
	JWTToken     *string    `json:"-" db:"jwt_token"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	ExpiresAt    time.Time  `json:"expiresAt" db:"expires_at"`
}

// InitiateRequest starts authentication with ration card ID and phone
type InitiateRequest struct {
	RationCardID string `json:"rationCardId" validate:"required,min=10,max=20"`
	PhoneNumber  string `json:"phoneNumber" validate:"required"`
}

// VerifyOTPRequest consumes the OTP set on a session
type VerifyOTPRequest struct {
	SessionID string `json:"sessionId" validate:"required,uuid4"`
	OTPCode   string `json:"otpCode" validate:"required,len=6,numeric"`
}

// SelectMemberRequest binds a family member to a verified session
type SelectMemberRequest struct {
	SessionID string `json:"sessionId" validate:"required,uuid4"`
	MemberID  string `json:"memberId" validate:"required,uuid4"`
}

// VerifyAadhaarRequest finalizes authentication and issues a token
type VerifyAadhaarRequest struct {
	SessionID     string `json:"sessionId" validate:"required,uuid4"`
	AadhaarNumber string `json:"aadhaarNumber" validate:"required,len=12,numeric"`
}

// ResendOTPRequest reissues the OTP for an existing session
type ResendOTPRequest struct {
	SessionID string `json:"sessionId" validate:"required,uuid4"`
}

// InitiateResponse carries the new session identifier
type InitiateResponse struct {
	SessionID string `json:"sessionId"`
}

// VerifyOTPResponse carries the household after OTP verification
type VerifyOTPResponse struct {
	SessionID     string         `json:"sessionId"`
	User          *User          `json:"user"`
	FamilyMembers []FamilyMember `json:"familyMembers"`
}

// SelectMemberResponse confirms the bound member
type SelectMemberResponse struct {
	SessionID string        `json:"sessionId"`
	Member    *FamilyMember `json:"member"`
}

// AuthResponse is returned once the identity check completes
type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresAt int64         `json:"expiresAt"`
	User      *User         `json:"user"`
	Member    *FamilyMember `json:"member"`
}
