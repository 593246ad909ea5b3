package models

import (
	"time"
)

// User is the identity anchor for a ration-card household.
// The (RationCardID, PhoneNumber) pair uniquely authenticates a user.
type User struct {
	ID           string    `json:"id" db:"id"`
	RationCardID string    `json:"rationCardId" db:"ration_card_id"`
	FamilyName   string    `json:"familyName" db:"family_name"`
	PhoneNumber  string    `json:"phoneNumber" db:"phone_number"`
	AddressLine1 string    `json:"addressLine1,omitempty" db:"address_line1"`
	AddressLine2 string    `json:"addressLine2,omitempty" db:"address_line2"`
	City         string    `json:"city,omitempty" db:"city"`
	State        string    `json:"state,omitempty" db:"state"`
	Pincode      string    `json:"pincode,omitempty" db:"pincode"`
	Language     string    `json:"language" db:"language"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// FamilyMember belongs to exactly one User. Access is always validated
// against the owning user, never inferred from the member row alone.
type FamilyMember struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"userId" db:"user_id"`
	Name          string    `json:"name" db:"name"`
	Age           int       `json:"age" db:"age"`
	Gender        string    `json:"gender" db:"gender"`
	AadhaarNumber string    `json:"-" db:"aadhaar_number"`
	IsHead        bool      `json:"isHead" db:"is_head"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
