package models

import (
	"time"
)

// PurchaseRequest is a confirmed purchase intent for the bound member.
type PurchaseRequest struct {
	ItemID   string  `json:"itemId" validate:"required,uuid4"`
	ShopID   string  `json:"shopId" validate:"required,uuid4"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
}

// Purchase is the audit record of a completed purchase.
type Purchase struct {
	ID          string    `json:"id" db:"id"`
	MemberID    string    `json:"memberId" db:"member_id"`
	ItemID      string    `json:"itemId" db:"item_id"`
	ShopID      string    `json:"shopId" db:"shop_id"`
	Quantity    float64   `json:"quantity" db:"quantity"`
	TotalCost   float64   `json:"totalCost" db:"total_cost"`
	PaymentRef  string    `json:"paymentRef" db:"payment_ref"`
	CompletedAt time.Time `json:"completedAt" db:"completed_at"`
}

// PurchaseEvent is published to NSQ after a purchase commits.
type PurchaseEvent struct {
	PurchaseID string    `json:"purchase_id"`
	MemberID   string    `json:"member_id"`
	ItemID     string    `json:"item_id"`
	ShopID     string    `json:"shop_id"`
	Quantity   float64   `json:"quantity"`
	TotalCost  float64   `json:"total_cost"`
	Timestamp  time.Time `json:"timestamp"`
}
