package models

import (
	"time"
)

// RationItem is catalog data owned by an administrative collaborator.
type RationItem struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	NameHindi    string    `json:"nameHindi,omitempty" db:"name_hindi"`
	Category     string    `json:"category" db:"category"`
	Unit         string    `json:"unit" db:"unit"`
	PricePerUnit float64   `json:"pricePerUnit" db:"price_per_unit"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Shop is a fair-price shop distributing subsidized items.
type Shop struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	AddressLine1 string    `json:"addressLine1" db:"address_line1"`
	AddressLine2 string    `json:"addressLine2,omitempty" db:"address_line2"`
	City         string    `json:"city" db:"city"`
	State        string    `json:"state" db:"state"`
	Pincode      string    `json:"pincode" db:"pincode"`
	PhoneNumber  string    `json:"phoneNumber" db:"phone_number"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// MemberQuota tracks one member's monthly entitlement for one item.
// CurrentUsed is compared against MonthlyLimit to gate purchases but is
// not hard-capped by the additive update itself.
type MemberQuota struct {
	ID           string    `json:"id" db:"id"`
	MemberID     string    `json:"memberId" db:"member_id"`
	ItemID       string    `json:"itemId" db:"item_id"`
	ItemName     string    `json:"itemName" db:"item_name"`
	ItemUnit     string    `json:"itemUnit" db:"item_unit"`
	MonthlyLimit float64   `json:"monthlyLimit" db:"monthly_limit"`
	CurrentUsed  float64   `json:"currentUsed" db:"current_used"`
	ResetDate    string    `json:"resetDate" db:"reset_date"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// RemainingQuota returns the unconsumed part of the monthly limit.
func (q *MemberQuota) RemainingQuota() float64 {
	return q.MonthlyLimit - q.CurrentUsed
}

// ShopStock tracks one shop's on-hand quantity of one item.
// AvailableQuantity never goes negative: the decrement is conditional at
// the storage layer.
type ShopStock struct {
	ID                string    `json:"id" db:"id"`
	ShopID            string    `json:"shopId" db:"shop_id"`
	ItemID            string    `json:"itemId" db:"item_id"`
	ItemName          string    `json:"itemName" db:"item_name"`
	ItemUnit          string    `json:"itemUnit" db:"item_unit"`
	AvailableQuantity float64   `json:"availableQuantity" db:"available_quantity"`
	BasePrice         float64   `json:"basePrice" db:"base_price"`
	PriceOverride     *float64  `json:"priceOverride,omitempty" db:"price_override"`
	LastUpdated       time.Time `json:"lastUpdated" db:"last_updated"`
}

// EffectivePrice returns the override price when set, the base otherwise.
func (s *ShopStock) EffectivePrice() float64 {
	if s.PriceOverride != nil {
		return *s.PriceOverride
	}
	return s.BasePrice
}

// QuotaCheck answers whether a member may draw a requested amount.
type QuotaCheck struct {
	Available      bool    `json:"available"`
	RemainingQuota float64 `json:"remainingQuota"`
	MonthlyLimit   float64 `json:"monthlyLimit"`
	CurrentUsed    float64 `json:"currentUsed"`
}

// StockCheck answers whether a shop holds a requested quantity.
type StockCheck struct {
	Available         bool    `json:"available"`
	AvailableQuantity float64 `json:"availableQuantity"`
	RequestedQuantity float64 `json:"requestedQuantity"`
}

// AvailabilityResult composes both ledgers for a purchase intent.
type AvailabilityResult struct {
	QuotaCheck    QuotaCheck `json:"quotaCheck"`
	StockCheck    StockCheck `json:"stockCheck"`
	CanPurchase   bool       `json:"canPurchase"`
	EstimatedCost float64    `json:"estimatedCost"`
}

// QuotaSummary is the aggregate view over a member's quota rows.
// AverageUsagePercent averages only rows with a positive monthly limit.
type QuotaSummary struct {
	TotalItems          int     `json:"totalItems" db:"total_items"`
	ItemsWithQuota      int     `json:"itemsWithQuota" db:"items_with_quota"`
	TotalQuotaUsed      float64 `json:"totalQuotaUsed" db:"total_quota_used"`
	AverageUsagePercent float64 `json:"averageUsagePercent" db:"avg_usage_percent"`
}

// StockSummary is the aggregate view over a shop's stock rows.
type StockSummary struct {
	TotalItems int     `json:"totalItems" db:"total_items"`
	InStock    int     `json:"inStock" db:"in_stock"`
	OutOfStock int     `json:"outOfStock" db:"out_of_stock"`
	LowStock   int     `json:"lowStock" db:"low_stock"`
	TotalValue float64 `json:"totalValue" db:"total_value"`
}
