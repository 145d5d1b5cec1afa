package scheduling

import "studioops/internal/domain"

type CheckBookingRequest struct {
	Date         string  `json:"date" binding:"required"`  // 2006-01-02
	Start        string  `json:"start" binding:"required"` // 15:04
	DurationMin  int     `json:"duration_min" binding:"required"`
	RoomID       int64   `json:"room_id" binding:"required"`
	StaffID      *int64  `json:"staff_id,omitempty"`
	EquipmentIDs []int64 `json:"equipment_ids,omitempty"`
}

type DepositRequest struct {
	Amount    int64 `json:"amount"`
	AccountID int64 `json:"account_id"`
}

type CreateBookingRequest struct {
	ClientID     int64   `json:"client_id" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	Start        string  `json:"start" binding:"required"`
	DurationMin  int     `json:"duration_min" binding:"required"`
	RoomID       int64   `json:"room_id" binding:"required"`
	StaffID      *int64  `json:"staff_id,omitempty"`
	EquipmentIDs []int64 `json:"equipment_ids,omitempty"`

	Price         int64             `json:"price"`
	Items         []domain.LineItem `json:"items,omitempty"`
	DiscountKind  string            `json:"discount_kind,omitempty"`
	DiscountValue float64           `json:"discount_value,omitempty"`
	PackageID     int64             `json:"package_id,omitempty"`

	// Confirmed sessions start in booked, leads in inquiry.
	Confirmed bool `json:"confirmed"`

	// Force bypasses soft conflicts only. AllowFlaggedClient acknowledges a
	// flagged client and is never implied by Force.
	Force              bool `json:"force"`
	AllowFlaggedClient bool `json:"allow_flagged_client"`

	Deposit        *DepositRequest `json:"deposit,omitempty"`
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}
