package domain

import (
	"math"
	"time"
)

type BookingStatus string

const (
	BookingInquiry   BookingStatus = "inquiry"
	BookingBooked    BookingStatus = "booked"
	BookingShooting  BookingStatus = "shooting"
	BookingCulling   BookingStatus = "culling"
	BookingEditing   BookingStatus = "editing"
	BookingReview    BookingStatus = "review"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case BookingInquiry, BookingBooked, BookingShooting, BookingCulling,
		BookingEditing, BookingReview, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// TerminalStatus reports whether s allows no further transitions.
func TerminalStatus(s BookingStatus) bool {
	return s == BookingCompleted || s == BookingCancelled
}

type PaymentState string

const (
	PaymentUnpaid   PaymentState = "unpaid"
	PaymentPartial  PaymentState = "partial"
	PaymentPaid     PaymentState = "paid"
	PaymentRefunded PaymentState = "refunded"
)

type ContractStatus string

const (
	ContractNone   ContractStatus = "none"
	ContractSent   ContractStatus = "sent"
	ContractSigned ContractStatus = "signed"
)

type DiscountKind string

const (
	DiscountNone    DiscountKind = ""
	DiscountPercent DiscountKind = "percent"
	DiscountFixed   DiscountKind = "fixed"
)

// PaidEpsilon absorbs rounding left over from percentage tax and discount
// math wherever "fully paid" is evaluated. All amounts are integers in the
// smallest currency unit.
const PaidEpsilon int64 = 100

type LineItem struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Cost        int64  `json:"cost"`
}

func (li LineItem) Total() int64 { return int64(li.Quantity) * li.UnitPrice }

type Task struct {
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

type ActivityEntry struct {
	At      time.Time `json:"at"`
	ActorID int64     `json:"actor_id"`
	Message string    `json:"message"`
}

type Booking struct {
	ID       int64 `json:"id" gorm:"primaryKey"`
	TenantID int64 `json:"tenant_id" gorm:"index"`
	ClientID int64 `json:"client_id" validate:"required"`

	Date        time.Time `json:"date" validate:"required"`
	StartMinute int       `json:"start_minute"`
	DurationMin int       `json:"duration_min"`

	RoomID       int64   `json:"room_id" validate:"required"`
	StaffID      *int64  `json:"staff_id,omitempty"`
	EquipmentIDs []int64 `json:"equipment_ids,omitempty" gorm:"serializer:json"`

	Price           int64        `json:"price"`
	Items           []LineItem   `json:"items,omitempty" gorm:"serializer:json"`
	DiscountKind    DiscountKind `json:"discount_kind,omitempty"`
	DiscountValue   float64      `json:"discount_value,omitempty"`
	TaxRateSnapshot float64      `json:"tax_rate_snapshot"`
	PaidAmount      int64        `json:"paid_amount"`

	Status         BookingStatus  `json:"status"`
	PaymentState   PaymentState   `json:"payment_state"`
	ContractStatus ContractStatus `json:"contract_status"`

	Tasks    []Task          `json:"tasks,omitempty" gorm:"serializer:json"`
	Activity []ActivityEntry `json:"activity,omitempty" gorm:"serializer:json"`

	Notes       string     `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// Subtotal is the sum of the line items, or the flat price when nothing was
// itemized.
func (b *Booking) Subtotal() int64 {
	if len(b.Items) == 0 {
		return b.Price
	}
	var sum int64
	for _, li := range b.Items {
		sum += li.Total()
	}
	return sum
}

func (b *Booking) DiscountAmount() int64 {
	switch b.DiscountKind {
	case DiscountPercent:
		return int64(math.Round(float64(b.Subtotal()) * b.DiscountValue / 100))
	case DiscountFixed:
		return int64(math.Round(b.DiscountValue))
	}
	return 0
}

// GrandTotal = max(0, subtotal - discount) * (1 + taxRateSnapshot), rounded
// to the nearest minor unit. TaxRateSnapshot is captured at creation and
// never updated afterwards.
func (b *Booking) GrandTotal() int64 {
	base := b.Subtotal() - b.DiscountAmount()
	if base < 0 {
		base = 0
	}
	return int64(math.Round(float64(base) * (1 + b.TaxRateSnapshot)))
}

func (b *Booking) AmountDue() int64 { return b.GrandTotal() - b.PaidAmount }

func (b *Booking) FullyPaid() bool { return b.AmountDue() <= PaidEpsilon }

func (b *Booking) EndMinute() int { return b.StartMinute + b.DurationMin }

// Scheduled reports whether the booking occupies a concrete time window.
// Leads captured without a start time never take part in conflict scans.
func (b *Booking) Scheduled() bool { return b.DurationMin > 0 }

// Active reports whether the booking still occupies its resources and counts
// toward outstanding balances. Cancelled and fully refunded bookings do not.
func (b *Booking) Active() bool {
	return b.Status != BookingCancelled && b.PaymentState != PaymentRefunded
}

// DateKey is the canonical day key used for staff unavailable-date sets.
func DateKey(t time.Time) string { return t.UTC().Format("2006-01-02") }
