package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrandTotal_FlatPrice(t *testing.T) {
	b := &Booking{Price: 1000000, TaxRateSnapshot: 0.11}
	assert.Equal(t, int64(1000000), b.Subtotal())
	assert.Equal(t, int64(1110000), b.GrandTotal())
}

func TestGrandTotal_LineItemsOverrideFlatPrice(t *testing.T) {
	b := &Booking{
		Price:           999, // ignored once items exist
		TaxRateSnapshot: 0.11,
		Items: []LineItem{
			{Description: "Session", Quantity: 2, UnitPrice: 400000},
			{Description: "Prints", Quantity: 10, UnitPrice: 20000},
		},
	}
	assert.Equal(t, int64(1000000), b.Subtotal())
	assert.Equal(t, int64(1110000), b.GrandTotal())
}

func TestGrandTotal_PercentDiscount(t *testing.T) {
	b := &Booking{
		Price:           1000000,
		TaxRateSnapshot: 0.11,
		DiscountKind:    DiscountPercent,
		DiscountValue:   10,
	}
	assert.Equal(t, int64(100000), b.DiscountAmount())
	assert.Equal(t, int64(999000), b.GrandTotal())
}

func TestGrandTotal_FixedDiscountClampsAtZero(t *testing.T) {
	b := &Booking{
		Price:           100000,
		TaxRateSnapshot: 0.11,
		DiscountKind:    DiscountFixed,
		DiscountValue:   250000,
	}
	// Discount exceeding subtotal never produces a negative total.
	assert.Equal(t, int64(0), b.GrandTotal())
}

func TestFullyPaid_WithinEpsilon(t *testing.T) {
	b := &Booking{Price: 1000000, TaxRateSnapshot: 0.11, PaidAmount: 1110000 - PaidEpsilon}
	assert.True(t, b.FullyPaid())

	b.PaidAmount--
	assert.False(t, b.FullyPaid())
}

func TestActive(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingBooked, PaymentState: PaymentPartial}).Active())
	assert.False(t, (&Booking{Status: BookingCancelled, PaymentState: PaymentUnpaid}).Active())
	assert.False(t, (&Booking{Status: BookingBooked, PaymentState: PaymentRefunded}).Active())
}

func TestScheduled(t *testing.T) {
	assert.False(t, (&Booking{}).Scheduled())
	assert.True(t, (&Booking{StartMinute: 600, DurationMin: 60}).Scheduled())
}
