package production

import "time"

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OutstandingBooking struct {
	BookingID  int64     `json:"booking_id"`
	ClientID   int64     `json:"client_id"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	GrandTotal int64     `json:"grand_total"`
	PaidAmount int64     `json:"paid_amount"`
	AmountDue  int64     `json:"amount_due"`
}
