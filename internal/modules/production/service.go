package production

import (
	"context"
	"fmt"
	"time"

	"studioops/internal/config"
	"studioops/internal/domain"
	"studioops/internal/modules/feed"
)

type Service struct {
	bookings BookingRepo
	cfg      *config.Config
	notifs   Notifier
}

func NewService(bookings BookingRepo, cfg *config.Config, notifs Notifier) *Service {
	return &Service{
		bookings: bookings,
		cfg:      cfg,
		notifs:   notifs,
	}
}

// SetStatus runs the transition and writes its side effects — the new
// status, an activity-log entry, and any workflow-automation tasks mapped to
// it — as a single booking update. No cross-entity atomicity is needed here.
func (s *Service) SetStatus(ctx context.Context, tenantID, bookingID, actorID int64, requested domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, tenantID, bookingID)
	if err != nil {
		return nil, ErrNotFound
	}

	if err := Transition(b.Status, requested, b.AmountDue()); err != nil {
		if gateErr, ok := err.(*OutstandingBalanceError); ok {
			gateErr.BookingID = b.ID
		}
		return nil, err
	}

	now := time.Now().UTC()
	from := b.Status
	b.Status = requested
	if requested == domain.BookingCancelled {
		b.CancelledAt = &now
	}

	b.Activity = append(b.Activity, domain.ActivityEntry{
		At:      now,
		ActorID: actorID,
		Message: fmt.Sprintf("status changed from %s to %s", from, requested),
	})
	for _, title := range s.cfg.TasksFor(string(requested)) {
		b.Tasks = append(b.Tasks, domain.Task{Title: title, CreatedAt: now})
	}

	if err := s.bookings.UpdateProduction(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.Publish(tenantID, feed.Event{Entity: "booking", Action: "updated", ID: b.ID, At: now})
	}
	return b, nil
}

// ListOutstanding returns active bookings still owing more than the paid
// epsilon. Cancelled and refunded bookings never appear here.
func (s *Service) ListOutstanding(ctx context.Context, tenantID int64) ([]OutstandingBooking, error) {
	active, err := s.bookings.ListActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	out := make([]OutstandingBooking, 0)
	for i := range active {
		b := &active[i]
		if b.FullyPaid() {
			continue
		}
		out = append(out, OutstandingBooking{
			BookingID:  b.ID,
			ClientID:   b.ClientID,
			Date:       b.Date,
			Status:     string(b.Status),
			GrandTotal: b.GrandTotal(),
			PaidAmount: b.PaidAmount,
			AmountDue:  b.AmountDue(),
		})
	}
	return out, nil
}
