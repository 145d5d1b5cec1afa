package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"studioops/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// ListByDate returns all bookings on the given calendar day, in creation
// order. The conflict resolver expects the full day including cancelled
// records; it does its own filtering.
func (r *BookingRepository) ListByDate(ctx context.Context, tenantID int64, date time.Time) ([]domain.Booking, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var out []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ? AND date = ?", tenantID, day).
		Order("id").
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}

// ListActive returns bookings that are neither cancelled nor fully refunded.
func (r *BookingRepository) ListActive(ctx context.Context, tenantID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status <> ? AND payment_state <> ?",
			tenantID, domain.BookingCancelled, domain.PaymentRefunded).
		Order("date, start_minute").
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}

// UpdateProduction writes the outcome of a status transition: the new
// status plus the appended activity log and workflow tasks, as one
// single-record update.
func (r *BookingRepository) UpdateProduction(ctx context.Context, b *domain.Booking) error {
	updates := map[string]interface{}{
		"status":       b.Status,
		"tasks":        b.Tasks,
		"activity":     b.Activity,
		"cancelled_at": b.CancelledAt,
		"updated_at":   time.Now().UTC(),
	}

	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND tenant_id = ?", b.ID, b.TenantID).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
