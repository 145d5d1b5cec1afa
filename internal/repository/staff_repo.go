package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"studioops/internal/domain"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(ctx context.Context, s *domain.Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StaffRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Staff, error) {
	var s domain.Staff
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&s, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

func (r *StaffRepository) List(ctx context.Context, tenantID int64) ([]domain.Staff, error) {
	var out []domain.Staff
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("id").
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}

// SetUnavailableDates replaces the staff member's day-off set.
func (r *StaffRepository) SetUnavailableDates(ctx context.Context, tenantID, id int64, dates []string) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Staff{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(map[string]interface{}{
			"unavailable_dates": dates,
			"updated_at":        time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
