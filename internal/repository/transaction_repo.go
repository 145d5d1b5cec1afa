package repository

import (
	"context"

	"gorm.io/gorm"

	"studioops/internal/domain"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Transaction, error) {
	var t domain.Transaction
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&t, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

// List returns transactions newest first. accountID and bookingID of zero
// mean "any".
func (r *TransactionRepository) List(ctx context.Context, tenantID, accountID, bookingID int64, limit, offset int) ([]domain.Transaction, error) {
	q := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if accountID != 0 {
		q = q.Where("account_id = ? OR dest_account_id = ?", accountID, accountID)
	}
	if bookingID != 0 {
		q = q.Where("booking_id = ?", bookingID)
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var out []domain.Transaction
	tx := q.Order("id DESC").Limit(limit).Offset(offset).Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}
