package repository

import (
	"context"

	"gorm.io/gorm"

	"studioops/internal/domain"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Account, error) {
	var a domain.Account
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&a, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

func (r *AccountRepository) List(ctx context.Context, tenantID int64) ([]domain.Account, error) {
	var out []domain.Account
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("id").
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}
