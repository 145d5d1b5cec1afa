package repository

import (
	"context"

	"gorm.io/gorm"

	"studioops/internal/domain"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) Create(ctx context.Context, p *domain.PackageTemplate) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PackageRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.PackageTemplate, error) {
	var p domain.PackageTemplate
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&p, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PackageRepository) List(ctx context.Context, tenantID int64) ([]domain.PackageTemplate, error) {
	var out []domain.PackageTemplate
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("id").
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}
