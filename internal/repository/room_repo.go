package repository

import (
	"context"

	"gorm.io/gorm"

	"studioops/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&room, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context, tenantID int64) ([]domain.Room, error) {
	var out []domain.Room
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("id").
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}
