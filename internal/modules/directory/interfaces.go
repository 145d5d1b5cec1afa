package directory

import (
	"context"

	"studioops/internal/domain"
)

type RoomRepo interface {
	Create(ctx context.Context, r *domain.Room) error
	List(ctx context.Context, tenantID int64) ([]domain.Room, error)
}

type StaffRepo interface {
	Create(ctx context.Context, s *domain.Staff) error
	List(ctx context.Context, tenantID int64) ([]domain.Staff, error)
	SetUnavailableDates(ctx context.Context, tenantID, id int64, dates []string) error
}

type EquipmentRepo interface {
	Create(ctx context.Context, e *domain.Equipment) error
	List(ctx context.Context, tenantID int64) ([]domain.Equipment, error)
	UpdateStatus(ctx context.Context, tenantID, id int64, status domain.EquipmentStatus) error
}

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	List(ctx context.Context, tenantID int64) ([]domain.Client, error)
	SetFlagged(ctx context.Context, tenantID, id int64, flagged bool) error
}

type PackageRepo interface {
	Create(ctx context.Context, p *domain.PackageTemplate) error
	List(ctx context.Context, tenantID int64) ([]domain.PackageTemplate, error)
}

type AccountRepo interface {
	Create(ctx context.Context, a *domain.Account) error
	List(ctx context.Context, tenantID int64) ([]domain.Account, error)
}
