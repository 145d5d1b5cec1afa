package directory

import (
	"context"
	"time"

	"studioops/internal/domain"
)

// Service manages the resource directory: rooms, staff availability,
// equipment, clients, accounts and package templates. These are read-only
// inputs to the conflict resolver and the ledger; the directory itself has
// no transactional requirements.
type Service struct {
	rooms     RoomRepo
	staff     StaffRepo
	equipment EquipmentRepo
	clients   ClientRepo
	packages  PackageRepo
	accounts  AccountRepo
}

func NewService(rooms RoomRepo, staff StaffRepo, equipment EquipmentRepo, clients ClientRepo, packages PackageRepo, accounts AccountRepo) *Service {
	return &Service{
		rooms:     rooms,
		staff:     staff,
		equipment: equipment,
		clients:   clients,
		packages:  packages,
		accounts:  accounts,
	}
}

func (s *Service) CreateRoom(ctx context.Context, tenantID int64, req CreateRoomRequest) (*domain.Room, error) {
	if req.Name == "" {
		return nil, ErrValidation
	}
	room := &domain.Room{
		TenantID: tenantID,
		Name:     req.Name,
		AreaSqm:  req.AreaSqm,
		IsActive: true,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context, tenantID int64) ([]domain.Room, error) {
	return s.rooms.List(ctx, tenantID)
}

func (s *Service) CreateStaff(ctx context.Context, tenantID int64, req CreateStaffRequest) (*domain.Staff, error) {
	if req.Name == "" {
		return nil, ErrValidation
	}
	m := &domain.Staff{TenantID: tenantID, Name: req.Name}
	if err := s.staff.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListStaff(ctx context.Context, tenantID int64) ([]domain.Staff, error) {
	return s.staff.List(ctx, tenantID)
}

// SetStaffDaysOff replaces the unavailable-date set. Dates must be
// "2006-01-02" keys; anything else is rejected before the write.
func (s *Service) SetStaffDaysOff(ctx context.Context, tenantID, staffID int64, dates []string) error {
	for _, d := range dates {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return ErrValidation
		}
	}
	err := s.staff.SetUnavailableDates(ctx, tenantID, staffID, dates)
	if err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *Service) CreateEquipment(ctx context.Context, tenantID int64, req CreateEquipmentRequest) (*domain.Equipment, error) {
	if req.Name == "" {
		return nil, ErrValidation
	}
	e := &domain.Equipment{
		TenantID: tenantID,
		Name:     req.Name,
		Category: req.Category,
		Status:   domain.EquipmentAvailable,
	}
	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) ListEquipment(ctx context.Context, tenantID int64) ([]domain.Equipment, error) {
	return s.equipment.List(ctx, tenantID)
}

func (s *Service) SetEquipmentStatus(ctx context.Context, tenantID, id int64, status string) error {
	st := domain.EquipmentStatus(status)
	if st != domain.EquipmentAvailable && st != domain.EquipmentMaintenance {
		return ErrValidation
	}
	if err := s.equipment.UpdateStatus(ctx, tenantID, id, st); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *Service) CreateClient(ctx context.Context, tenantID int64, req CreateClientRequest) (*domain.Client, error) {
	if req.Name == "" {
		return nil, ErrValidation
	}
	c := &domain.Client{
		TenantID: tenantID,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListClients(ctx context.Context, tenantID int64) ([]domain.Client, error) {
	return s.clients.List(ctx, tenantID)
}

func (s *Service) FlagClient(ctx context.Context, tenantID, id int64, flagged bool) error {
	if err := s.clients.SetFlagged(ctx, tenantID, id, flagged); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *Service) CreatePackage(ctx context.Context, tenantID int64, req CreatePackageRequest) (*domain.PackageTemplate, error) {
	if req.Name == "" || req.Price < 0 {
		return nil, ErrValidation
	}
	p := &domain.PackageTemplate{
		TenantID:    tenantID,
		Name:        req.Name,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Features:    req.Features,
	}
	if err := s.packages.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListPackages(ctx context.Context, tenantID int64) ([]domain.PackageTemplate, error) {
	return s.packages.List(ctx, tenantID)
}

func (s *Service) CreateAccount(ctx context.Context, tenantID int64, req CreateAccountRequest) (*domain.Account, error) {
	kind := domain.AccountKind(req.Kind)
	if req.Name == "" || (kind != domain.AccountCash && kind != domain.AccountBank) {
		return nil, ErrValidation
	}
	a := &domain.Account{
		TenantID: tenantID,
		Name:     req.Name,
		Kind:     kind,
	}
	if err := s.accounts.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
