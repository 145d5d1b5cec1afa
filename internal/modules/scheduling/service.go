package scheduling

import (
	"context"
	"math"
	"time"

	"studioops/internal/config"
	"studioops/internal/domain"
	"studioops/internal/modules/ledger"
)

type Service struct {
	bookings BookingRepo
	staff    StaffRepo
	clients  ClientRepo
	packages PackageRepo
	engine   BookingCreator
	cfg      *config.Config
}

func NewService(bookings BookingRepo, staff StaffRepo, clients ClientRepo, packages PackageRepo, engine BookingCreator, cfg *config.Config) *Service {
	return &Service{
		bookings: bookings,
		staff:    staff,
		clients:  clients,
		packages: packages,
		engine:   engine,
		cfg:      cfg,
	}
}

func (s *Service) policy() Policy {
	return Policy{
		OpenMinute:    s.cfg.OpenMinute(),
		CloseMinute:   s.cfg.CloseMinute(),
		BufferMinutes: s.cfg.BufferMinutes,
	}
}

func (s *Service) constraints(ctx context.Context, tenantID int64) (Constraints, error) {
	members, err := s.staff.List(ctx, tenantID)
	if err != nil {
		return Constraints{}, err
	}

	daysOff := make(map[int64]map[string]struct{}, len(members))
	for _, m := range members {
		if len(m.UnavailableDates) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(m.UnavailableDates))
		for _, d := range m.UnavailableDates {
			set[d] = struct{}{}
		}
		daysOff[m.ID] = set
	}
	return Constraints{StaffDaysOff: daysOff}, nil
}

// Check runs the resolver against the current snapshot without committing
// anything.
func (s *Service) Check(ctx context.Context, tenantID int64, req CheckBookingRequest) (*Conflict, error) {
	p, err := s.proposal(req.Date, req.Start, req.DurationMin, req.RoomID, req.StaffID, req.EquipmentIDs)
	if err != nil {
		return nil, err
	}

	existing, err := s.bookings.ListByDate(ctx, tenantID, p.Date)
	if err != nil {
		return nil, err
	}
	cons, err := s.constraints(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return Resolve(p, existing, cons, s.policy()), nil
}

// Create validates the intake request, runs the resolver, and on success (or
// an explicit force acknowledgment of a soft conflict) hands the booking and
// its optional deposit to the ledger engine as one atomic set.
//
// The returned Conflict is non-nil exactly when the error is ErrHardConflict
// or ErrSoftConflict.
func (s *Service) Create(ctx context.Context, tenantID int64, req CreateBookingRequest) (*domain.Booking, *Conflict, error) {
	p, err := s.proposal(req.Date, req.Start, req.DurationMin, req.RoomID, req.StaffID, req.EquipmentIDs)
	if err != nil {
		return nil, nil, err
	}
	if req.ClientID == 0 {
		return nil, nil, ErrValidation
	}

	client, err := s.clients.GetByID(ctx, tenantID, req.ClientID)
	if err != nil {
		return nil, nil, ErrNotFound
	}
	if client.Flagged && !req.AllowFlaggedClient {
		return nil, nil, ErrFlaggedClient
	}

	price := req.Price
	durationMin := req.DurationMin
	if req.PackageID != 0 && price == 0 && len(req.Items) == 0 {
		pkg, err := s.packages.GetByID(ctx, tenantID, req.PackageID)
		if err != nil {
			return nil, nil, ErrNotFound
		}
		price = pkg.Price
		if pkg.DurationMin > 0 {
			durationMin = pkg.DurationMin
			p.DurationMin = pkg.DurationMin
		}
	}

	existing, err := s.bookings.ListByDate(ctx, tenantID, p.Date)
	if err != nil {
		return nil, nil, err
	}
	cons, err := s.constraints(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}

	if conflict := Resolve(p, existing, cons, s.policy()); conflict != nil {
		if conflict.Severity == SeverityHard {
			return nil, conflict, ErrHardConflict
		}
		if !req.Force {
			return nil, conflict, ErrSoftConflict
		}
	}

	discountKind := domain.DiscountKind(req.DiscountKind)
	switch discountKind {
	case domain.DiscountNone, domain.DiscountPercent, domain.DiscountFixed:
	default:
		return nil, nil, ErrValidation
	}

	status := domain.BookingInquiry
	if req.Confirmed {
		status = domain.BookingBooked
	}

	b := &domain.Booking{
		TenantID:        tenantID,
		ClientID:        req.ClientID,
		Date:            p.Date,
		StartMinute:     p.StartMinute,
		DurationMin:     durationMin,
		RoomID:          req.RoomID,
		StaffID:         req.StaffID,
		EquipmentIDs:    req.EquipmentIDs,
		Price:           price,
		Items:           req.Items,
		DiscountKind:    discountKind,
		DiscountValue:   req.DiscountValue,
		TaxRateSnapshot: s.cfg.TaxRate,
		Status:          status,
		ContractStatus:  domain.ContractNone,
		Notes:           req.Notes,
	}

	var dep *ledger.Deposit
	if req.Deposit != nil && req.Deposit.Amount != 0 {
		dep = &ledger.Deposit{
			Amount:         req.Deposit.Amount,
			AccountID:      req.Deposit.AccountID,
			IdempotencyKey: req.IdempotencyKey,
		}
	}

	created, err := s.engine.CreateBooking(ctx, b, dep)
	if err != nil {
		return nil, nil, err
	}
	return created, nil, nil
}

// RequiredDeposit is the configured percentage of a booking's grand total.
func (s *Service) RequiredDeposit(b *domain.Booking) int64 {
	return int64(math.Round(float64(b.GrandTotal()) * s.cfg.RequiredDepositPct / 100))
}

func (s *Service) ListDay(ctx context.Context, tenantID int64, dateStr string) ([]domain.Booking, error) {
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrValidation
	}
	return s.bookings.ListByDate(ctx, tenantID, day.UTC())
}

func (s *Service) Get(ctx context.Context, tenantID, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *Service) proposal(dateStr, startStr string, durationMin int, roomID int64, staffID *int64, equipmentIDs []int64) (Proposal, error) {
	if durationMin <= 0 || roomID == 0 {
		return Proposal{}, ErrValidation
	}
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return Proposal{}, ErrValidation
	}
	start, err := ParseClock(startStr)
	if err != nil {
		return Proposal{}, ErrValidation
	}

	return Proposal{
		Date:         time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		StartMinute:  start,
		DurationMin:  durationMin,
		RoomID:       roomID,
		StaffID:      staffID,
		EquipmentIDs: equipmentIDs,
	}, nil
}
