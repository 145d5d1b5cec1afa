package scheduling

import (
	"fmt"
	"time"

	"studioops/internal/domain"
)

type ConflictKind string

const (
	ConflictHours       ConflictKind = "hours"
	ConflictStaffDayOff ConflictKind = "staff_day_off"
	ConflictRoom        ConflictKind = "room"
	ConflictStaff       ConflictKind = "staff"
	ConflictEquipment   ConflictKind = "equipment"
)

type Severity string

const (
	SeverityHard Severity = "hard"
	SeveritySoft Severity = "soft"
)

type Conflict struct {
	Kind      ConflictKind `json:"kind"`
	Severity  Severity     `json:"severity"`
	BookingID int64        `json:"booking_id,omitempty"`
	Message   string       `json:"message"`
}

// Policy is the operating-hours window and the turnover buffer, in minutes
// since midnight.
type Policy struct {
	OpenMinute    int
	CloseMinute   int
	BufferMinutes int
}

// Constraints carries the resource directory inputs the resolver needs:
// staff unavailable-date sets keyed by staff id, dates as "2006-01-02".
type Constraints struct {
	StaffDaysOff map[int64]map[string]struct{}
}

type Proposal struct {
	Date         time.Time
	StartMinute  int
	DurationMin  int
	RoomID       int64
	StaffID      *int64
	EquipmentIDs []int64
}

// Resolve evaluates a proposed booking against the day's existing bookings
// and the directory constraints. It is a pure function: no side effects,
// identical inputs yield identical results. It returns the first conflict
// found, in strict check order, or nil.
//
// The check is advisory: it runs against the caller's snapshot of bookings,
// which may be stale relative to a write just committed by another client.
// Nothing at the storage layer prevents two racing clients from both
// passing.
func Resolve(p Proposal, existing []domain.Booking, cons Constraints, pol Policy) *Conflict {
	pStart := p.StartMinute
	pEnd := p.StartMinute + p.DurationMin

	if pStart < pol.OpenMinute || pEnd > pol.CloseMinute {
		return &Conflict{
			Kind:     ConflictHours,
			Severity: SeverityHard,
			Message: fmt.Sprintf("requested %s-%s is outside operating hours %s-%s",
				clock(pStart), clock(pEnd), clock(pol.OpenMinute), clock(pol.CloseMinute)),
		}
	}

	if p.StaffID != nil {
		if days, ok := cons.StaffDaysOff[*p.StaffID]; ok {
			if _, off := days[domain.DateKey(p.Date)]; off {
				return &Conflict{
					Kind:     ConflictStaffDayOff,
					Severity: SeverityHard,
					Message:  fmt.Sprintf("staff %d is unavailable on %s", *p.StaffID, domain.DateKey(p.Date)),
				}
			}
		}
	}

	for i := range existing {
		b := &existing[i]
		if !b.Active() || !b.Scheduled() {
			continue
		}

		// The buffer models post-session turnover: it extends only the end
		// of the existing booking's busy interval, never its start.
		bStart := b.StartMinute
		bEndBuffered := b.EndMinute() + pol.BufferMinutes
		if !(pStart < bEndBuffered && pEnd > bStart) {
			continue
		}

		severity := SeverityHard
		if b.Status == domain.BookingInquiry {
			severity = SeveritySoft
		}

		switch {
		case b.RoomID == p.RoomID:
			return &Conflict{
				Kind:      ConflictRoom,
				Severity:  severity,
				BookingID: b.ID,
				Message:   fmt.Sprintf("room %d is held by booking %d from %s to %s (plus %d min turnover)", p.RoomID, b.ID, clock(bStart), clock(b.EndMinute()), pol.BufferMinutes),
			}
		case p.StaffID != nil && b.StaffID != nil && *p.StaffID == *b.StaffID:
			return &Conflict{
				Kind:      ConflictStaff,
				Severity:  severity,
				BookingID: b.ID,
				Message:   fmt.Sprintf("staff %d is assigned to booking %d from %s to %s", *p.StaffID, b.ID, clock(bStart), clock(b.EndMinute())),
			}
		case intersects(p.EquipmentIDs, b.EquipmentIDs):
			return &Conflict{
				Kind:      ConflictEquipment,
				Severity:  severity,
				BookingID: b.ID,
				Message:   fmt.Sprintf("equipment is reserved by booking %d from %s to %s", b.ID, clock(bStart), clock(b.EndMinute())),
			}
		}
	}

	return nil
}

func intersects(a, b []int64) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[int64]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}

func clock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// ParseClock turns a "15:04" string into minutes since midnight.
func ParseClock(v string) (int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
