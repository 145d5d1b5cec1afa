package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioops/internal/domain"
)

var testPolicy = Policy{
	OpenMinute:    9 * 60,
	CloseMinute:   21 * 60,
	BufferMinutes: 15,
}

var testDay = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

func staffID(id int64) *int64 { return &id }

func existingBooking(id int64, status domain.BookingStatus, startMinute, durationMin int, roomID int64) domain.Booking {
	return domain.Booking{
		ID:           id,
		TenantID:     1,
		ClientID:     1,
		Date:         testDay,
		StartMinute:  startMinute,
		DurationMin:  durationMin,
		RoomID:       roomID,
		Status:       status,
		PaymentState: domain.PaymentUnpaid,
	}
}

func TestResolve_RoomHeldThroughTurnoverBuffer(t *testing.T) {
	// Existing booked session 10:00-12:00 in room 1; the 15-minute buffer
	// keeps the room busy until 12:15.
	existing := []domain.Booking{existingBooking(7, domain.BookingBooked, 10*60, 120, 1)}

	// 12:10 start still collides with the buffered end.
	p := Proposal{Date: testDay, StartMinute: 12*60 + 10, DurationMin: 60, RoomID: 1}
	c := Resolve(p, existing, Constraints{}, testPolicy)
	require.NotNil(t, c)
	assert.Equal(t, ConflictRoom, c.Kind)
	assert.Equal(t, SeverityHard, c.Severity)
	assert.Equal(t, int64(7), c.BookingID)

	// 12:15 is the first clean start.
	p.StartMinute = 12*60 + 15
	assert.Nil(t, Resolve(p, existing, Constraints{}, testPolicy))
}

func TestResolve_BufferDoesNotExtendStart(t *testing.T) {
	// The buffer models turnover after a session; a proposal ending exactly
	// at the existing start needs no gap.
	existing := []domain.Booking{existingBooking(1, domain.BookingBooked, 12*60, 60, 1)}

	p := Proposal{Date: testDay, StartMinute: 11 * 60, DurationMin: 60, RoomID: 1}
	assert.Nil(t, Resolve(p, existing, Constraints{}, testPolicy))
}

func TestResolve_OutsideOperatingHours(t *testing.T) {
	p := Proposal{Date: testDay, StartMinute: 8*60 + 30, DurationMin: 60, RoomID: 1}
	c := Resolve(p, nil, Constraints{}, testPolicy)
	require.NotNil(t, c)
	assert.Equal(t, ConflictHours, c.Kind)
	assert.Equal(t, SeverityHard, c.Severity)

	// Ending past close is rejected too.
	p = Proposal{Date: testDay, StartMinute: 20 * 60, DurationMin: 90, RoomID: 1}
	c = Resolve(p, nil, Constraints{}, testPolicy)
	require.NotNil(t, c)
	assert.Equal(t, ConflictHours, c.Kind)

	// Exactly open-to-close is fine.
	p = Proposal{Date: testDay, StartMinute: 9 * 60, DurationMin: 12 * 60, RoomID: 1}
	assert.Nil(t, Resolve(p, nil, Constraints{}, testPolicy))
}

func TestResolve_HoursCheckedBeforeOverlap(t *testing.T) {
	// A proposal that is both out of hours and overlapping reports hours.
	existing := []domain.Booking{existingBooking(1, domain.BookingBooked, 8*60, 120, 1)}
	p := Proposal{Date: testDay, StartMinute: 8 * 60, DurationMin: 60, RoomID: 1}

	c := Resolve(p, existing, Constraints{}, testPolicy)
	require.NotNil(t, c)
	assert.Equal(t, ConflictHours, c.Kind)
}

func TestResolve_StaffDayOff(t *testing.T) {
	cons := Constraints{StaffDaysOff: map[int64]map[string]struct{}{
		3: {"2026-09-10": {}},
	}}

	p := Proposal{Date: testDay, StartMinute: 10 * 60, DurationMin: 60, RoomID: 1, StaffID: staffID(3)}
	c := Resolve(p, nil, cons, testPolicy)
	require.NotNil(t, c)
	assert.Equal(t, ConflictStaffDayOff, c.Kind)
	assert.Equal(t, SeverityHard, c.Severity)

	// Another staff member is unaffected.
	p.StaffID = staffID(4)
	assert.Nil(t, Resolve(p, nil, cons, testPolicy))
}

func TestResolve_StaffDoubleBookedAcrossRooms(t *testing.T) {
	b := existingBooking(2, domain.BookingBooked, 10*60, 60, 1)
	b.StaffID = staffID(5)

	p := Proposal{Date: testDay, StartMinute: 10 * 60, DurationMin: 60, RoomID: 2, StaffID: staffID(5)}
	c := Resolve(p, []domain.Booking{b}, Constraints{}, testPolicy)
	require.NotNil(t, c)
	assert.Equal(t, ConflictStaff, c.Kind)
	assert.Equal(t, int64(2), c.BookingID)
}

func TestResolve_EquipmentDoubleBooked(t *testing.T) {
	b := existingBooking(3, domain.BookingBooked, 10*60, 60, 1)
	b.EquipmentIDs = []int64{11, 12}

	p := Proposal{Date: testDay, StartMinute: 10 * 60, DurationMin: 60, RoomID: 2, EquipmentIDs: []int64{12}}
	c := Resolve(p, []domain.Booking{b}, Constraints{}, testPolicy)
	require.NotNil(t, c)
	assert.Equal(t, ConflictEquipment, c.Kind)

	// Disjoint equipment sets do not collide.
	p.EquipmentIDs = []int64{13}
	assert.Nil(t, Resolve(p, []domain.Booking{b}, Constraints{}, testPolicy))
}

func TestResolve_RoomReportedBeforeEquipment(t *testing.T) {
	// When one existing booking collides on both room and equipment, the
	// room conflict wins.
	b := existingBooking(4, domain.BookingBooked, 10*60, 60, 1)
	b.EquipmentIDs = []int64{11}

	p := Proposal{Date: testDay, StartMinute: 10 * 60, DurationMin: 60, RoomID: 1, EquipmentIDs: []int64{11}}
	c := Resolve(p, []domain.Booking{b}, Constraints{}, testPolicy)
	require.NotNil(t, c)
	assert.Equal(t, ConflictRoom, c.Kind)
}

func TestResolve_InquiryOverlapIsSoft(t *testing.T) {
	existing := []domain.Booking{existingBooking(5, domain.BookingInquiry, 10*60, 60, 1)}

	p := Proposal{Date: testDay, StartMinute: 10 * 60, DurationMin: 60, RoomID: 1}
	c := Resolve(p, existing, Constraints{}, testPolicy)
	require.NotNil(t, c)
	assert.Equal(t, ConflictRoom, c.Kind)
	assert.Equal(t, SeveritySoft, c.Severity)
}

func TestResolve_SkipsCancelledAndRefunded(t *testing.T) {
	cancelled := existingBooking(6, domain.BookingCancelled, 10*60, 60, 1)
	refunded := existingBooking(7, domain.BookingBooked, 10*60, 60, 1)
	refunded.PaymentState = domain.PaymentRefunded

	p := Proposal{Date: testDay, StartMinute: 10 * 60, DurationMin: 60, RoomID: 1}
	assert.Nil(t, Resolve(p, []domain.Booking{cancelled, refunded}, Constraints{}, testPolicy))
}

func TestResolve_SkipsUnscheduledLeads(t *testing.T) {
	lead := existingBooking(8, domain.BookingInquiry, 0, 0, 1)

	p := Proposal{Date: testDay, StartMinute: 10 * 60, DurationMin: 60, RoomID: 1}
	assert.Nil(t, Resolve(p, []domain.Booking{lead}, Constraints{}, testPolicy))
}

func TestResolve_IsPure(t *testing.T) {
	existing := []domain.Booking{existingBooking(9, domain.BookingBooked, 10*60, 120, 1)}
	p := Proposal{Date: testDay, StartMinute: 11 * 60, DurationMin: 60, RoomID: 1}

	first := Resolve(p, existing, Constraints{}, testPolicy)
	second := Resolve(p, existing, Constraints{}, testPolicy)
	assert.Equal(t, first, second)
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("13:45")
	require.NoError(t, err)
	assert.Equal(t, 13*60+45, m)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}
