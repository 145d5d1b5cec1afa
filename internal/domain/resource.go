package domain

import "time"

type Room struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	TenantID  int64     `json:"tenant_id" gorm:"index"`
	Name      string    `json:"name" validate:"required"`
	AreaSqm   int       `json:"area_sqm,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Staff struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	TenantID int64  `json:"tenant_id" gorm:"index"`
	Name     string `json:"name" validate:"required"`

	// Days the staff member cannot be assigned, as "2006-01-02" keys.
	UnavailableDates []string `json:"unavailable_dates,omitempty" gorm:"serializer:json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Staff) TableName() string { return "staff" }

func (s *Staff) UnavailableOn(date time.Time) bool {
	key := DateKey(date)
	for _, d := range s.UnavailableDates {
		if d == key {
			return true
		}
	}
	return false
}

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentMaintenance EquipmentStatus = "maintenance"
)

type Equipment struct {
	ID        int64           `json:"id" gorm:"primaryKey"`
	TenantID  int64           `json:"tenant_id" gorm:"index"`
	Name      string          `json:"name" validate:"required"`
	Category  string          `json:"category,omitempty"`
	Status    EquipmentStatus `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Equipment) TableName() string { return "equipment" }

type Client struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	TenantID int64  `json:"tenant_id" gorm:"index"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`

	// Flagged clients need an explicit acknowledgment at intake. This is a
	// client-level override, unrelated to scheduling conflict overrides.
	Flagged bool `json:"flagged"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
