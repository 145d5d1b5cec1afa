package domain

import "time"

// PackageTemplate prefills a booking with pricing and duration. Not part of
// the transactional core; editing a template never touches existing bookings.
type PackageTemplate struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	TenantID    int64     `json:"tenant_id" gorm:"index"`
	Name        string    `json:"name" validate:"required"`
	Price       int64     `json:"price"`
	DurationMin int       `json:"duration_min"`
	Features    []string  `json:"features,omitempty" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
