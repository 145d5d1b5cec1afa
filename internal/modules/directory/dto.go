package directory

type CreateRoomRequest struct {
	Name    string `json:"name" binding:"required"`
	AreaSqm int    `json:"area_sqm"`
}

type CreateStaffRequest struct {
	Name string `json:"name" binding:"required"`
}

type SetDaysOffRequest struct {
	Dates []string `json:"dates"` // 2006-01-02
}

type CreateEquipmentRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

type SetEquipmentStatusRequest struct {
	Status string `json:"status" binding:"required"` // available | maintenance
}

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type FlagClientRequest struct {
	Flagged bool `json:"flagged"`
}

type CreatePackageRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       int64    `json:"price"`
	DurationMin int      `json:"duration_min"`
	Features    []string `json:"features"`
}

type CreateAccountRequest struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required"` // cash | bank
}
