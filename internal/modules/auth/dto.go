package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	TenantID int64  `json:"tenant_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
