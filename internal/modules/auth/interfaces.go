package auth

import (
	"context"

	"studioops/internal/domain"
)

type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type TokenIssuer interface {
	GenerateToken(userID, tenantID int64, role string) (string, error)
}
