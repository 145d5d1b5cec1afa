package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// Service authenticates staff clients. User provisioning is external; this
// only verifies credentials and issues tokens.
type Service struct {
	users  UserRepo
	tokens TokenIssuer
}

func NewService(users UserRepo, tokens TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrValidation
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID, u.TenantID, string(u.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:    token,
		UserID:   u.ID,
		TenantID: u.TenantID,
		Name:     u.Name,
		Role:     string(u.Role),
	}, nil
}
