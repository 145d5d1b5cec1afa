package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studioops/internal/domain"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) GenerateToken(userID, tenantID int64, role string) (string, error) {
	return "token-stub", nil
}

func seedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           1,
		TenantID:     10,
		Email:        "manager@studioops.local",
		PasswordHash: string(hash),
		Name:         "Front Desk",
		Role:         domain.RoleManager,
	}
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepo)
	u := seedUser(t, "manager123")
	users.On("GetByEmail", mock.Anything, u.Email).Return(u, nil)

	svc := NewService(users, fakeTokenIssuer{})
	resp, err := svc.Login(context.Background(), LoginRequest{Email: u.Email, Password: "manager123"})

	require.NoError(t, err)
	assert.Equal(t, "token-stub", resp.Token)
	assert.Equal(t, int64(10), resp.TenantID)
	assert.Equal(t, "manager", resp.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepo)
	u := seedUser(t, "manager123")
	users.On("GetByEmail", mock.Anything, u.Email).Return(u, nil)

	svc := NewService(users, fakeTokenIssuer{})
	_, err := svc.Login(context.Background(), LoginRequest{Email: u.Email, Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "nobody@studioops.local").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, fakeTokenIssuer{})
	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@studioops.local", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmptyFields(t *testing.T) {
	svc := NewService(new(MockUserRepo), fakeTokenIssuer{})
	_, err := svc.Login(context.Background(), LoginRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}
