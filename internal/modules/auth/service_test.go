package auth

import (
	"context"
	"testing"

	"arteideas/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock repositories
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID, tenantID int64, role string) (string, error) {
	args := m.Called(userID, tenantID, role)
	return args.String(0), args.Error(1)
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "ana@arteideas.pe" &&
			u.TenantID == 7 &&
			u.Role == domain.RoleOperator &&
			u.PasswordHash != "secreto123"
	})).Return(nil)

	service := NewService(users, new(MockJWT))

	user, err := service.Register(ctx, RegisterRequest{
		Name:     "Ana Rojas",
		Email:    "  Ana@ArteIdeas.PE ",
		Password: "secreto123",
		TenantID: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@arteideas.pe", user.Email)
	assert.Empty(t, user.PasswordHash)
	users.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	users.On("Create", ctx, mock.Anything).
		Return(&pgconn.PgError{Code: "23505"})

	service := NewService(users, new(MockJWT))

	_, err := service.Register(ctx, RegisterRequest{
		Name:     "Ana Rojas",
		Email:    "ana@arteideas.pe",
		Password: "secreto123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegister_DuplicateEmailSQLite(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	users.On("Create", ctx, mock.Anything).
		Return(gorm.ErrDuplicatedKey)

	service := NewService(users, new(MockJWT))

	_, err := service.Register(ctx, RegisterRequest{
		Name:     "Ana Rojas",
		Email:    "ana@arteideas.pe",
		Password: "secreto123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{
		ID:           3,
		TenantID:     7,
		Email:        "ana@arteideas.pe",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}

	users := new(MockUserRepository)
	users.On("GetByEmail", ctx, "ana@arteideas.pe").Return(stored, nil)

	j := new(MockJWT)
	j.On("GenerateToken", int64(3), int64(7), "admin").Return("token-abc", nil)

	service := NewService(users, j)

	result, err := service.Login(ctx, LoginRequest{Email: "Ana@ArteIdeas.PE", Password: "secreto123"})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", result.Token)
	assert.Empty(t, result.User.PasswordHash)
	j.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByEmail", ctx, "ana@arteideas.pe").
		Return(&domain.User{ID: 3, PasswordHash: string(hash)}, nil)

	service := NewService(users, new(MockJWT))

	_, err = service.Login(ctx, LoginRequest{Email: "ana@arteideas.pe", Password: "otra"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	users.On("GetByEmail", ctx, "nadie@arteideas.pe").
		Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, new(MockJWT))

	_, err := service.Login(ctx, LoginRequest{Email: "nadie@arteideas.pe", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
