package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// UserRepository is a mock implementation of domain.UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *UserRepository) AddUser(ctx context.Context, u domain.User) (domain.RegisteredUser, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(domain.RegisteredUser), args.Error(1)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

// PasswordHasher is a mock implementation of domain.PasswordHasher
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Compare(password, hashed string) error {
	args := m.Called(password, hashed)
	return args.Error(0)
}

// UserUsecase is a mock implementation of domain.UserUsecase
type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) Register(ctx context.Context, payload domain.RegisterUserPayload) (domain.RegisteredUser, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(domain.RegisteredUser), args.Error(1)
}
