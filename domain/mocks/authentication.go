package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// AuthenticationRepository is a mock implementation of domain.AuthenticationRepository
type AuthenticationRepository struct {
	mock.Mock
}

func (m *AuthenticationRepository) AddToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *AuthenticationRepository) CheckAvailabilityToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *AuthenticationRepository) DeleteToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// TokenManager is a mock implementation of domain.TokenManager
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) CreateAccessToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) CreateRefreshToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) VerifyAccessToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) VerifyRefreshToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// AuthenticationUsecase is a mock implementation of domain.AuthenticationUsecase
type AuthenticationUsecase struct {
	mock.Mock
}

func (m *AuthenticationUsecase) Login(ctx context.Context, payload domain.LoginPayload) (domain.NewAuth, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(domain.NewAuth), args.Error(1)
}

func (m *AuthenticationUsecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *AuthenticationUsecase) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}
