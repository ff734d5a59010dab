package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// LikeRepository is a mock implementation of domain.LikeRepository
type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) IsExist(ctx context.Context, like domain.Like) (bool, error) {
	args := m.Called(ctx, like)
	return args.Bool(0), args.Error(1)
}

func (m *LikeRepository) AddLike(ctx context.Context, like domain.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *LikeRepository) DeleteLike(ctx context.Context, like domain.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

// LikeUsecase is a mock implementation of domain.LikeUsecase
type LikeUsecase struct {
	mock.Mock
}

func (m *LikeUsecase) ToggleLike(ctx context.Context, payload domain.ToggleLikePayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
