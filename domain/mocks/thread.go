package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// ThreadRepository is a mock implementation of domain.ThreadRepository
type ThreadRepository struct {
	mock.Mock
}

func (m *ThreadRepository) AddThread(ctx context.Context, draft domain.ThreadDraft) (domain.Thread, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(domain.Thread), args.Error(1)
}

func (m *ThreadRepository) VerifyThreadID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ThreadRepository) GetThreadDetail(ctx context.Context, id string) (domain.DetailThread, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.DetailThread), args.Error(1)
}

// ThreadUsecase is a mock implementation of domain.ThreadUsecase
type ThreadUsecase struct {
	mock.Mock
}

func (m *ThreadUsecase) AddThread(ctx context.Context, payload domain.AddThreadPayload) (domain.Thread, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(domain.Thread), args.Error(1)
}

func (m *ThreadUsecase) ViewThread(ctx context.Context, threadID string) (domain.DetailThread, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).(domain.DetailThread), args.Error(1)
}
