package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// CommentRepository is a mock implementation of domain.CommentRepository
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) AddComment(ctx context.Context, draft domain.CommentDraft) (domain.Comment, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *CommentRepository) VerifyCommentID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) VerifyOwner(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *CommentRepository) DeleteComment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRecord, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommentRecord), args.Error(1)
}

// CommentUsecase is a mock implementation of domain.CommentUsecase
type CommentUsecase struct {
	mock.Mock
}

func (m *CommentUsecase) AddComment(ctx context.Context, payload domain.AddCommentPayload) (domain.Comment, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *CommentUsecase) DeleteComment(ctx context.Context, payload domain.DeleteCommentPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
