package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// ReplyRepository is a mock implementation of domain.ReplyRepository
type ReplyRepository struct {
	mock.Mock
}

func (m *ReplyRepository) AddReply(ctx context.Context, draft domain.ReplyDraft) (domain.Reply, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(domain.Reply), args.Error(1)
}

func (m *ReplyRepository) VerifyReplyID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ReplyRepository) VerifyOwner(ctx context.Context, replyID, userID string) error {
	args := m.Called(ctx, replyID, userID)
	return args.Error(0)
}

func (m *ReplyRepository) DeleteReply(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ReplyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.ReplyRecord, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReplyRecord), args.Error(1)
}

// ReplyUsecase is a mock implementation of domain.ReplyUsecase
type ReplyUsecase struct {
	mock.Mock
}

func (m *ReplyUsecase) AddReply(ctx context.Context, payload domain.AddReplyPayload) (domain.Reply, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(domain.Reply), args.Error(1)
}

func (m *ReplyUsecase) DeleteReply(ctx context.Context, payload domain.DeleteReplyPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
