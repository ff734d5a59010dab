package comment

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
	}
}

func (s *service) AddComment(ctx context.Context, p domain.AddCommentPayload) (domain.Comment, error) {
	draft, err := domain.NewCommentDraft(p.ThreadID, p.Content, p.UserID)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := s.threadRepo.VerifyThreadID(ctx, draft.ThreadID); err != nil {
		return domain.Comment{}, err
	}
	return s.commentRepo.AddComment(ctx, draft)
}

// DeleteComment checks existence before ownership, so a missing comment is reported
// as not found whoever asks.
func (s *service) DeleteComment(ctx context.Context, p domain.DeleteCommentPayload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.threadRepo.VerifyThreadID(ctx, p.ThreadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentID(ctx, p.CommentID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyOwner(ctx, p.CommentID, p.UserID); err != nil {
		return err
	}
	return s.commentRepo.DeleteComment(ctx, p.CommentID)
}
