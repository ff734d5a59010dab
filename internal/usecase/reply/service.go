package reply

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository) *service {
	return &service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
	}
}

func (s *service) AddReply(ctx context.Context, p domain.AddReplyPayload) (domain.Reply, error) {
	draft, err := domain.NewReplyDraft(p.CommentID, p.Content, p.UserID)
	if err != nil {
		return domain.Reply{}, err
	}
	if p.ThreadID == "" {
		return domain.Reply{}, domain.ErrAddReplyMissingProperty
	}
	if err := s.threadRepo.VerifyThreadID(ctx, p.ThreadID); err != nil {
		return domain.Reply{}, err
	}
	if err := s.commentRepo.VerifyCommentID(ctx, draft.CommentID); err != nil {
		return domain.Reply{}, err
	}
	return s.replyRepo.AddReply(ctx, draft)
}

func (s *service) DeleteReply(ctx context.Context, p domain.DeleteReplyPayload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.threadRepo.VerifyThreadID(ctx, p.ThreadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentID(ctx, p.CommentID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyReplyID(ctx, p.ReplyID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyOwner(ctx, p.ReplyID, p.UserID); err != nil {
		return err
	}
	return s.replyRepo.DeleteReply(ctx, p.ReplyID)
}
