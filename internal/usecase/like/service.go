package like

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	likeRepo    domain.LikeRepository
}

var _ domain.LikeUsecase = (*service)(nil)

func NewService(t domain.ThreadRepository, c domain.CommentRepository, l domain.LikeRepository) *service {
	return &service{
		threadRepo:  t,
		commentRepo: c,
		likeRepo:    l,
	}
}

// ToggleLike flips the like of (CommentID, UserID). Check and write are not atomic:
// when a concurrent toggle inserted the like first, the lost insert is reported as
// success because the like exists either way.
func (s *service) ToggleLike(ctx context.Context, p domain.ToggleLikePayload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.threadRepo.VerifyThreadID(ctx, p.ThreadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentID(ctx, p.CommentID); err != nil {
		return err
	}

	like := domain.Like{CommentID: p.CommentID, UserID: p.UserID}
	exists, err := s.likeRepo.IsExist(ctx, like)
	if err != nil {
		return err
	}
	if exists {
		return s.likeRepo.DeleteLike(ctx, like)
	}

	err = s.likeRepo.AddLike(ctx, like)
	if errors.Is(err, domain.ErrLikeConflict) {
		logrus.Infof("like of comment %s by %s was recorded concurrently", p.CommentID, p.UserID)
		return nil
	}
	return err
}
