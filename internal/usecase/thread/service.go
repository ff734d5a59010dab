package thread

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// DefaultFetchConcurrency bounds the reply fetches ViewThread runs at once.
const DefaultFetchConcurrency = 8

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	concurrency int
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object. A concurrency below 1 falls
// back to DefaultFetchConcurrency.
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository, concurrency int) *Service {
	if concurrency < 1 {
		concurrency = DefaultFetchConcurrency
	}
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		concurrency: concurrency,
	}
}

func (s *Service) AddThread(ctx context.Context, p domain.AddThreadPayload) (domain.Thread, error) {
	draft, err := domain.NewThreadDraft(p.Title, p.Body, p.UserID)
	if err != nil {
		return domain.Thread{}, err
	}
	return s.threadRepo.AddThread(ctx, draft)
}

// ViewThread assembles the thread with its comments, their replies and like counts.
func (s *Service) ViewThread(ctx context.Context, threadID string) (domain.DetailThread, error) {
	if threadID == "" {
		return domain.DetailThread{}, domain.ErrThreadNotFound
	}
	return s.aggregate(ctx, threadID)
}

func (s *Service) aggregate(ctx context.Context, threadID string) (domain.DetailThread, error) {
	if err := s.threadRepo.VerifyThreadID(ctx, threadID); err != nil {
		return domain.DetailThread{}, err
	}

	base, err := s.threadRepo.GetThreadDetail(ctx, threadID)
	if err != nil {
		return domain.DetailThread{}, err
	}

	records, err := s.commentRepo.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		return domain.DetailThread{}, err
	}

	comments, err := s.fillReplies(ctx, records)
	if err != nil {
		return domain.DetailThread{}, err
	}

	return domain.NewDetailThread(base.ID, base.Title, base.Body, base.Date, base.Username, comments)
}

// fillReplies fetches the replies of every comment concurrently. Each result lands at
// its comment's index, so the output keeps the order of records.
func (s *Service) fillReplies(ctx context.Context, records []domain.CommentRecord) ([]domain.DetailComment, error) {
	comments := make([]domain.DetailComment, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range records {
		g.Go(func() error {
			replyRecords, err := s.replyRepo.GetRepliesByCommentID(ctx, records[i].ID)
			if err != nil {
				return err
			}

			replies := make([]domain.DetailReply, len(replyRecords))
			for j := range replyRecords {
				replies[j], err = domain.NewDetailReply(replyRecords[j])
				if err != nil {
					return err
				}
			}

			comments[i], err = domain.NewDetailComment(records[i], replies)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return comments, nil
}
