package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

type replyRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, gen repository.IDGenerator) *replyRepository {
	return &replyRepository{
		DB:    db,
		newID: gen,
	}
}

func (r *replyRepository) AddReply(ctx context.Context, d domain.ReplyDraft) (domain.Reply, error) {
	row := model.NewReplyFromDraft(repository.NewID("reply", r.newID), d)
	if err := r.DB.WithContext(ctx).Create(row).Error; err != nil {
		return domain.Reply{}, err
	}
	return row.ToDomain()
}

func (r *replyRepository) VerifyReplyID(ctx context.Context, id string) error {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Reply{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrReplyNotFound
	}
	return nil
}

func (r *replyRepository) VerifyOwner(ctx context.Context, replyID, userID string) error {
	var row model.Reply
	err := r.DB.WithContext(ctx).Select("user_id").Where("id = ?", replyID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrReplyNotFound
	}
	if err != nil {
		return err
	}
	if row.UserID != userID {
		return domain.ErrReplyNotOwned
	}
	return nil
}

func (r *replyRepository) DeleteReply(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).Model(&model.Reply{}).Where("id = ?", id).Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrReplyNotFound
	}
	return nil
}

func (r *replyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.ReplyRecord, error) {
	var rows []model.ReplyDetail
	err := r.DB.WithContext(ctx).
		Table("replies AS r").
		Select("r.id, u.username, r.created_at, r.content, r.is_deleted").
		Joins("JOIN users AS u ON u.id = r.user_id").
		Where("r.comment_id = ?", commentID).
		Order("r.created_at ASC, r.seq ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.ReplyRecord, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}
