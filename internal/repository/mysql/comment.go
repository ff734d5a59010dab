package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

type commentRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, gen repository.IDGenerator) *commentRepository {
	return &commentRepository{
		DB:    db,
		newID: gen,
	}
}

func (c *commentRepository) AddComment(ctx context.Context, d domain.CommentDraft) (domain.Comment, error) {
	row := model.NewCommentFromDraft(repository.NewID("comment", c.newID), d)
	if err := c.DB.WithContext(ctx).Create(row).Error; err != nil {
		return domain.Comment{}, err
	}
	return row.ToDomain()
}

func (c *commentRepository) VerifyCommentID(ctx context.Context, id string) error {
	var n int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (c *commentRepository) VerifyOwner(ctx context.Context, commentID, userID string) error {
	var row model.Comment
	err := c.DB.WithContext(ctx).Select("user_id").Where("id = ?", commentID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCommentNotFound
	}
	if err != nil {
		return err
	}
	if row.UserID != userID {
		return domain.ErrCommentNotOwned
	}
	return nil
}

// DeleteComment marks the comment as deleted; the row stays.
func (c *commentRepository) DeleteComment(ctx context.Context, id string) error {
	result := c.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (c *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRecord, error) {
	var rows []model.CommentDetail
	err := c.DB.WithContext(ctx).
		Table("comments AS c").
		Select("c.id, u.username, c.created_at, c.content, c.is_deleted, "+
			"(SELECT COUNT(*) FROM likes AS l WHERE l.comment_id = c.id) AS like_count").
		Joins("JOIN users AS u ON u.id = c.user_id").
		Where("c.thread_id = ?", threadID).
		Order("c.created_at ASC, c.seq ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.CommentRecord, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}
