package mysql

import (
	"context"
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY
const mysqlDuplicateEntry = 1062

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{
		DB: db,
	}
}

func (l *likeRepository) IsExist(ctx context.Context, like domain.Like) (bool, error) {
	var n int64
	err := l.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND comment_id = ?", like.UserID, like.CommentID).
		Count(&n).Error
	return n > 0, err
}

func (l *likeRepository) AddLike(ctx context.Context, like domain.Like) error {
	err := l.DB.WithContext(ctx).Create(model.NewLikeFromDomain(like)).Error
	if isDuplicateKey(err) {
		return domain.ErrLikeConflict
	}
	return err
}

func (l *likeRepository) DeleteLike(ctx context.Context, like domain.Like) error {
	return l.DB.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", like.UserID, like.CommentID).
		Delete(&model.Like{}).Error
}

// isDuplicateKey reports unique constraint violations, translated by gorm or raw from MySQL.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}
