package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

type threadRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository will create an implementation of domain.ThreadRepository
func NewThreadRepository(db *gorm.DB, gen repository.IDGenerator) *threadRepository {
	return &threadRepository{
		DB:    db,
		newID: gen,
	}
}

func (m *threadRepository) AddThread(ctx context.Context, d domain.ThreadDraft) (domain.Thread, error) {
	row := model.NewThreadFromDraft(repository.NewID("thread", m.newID), d)
	if err := m.DB.WithContext(ctx).Create(row).Error; err != nil {
		return domain.Thread{}, err
	}
	return row.ToDomain()
}

func (m *threadRepository) VerifyThreadID(ctx context.Context, id string) error {
	var n int64
	err := m.DB.WithContext(ctx).Model(&model.Thread{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrThreadNotFound
	}
	return nil
}

func (m *threadRepository) GetThreadDetail(ctx context.Context, id string) (domain.DetailThread, error) {
	var row model.ThreadDetail
	result := m.DB.WithContext(ctx).
		Table("threads AS t").
		Select("t.id, t.title, t.body, t.created_at, u.username").
		Joins("JOIN users AS u ON u.id = t.user_id").
		Where("t.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return domain.DetailThread{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.DetailThread{}, domain.ErrThreadNotFound
	}
	return row.ToDomain()
}
