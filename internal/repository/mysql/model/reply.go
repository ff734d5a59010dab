package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Reply struct {
	Seq       int64     `gorm:"column:seq;primaryKey;autoIncrement"`
	ID        string    `gorm:"column:id;type:varchar(50);uniqueIndex;not null"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null;index"`
	UserID    string    `gorm:"column:user_id;type:varchar(50);not null;index"`
	Content   string    `gorm:"type:text;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDraft(id string, d domain.ReplyDraft) *Reply {
	return &Reply{
		ID:        id,
		CommentID: d.CommentID,
		UserID:    d.UserID,
		Content:   d.Content,
	}
}

func (m *Reply) ToDomain() (domain.Reply, error) {
	return domain.NewReply(m.ID, m.Content, m.UserID)
}

type ReplyDetail struct {
	ID        string    `gorm:"column:id"`
	Username  string    `gorm:"column:username"`
	CreatedAt time.Time `gorm:"column:created_at"`
	Content   string    `gorm:"column:content"`
	IsDeleted bool      `gorm:"column:is_deleted"`
}

func (m *ReplyDetail) ToDomain() domain.ReplyRecord {
	return domain.ReplyRecord{
		ID:        m.ID,
		Username:  m.Username,
		Date:      domain.FormatDate(m.CreatedAt),
		Content:   m.Content,
		IsDeleted: m.IsDeleted,
	}
}
