package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// Comment rows are ordered by CreatedAt, Seq keeps the insertion order for equal timestamps.
type Comment struct {
	Seq       int64     `gorm:"column:seq;primaryKey;autoIncrement"`
	ID        string    `gorm:"column:id;type:varchar(50);uniqueIndex;not null"`
	ThreadID  string    `gorm:"column:thread_id;type:varchar(50);not null;index"`
	UserID    string    `gorm:"column:user_id;type:varchar(50);not null;index"`
	Content   string    `gorm:"type:text;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDraft(id string, d domain.CommentDraft) *Comment {
	return &Comment{
		ID:       id,
		ThreadID: d.ThreadID,
		UserID:   d.UserID,
		Content:  d.Content,
	}
}

func (m *Comment) ToDomain() (domain.Comment, error) {
	return domain.NewComment(m.ID, m.Content, m.UserID)
}

// CommentDetail is a comment joined with its author and like count.
type CommentDetail struct {
	ID        string    `gorm:"column:id"`
	Username  string    `gorm:"column:username"`
	CreatedAt time.Time `gorm:"column:created_at"`
	Content   string    `gorm:"column:content"`
	IsDeleted bool      `gorm:"column:is_deleted"`
	LikeCount int64     `gorm:"column:like_count"`
}

func (m *CommentDetail) ToDomain() domain.CommentRecord {
	return domain.CommentRecord{
		ID:        m.ID,
		Username:  m.Username,
		Date:      domain.FormatDate(m.CreatedAt),
		Content:   m.Content,
		IsDeleted: m.IsDeleted,
		LikeCount: m.LikeCount,
	}
}
