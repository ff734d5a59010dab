package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// Like is keyed by (user_id, comment_id), which is what makes a like unique.
type Like struct {
	UserID    string    `gorm:"column:user_id;type:varchar(50);primaryKey"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);primaryKey;index"`
	CreatedAt time.Time `gorm:"not null"`
}

func (Like) TableName() string {
	return "likes"
}

func NewLikeFromDomain(l domain.Like) *Like {
	return &Like{
		UserID:    l.UserID,
		CommentID: l.CommentID,
	}
}
