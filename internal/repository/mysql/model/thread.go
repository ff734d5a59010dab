package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Thread struct {
	ID        string    `gorm:"column:id;type:varchar(50);primaryKey"`
	Title     string    `gorm:"type:varchar(50);not null"`
	Body      string    `gorm:"type:text;not null"`
	UserID    string    `gorm:"column:user_id;type:varchar(50);not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDraft(id string, d domain.ThreadDraft) *Thread {
	return &Thread{
		ID:     id,
		Title:  d.Title,
		Body:   d.Body,
		UserID: d.UserID,
	}
}

func (m *Thread) ToDomain() (domain.Thread, error) {
	return domain.NewThread(m.ID, m.Title, m.Body, m.UserID)
}

// ThreadDetail is the thread joined with its owner's username.
type ThreadDetail struct {
	ID        string    `gorm:"column:id"`
	Title     string    `gorm:"column:title"`
	Body      string    `gorm:"column:body"`
	CreatedAt time.Time `gorm:"column:created_at"`
	Username  string    `gorm:"column:username"`
}

func (m *ThreadDetail) ToDomain() (domain.DetailThread, error) {
	return domain.NewDetailThread(m.ID, m.Title, m.Body, domain.FormatDate(m.CreatedAt), m.Username, nil)
}
