package model

import (
	"time"

	"github.com/forum-api/forum-api/domain"
)

type Thread struct {
	ID    string    `gorm:"primaryKey;type:varchar(50)"`
	Title string    `gorm:"type:text;not null"`
	Body  string    `gorm:"type:text;not null"`
	Owner string    `gorm:"type:varchar(50);not null;index"`
	Date  time.Time `gorm:"type:datetime(3);not null"`
	User  User      `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDomain(id, ownerID string, t domain.NewThread, date time.Time) *Thread {
	return &Thread{
		ID:    id,
		Title: t.Title,
		Body:  t.Body,
		Owner: ownerID,
		Date:  date,
	}
}

// ToAdded validates the stored row as the entity handed back to callers.
func (m *Thread) ToAdded() (domain.AddedThread, error) {
	return domain.ParseAddedThread(domain.Attributes{
		"id":    m.ID,
		"title": m.Title,
		"owner": m.Owner,
	})
}

// ThreadWithUsername is a thread joined with its owner's username.
type ThreadWithUsername struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

func (m *ThreadWithUsername) ToDomain() domain.ThreadRow {
	return domain.ThreadRow{
		ID:       m.ID,
		Title:    m.Title,
		Body:     m.Body,
		Date:     m.Date,
		Username: m.Username,
	}
}
