package model

import (
	"time"

	"github.com/forum-api/forum-api/domain"
)

type Comment struct {
	ID       string    `gorm:"primaryKey;type:varchar(50)"`
	ThreadID string    `gorm:"column:thread_id;type:varchar(50);not null;index"`
	Owner    string    `gorm:"type:varchar(50);not null"`
	Content  string    `gorm:"type:text;not null"`
	Date     time.Time `gorm:"type:datetime(3);not null"`
	IsDelete bool      `gorm:"column:is_delete;not null;default:false"`
	Thread   Thread    `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
	User     User      `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(id, ownerID, threadID string, c domain.NewComment, date time.Time) *Comment {
	return &Comment{
		ID:       id,
		ThreadID: threadID,
		Owner:    ownerID,
		Content:  c.Content,
		Date:     date,
	}
}

// ToAdded validates the stored row as the entity handed back to callers.
func (m *Comment) ToAdded() (domain.AddedComment, error) {
	return domain.ParseAddedComment(domain.Attributes{
		"id":      m.ID,
		"content": m.Content,
		"owner":   m.Owner,
	})
}

// CommentWithUsername is a comment joined with its owner's username.
type CommentWithUsername struct {
	ID       string
	Content  string
	Date     time.Time
	Username string
	IsDelete bool
}

func (m *CommentWithUsername) ToDomain() domain.CommentRow {
	return domain.CommentRow{
		ID:       m.ID,
		Content:  m.Content,
		Date:     m.Date,
		Username: m.Username,
		IsDelete: m.IsDelete,
	}
}
