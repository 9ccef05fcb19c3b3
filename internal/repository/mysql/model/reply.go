package model

import (
	"time"

	"github.com/forum-api/forum-api/domain"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null;index"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	Date      time.Time `gorm:"type:datetime(3);not null"`
	IsDelete  bool      `gorm:"column:is_delete;not null;default:false"`
	Comment   Comment   `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
	User      User      `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(id, ownerID, commentID string, r domain.NewReply, date time.Time) *Reply {
	return &Reply{
		ID:        id,
		CommentID: commentID,
		Owner:     ownerID,
		Content:   r.Content,
		Date:      date,
	}
}

// ToAdded validates the stored row as the entity handed back to callers.
func (m *Reply) ToAdded() (domain.AddedReply, error) {
	return domain.ParseAddedReply(domain.Attributes{
		"id":      m.ID,
		"content": m.Content,
		"owner":   m.Owner,
	})
}

// ReplyWithUsername is a reply joined with its owner's username.
type ReplyWithUsername struct {
	ID        string
	CommentID string
	Content   string
	Date      time.Time
	Username  string
	IsDelete  bool
}

func (m *ReplyWithUsername) ToDomain() domain.ReplyRow {
	return domain.ReplyRow{
		ID:        m.ID,
		CommentID: m.CommentID,
		Content:   m.Content,
		Date:      m.Date,
		Username:  m.Username,
		IsDelete:  m.IsDelete,
	}
}
