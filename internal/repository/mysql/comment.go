package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/internal/repository/mysql/model"
)

type commentRepository struct {
	DB    *gorm.DB
	idGen domain.IDGenerator
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, idGen domain.IDGenerator) *commentRepository {
	return &commentRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (c *commentRepository) AddComment(ctx context.Context, ownerID, threadID string, nc domain.NewComment) (domain.AddedComment, error) {
	comment := model.NewCommentFromDomain("comment-"+c.idGen(), ownerID, threadID, nc, time.Now().UTC())
	if err := c.DB.WithContext(ctx).Omit(clause.Associations).Create(comment).Error; err != nil {
		return domain.AddedComment{}, err
	}
	return comment.ToAdded()
}

func (c *commentRepository) VerifyCommentOwner(ctx context.Context, commentID, ownerID string) error {
	var comment model.Comment
	result := c.DB.WithContext(ctx).Select("owner").Where("id = ?", commentID).Find(&comment)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Komentar tidak ditemukan")
	}
	if comment.Owner != ownerID {
		return domain.NewAuthorizationError("Anda bukan pemilik komentar ini")
	}
	return nil
}

func (c *commentRepository) CheckCommentExists(ctx context.Context, commentID, threadID string) error {
	var count int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ? AND thread_id = ?", commentID, threadID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.NewNotFoundError("Komentar tidak ditemukan pada thread ini")
	}
	return nil
}

func (c *commentRepository) DeleteComment(ctx context.Context, commentID string) error {
	return c.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", commentID).
		Update("is_delete", true).Error
}

func (c *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRow, error) {
	var rows []model.CommentWithUsername
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).
		Select("comments.id, comments.content, comments.date, comments.is_delete, users.username").
		Joins("INNER JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.date ASC, comments.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.CommentRow, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}
