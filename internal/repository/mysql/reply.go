package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/internal/repository/mysql/model"
)

type replyRepository struct {
	DB    *gorm.DB
	idGen domain.IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, idGen domain.IDGenerator) *replyRepository {
	return &replyRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (r *replyRepository) AddReply(ctx context.Context, ownerID, commentID string, nr domain.NewReply) (domain.AddedReply, error) {
	reply := model.NewReplyFromDomain("reply-"+r.idGen(), ownerID, commentID, nr, time.Now().UTC())
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(reply).Error; err != nil {
		return domain.AddedReply{}, err
	}
	return reply.ToAdded()
}

func (r *replyRepository) VerifyReplyOwner(ctx context.Context, replyID, ownerID string) error {
	var reply model.Reply
	result := r.DB.WithContext(ctx).Select("owner").Where("id = ?", replyID).Find(&reply)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Balasan tidak ditemukan")
	}
	if reply.Owner != ownerID {
		return domain.NewAuthorizationError("Anda bukan pemilik balasan ini")
	}
	return nil
}

func (r *replyRepository) CheckReplyExists(ctx context.Context, replyID, commentID string) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Reply{}).
		Where("id = ? AND comment_id = ?", replyID, commentID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.NewNotFoundError("Balasan tidak ditemukan pada komentar ini")
	}
	return nil
}

func (r *replyRepository) DeleteReply(ctx context.Context, replyID string) error {
	return r.DB.WithContext(ctx).Model(&model.Reply{}).
		Where("id = ?", replyID).
		Update("is_delete", true).Error
}

func (r *replyRepository) GetRepliesByCommentIDs(ctx context.Context, commentIDs []string) ([]domain.ReplyRow, error) {
	if len(commentIDs) == 0 {
		return []domain.ReplyRow{}, nil
	}

	var rows []model.ReplyWithUsername
	err := r.DB.WithContext(ctx).Model(&model.Reply{}).
		Select("replies.id, replies.comment_id, replies.content, replies.date, replies.is_delete, users.username").
		Joins("INNER JOIN users ON users.id = replies.owner").
		Where("replies.comment_id IN ?", commentIDs).
		Order("replies.date ASC, replies.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.ReplyRow, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}
