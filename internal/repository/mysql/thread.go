package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/internal/repository/mysql/model"
)

type threadRepository struct {
	DB    *gorm.DB
	idGen domain.IDGenerator
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

func NewThreadRepository(db *gorm.DB, idGen domain.IDGenerator) *threadRepository {
	return &threadRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (r *threadRepository) AddThread(ctx context.Context, ownerID string, t domain.NewThread) (domain.AddedThread, error) {
	thread := model.NewThreadFromDomain("thread-"+r.idGen(), ownerID, t, time.Now().UTC())
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(thread).Error; err != nil {
		return domain.AddedThread{}, err
	}
	return thread.ToAdded()
}

func (r *threadRepository) VerifyThreadExists(ctx context.Context, threadID string) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Thread{}).Where("id = ?", threadID).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.NewNotFoundError("Thread tidak ditemukan")
	}
	return nil
}

func (r *threadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.ThreadRow, error) {
	var row model.ThreadWithUsername
	result := r.DB.WithContext(ctx).Model(&model.Thread{}).
		Select("threads.id, threads.title, threads.body, threads.date, users.username").
		Joins("INNER JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", threadID).
		Scan(&row)
	if result.Error != nil {
		return domain.ThreadRow{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ThreadRow{}, domain.NewNotFoundError("Thread tidak ditemukan")
	}
	return row.ToDomain(), nil
}
