package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forum-api/forum-api/domain"
)

// ReplyRepository is a mock type for the ReplyRepository type
type ReplyRepository struct {
	mock.Mock
}

func (_m *ReplyRepository) AddReply(ctx context.Context, ownerID, commentID string, r domain.NewReply) (domain.AddedReply, error) {
	ret := _m.Called(ctx, ownerID, commentID, r)
	return ret.Get(0).(domain.AddedReply), ret.Error(1)
}

func (_m *ReplyRepository) VerifyReplyOwner(ctx context.Context, replyID, ownerID string) error {
	ret := _m.Called(ctx, replyID, ownerID)
	return ret.Error(0)
}

func (_m *ReplyRepository) CheckReplyExists(ctx context.Context, replyID, commentID string) error {
	ret := _m.Called(ctx, replyID, commentID)
	return ret.Error(0)
}

func (_m *ReplyRepository) DeleteReply(ctx context.Context, replyID string) error {
	ret := _m.Called(ctx, replyID)
	return ret.Error(0)
}

func (_m *ReplyRepository) GetRepliesByCommentIDs(ctx context.Context, commentIDs []string) ([]domain.ReplyRow, error) {
	ret := _m.Called(ctx, commentIDs)
	var rows []domain.ReplyRow
	if rf, ok := ret.Get(0).([]domain.ReplyRow); ok {
		rows = rf
	}
	return rows, ret.Error(1)
}

// ReplyUsecase is a mock type for the ReplyUsecase type
type ReplyUsecase struct {
	mock.Mock
}

func (_m *ReplyUsecase) AddReply(ctx context.Context, ownerID, threadID, commentID string, payload domain.Attributes) (domain.AddedReply, error) {
	ret := _m.Called(ctx, ownerID, threadID, commentID, payload)
	return ret.Get(0).(domain.AddedReply), ret.Error(1)
}

func (_m *ReplyUsecase) DeleteReply(ctx context.Context, ownerID, threadID, commentID, replyID string) error {
	ret := _m.Called(ctx, ownerID, threadID, commentID, replyID)
	return ret.Error(0)
}
