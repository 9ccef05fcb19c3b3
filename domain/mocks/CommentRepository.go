package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forum-api/forum-api/domain"
)

// CommentRepository is a mock type for the CommentRepository type
type CommentRepository struct {
	mock.Mock
}

func (_m *CommentRepository) AddComment(ctx context.Context, ownerID, threadID string, c domain.NewComment) (domain.AddedComment, error) {
	ret := _m.Called(ctx, ownerID, threadID, c)
	return ret.Get(0).(domain.AddedComment), ret.Error(1)
}

func (_m *CommentRepository) VerifyCommentOwner(ctx context.Context, commentID, ownerID string) error {
	ret := _m.Called(ctx, commentID, ownerID)
	return ret.Error(0)
}

func (_m *CommentRepository) CheckCommentExists(ctx context.Context, commentID, threadID string) error {
	ret := _m.Called(ctx, commentID, threadID)
	return ret.Error(0)
}

func (_m *CommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	ret := _m.Called(ctx, commentID)
	return ret.Error(0)
}

func (_m *CommentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRow, error) {
	ret := _m.Called(ctx, threadID)
	var rows []domain.CommentRow
	if rf, ok := ret.Get(0).([]domain.CommentRow); ok {
		rows = rf
	}
	return rows, ret.Error(1)
}

// CommentUsecase is a mock type for the CommentUsecase type
type CommentUsecase struct {
	mock.Mock
}

func (_m *CommentUsecase) AddComment(ctx context.Context, ownerID, threadID string, payload domain.Attributes) (domain.AddedComment, error) {
	ret := _m.Called(ctx, ownerID, threadID, payload)
	return ret.Get(0).(domain.AddedComment), ret.Error(1)
}

func (_m *CommentUsecase) DeleteComment(ctx context.Context, ownerID, threadID, commentID string) error {
	ret := _m.Called(ctx, ownerID, threadID, commentID)
	return ret.Error(0)
}
