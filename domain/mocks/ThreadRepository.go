package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forum-api/forum-api/domain"
)

// ThreadRepository is a mock type for the ThreadRepository type
type ThreadRepository struct {
	mock.Mock
}

func (_m *ThreadRepository) AddThread(ctx context.Context, ownerID string, t domain.NewThread) (domain.AddedThread, error) {
	ret := _m.Called(ctx, ownerID, t)
	return ret.Get(0).(domain.AddedThread), ret.Error(1)
}

func (_m *ThreadRepository) VerifyThreadExists(ctx context.Context, threadID string) error {
	ret := _m.Called(ctx, threadID)
	return ret.Error(0)
}

func (_m *ThreadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.ThreadRow, error) {
	ret := _m.Called(ctx, threadID)
	return ret.Get(0).(domain.ThreadRow), ret.Error(1)
}

// ThreadUsecase is a mock type for the ThreadUsecase type
type ThreadUsecase struct {
	mock.Mock
}

func (_m *ThreadUsecase) AddThread(ctx context.Context, ownerID string, payload domain.Attributes) (domain.AddedThread, error) {
	ret := _m.Called(ctx, ownerID, payload)
	return ret.Get(0).(domain.AddedThread), ret.Error(1)
}

func (_m *ThreadUsecase) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	ret := _m.Called(ctx, threadID)
	return ret.Get(0).(domain.ThreadDetail), ret.Error(1)
}
