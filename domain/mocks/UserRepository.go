package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forum-api/forum-api/domain"
)

// UserRepository is a mock type for the UserRepository type
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	ret := _m.Called(ctx, username)
	return ret.Error(0)
}

func (_m *UserRepository) AddUser(ctx context.Context, u domain.RegisterUser) (domain.RegisteredUser, error) {
	ret := _m.Called(ctx, u)
	return ret.Get(0).(domain.RegisteredUser), ret.Error(1)
}

func (_m *UserRepository) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	ret := _m.Called(ctx, username)
	return ret.String(0), ret.Error(1)
}

func (_m *UserRepository) GetIDByUsername(ctx context.Context, username string) (string, error) {
	ret := _m.Called(ctx, username)
	return ret.String(0), ret.Error(1)
}

// UserUsecase is a mock type for the UserUsecase type
type UserUsecase struct {
	mock.Mock
}

func (_m *UserUsecase) AddUser(ctx context.Context, payload domain.Attributes) (domain.RegisteredUser, error) {
	ret := _m.Called(ctx, payload)
	return ret.Get(0).(domain.RegisteredUser), ret.Error(1)
}
