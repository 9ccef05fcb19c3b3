package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forum-api/forum-api/domain"
)

// AuthenticationRepository is a mock type for the AuthenticationRepository type
type AuthenticationRepository struct {
	mock.Mock
}

func (_m *AuthenticationRepository) AddToken(ctx context.Context, token string) error {
	return _m.Called(ctx, token).Error(0)
}

func (_m *AuthenticationRepository) CheckAvailabilityToken(ctx context.Context, token string) error {
	return _m.Called(ctx, token).Error(0)
}

func (_m *AuthenticationRepository) DeleteToken(ctx context.Context, token string) error {
	return _m.Called(ctx, token).Error(0)
}

// AuthenticationUsecase is a mock type for the AuthenticationUsecase type
type AuthenticationUsecase struct {
	mock.Mock
}

func (_m *AuthenticationUsecase) Login(ctx context.Context, payload domain.Attributes) (domain.NewAuth, error) {
	ret := _m.Called(ctx, payload)
	return ret.Get(0).(domain.NewAuth), ret.Error(1)
}

func (_m *AuthenticationUsecase) RefreshAuthentication(ctx context.Context, payload domain.Attributes) (string, error) {
	ret := _m.Called(ctx, payload)
	return ret.String(0), ret.Error(1)
}

func (_m *AuthenticationUsecase) Logout(ctx context.Context, payload domain.Attributes) error {
	return _m.Called(ctx, payload).Error(0)
}

// PasswordHash is a mock type for the PasswordHash type
type PasswordHash struct {
	mock.Mock
}

func (_m *PasswordHash) Hash(password string) (string, error) {
	ret := _m.Called(password)
	return ret.String(0), ret.Error(1)
}

func (_m *PasswordHash) ComparePassword(password, hashed string) error {
	return _m.Called(password, hashed).Error(0)
}

// AuthenticationTokenManager is a mock type for the AuthenticationTokenManager type
type AuthenticationTokenManager struct {
	mock.Mock
}

func (_m *AuthenticationTokenManager) CreateAccessToken(payload domain.TokenPayload) (string, error) {
	ret := _m.Called(payload)
	return ret.String(0), ret.Error(1)
}

func (_m *AuthenticationTokenManager) CreateRefreshToken(payload domain.TokenPayload) (string, error) {
	ret := _m.Called(payload)
	return ret.String(0), ret.Error(1)
}

func (_m *AuthenticationTokenManager) VerifyRefreshToken(token string) error {
	return _m.Called(token).Error(0)
}

func (_m *AuthenticationTokenManager) VerifyAccessToken(token string) (domain.TokenPayload, error) {
	ret := _m.Called(token)
	return ret.Get(0).(domain.TokenPayload), ret.Error(1)
}

func (_m *AuthenticationTokenManager) DecodePayload(token string) (domain.TokenPayload, error) {
	ret := _m.Called(token)
	return ret.Get(0).(domain.TokenPayload), ret.Error(1)
}
