package authentication_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/domain/mocks"
	"github.com/forum-api/forum-api/internal/usecase/authentication"
)

type deps struct {
	userRepo     *mocks.UserRepository
	authRepo     *mocks.AuthenticationRepository
	tokenManager *mocks.AuthenticationTokenManager
	passwordHash *mocks.PasswordHash
}

func newDeps() deps {
	return deps{
		userRepo:     new(mocks.UserRepository),
		authRepo:     new(mocks.AuthenticationRepository),
		tokenManager: new(mocks.AuthenticationTokenManager),
		passwordHash: new(mocks.PasswordHash),
	}
}

func (d deps) service() domain.AuthenticationUsecase {
	return authentication.NewService(d.userRepo, d.authRepo, d.tokenManager, d.passwordHash)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	payload := domain.Attributes{"username": "dicoding", "password": "secret"}
	claims := domain.TokenPayload{ID: "user-123", Username: "dicoding"}

	t.Run("success", func(t *testing.T) {
		d := newDeps()
		d.userRepo.On("GetPasswordByUsername", ctx, "dicoding").Return("encrypted_password", nil).Once()
		d.passwordHash.On("ComparePassword", "secret", "encrypted_password").Return(nil).Once()
		d.userRepo.On("GetIDByUsername", ctx, "dicoding").Return("user-123", nil).Once()
		d.tokenManager.On("CreateAccessToken", claims).Return("access_token", nil).Once()
		d.tokenManager.On("CreateRefreshToken", claims).Return("refresh_token", nil).Once()
		d.authRepo.On("AddToken", ctx, "refresh_token").Return(nil).Once()

		got, err := d.service().Login(ctx, payload)

		require.NoError(t, err)
		assert.Equal(t, domain.NewAuth{AccessToken: "access_token", RefreshToken: "refresh_token"}, got)
		d.userRepo.AssertExpectations(t)
		d.passwordHash.AssertExpectations(t)
		d.tokenManager.AssertExpectations(t)
		d.authRepo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		d := newDeps()
		d.userRepo.On("GetPasswordByUsername", ctx, "dicoding").Return("encrypted_password", nil).Once()
		d.passwordHash.On("ComparePassword", "secret", "encrypted_password").
			Return(domain.NewAuthenticationError("kredensial yang Anda masukkan salah")).Once()

		_, err := d.service().Login(ctx, payload)

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		d.tokenManager.AssertNotCalled(t, "CreateAccessToken", mock.Anything)
		d.authRepo.AssertNotCalled(t, "AddToken", mock.Anything, mock.Anything)
	})

	t.Run("empty token pair is not stored", func(t *testing.T) {
		d := newDeps()
		d.userRepo.On("GetPasswordByUsername", ctx, "dicoding").Return("encrypted_password", nil).Once()
		d.passwordHash.On("ComparePassword", "secret", "encrypted_password").Return(nil).Once()
		d.userRepo.On("GetIDByUsername", ctx, "dicoding").Return("user-123", nil).Once()
		d.tokenManager.On("CreateAccessToken", claims).Return("access_token", nil).Once()
		d.tokenManager.On("CreateRefreshToken", claims).Return("", nil).Once()

		_, err := d.service().Login(ctx, payload)

		assert.EqualError(t, err, "NEW_AUTH.NOT_CONTAIN_NEEDED_PROPERTY")
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		d.authRepo.AssertNotCalled(t, "AddToken", mock.Anything, mock.Anything)
	})

	t.Run("invalid payload", func(t *testing.T) {
		d := newDeps()

		_, err := d.service().Login(ctx, domain.Attributes{"username": "dicoding"})

		assert.EqualError(t, err, "USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY")
		d.userRepo.AssertNotCalled(t, "GetPasswordByUsername", mock.Anything, mock.Anything)
	})
}

func TestRefreshAuthentication(t *testing.T) {
	ctx := context.Background()
	claims := domain.TokenPayload{ID: "user-123", Username: "dicoding"}

	t.Run("success", func(t *testing.T) {
		d := newDeps()
		d.tokenManager.On("VerifyRefreshToken", "refresh_token").Return(nil).Once()
		d.authRepo.On("CheckAvailabilityToken", ctx, "refresh_token").Return(nil).Once()
		d.tokenManager.On("DecodePayload", "refresh_token").Return(claims, nil).Once()
		d.tokenManager.On("CreateAccessToken", claims).Return("new_access_token", nil).Once()

		got, err := d.service().RefreshAuthentication(ctx, domain.Attributes{"refreshToken": "refresh_token"})

		require.NoError(t, err)
		assert.Equal(t, "new_access_token", got)
		d.tokenManager.AssertExpectations(t)
		d.authRepo.AssertExpectations(t)
	})

	t.Run("token not stored", func(t *testing.T) {
		d := newDeps()
		d.tokenManager.On("VerifyRefreshToken", "refresh_token").Return(nil).Once()
		d.authRepo.On("CheckAvailabilityToken", ctx, "refresh_token").
			Return(domain.NewInvariantError("refresh token tidak ditemukan di database")).Once()

		_, err := d.service().RefreshAuthentication(ctx, domain.Attributes{"refreshToken": "refresh_token"})

		assert.EqualError(t, err, "refresh token tidak ditemukan di database")
		d.tokenManager.AssertNotCalled(t, "CreateAccessToken", mock.Anything)
	})

	t.Run("mistyped token", func(t *testing.T) {
		d := newDeps()

		_, err := d.service().RefreshAuthentication(ctx, domain.Attributes{"refreshToken": 1})

		assert.EqualError(t, err, "REFRESH_AUTHENTICATION.NOT_MEET_DATA_TYPE_SPECIFICATION")
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		d := newDeps()
		d.authRepo.On("CheckAvailabilityToken", ctx, "refresh_token").Return(nil).Once()
		d.authRepo.On("DeleteToken", ctx, "refresh_token").Return(nil).Once()

		err := d.service().Logout(ctx, domain.Attributes{"refreshToken": "refresh_token"})

		require.NoError(t, err)
		d.authRepo.AssertExpectations(t)
	})

	t.Run("unknown token is not deleted", func(t *testing.T) {
		d := newDeps()
		d.authRepo.On("CheckAvailabilityToken", ctx, "refresh_token").
			Return(domain.NewInvariantError("refresh token tidak ditemukan di database")).Once()

		err := d.service().Logout(ctx, domain.Attributes{"refreshToken": "refresh_token"})

		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		d.authRepo.AssertNotCalled(t, "DeleteToken", mock.Anything, mock.Anything)
	})

	t.Run("missing token", func(t *testing.T) {
		d := newDeps()

		err := d.service().Logout(ctx, domain.Attributes{})

		assert.EqualError(t, err, "DELETE_AUTHENTICATION.NOT_CONTAIN_NEEDED_PROPERTY")
	})
}
