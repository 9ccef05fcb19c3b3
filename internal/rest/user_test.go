package rest_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/domain/mocks"
	"github.com/forum-api/forum-api/internal/rest"
)

func newAccountRouter(users domain.UserUsecase, auth domain.AuthenticationUsecase) *gin.Engine {
	uh := rest.NewUserHandler(users)
	ah := rest.NewAuthenticationHandler(auth)
	r := gin.New()
	r.POST("/users", uh.Register)
	r.POST("/authentications", ah.Login)
	r.PUT("/authentications", ah.Refresh)
	r.DELETE("/authentications", ah.Logout)
	return r
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		users := new(mocks.UserUsecase)
		users.On("AddUser", mock.Anything, domain.Attributes{"username": "dicoding", "password": "secret", "fullname": "Dicoding Indonesia"}).
			Return(domain.RegisteredUser{ID: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}, nil).Once()

		rec := serve(newAccountRouter(users, nil), http.MethodPost, "/users", `{"username":"dicoding","password":"secret","fullname":"Dicoding Indonesia"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"status":"success","data":{"addedUser":{"id":"user-123","username":"dicoding","fullname":"Dicoding Indonesia"}}}`, rec.Body.String())
	})

	t.Run("username taken", func(t *testing.T) {
		users := new(mocks.UserUsecase)
		users.On("AddUser", mock.Anything, mock.Anything).
			Return(domain.RegisteredUser{}, domain.NewInvariantError("username tidak tersedia")).Once()

		rec := serve(newAccountRouter(users, nil), http.MethodPost, "/users", `{"username":"dicoding","password":"secret","fullname":"Dicoding"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"status":"fail","message":"username tidak tersedia"}`, rec.Body.String())
	})

	t.Run("restricted character", func(t *testing.T) {
		users := new(mocks.UserUsecase)
		users.On("AddUser", mock.Anything, mock.Anything).
			Return(domain.RegisteredUser{}, &domain.ValidationError{Entity: "REGISTER_USER", Kind: domain.RestrictedCharacter}).Once()

		rec := serve(newAccountRouter(users, nil), http.MethodPost, "/users", `{"username":"dico ding","password":"secret","fullname":"Dicoding"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"status":"fail","message":"tidak dapat membuat user baru karena username mengandung karakter terlarang"}`, rec.Body.String())
	})
}

func TestAuthentications(t *testing.T) {
	t.Run("login", func(t *testing.T) {
		auth := new(mocks.AuthenticationUsecase)
		auth.On("Login", mock.Anything, domain.Attributes{"username": "dicoding", "password": "secret"}).
			Return(domain.NewAuth{AccessToken: "access", RefreshToken: "refresh"}, nil).Once()

		rec := serve(newAccountRouter(nil, auth), http.MethodPost, "/authentications", `{"username":"dicoding","password":"secret"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"status":"success","data":{"accessToken":"access","refreshToken":"refresh"}}`, rec.Body.String())
	})

	t.Run("wrong credentials", func(t *testing.T) {
		auth := new(mocks.AuthenticationUsecase)
		auth.On("Login", mock.Anything, mock.Anything).
			Return(domain.NewAuth{}, domain.NewAuthenticationError("kredensial yang Anda masukkan salah")).Once()

		rec := serve(newAccountRouter(nil, auth), http.MethodPost, "/authentications", `{"username":"dicoding","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"status":"fail","message":"kredensial yang Anda masukkan salah"}`, rec.Body.String())
	})

	t.Run("refresh", func(t *testing.T) {
		auth := new(mocks.AuthenticationUsecase)
		auth.On("RefreshAuthentication", mock.Anything, domain.Attributes{"refreshToken": "refresh"}).
			Return("new_access", nil).Once()

		rec := serve(newAccountRouter(nil, auth), http.MethodPut, "/authentications", `{"refreshToken":"refresh"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"success","data":{"accessToken":"new_access"}}`, rec.Body.String())
	})

	t.Run("refresh without token", func(t *testing.T) {
		auth := new(mocks.AuthenticationUsecase)
		auth.On("RefreshAuthentication", mock.Anything, domain.Attributes{}).
			Return("", &domain.ValidationError{Entity: "REFRESH_AUTHENTICATION", Kind: domain.MissingProperty}).Once()

		rec := serve(newAccountRouter(nil, auth), http.MethodPut, "/authentications", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"status":"fail","message":"harus mengirimkan token refresh"}`, rec.Body.String())
	})

	t.Run("logout", func(t *testing.T) {
		auth := new(mocks.AuthenticationUsecase)
		auth.On("Logout", mock.Anything, domain.Attributes{"refreshToken": "refresh"}).Return(nil).Once()

		rec := serve(newAccountRouter(nil, auth), http.MethodDelete, "/authentications", `{"refreshToken":"refresh"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
	})
}
