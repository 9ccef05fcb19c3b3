package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/internal/rest/request"
	"github.com/forum-api/forum-api/internal/rest/response"
)

type AuthenticationHandler struct {
	Service domain.AuthenticationUsecase
}

func NewAuthenticationHandler(svc domain.AuthenticationUsecase) *AuthenticationHandler {
	return &AuthenticationHandler{
		Service: svc,
	}
}

// Login issues an access and refresh token pair
func (h *AuthenticationHandler) Login(c *gin.Context) {
	payload, err := request.Bind(c)
	if err != nil {
		respondError(c, err)
		return
	}

	auth, err := h.Service.Login(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"accessToken":  auth.AccessToken,
		"refreshToken": auth.RefreshToken,
	}))
}

// Refresh issues a new access token for a stored refresh token
func (h *AuthenticationHandler) Refresh(c *gin.Context) {
	payload, err := request.Bind(c)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, err := h.Service.RefreshAuthentication(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{
		"accessToken": accessToken,
	}))
}

// Logout revokes a refresh token
func (h *AuthenticationHandler) Logout(c *gin.Context) {
	payload, err := request.Bind(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Service.Logout(c.Request.Context(), payload); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
