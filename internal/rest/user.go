package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/internal/rest/request"
	"github.com/forum-api/forum-api/internal/rest/response"
)

type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

// Register creates a new user account
func (h *UserHandler) Register(c *gin.Context) {
	payload, err := request.Bind(c)
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddUser(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedUser": response.NewAddedUserFromDomain(added),
	}))
}
