package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/internal/rest/request"
	"github.com/forum-api/forum-api/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func (h *CommentHandler) PostComment(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	payload, err := request.Bind(c)
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddComment(c.Request.Context(), owner, c.Param("threadId"), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedComment": response.NewAddedCommentFromDomain(added),
	}))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	err := h.Service.DeleteComment(c.Request.Context(), owner, c.Param("threadId"), c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
