package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/internal/rest/request"
	"github.com/forum-api/forum-api/internal/rest/response"
)

type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{
		Service: svc,
	}
}

func (h *ReplyHandler) PostReply(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	payload, err := request.Bind(c)
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddReply(c.Request.Context(), owner, c.Param("threadId"), c.Param("commentId"), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedReply": response.NewAddedReplyFromDomain(added),
	}))
}

func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	err := h.Service.DeleteReply(c.Request.Context(), owner, c.Param("threadId"), c.Param("commentId"), c.Param("replyId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
