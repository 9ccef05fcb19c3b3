package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/internal/rest/request"
	"github.com/forum-api/forum-api/internal/rest/response"
)

// ThreadHandler represent the httphandler for threads
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// PostThread creates a thread owned by the authenticated user
func (h *ThreadHandler) PostThread(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	payload, err := request.Bind(c)
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddThread(c.Request.Context(), owner, payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedThread": response.NewAddedThreadFromDomain(added),
	}))
}

// GetThreadByID returns the thread with its comments and replies
func (h *ThreadHandler) GetThreadByID(c *gin.Context) {
	detail, err := h.Service.GetThreadDetail(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{
		"thread": response.NewThreadFromDomain(detail),
	}))
}
