package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/internal/rest/response"
)

// AuthMiddleware verifies the Bearer access token and stores the user id
// under "user_id" for the handlers.
func AuthMiddleware(tokens domain.AuthenticationTokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("Missing authentication"))
			return
		}

		payload, err := tokens.VerifyAccessToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(err.Error()))
			return
		}

		c.Set("user_id", payload.ID)
		c.Set("username", payload.Username)
		c.Next()
	}
}
