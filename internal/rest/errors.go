package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/internal/rest/response"
)

const serverFailureMessage = "terjadi kegagalan pada server kami"

// validationMessages turns entity validation codes into client messages.
var validationMessages = map[string]string{
	"NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":      "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
	"NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat membuat thread baru karena tipe data tidak sesuai",

	"NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":      "tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada",
	"NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": "komentar harus berupa string",

	"NEW_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":      "tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada",
	"NEW_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION": "balasan harus berupa string",

	"REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY":      "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada",
	"REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat membuat user baru karena tipe data tidak sesuai",
	"REGISTER_USER.LIMIT_CHAR":                       "tidak dapat membuat user baru karena karakter username melebihi batas limit",
	"REGISTER_USER.CONTAIN_RESTRICTED_CHARACTER":     "tidak dapat membuat user baru karena username mengandung karakter terlarang",

	"USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY":      "harus mengirimkan username dan password",
	"USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION": "username dan password harus string",

	"REFRESH_AUTHENTICATION.NOT_CONTAIN_NEEDED_PROPERTY":      "harus mengirimkan token refresh",
	"REFRESH_AUTHENTICATION.NOT_MEET_DATA_TYPE_SPECIFICATION": "refresh token harus string",
	"DELETE_AUTHENTICATION.NOT_CONTAIN_NEEDED_PROPERTY":       "harus mengirimkan token refresh",
	"DELETE_AUTHENTICATION.NOT_MEET_DATA_TYPE_SPECIFICATION":  "refresh token harus string",
}

// getStatusCode maps an error to the HTTP status it surfaces as
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func translate(err error) string {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		if msg, ok := validationMessages[vErr.Error()]; ok {
			return msg
		}
	}
	return err.Error()
}

func respondError(c *gin.Context, err error) {
	status := getStatusCode(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).Errorf("%s %s failed", c.Request.Method, c.FullPath())
		c.JSON(status, response.Error(serverFailureMessage))
		return
	}
	c.JSON(status, response.Fail(translate(err)))
}

// ownerID reads the user id the auth middleware stored on the context.
func ownerID(c *gin.Context) (string, bool) {
	id := c.GetString("user_id")
	if id == "" {
		c.JSON(http.StatusUnauthorized, response.Fail("Missing authentication"))
		return "", false
	}
	return id, true
}
