package request

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/forum-api/forum-api/domain"
)

// Bind decodes the JSON body into raw attributes. An empty body yields an
// empty payload so entity validation can report the missing properties.
func Bind(c *gin.Context) (domain.Attributes, error) {
	attrs := domain.Attributes{}
	if err := c.ShouldBindJSON(&attrs); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Attributes{}, nil
		}
		return nil, domain.NewInvariantError("payload harus berupa objek JSON")
	}
	if attrs == nil {
		attrs = domain.Attributes{}
	}
	return attrs, nil
}
