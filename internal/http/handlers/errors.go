package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yyoonchul/murmur-blog/internal/http/response"
	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
)

var (
	errPostNotFound    = errors.New("post not found")
	errCommentNotFound = errors.New("comment not found")
	errInvalidBody     = errors.New("invalid request body")
)

// respondNotFoundAs replaces the message of a not-found error with msg and
// defers everything else to the generic mapping.
func respondNotFoundAs(c *gin.Context, err error, code string, msg error, fallbackCode string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		response.RespondError(c, http.StatusNotFound, code, msg)
		return
	}
	response.RespondServiceError(c, err, fallbackCode)
}

func queryBool(c *gin.Context, name string) bool {
	switch c.Query(name) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
