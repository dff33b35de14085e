package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
	"github.com/yyoonchul/murmur-blog/internal/platform/apierr"
)

// FromError classifies err into an API error. Unclassified errors become a
// 500 carrying fallbackCode.
func FromError(err error, fallbackCode string) *apierr.Error {
	var ae *apierr.Error
	switch {
	case errors.As(err, &ae):
		return ae
	case errors.Is(err, apperrors.ErrNotFound):
		return apierr.NotFound(err)
	case errors.Is(err, apperrors.ErrInvalidArgument):
		return apierr.InvalidArgument(err)
	case errors.Is(err, apperrors.ErrUnavailable):
		return apierr.Unavailable(err)
	default:
		return apierr.New(http.StatusInternalServerError, fallbackCode, err)
	}
}

func RespondServiceError(c *gin.Context, err error, fallbackCode string) {
	ae := FromError(err, fallbackCode)
	RespondError(c, ae.Status, ae.Code, ae.Err)
}
