package httperr

import (
	"net/http"

	"mynbala-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps an error category to an HTTP status; uncategorized errors are 500.
func StatusFor(err error) int {
	switch {
	case errs.IsAny(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.IsAny(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errs.IsAny(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.IsAny(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.IsAny(err, errs.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
