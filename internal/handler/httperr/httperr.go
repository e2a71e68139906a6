package httperr

import (
	"ezrent/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope: {"success": false, "error": "...", "detail": ...}.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  any    `json:"detail,omitempty"`
}

func New(status int, msg string, detail any) Response {
	return Response{Status: status, Success: false, Error: msg, Detail: detail}
}

// AbortWithError writes the envelope and keeps err on the gin context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := New(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
