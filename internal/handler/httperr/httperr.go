package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the single error envelope every endpoint returns.
type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail Detail    `json:"detail"`
}

type ErrorBody struct {
	Message string `json:"message"`
}

// Detail carries a machine readable code plus whatever the error knows
// about the rejected input.
type Detail struct {
	Code   string         `json:"code"`
	Fields map[string]any `json:"fields,omitempty"`
}

func NewResponse(status int, msg string, detail Detail) Response {
	return Response{Status: status, Error: ErrorBody{Message: msg}, Detail: detail}
}

// AbortWithError renders resp and records err on the context so the error
// middleware can log the cause without exposing it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail Detail) {
	if err == nil {
		panic("httperr: abort without a cause")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(&gin.Error{Err: err, Type: gin.ErrorTypePublic, Meta: resp})
	c.AbortWithStatusJSON(status, resp)
}
