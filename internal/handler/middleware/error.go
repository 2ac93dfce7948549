package middleware

import (
	"log/slog"
	"net/http"

	"care-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var internalError = httperr.NewResponse(http.StatusInternalServerError, "Internal server error", httperr.Detail{Code: httperr.CodeInternal})

// ErrorHandler logs server side causes and renders the last public error
// when a handler recorded one without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		var last *httperr.Response
		for _, ge := range c.Errors {
			resp, ok := ge.Meta.(httperr.Response)
			if !ok {
				continue
			}
			if resp.Status >= http.StatusInternalServerError {
				slog.ErrorContext(c.Request.Context(), "request failed",
					"request_id", GetRequestID(c),
					"route", c.FullPath(),
					"status", resp.Status,
					"code", resp.Detail.Code,
					"error", ge.Err.Error())
			}
			if ge.IsType(gin.ErrorTypePublic) {
				last = &resp
			}
		}

		switch {
		case c.Writer.Written():
		case last != nil:
			c.JSON(last.Status, last)
		case len(c.Errors) > 0:
			c.JSON(internalError.Status, internalError)
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "recovered from panic",
			"request_id", GetRequestID(c),
			"route", c.FullPath(),
			"panic", recovered)
		c.AbortWithStatusJSON(internalError.Status, internalError)
	})
}
