//go:build unit

package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"care-booking/internal/handler/httperr"
	"care-booking/internal/handler/middleware"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/commands"
	"care-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func chainRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.RequestLog(slog.Default()), middleware.ErrorHandler())
	return r
}

func TestErrorHandler(t *testing.T) {
	t.Run("success: public error recorded without a body is rendered", func(t *testing.T) {
		r := chainRouter()
		r.GET("/drafts/:id", func(c *gin.Context) {
			resp := httperr.NewResponse(http.StatusNotFound, "Booking draft not found", httperr.Detail{Code: httperr.CodeDraftNotFound})
			_ = c.Error(&gin.Error{Err: errors.New("expired"), Type: gin.ErrorTypePublic, Meta: resp})
		})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/drafts/"+uuid.NewString(), nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusNotFound, httperr.CodeDraftNotFound)
	})

	t.Run("success: already written responses are left alone", func(t *testing.T) {
		r := chainRouter()
		r.GET("/bookings/:id", func(c *gin.Context) {
			httperr.Abort(c, errors.New("connection reset"))
		})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/bookings/"+uuid.NewString(), nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusInternalServerError, httperr.CodeInternal)
	})

	t.Run("error: private error becomes a generic 500", func(t *testing.T) {
		r := chainRouter()
		r.GET("/quota", func(c *gin.Context) {
			_ = c.Error(errors.New("bind failed"))
		})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/quota", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusInternalServerError, httperr.CodeInternal)
	})

	t.Run("success: empty responses keep their status", func(t *testing.T) {
		r := chainRouter()
		r.DELETE("/drafts/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		rec := httptest.PerformRequest(t, r, http.MethodDelete, "/drafts/"+uuid.NewString(), nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestErrorHandler_LogsServerSideCause(t *testing.T) {
	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	r := chainRouter()
	r.POST("/drafts/:id/commit", func(c *gin.Context) {
		httperr.Abort(c, errs.Mark(errors.New("dial tcp 10.0.0.5:5432"), commands.ErrPersistenceFailure))
	})

	rec := httptest.PerformRequest(t, r, http.MethodPost, "/drafts/"+uuid.NewString()+"/commit", nil, "")

	httptest.AssertErrorCode(t, rec, http.StatusServiceUnavailable, httperr.CodePersistenceFailure)
	assert.NotContains(t, rec.Body.String(), "dial tcp")
	assert.Contains(t, logs.String(), "request failed")
	assert.Contains(t, logs.String(), "dial tcp 10.0.0.5:5432")
	assert.Contains(t, logs.String(), httperr.CodePersistenceFailure)
}

func TestCustomRecovery(t *testing.T) {
	r := chainRouter()
	r.POST("/drafts/:id/commit", func(c *gin.Context) { panic("nil specialist") })

	rec := httptest.PerformRequest(t, r, http.MethodPost, "/drafts/"+uuid.NewString()+"/commit", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	httptest.AssertErrorCode(t, rec, http.StatusInternalServerError, httperr.CodeInternal)
}

func TestRequestLog_RequestID(t *testing.T) {
	r := chainRouter()
	var seen string
	r.GET("/health", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	t.Run("success: caller id is echoed", func(t *testing.T) {
		id := uuid.NewString()
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "", httptest.WithHeader(middleware.RequestIDHeader, id))
		httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: id})
		assert.Equal(t, id, seen)
	})

	t.Run("success: malformed id is replaced", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "", httptest.WithHeader(middleware.RequestIDHeader, "<script>"))
		got := rec.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
		assert.Equal(t, got, seen)
	})
}
