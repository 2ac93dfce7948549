//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"care-booking/internal/domain/booking"
	"care-booking/internal/handler/httperr"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/commands"
	"care-booking/internal/usecase/flow"
	"care-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type renderedError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		Code   string         `json:"code"`
		Fields map[string]any `json:"fields"`
	} `json:"detail"`
}

func render(t *testing.T, err error) (*httptest.ResponseRecorder, renderedError, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httperr.Abort(c, err)

	var body renderedError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w, body, c
}

func TestAbort_StatusAndCode(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"no provider", &commands.NoProviderAvailableError{Pillar: booking.PillarLegalAssistance}, http.StatusConflict, httperr.CodeNoProviderAvailable},
		{"slot taken", &commands.SlotUnavailableError{}, http.StatusConflict, httperr.CodeSlotUnavailable},
		{"quota exhausted", &commands.QuotaExhaustedError{Source: booking.QuotaCompany}, http.StatusUnprocessableEntity, httperr.CodeQuotaExhausted},
		{"incomplete draft", &commands.IncompleteDraftError{Missing: []string{"date"}}, http.StatusConflict, httperr.CodeIncompleteDraft},
		{"booking not found", errs.Mark(errors.New("no rows"), commands.ErrBookingNotFound), http.StatusNotFound, httperr.CodeBookingNotFound},
		{"not reschedulable", errs.Mark(errors.New("cancelled"), commands.ErrNotReschedulable), http.StatusConflict, httperr.CodeNotReschedulable},
		{"no quota account", errs.Mark(errors.New("no rows"), commands.ErrNoQuotaAccount), http.StatusNotFound, httperr.CodeNoQuotaAccount},
		{"pillar locked", errs.Wrap(flow.ErrPillarLocked, "select pillar"), http.StatusConflict, httperr.CodePillarLocked},
		{"wrong step", errs.Wrapf(flow.ErrPrecondition, "back from %s", booking.StepPillarSelection), http.StatusConflict, httperr.CodeInvalidStep},
		{"invalid selection", errs.Wrap(flow.ErrInvalidSelection, "pillar"), http.StatusBadRequest, httperr.CodeInvalidSelection},
		{"draft expired", errs.Wrap(flow.ErrDraftNotFound, "load"), http.StatusNotFound, httperr.CodeDraftNotFound},
		{"stale draft save", errs.Wrapf(flow.ErrDraftConflict, "draft %s", uuid.Nil), http.StatusConflict, httperr.CodeDraftConflict},
		{"foreign draft", flow.ErrForbidden, http.StatusForbidden, httperr.CodeForbidden},
		{"foreign booking", queries.ErrForbidden, http.StatusForbidden, httperr.CodeForbidden},
		{"bad cursor", errs.Wrap(queries.ErrInvalidCursor, "decode"), http.StatusBadRequest, httperr.CodeInvalidCursor},
		{"storage down", errs.Mark(errors.New("dial tcp"), commands.ErrPersistenceFailure), http.StatusServiceUnavailable, httperr.CodePersistenceFailure},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, httperr.CodeInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, body, c := render(t, tc.err)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantCode, body.Detail.Code)
			assert.True(t, c.IsAborted())
			require.Len(t, c.Errors, 1)
			assert.Same(t, tc.err, c.Errors[0].Err)
		})
	}
}

func TestAbort_RecordsPublicErrorWithResponse(t *testing.T) {
	cause := errs.Wrap(errs.Mark(errors.New("dial tcp 10.0.0.5:5432"), commands.ErrPersistenceFailure), "commit")
	_, _, c := render(t, cause)

	require.Len(t, c.Errors, 1)
	recorded := c.Errors[0]
	assert.True(t, recorded.IsType(gin.ErrorTypePublic))
	assert.Same(t, cause, recorded.Err)

	resp, ok := recorded.Meta.(httperr.Response)
	require.True(t, ok, "meta is %T", recorded.Meta)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Status)
	assert.Equal(t, httperr.CodePersistenceFailure, resp.Detail.Code)
}

func TestAbort_StorageDetailsStayPrivate(t *testing.T) {
	_, body, _ := render(t, errs.Mark(errors.New("password authentication failed for user booking"), commands.ErrPersistenceFailure))
	assert.Equal(t, "Storage temporarily unavailable", body.Error.Message)
	assert.Nil(t, body.Detail.Fields)
}

func TestAbort_Fields(t *testing.T) {
	t.Run("slot", func(t *testing.T) {
		specialistID := uuid.New()
		slot := booking.Slot{
			SpecialistID: specialistID,
			Date:         booking.Date{Year: 2025, Month: time.November, Day: 10},
			Start:        booking.MustClockTime("14:00"),
		}
		_, body, _ := render(t, &commands.SlotUnavailableError{Slot: slot})
		assert.Equal(t, map[string]any{
			"specialist_id": specialistID.String(),
			"date":          "2025-11-10",
			"start_time":    "14:00",
		}, body.Detail.Fields)
	})

	t.Run("quota", func(t *testing.T) {
		_, body, _ := render(t, errs.Wrap(&commands.QuotaExhaustedError{Source: booking.QuotaPersonal, Remaining: 0}, "commit"))
		assert.Equal(t, "personal", body.Detail.Fields["source"])
		assert.EqualValues(t, 0, body.Detail.Fields["remaining"])
	})

	t.Run("missing fields", func(t *testing.T) {
		_, body, _ := render(t, &commands.IncompleteDraftError{Missing: []string{"date", "start_time"}})
		assert.Equal(t, []any{"date", "start_time"}, body.Detail.Fields["missing"])
	})

	t.Run("pillar", func(t *testing.T) {
		_, body, _ := render(t, &commands.NoProviderAvailableError{Pillar: booking.PillarLegalAssistance})
		assert.Equal(t, string(booking.PillarLegalAssistance), body.Detail.Fields["pillar"])
	})
}

func TestAbortWithError_NilPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad", httperr.Detail{})
	})
}
