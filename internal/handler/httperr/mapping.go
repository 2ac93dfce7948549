package httperr

import (
	"net/http"

	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/commands"
	"care-booking/internal/usecase/flow"
	"care-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	CodeNoProviderAvailable = "no_provider_available"
	CodeSlotUnavailable     = "slot_unavailable"
	CodeQuotaExhausted      = "quota_exhausted"
	CodeIncompleteDraft     = "incomplete_draft"
	CodeInvalidStep         = "invalid_step"
	CodePillarLocked        = "pillar_locked"
	CodeInvalidSelection    = "invalid_selection"
	CodeDraftNotFound       = "draft_not_found"
	CodeDraftConflict       = "draft_conflict"
	CodeBookingNotFound     = "booking_not_found"
	CodeNotReschedulable    = "not_reschedulable"
	CodeNoQuotaAccount      = "no_quota_account"
	CodeInvalidCursor       = "invalid_cursor"
	CodeForbidden           = "forbidden"
	CodePersistenceFailure  = "persistence_failure"
	CodeInvalidRequest      = "invalid_request"
	CodeUnauthorized        = "unauthorized"
	CodeInternal            = "internal"
)

type rule struct {
	target  error
	status  int
	code    string
	message string
}

// first match wins; typed errors come before the generic flow errors
var rules = []rule{
	{commands.ErrNoProviderAvailable, http.StatusConflict, CodeNoProviderAvailable, "No specialist is available for this pillar"},
	{commands.ErrSlotUnavailable, http.StatusConflict, CodeSlotUnavailable, "The selected slot is no longer available"},
	{commands.ErrQuotaExhausted, http.StatusUnprocessableEntity, CodeQuotaExhausted, "Session quota exhausted"},
	{commands.ErrIncompleteDraft, http.StatusConflict, CodeIncompleteDraft, "Booking draft is incomplete"},
	{commands.ErrBookingNotFound, http.StatusNotFound, CodeBookingNotFound, "Booking not found"},
	{commands.ErrNotReschedulable, http.StatusConflict, CodeNotReschedulable, "Booking cannot be rescheduled"},
	{commands.ErrNoQuotaAccount, http.StatusNotFound, CodeNoQuotaAccount, "No quota account"},
	{flow.ErrPillarLocked, http.StatusConflict, CodePillarLocked, "Pillar cannot be changed"},
	{flow.ErrPrecondition, http.StatusConflict, CodeInvalidStep, "Operation not allowed at the current step"},
	{flow.ErrInvalidSelection, http.StatusBadRequest, CodeInvalidSelection, "Invalid selection"},
	{flow.ErrDraftNotFound, http.StatusNotFound, CodeDraftNotFound, "Booking draft not found"},
	{flow.ErrDraftConflict, http.StatusConflict, CodeDraftConflict, "Booking draft was changed by another request"},
	{flow.ErrForbidden, http.StatusForbidden, CodeForbidden, "Forbidden"},
	{queries.ErrForbidden, http.StatusForbidden, CodeForbidden, "Forbidden"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, CodeInvalidCursor, "Invalid cursor"},
	{commands.ErrPersistenceFailure, http.StatusServiceUnavailable, CodePersistenceFailure, "Storage temporarily unavailable"},
}

// Abort renders a use case error. Storage details never reach the client.
func Abort(c *gin.Context, err error) {
	for _, r := range rules {
		if errs.Is(err, r.target) {
			AbortWithError(c, r.status, err, r.message, Detail{Code: r.code, Fields: fieldsOf(err)})
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", Detail{Code: CodeInternal})
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, Detail{Code: CodeInvalidRequest})
}

func Unauthorized(c *gin.Context, err error) {
	AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", Detail{Code: CodeUnauthorized})
}

func fieldsOf(err error) map[string]any {
	var (
		noProvider *commands.NoProviderAvailableError
		slot       *commands.SlotUnavailableError
		quota      *commands.QuotaExhaustedError
		incomplete *commands.IncompleteDraftError
	)
	switch {
	case errs.As(err, &noProvider):
		return map[string]any{"pillar": noProvider.Pillar}
	case errs.As(err, &slot):
		return map[string]any{
			"specialist_id": slot.Slot.SpecialistID,
			"date":          slot.Slot.Date.String(),
			"start_time":    slot.Slot.Start.String(),
		}
	case errs.As(err, &quota):
		return map[string]any{"source": quota.Source, "remaining": quota.Remaining}
	case errs.As(err, &incomplete):
		return map[string]any{"missing": incomplete.Missing}
	}
	return nil
}
