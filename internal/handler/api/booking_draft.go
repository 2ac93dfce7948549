package api

import (
	"net/http"

	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/user"
	reqdto "care-booking/internal/handler/dto/request"
	resdto "care-booking/internal/handler/dto/response"
	"care-booking/internal/handler/httperr"
	"care-booking/internal/usecase/flow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingDraftHandler struct {
	flow flow.Service
}

func NewBookingDraftHandler(svc flow.Service) *BookingDraftHandler {
	return &BookingDraftHandler{flow: svc}
}

type draftStep func(c *gin.Context, p user.Principal, id uuid.UUID) (*booking.Draft, error)

// step runs one flow operation on the draft named in the path.
func (h *BookingDraftHandler) step(c *gin.Context, run draftStep) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	draft, err := run(c, p, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(draft))
}

// @Summary Start booking draft
// @Description Start a new booking flow for the caller
// @Tags booking-drafts
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.DraftResponse
// @Failure 401 {object} httperr.Response
// @Router /booking-drafts [post]
func (h *BookingDraftHandler) Start(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	draft, err := h.flow.Start(c.Request.Context(), p)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDraft(draft))
}

// @Summary Get booking draft
// @Tags booking-drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /booking-drafts/{id} [get]
func (h *BookingDraftHandler) Get(c *gin.Context) {
	h.step(c, func(c *gin.Context, p user.Principal, id uuid.UUID) (*booking.Draft, error) {
		return h.flow.Get(c.Request.Context(), p, id)
	})
}

// @Summary Abandon booking draft
// @Tags booking-drafts
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-drafts/{id} [delete]
func (h *BookingDraftHandler) Abandon(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.flow.Abandon(c.Request.Context(), p, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Select pillar
// @Tags booking-drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.SelectPillarRequest true "Pillar"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-drafts/{id}/pillar [post]
func (h *BookingDraftHandler) SelectPillar(c *gin.Context) {
	var req reqdto.SelectPillarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	h.step(c, func(c *gin.Context, p user.Principal, id uuid.UUID) (*booking.Draft, error) {
		return h.flow.SelectPillar(c.Request.Context(), p, id, booking.Pillar(req.Pillar))
	})
}

// @Summary Update draft details
// @Description Patch topics, notes, modality or quota source
// @Tags booking-drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.UpdateDetailsRequest true "Details"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-drafts/{id}/details [patch]
func (h *BookingDraftHandler) UpdateDetails(c *gin.Context) {
	var req reqdto.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	h.step(c, func(c *gin.Context, p user.Principal, id uuid.UUID) (*booking.Draft, error) {
		return h.flow.UpdateDetails(c.Request.Context(), p, id, req.ToDetails())
	})
}

// @Summary Choose guided assessment
// @Tags booking-drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Router /booking-drafts/{id}/assisted [post]
func (h *BookingDraftHandler) ChooseAssisted(c *gin.Context) {
	h.step(c, func(c *gin.Context, p user.Principal, id uuid.UUID) (*booking.Draft, error) {
		return h.flow.ChooseAssisted(c.Request.Context(), p, id)
	})
}

// @Summary Complete guided assessment
// @Description Record the assessment outcome and assign a specialist
// @Tags booking-drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.CompleteAssessmentRequest true "Assessment result"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-drafts/{id}/assessment [post]
func (h *BookingDraftHandler) CompleteAssessment(c *gin.Context) {
	var req reqdto.CompleteAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	h.step(c, func(c *gin.Context, p user.Principal, id uuid.UUID) (*booking.Draft, error) {
		return h.flow.CompleteAssessment(c.Request.Context(), p, id, req.ToResult())
	})
}

// @Summary Choose a human specialist
// @Tags booking-drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Router /booking-drafts/{id}/human [post]
func (h *BookingDraftHandler) ChooseHuman(c *gin.Context) {
	h.step(c, func(c *gin.Context, p user.Principal, id uuid.UUID) (*booking.Draft, error) {
		return h.flow.ChooseHuman(c.Request.Context(), p, id)
	})
}

// @Summary Confirm assigned specialist
// @Tags booking-drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Router /booking-drafts/{id}/provider/confirm [post]
func (h *BookingDraftHandler) ConfirmProvider(c *gin.Context) {
	h.step(c, func(c *gin.Context, p user.Principal, id uuid.UUID) (*booking.Draft, error) {
		return h.flow.ConfirmProvider(c.Request.Context(), p, id)
	})
}

// @Summary Select date and time
// @Tags booking-drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.SelectDateTimeRequest true "Slot"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-drafts/{id}/datetime [post]
func (h *BookingDraftHandler) SelectDateTime(c *gin.Context) {
	var req reqdto.SelectDateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	date, start, err := req.Parse()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	h.step(c, func(c *gin.Context, p user.Principal, id uuid.UUID) (*booking.Draft, error) {
		return h.flow.SelectDateTime(c.Request.Context(), p, id, date, start)
	})
}

// @Summary Go back one step
// @Tags booking-drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Router /booking-drafts/{id}/back [post]
func (h *BookingDraftHandler) Back(c *gin.Context) {
	h.step(c, func(c *gin.Context, p user.Principal, id uuid.UUID) (*booking.Draft, error) {
		return h.flow.Back(c.Request.Context(), p, id)
	})
}

// @Summary Commit booking
// @Description Persist the booking (or the reschedule) described by the draft
// @Tags booking-drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 201 {object} resdto.BookingResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /booking-drafts/{id}/commit [post]
func (h *BookingDraftHandler) Commit(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	b, err := h.flow.Commit(c.Request.Context(), p, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}
