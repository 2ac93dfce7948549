package api

import (
	"net/http"

	reqdto "care-booking/internal/handler/dto/request"
	resdto "care-booking/internal/handler/dto/response"
	"care-booking/internal/handler/httperr"
	"care-booking/internal/usecase/flow"
	"care-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	flow flow.Service
	q    queries.BookingQueries
}

func NewBookingHandler(svc flow.Service, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{flow: svc, q: q}
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), p, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description Newest first, keyset paginated
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	views, next, err := h.q.ListByRequester(c.Request.Context(), p, p.ID(), &queries.Cursor{After: req.After}, req.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views, next))
}

// @Summary Start rescheduling
// @Description Open a draft at date selection for an existing booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 201 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/reschedule [post]
func (h *BookingHandler) StartReschedule(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	draft, err := h.flow.StartReschedule(c.Request.Context(), p, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDraft(draft))
}
