package api

import (
	"net/http"

	resdto "care-booking/internal/handler/dto/response"
	"care-booking/internal/handler/httperr"
	"care-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuotaHandler struct {
	q queries.QuotaQueries
}

func NewQuotaHandler(q queries.QuotaQueries) *QuotaHandler {
	return &QuotaHandler{q: q}
}

// @Summary Remaining session quota
// @Description Company and personal balance with low-balance flags
// @Tags quota
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.QuotaResponse
// @Failure 404 {object} httperr.Response
// @Router /quota [get]
func (h *QuotaHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), p)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuotaView(view))
}
