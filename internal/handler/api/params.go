package api

import (
	"care-booking/internal/domain/user"
	"care-booking/internal/handler/httperr"
	"care-booking/internal/handler/middleware"
	"care-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoPrincipal = errs.New("no authenticated principal")

func principal(c *gin.Context) (user.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.Unauthorized(c, errNoPrincipal)
	}
	return p, ok
}

func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
