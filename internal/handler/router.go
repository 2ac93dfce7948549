package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"care-booking/internal/domain/user"
	"care-booking/internal/handler/api"
	reqdto "care-booking/internal/handler/dto/request"
	"care-booking/internal/handler/middleware"
	"care-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Drafts   *api.BookingDraftHandler
	Bookings *api.BookingHandler
	Quota    *api.QuotaHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.RequestLog(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		// specialists read their bookings but never book
		bookers := authMiddleware.RequireRole(user.BookingRoles...)

		drafts := apiGroup.Group("/booking-drafts")
		drafts.Use(bookers)
		addRoutes(drafts, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Drafts.Start},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Drafts.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Drafts.Abandon},
			{Method: http.MethodPost, Path: "/:id/pillar", Handler: h.Drafts.SelectPillar},
			{Method: http.MethodPatch, Path: "/:id/details", Handler: h.Drafts.UpdateDetails},
			{Method: http.MethodPost, Path: "/:id/assisted", Handler: h.Drafts.ChooseAssisted},
			{Method: http.MethodPost, Path: "/:id/assessment", Handler: h.Drafts.CompleteAssessment},
			{Method: http.MethodPost, Path: "/:id/human", Handler: h.Drafts.ChooseHuman},
			{Method: http.MethodPost, Path: "/:id/provider/confirm", Handler: h.Drafts.ConfirmProvider},
			{Method: http.MethodPost, Path: "/:id/datetime", Handler: h.Drafts.SelectDateTime},
			{Method: http.MethodPost, Path: "/:id/back", Handler: h.Drafts.Back},
			{Method: http.MethodPost, Path: "/:id/commit", Handler: h.Drafts.Commit},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Bookings.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
			{Method: http.MethodPost, Path: "/:id/reschedule", Handler: h.Bookings.StartReschedule, Mw: []gin.HandlerFunc{bookers}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/quota", Handler: h.Quota.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
