package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"client-scheduler/internal/domain/user"
	"client-scheduler/internal/handler/api"
	"client-scheduler/internal/handler/middleware"
	"client-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	appointmentHandler *api.AppointmentHandler,
	customerHandler *api.CustomerHandler,
	lookupHandler *api.LookupHandler,
	reportHandler *api.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, appointmentHandler, customerHandler, lookupHandler, reportHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	appointmentHandler *api.AppointmentHandler,
	customerHandler *api.CustomerHandler,
	lookupHandler *api.LookupHandler,
	reportHandler *api.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireScheduler := authMiddleware.RequireRoleAtLeast(user.RoleScheduler)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(appointments, []route{
				{Method: http.MethodGet, Path: "", Handler: appointmentHandler.List},
				{Method: http.MethodGet, Path: "/upcoming", Handler: appointmentHandler.Upcoming},
				{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: appointmentHandler.Create, Mw: []gin.HandlerFunc{requireScheduler}},
				{Method: http.MethodPut, Path: "/:id", Handler: appointmentHandler.Update, Mw: []gin.HandlerFunc{requireScheduler}},
				{Method: http.MethodDelete, Path: "/:id", Handler: appointmentHandler.Delete, Mw: []gin.HandlerFunc{requireScheduler}},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "", Handler: customerHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: customerHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: customerHandler.Create, Mw: []gin.HandlerFunc{requireScheduler}},
				{Method: http.MethodPut, Path: "/:id", Handler: customerHandler.Update, Mw: []gin.HandlerFunc{requireScheduler}},
				{Method: http.MethodDelete, Path: "/:id", Handler: customerHandler.Delete, Mw: []gin.HandlerFunc{requireScheduler}},
			})
		}

		lookups := apiGroup.Group("")
		lookups.Use(authMiddleware.RequireAuth())
		{
			addRoutes(lookups, []route{
				{Method: http.MethodGet, Path: "/contacts", Handler: lookupHandler.ListContacts},
				{Method: http.MethodGet, Path: "/countries", Handler: lookupHandler.ListCountries},
				{Method: http.MethodGet, Path: "/countries/:id/divisions", Handler: lookupHandler.ListDivisions},
				{Method: http.MethodGet, Path: "/users", Handler: lookupHandler.ListUsers},
			})
		}

		reports := apiGroup.Group("/reports")
		reports.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/appointment-totals", Handler: reportHandler.AppointmentTotals},
				{Method: http.MethodGet, Path: "/customers-by-country", Handler: reportHandler.CustomersByCountry},
				{Method: http.MethodGet, Path: "/contacts/:id/schedule", Handler: reportHandler.ContactSchedule},
			})
		}
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
