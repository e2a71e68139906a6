package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"ezrent/internal/domain/user"
	"ezrent/internal/handler/api"
	"ezrent/internal/handler/middleware"
	"ezrent/internal/pkg/config"
	"ezrent/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Config         config.Config
	Logger         *middleware.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	AuthMiddleware *middleware.AuthMiddleware

	Auth          *api.AuthHandler
	Items         *api.ItemHandler
	Bookings      *api.BookingHandler
	History       *api.HistoryHandler
	Notifications *api.NotificationHandler
	Messages      *api.MessageHandler
	Uploads       *api.UploadHandler
}

func NewRouter(engine *gin.Engine, p RouterParams) {
	setupMiddleware(engine, p)
	setupRoutes(engine, p)
}

func setupMiddleware(engine *gin.Engine, p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	engine.Use(p.Logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(p.Metrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, p RouterParams) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := p.AuthMiddleware.RequireAuth()
	ownerOnly := p.AuthMiddleware.RequireRole(user.RoleOwner)
	customerOnly := p.AuthMiddleware.RequireRole(user.RoleCustomer)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: p.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
				{Method: http.MethodPut, Path: "/password", Handler: p.Auth.ChangePassword},
			})
		}

		items := apiGroup.Group("/items")
		addRoutes(items, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Items.List},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Items.Get},
			{Method: http.MethodPost, Path: "", Handler: p.Items.Create, Mw: []gin.HandlerFunc{requireAuth, ownerOnly}},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Bookings.Create, Mw: []gin.HandlerFunc{customerOnly}},
			{Method: http.MethodGet, Path: "", Handler: p.Bookings.List},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Bookings.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: p.Bookings.UpdateStatus},
		})

		history := apiGroup.Group("/history")
		history.Use(requireAuth)
		addRoutes(history, []route{
			{Method: http.MethodGet, Path: "/:customerId", Handler: p.History.ByCustomer},
			{Method: http.MethodGet, Path: "/owner/:ownerId", Handler: p.History.ByOwner},
		})

		notifications := apiGroup.Group("/notifications")
		notifications.Use(requireAuth)
		addRoutes(notifications, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Notifications.List},
			{Method: http.MethodGet, Path: "/unread-count", Handler: p.Notifications.UnreadCount},
			{Method: http.MethodPatch, Path: "/:id/read", Handler: p.Notifications.MarkRead},
		})

		messages := apiGroup.Group("/messages")
		messages.Use(requireAuth)
		addRoutes(messages, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Messages.Send},
			{Method: http.MethodGet, Path: "/:peerId", Handler: p.Messages.Conversation},
		})

		uploads := apiGroup.Group("/uploads")
		uploads.Use(requireAuth)
		addRoutes(uploads, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Uploads.Upload},
			{Method: http.MethodDelete, Path: "/:filename", Handler: p.Uploads.Delete},
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
