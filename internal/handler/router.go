package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/internal/handler/api"
	"hotel-backoffice/internal/handler/middleware"
	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/ws"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Room         *api.RoomHandler
	Client       *api.ClientHandler
	Reservation  *api.ReservationHandler
	Contact      *api.ContactHandler
	Notification *api.NotificationHandler
	Sync         *api.SyncHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, hub *ws.Hub) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, hub)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, hub *ws.Hub) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})

			adminOnly := auth.Group("")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			})
		}

		// Public endpoints: availability lookup and contact form submission.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Reservation.CheckAvailability},
			{Method: http.MethodPost, Path: "/contacts", Handler: h.Contact.Submit},
		})

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Room.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			})
		}

		clients := apiGroup.Group("/clients")
		clients.Use(authMiddleware.RequireAuth())
		{
			addRoutes(clients, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Client.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Client.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Client.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Client.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Client.Delete, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Update},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Reservation.Confirm},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPost, Path: "/:id/export", Handler: h.Reservation.Export},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
			})
		}

		contacts := apiGroup.Group("/contacts")
		contacts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(contacts, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Contact.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Contact.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Contact.UpdateStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Contact.Delete, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
				{Method: http.MethodGet, Path: "/unread-count", Handler: h.Notification.UnreadCount},
				{Method: http.MethodPatch, Path: "/:id/read", Handler: h.Notification.MarkRead},
				{Method: http.MethodPost, Path: "/read-all", Handler: h.Notification.MarkAllRead},
			})
		}

		syncGroup := apiGroup.Group("/sync")
		syncGroup.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(syncGroup, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Sync.Trigger},
				{Method: http.MethodGet, Path: "/status", Handler: h.Sync.Status},
				{Method: http.MethodGet, Path: "/logs", Handler: h.Sync.ListLogs},
				{Method: http.MethodGet, Path: "/logs/:id", Handler: h.Sync.GetLog},
			})
		}
	}

	// Browsers cannot set Authorization headers on websocket upgrades, so
	// RequireAuth also accepts a token query parameter here.
	wsGroup := engine.Group("/ws")
	wsGroup.Use(authMiddleware.RequireAuth())
	wsGroup.GET("/events", func(c *gin.Context) {
		hub.Serve(c.Writer, c.Request)
	})
}

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
