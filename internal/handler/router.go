package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"activity-booking/internal/domain/auth"
	"activity-booking/internal/handler/api"
	"activity-booking/internal/handler/middleware"
	"activity-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Cart         *api.CartHandler
	Voucher      *api.VoucherHandler
	Order        *api.OrderHandler
	Payment      *api.PaymentHandler
	Resource     *api.ResourceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("")
		public.Use(limiter.Middleware(), authMiddleware.RequireAPIKey())
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/availability/:kind/:id", Handler: h.Availability.Check},
			{Method: http.MethodPost, Path: "/availability/reserve", Handler: h.Availability.Reserve},
			{Method: http.MethodDelete, Path: "/availability/release", Handler: h.Availability.Release},
			{Method: http.MethodPost, Path: "/availability/extend", Handler: h.Availability.Extend},

			{Method: http.MethodGet, Path: "/cart/:sessionId", Handler: h.Cart.Get},
			{Method: http.MethodPost, Path: "/cart/items", Handler: h.Cart.AddItem},
			{Method: http.MethodDelete, Path: "/cart/:sessionId/items/:itemId", Handler: h.Cart.RemoveItem},

			{Method: http.MethodPost, Path: "/vouchers/validate", Handler: h.Voucher.Validate},

			{Method: http.MethodPost, Path: "/orders", Handler: h.Order.Create},
			{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Order.Get},
		})

		// authenticated by the Stripe signature
		apiGroup.POST("/payments/stripe/webhook", h.Payment.StripeWebhook)

		admin := apiGroup.Group("/admin")
		{
			monitor := authMiddleware.RequireRole(auth.RoleMonitor)
			operator := authMiddleware.RequireRole(auth.RoleAdmin)
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/holds/sweep", Handler: h.Availability.Sweep, Mw: []gin.HandlerFunc{monitor}},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Order.Get, Mw: []gin.HandlerFunc{monitor}},
				{Method: http.MethodPost, Path: "/orders/:id/cancel", Handler: h.Order.Cancel, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/orders/:id/refund", Handler: h.Order.Refund, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/orders/:id/confirm", Handler: h.Order.Confirm, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/orders/:id/payments/manual", Handler: h.Order.RecordManualPayment, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/payments/callback", Handler: h.Payment.Callback, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/resources", Handler: h.Resource.Create, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPatch, Path: "/resources/:id", Handler: h.Resource.Update, Mw: []gin.HandlerFunc{operator}},
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
