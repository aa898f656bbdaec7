package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bistro-boss-api/internal/auth"
	"bistro-boss-api/internal/handler"
	appmiddleware "bistro-boss-api/internal/middleware"
	"bistro-boss-api/internal/service"
)

type Server struct {
	echo           *echo.Echo
	verifyToken    echo.MiddlewareFunc
	verifyAdmin    echo.MiddlewareFunc
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	menuHandler    *handler.MenuHandler
	cartHandler    *handler.CartHandler
	paymentHandler *handler.PaymentHandler
	statsHandler   *handler.StatsHandler
}

func NewServer(
	tokenManager *auth.Manager,
	userService service.UserService,
	catalogService service.CatalogService,
	cartService service.CartService,
	paymentService service.PaymentService,
	checkoutService service.CheckoutService,
	analyticsService service.AnalyticsService,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		verifyToken:    appmiddleware.VerifyToken(tokenManager),
		verifyAdmin:    appmiddleware.VerifyAdmin(userService),
		authHandler:    handler.NewAuthHandler(tokenManager),
		userHandler:    handler.NewUserHandler(userService),
		menuHandler:    handler.NewMenuHandler(catalogService),
		cartHandler:    handler.NewCartHandler(cartService),
		paymentHandler: handler.NewPaymentHandler(paymentService, checkoutService),
		statsHandler:   handler.NewStatsHandler(analyticsService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "boss is sitting")
	})

	e.POST("/jwt", s.authHandler.IssueToken)

	// -------- users --------
	e.GET("/users", s.userHandler.ListUsers, s.verifyToken, s.verifyAdmin)
	e.GET("/users/admin/:email", s.userHandler.CheckAdmin, s.verifyToken)
	e.POST("/users", s.userHandler.Register)
	e.DELETE("/users/:id", s.userHandler.DeleteUser, s.verifyToken, s.verifyAdmin)
	e.PATCH("/users/admin/:id", s.userHandler.PromoteToAdmin, s.verifyToken, s.verifyAdmin)

	// -------- menu / reviews --------
	e.GET("/menu", s.menuHandler.ListMenu)
	e.GET("/menu/:id", s.menuHandler.GetMenuItem)
	e.POST("/menu", s.menuHandler.AddMenuItem, s.verifyToken, s.verifyAdmin)
	e.PATCH("/menu/:id", s.menuHandler.UpdateMenuItem, s.verifyToken, s.verifyAdmin)
	e.DELETE("/menu/:id", s.menuHandler.DeleteMenuItem, s.verifyToken, s.verifyAdmin)
	e.GET("/reviews", s.menuHandler.ListReviews)

	// -------- carts --------
	e.GET("/carts", s.cartHandler.ListCarts)
	e.POST("/carts", s.cartHandler.AddCartItem)
	e.DELETE("/cart/:id", s.cartHandler.DeleteCartItem)

	// -------- payments --------
	e.POST("/create-payment-intent", s.paymentHandler.CreatePaymentIntent)
	e.GET("/payments/:email", s.paymentHandler.ListPayments, s.verifyToken)
	e.POST("/payments", s.paymentHandler.Checkout)

	// -------- stats --------
	e.GET("/admin-stats", s.statsHandler.AdminStats, s.verifyToken, s.verifyAdmin)
	e.GET("/order-stats", s.statsHandler.OrderStats)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
