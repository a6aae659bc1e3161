package server

import (
	"course-market-api/internal/handler"
	appmiddleware "course-market-api/internal/middleware"
	"course-market-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	authMiddleware echo.MiddlewareFunc
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	cartHandler    *handler.CartHandler
	catalogHandler *handler.CatalogHandler
	ticketHandler  *handler.TicketHandler
}

func NewServer(
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	cartHandler *handler.CartHandler,
	catalogHandler *handler.CatalogHandler,
	ticketHandler *handler.TicketHandler,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		authMiddleware: appmiddleware.Auth(authService),
		authHandler:    authHandler,
		userHandler:    userHandler,
		cartHandler:    cartHandler,
		catalogHandler: catalogHandler,
		ticketHandler:  ticketHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- catalog --------
	products := api.Group("/products")
	products.GET("/categories", s.catalogHandler.Categories)
	products.GET("/products", s.catalogHandler.Products)
	products.GET("/products/:id", s.catalogHandler.Product)

	// -------- users --------
	users := api.Group("/users")
	users.POST("/send-otp", s.authHandler.SendOTP)
	users.POST("/verify-otp", s.authHandler.VerifyOTP)

	me := users.Group("", s.authMiddleware)
	me.GET("/me", s.userHandler.Me)
	me.GET("/profile", s.userHandler.GetProfile)
	me.PUT("/profile", s.userHandler.UpdateProfile)
	me.GET("/cart", s.cartHandler.View)
	me.POST("/cart/add", s.cartHandler.Add)
	me.POST("/cart/remove", s.cartHandler.Remove)
	me.POST("/cart/checkout", s.cartHandler.Checkout)
	me.GET("/orders", s.userHandler.Orders)
	me.GET("/my-courses", s.userHandler.MyCourses)
	me.GET("/notifications", s.userHandler.Notifications)
	me.POST("/notifications/:id/read", s.userHandler.MarkNotificationRead)

	// -------- support --------
	support := api.Group("/support", s.authMiddleware)
	support.POST("/tickets", s.ticketHandler.Create)
	support.GET("/tickets", s.ticketHandler.List)
	support.GET("/tickets/:id", s.ticketHandler.Get)
	support.POST("/tickets/:id/messages", s.ticketHandler.AddMessage)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
