package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"course-market-api/internal/client"
	"course-market-api/internal/config"
	"course-market-api/internal/handler"
	"course-market-api/internal/repository"
	"course-market-api/internal/server"
	"course-market-api/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	authService := service.NewAuthService(cfg.JWT, cfg.OTP, otpRepo, userRepo)
	accountService := service.NewAccountService(userRepo, profileRepo, notificationRepo)
	catalogService := service.NewCatalogService(categoryRepo, productRepo)
	cartService := service.NewCartService(cartRepo, productRepo, enrollmentRepo)
	checkoutService := service.NewCheckoutService(
		db,
		profileRepo,
		cartRepo,
		discountRepo,
		enrollmentRepo,
		orderRepo,
		paymentRepo,
		notificationRepo,
	)
	orderService := service.NewOrderService(orderRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	ticketService := service.NewTicketService(db, ticketRepo, notificationRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(accountService, orderService, enrollmentService, notificationService)
	cartHandler := handler.NewCartHandler(cartService, checkoutService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	ticketHandler := handler.NewTicketHandler(ticketService)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(authService, authHandler, userHandler, cartHandler, catalogHandler, ticketHandler)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
