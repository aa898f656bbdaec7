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

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"bistro-boss-api/internal/auth"
	"bistro-boss-api/internal/client"
	"bistro-boss-api/internal/config"
	"bistro-boss-api/internal/repository"
	"bistro-boss-api/internal/server"
	"bistro-boss-api/internal/service"
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

	db := client.InitSqliteClient(cfg.DatabasePath)
	stripeClient := client.NewStripeClient(&cfg.Stripe)
	mailerClient := client.NewMailgunClient(&cfg.Mailgun)
	tokenManager := auth.NewManager(&cfg.JWT)

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	cartRepo := repository.NewCartRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(menuRepo, reviewRepo)
	cartService := service.NewCartService(cartRepo)
	paymentService := service.NewPaymentService(stripeClient, paymentRepo, cfg.Stripe.Currency)
	checkoutService := service.NewCheckoutService(paymentRepo, cartRepo, mailerClient, cfg.Mailgun.Recipient)
	analyticsService := service.NewAnalyticsService(userRepo, menuRepo, paymentRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(
		tokenManager,
		userService,
		catalogService,
		cartService,
		paymentService,
		checkoutService,
		analyticsService,
	)

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
