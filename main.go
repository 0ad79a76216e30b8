// File: wanderly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wanderly/config"
	"wanderly/cron"
	"wanderly/database"
	bookingRepoPkg "wanderly/database/repository/booking"
	listingRepoPkg "wanderly/database/repository/listing"
	messageRepoPkg "wanderly/database/repository/message"
	notificationRepoPkg "wanderly/database/repository/notification"
	socialRepoPkg "wanderly/database/repository/social"
	userRepoPkg "wanderly/database/repository/user"
	"wanderly/handlers"
	"wanderly/middleware"
	"wanderly/routes"
	"wanderly/services/booking"
	"wanderly/services/feed"
	"wanderly/services/listing"
	"wanderly/services/messaging"
	"wanderly/services/notification"
	"wanderly/services/social"
	"wanderly/services/user"
	"wanderly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitFeedClient()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := feed.NewHub(utils.GetFeedClient(), logger)
	go hub.Run(ctx)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	socialRepo := socialRepoPkg.NewMongoSocialRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
		Logger:    logger,
	}

	listingService := &listing.DefaultListingService{
		Repo:   listingRepo,
		Logger: logger,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo:   notificationRepo,
		Feed:   hub,
		Logger: logger,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Listings: listingRepo,
		Feed:     hub,
		Logger:   logger,
	}

	socialService := &social.DefaultSocialService{
		Repo:   socialRepo,
		Users:  userRepo,
		Feed:   hub,
		Logger: logger,
	}

	messagingService := &messaging.DefaultMessagingService{
		Repo:   messageRepo,
		Feed:   hub,
		Logger: logger,
	}

	cron.InitCompletionWorker(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Users:         handlers.NewUserHandler(userService, logger),
		Listings:      handlers.NewListingHandler(listingService, logger),
		Bookings:      handlers.NewBookingHandler(bookingService, logger),
		Notifications: handlers.NewNotificationHandler(notificationService, logger),
		Social:        handlers.NewSocialHandler(socialService, logger),
		Messaging:     handlers.NewMessagingHandler(messagingService, logger),
	}

	auth := middleware.JWTAuthMiddleware(utils.GetAuthCacheClient())
	routes.RegisterRoutes(router, handlerBundle, auth)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
