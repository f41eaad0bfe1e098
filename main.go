// File: stellartours/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stellartours/config"
	"stellartours/database"
	accommodationRepo "stellartours/database/repository/accommodation"
	bookingRepo "stellartours/database/repository/booking"
	chatRepo "stellartours/database/repository/chat"
	userRepoPkg "stellartours/database/repository/user"
	"stellartours/handlers"
	"stellartours/routes"
	accommodationSvc "stellartours/services/accommodation"
	"stellartours/services/advisor"
	bookingSvc "stellartours/services/booking"
	userSvc "stellartours/services/user"
	"stellartours/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionClient()

	if err := database.SeedAccommodations(database.DB); err != nil {
		logger.Sugar().Fatalf("main: failed to seed accommodations: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewGormUserRepo()
	bookings := bookingRepo.NewGormBookingRepo()
	chats := chatRepo.NewGormChatRepo()
	accommodations := accommodationRepo.NewGormAccommodationRepo()

	// services.
	userService := &userSvc.DefaultUserService{Repo: userRepo}
	bookingService := &bookingSvc.DefaultBookingService{Repo: bookings}
	accommodationService := &accommodationSvc.DefaultAccommodationService{Repo: accommodations}

	gemini := advisor.NewGeminiGenerator(config.AppConfig.GeminiAPIKey)
	advisorService := advisor.NewDefaultAdvisorService(gemini, chats, bookingService)

	// session store.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour
	sessions := utils.NewRedisSessionStore(utils.GetSessionClient(), sessionTTL)

	// handlers.
	authHandler := handlers.NewAuthHandler(userService, sessions)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	accommodationHandler := handlers.NewAccommodationHandler(accommodationService)
	chatHandler := handlers.NewChatHandler(advisorService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessions,

		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,
		LogoutHandler:   authHandler.LogoutHandler,
		MeHandler:       authHandler.MeHandler,

		ListBookingsHandler:  bookingHandler.ListBookingsHandler,
		GetBookingHandler:    bookingHandler.GetBookingHandler,
		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		UpdateBookingHandler: bookingHandler.UpdateBookingHandler,
		DeleteBookingHandler: bookingHandler.DeleteBookingHandler,

		GetAccommodationsHandler: accommodationHandler.GetAccommodationsHandler,
		GetDestinationsHandler:   handlers.GetDestinationsHandler,
		GetPackagesHandler:       handlers.GetPackagesHandler,

		ChatMessageHandler:      chatHandler.ChatMessageHandler,
		GetChatHistoryHandler:   chatHandler.GetChatHistoryHandler,
		ClearChatHistoryHandler: chatHandler.ClearChatHistoryHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
