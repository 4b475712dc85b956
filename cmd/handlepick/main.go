package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dimitrije/handlepick/internal/config"
	"github.com/dimitrije/handlepick/internal/database"
	"github.com/dimitrije/handlepick/internal/handlers"
	"github.com/dimitrije/handlepick/internal/logging"
	"github.com/dimitrije/handlepick/internal/oauth"
	"github.com/dimitrije/handlepick/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateServer(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logCloser := logging.Setup(cfg.LogFile)
	defer logCloser.Close()

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DatabaseURL, cfg.DBConnectAttempts)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	sessionService := services.NewSessionService(cfg.SessionSecret, cfg.SessionExpiry)
	userService := services.NewUserService(db)
	pickService := services.NewPickService(db)
	credentialService := services.NewCredentialService(cfg.Admin)

	var provider oauth.Provider
	if cfg.Google.ClientID != "" {
		provider = oauth.NewGoogleProvider(cfg.Google)
	} else {
		log.Println("GOOGLE_CLIENT_ID not set, Google sign-in disabled")
	}
	if cfg.Admin.Email == "" {
		log.Println("ADMIN_EMAIL not set, only the static admin login can reach admin endpoints")
	}
	if !credentialService.Configured() {
		log.Println("Static admin credentials not set, simple-login will reject every attempt")
	}

	srv := &server{
		cfg:      cfg,
		sessions: sessionService,
		auth:     handlers.NewAuthHandler(provider, sessionService, cfg.Admin.Email, cfg.FrontendURL, cfg.IsProduction()),
		user:     handlers.NewUserHandler(userService, cfg.StoreTimeout, !cfg.IsProduction()),
		pick:     handlers.NewPickHandler(pickService, cfg.StoreTimeout),
		admin:    handlers.NewAdminHandler(credentialService, cfg.IsProduction()),
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
