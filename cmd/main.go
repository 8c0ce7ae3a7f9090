package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bloglist/db"
	"bloglist/internal/blog"
	"bloglist/internal/config"
	"bloglist/internal/contact"
	"bloglist/internal/user"
	"bloglist/internal/web"
	"bloglist/middleware"
)

var (
	infoLogger  = log.New(os.Stdout, "", log.LstdFlags)
	errorLogger = log.New(os.Stderr, "", log.LstdFlags)
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		errorLogger.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		errorLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			errorLogger.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()
	infoLogger.Println("Connected to MongoDB")

	if err := db.EnsureIndexes(context.Background(), client, cfg.DatabaseName); err != nil {
		errorLogger.Fatalf("Failed to ensure indexes: %v", err)
	}

	// Create repositories
	repoFactory := db.NewRepositoryFactory(client, cfg.DatabaseName)
	blogRepo := repoFactory.NewBlogRepository()
	userRepo := repoFactory.NewUserRepository()
	contactRepo := repoFactory.NewContactRepository()

	// Initialize services with repositories
	blogService := blog.NewBlogService(blogRepo)
	userService := user.NewUserService(userRepo)
	contactService := contact.NewContactService(contactRepo)

	blogHandlers := blog.NewBlogHandlers(blogService)
	userHandlers := user.NewUserHandlers(userService)
	contactHandlers := contact.NewContactHandlers(contactService)

	router := web.SetupRoutes(blogHandlers, userHandlers, contactHandlers)
	handler := middleware.SetupCORS()(middleware.LoggingMiddleware(router))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		infoLogger.Printf("Server is starting on port %s...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errorLogger.Fatalf("Server ListenAndServe error: %v", err)
		}
	}()

	waitForShutdown(server)
}

func waitForShutdown(server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	sig := <-stop
	infoLogger.Printf("Received shutdown signal: %v", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	infoLogger.Println("Shutting down the server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		errorLogger.Printf("Server Shutdown error: %v", err)
		return
	}
	infoLogger.Println("Server stopped")
}
