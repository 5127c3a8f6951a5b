package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brushhq/paintdesk/internal/config"
	"github.com/brushhq/paintdesk/internal/database"
	"github.com/brushhq/paintdesk/internal/handlers"
	"github.com/brushhq/paintdesk/internal/models"
	"github.com/brushhq/paintdesk/internal/websocket"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (detects embedded vs external automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in the shutdown handler below

	// 3. Auto-migrate schema
	log.Println("synchronizing database schema...")
	err = db.AutoMigrate(
		&models.User{},

		// Business entities
		&models.Customer{},
		&models.Job{},
		&models.Worker{},
		&models.Attendance{},
		&models.Expense{},
		&models.InventoryItem{},
		&models.TravelLog{},
		&models.Note{},

		// Attachments
		&models.JobPhoto{},
		&models.WorkerDocument{},
		&models.CustomerPhoto{},

		// Backup bookkeeping
		&models.BackupLog{},
	)
	if err != nil {
		log.Printf("migration warning: %v", err)
	} else {
		log.Println("schema synchronized successfully")
	}

	// 4. Start the change-feed hub
	hub := websocket.NewHub()
	go hub.Run()

	// 5. Set up HTTP router
	router := handlers.NewRouter(db, cfg, hub)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Channel to listen for shutdown signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Start server in goroutine
	go func() {
		log.Printf("server starting on port %s (%s)", cfg.Port, cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("received signal: %v, shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Close database (this also stops embedded PostgreSQL)
	log.Println("closing database connection...")
	if err := db.Close(); err != nil {
		log.Printf("database close error: %v", err)
	}

	log.Println("shutdown complete")
}
