package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benittaafriyie-svg/acity-eats/internal/auth"
	"github.com/benittaafriyie-svg/acity-eats/internal/config"
	"github.com/benittaafriyie-svg/acity-eats/internal/db"
	"github.com/benittaafriyie-svg/acity-eats/internal/events"
	"github.com/benittaafriyie-svg/acity-eats/internal/httpapi"
	"github.com/benittaafriyie-svg/acity-eats/internal/menu"
	"github.com/benittaafriyie-svg/acity-eats/internal/order"
	"github.com/benittaafriyie-svg/acity-eats/internal/user"
)

func main() {
	cfg := config.LoadServer()

	logger := log.New(os.Stdout, "[cafeteriad] ", log.LstdFlags|log.Lshortfile)

	if err := db.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Fatalf("run migrations: %v", err)
	}

	database := db.MustOpen(cfg.DatabaseURL)
	defer database.Close()

	var publisher httpapi.OrderEventsPublisher = events.NopPublisher{}
	if cfg.RabbitURL != "" {
		conn := events.MustDial(cfg.RabbitURL)
		defer conn.Close()

		p, err := events.NewPublisher(conn)
		if err != nil {
			logger.Fatalf("create event publisher: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Printf("RABBITMQ_URL not set, order events disabled")
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Menu:      menu.NewRepository(database),
		Orders:    order.NewRepository(database),
		Users:     user.NewRepository(database),
		Tokens:    auth.NewTokens(cfg.JWTSecret),
		Publisher: publisher,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("cafeteriad listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
}
