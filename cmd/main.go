package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vasu1712/spring-playground/internal/backend"
	"github.com/Vasu1712/spring-playground/internal/config"
	"github.com/Vasu1712/spring-playground/internal/server"
	"github.com/Vasu1712/spring-playground/internal/ws"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[Server] Invalid configuration: %v", err)
	}

	client := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout)
	hub := ws.NewHub()
	go hub.Run()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(client, hub, cfg.AllowedOrigin),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[Server] Proxying %s to backend %s", cfg.Addr, cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[Server] %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[Server] Shutdown: %v", err)
	}
	log.Println("[Server] Stopped")
}
