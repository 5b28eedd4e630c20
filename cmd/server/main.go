package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anchorpq/integrity/internal/config"
	"github.com/anchorpq/integrity/internal/pqenvelope"
	"github.com/anchorpq/integrity/internal/transport"
	"github.com/anchorpq/integrity/internal/verify"
)

func main() {
	log.Println("[Server] Starting AnchorPQ verification server...")

	cfg := config.Load()

	keyPair, err := pqenvelope.Init(cfg.KEMParameterSet, cfg.KEMKeyFilePath)
	if err != nil {
		log.Fatalf("[Server] Failed to initialize KEM key pair: %v", err)
	}
	log.Printf("[Server] KEM key pair ready: parameterSet=%s keyId=%s", keyPair.ParameterSet, keyPair.KeyID)

	repo := verify.NewInMemoryRepository()
	verifyService := verify.NewService(repo)

	server := transport.NewServer(verifyService)
	router := server.NewRouter()

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("[Server] HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("[Server] Server forced to shutdown: %v", err)
	}

	log.Println("[Server] Server exited gracefully")
}
