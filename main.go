package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loan-eligibility-webhook/config"
	httpLayer "loan-eligibility-webhook/http"
	"loan-eligibility-webhook/repository"
	"loan-eligibility-webhook/service"
)

func main() {
	cfg := config.Load()

	checkRepo := repository.NewCheckRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		log.Printf("using redis verdict cache at %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	eligibilityService := service.NewEligibilityService(checkRepo, cache)

	webhookHandler := httpLayer.NewWebhookHandler(eligibilityService)
	healthHandler := httpLayer.NewHealthHandler()

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/webhook",
		rateLimiter.Middleware(http.HandlerFunc(webhookHandler.HandleWebhook)),
	)
	mux.Handle("/", http.HandlerFunc(healthHandler.Status))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 Webhook corriendo en http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
