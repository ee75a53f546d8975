package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/remix-pengkefei/ai-training-admin/internal/backend"
	"github.com/remix-pengkefei/ai-training-admin/internal/cache"
	"github.com/remix-pengkefei/ai-training-admin/internal/config"
	"github.com/remix-pengkefei/ai-training-admin/internal/service"
	"github.com/remix-pengkefei/ai-training-admin/internal/session"
	"github.com/remix-pengkefei/ai-training-admin/internal/transport/rest"
)

// @title AI Training Admin API
// @version 1.0
// @description Admin gateway for the AI training event console
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env")
	}

	cfg := config.Load()
	log.Printf("Backend base URL: %s", cfg.BackendBaseURL)

	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour

	// Session store: Redis when configured, in-memory otherwise so the
	// service still runs on a laptop without infrastructure.
	var store session.Store
	if cfg.RedisURI != "" {
		redisAddr := strings.TrimPrefix(cfg.RedisURI, "redis://")

		rdb := redis.NewClient(&redis.Options{
			Addr: redisAddr,
		})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis:", err)
		}
		log.Println("Connected to Redis")
		store = cache.NewRedisStore(rdb, ttl)
	} else {
		log.Println("Warning: REDIS_URI not set, sessions are in-memory only")
		store = session.NewMemoryStore()
	}

	guard := session.NewGuard(store, nil, ttl)

	// Backend client and services
	api := backend.NewClient(cfg.BackendBaseURL)
	authSvc := service.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret, guard)
	eventSvc := service.NewEventService(api)

	// Create router with container
	container := &rest.Container{
		AuthService:  authSvc,
		EventService: eventSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Printf("Admin auth: username=%s", cfg.AdminUsername)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/auth/logout")
		log.Println("  GET/POST /v1/events")
		log.Println("  GET/PUT/DELETE /v1/events/{id}")
		log.Println("  GET  /v1/events/{id}/registrations")
		log.Println("  GET  /v1/events/{id}/registrations/export")
		log.Println("  POST /v1/upload")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
