package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grow-therapy-backend/config"
	_ "grow-therapy-backend/docs" // Important for Swagger
	v1 "grow-therapy-backend/internal/delivery/http/v1"
	"grow-therapy-backend/internal/usecase"
	"grow-therapy-backend/pkg/email"
	"grow-therapy-backend/pkg/logger"
	"grow-therapy-backend/pkg/ratelimit"
	"grow-therapy-backend/pkg/redis"
	"grow-therapy-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// @title           Grow Your Therapy Contact API
// @version         1.0
// @description     Backend for the Grow Your Therapy marketing site contact form.
// @BasePath        /api
func main() {
	// 1. Load Config (missing email credentials are fatal here)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact API", "port", cfg.Port, "environment", cfg.Env)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory counters", "error", err)
	}
	defer redis.Close()

	// 4. Setup Mailer with best-effort connectivity check. A failed check is
	// logged but does not stop the server; sends will simply fail later.
	mailer := email.NewSMTPMailer(cfg)
	verifyCtx, cancelVerify := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mailer.Verify(verifyCtx); err != nil {
		logger.Log.Warn("Email service connection check failed", "error", err)
	} else {
		logger.Log.Info("Email service is ready to send messages")
	}
	cancelVerify()

	// 5. Setup Rate Limiters
	memoryLimiter := ratelimit.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	var limiter ratelimit.Limiter = memoryLimiter
	var fallback ratelimit.Limiter
	if client := redis.Client(); client != nil {
		limiter = ratelimit.NewRedisLimiter(client, cfg.RateLimitMax, cfg.RateLimitWindow, "rl:contact:")
		fallback = memoryLimiter
	}

	// 6. Setup Validation + UseCase
	validate := validator.New()
	validation.RegisterValidators(validate)
	contactUC := usecase.NewContactUsecase(mailer, cfg.CompanyEmail)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:       contactUC,
		Limiter:         limiter,
		FallbackLimiter: fallback,
		Validate:        validate,
		Config:          cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
