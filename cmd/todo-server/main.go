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

	"todo-service/config"
	"todo-service/middleware/throttle"
	"todo-service/todos"
	"todo-service/todos/application"
	"todo-service/todos/domain"
	"todo-service/todos/infra"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	var repo domain.Repository
	switch cfg.Backend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_, err := rdb.Ping(pingCtx).Result()
		cancel()
		if err != nil {
			log.Fatalf("redis ping error: %v", err)
		}

		repo = infra.NewRedisRepository(rdb, infra.WithKey(cfg.RedisKey))
	default:
		repo = infra.NewMemoryRepository()
	}

	policy := domain.DefaultPolicy()
	if cfg.MaxTodos > 0 {
		policy = domain.Policy{Max: cfg.MaxTodos}
	}

	svc := application.Service{Repo: repo, Policy: policy}

	h := todos.NewHandler(svc)
	if cfg.RateEnabled {
		h = throttle.Middleware(throttle.Options{
			RPS:   cfg.RateRPS,
			Burst: cfg.RateBurst,
		})(h)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("todo server listening on %s", cfg.ListenAddr)
	log.Printf("backend=%s maxTodos=%d", cfg.Backend, policy.Max)
	log.Printf("rate: enabled=%v rps=%.3f burst=%d", cfg.RateEnabled, cfg.RateRPS, cfg.RateBurst)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
