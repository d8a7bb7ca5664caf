package main

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/tahmid-dev/formbuilder-go/internal/api/handlers"
	"github.com/tahmid-dev/formbuilder-go/internal/api/routes"
	"github.com/tahmid-dev/formbuilder-go/internal/application"
	"github.com/tahmid-dev/formbuilder-go/internal/config"
	"github.com/tahmid-dev/formbuilder-go/internal/db"
	"github.com/tahmid-dev/formbuilder-go/internal/logging"
	"github.com/tahmid-dev/formbuilder-go/internal/ratelimit"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
	"github.com/tahmid-dev/formbuilder-go/internal/storage"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg)

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	receipts, err := storage.NewReceiptStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize receipt storage: %v", err)
	}
	if receipts == nil {
		log.Info("MINIO_ENDPOINT not set, receipt uploads disabled")
	}

	var limiterStore ratelimit.Store
	if cfg.RedisAddr != "" {
		limiterStore = ratelimit.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		log.WithField("addr", cfg.RedisAddr).Info("Rate limiting backed by redis")
	} else {
		limiterStore = ratelimit.NewMemoryStore()
	}
	limiter := ratelimit.NewLimiter(limiterStore, cfg.RateLimitRequests, cfg.RateLimitWindow)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(logging.RequestLogger())

	repos := repository.NewRepositories(conn)
	services := application.New(repos, cfg)
	h := handlers.New(services, receipts, router)

	routes.Register(router, h, repos, limiter, cfg)

	addr := ":" + cfg.ServerPort
	log.WithField("addr", addr).Info("Starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
