package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/washpoint/carwash-api/internal/auth"
	"github.com/washpoint/carwash-api/internal/config"
	dbpkg "github.com/washpoint/carwash-api/internal/db"
	infraRepo "github.com/washpoint/carwash-api/internal/infra/repository"
	"github.com/washpoint/carwash-api/internal/logging"
	"github.com/washpoint/carwash-api/internal/routes"
	"github.com/washpoint/carwash-api/internal/storage"
)

func main() {

	cfg := config.Load()

	log := logging.New(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
	})

	blacklist := auth.NewRedisBlacklist(redisClient)
	resolver := auth.NewResolver(infraRepo.NewPrincipalGormRepository(db))
	tokens := auth.NewTokenService(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTTLMinutes)*time.Minute,
		time.Duration(cfg.RefreshTTLDays)*24*time.Hour,
		blacklist,
		resolver,
	)

	store := storage.NewS3Store(cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, tokens, resolver, store)

	log.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
