package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/routes"
	"github.com/BruksfildServices01/barbershop-booking/internal/state"
	"github.com/BruksfildServices01/barbershop-booking/internal/storage"
	"github.com/BruksfildServices01/barbershop-booking/internal/store"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

func main() {

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := newStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}

	manager, err := state.NewManager(ctx, st, logger, timezone.NowIn(cfg.ShopTimezone))
	if err != nil {
		logger.Fatal("failed to load snapshot", zap.Error(err))
	}

	// Upload de fotos é opcional; sem bucket configurado o painel segue
	// aceitando URLs diretas.
	var images *storage.ImageStorage
	if cfg.HasS3() {
		images = storage.NewImageStorage(cfg.S3, logger)
	} else {
		logger.Warn("s3 not configured, image upload disabled")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, manager, images, cfg, logger)

	logger.Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.String("store", cfg.StoreDriver),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	if cfg.StoreDriver == "postgres" {
		return store.NewPostgresStore(cfg.Postgres)
	}
	return store.NewRedisStore(ctx, cfg.Redis, logger)
}
