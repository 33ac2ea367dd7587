package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"nutrifind/config"
	"nutrifind/controllers"
	"nutrifind/routes"
	"nutrifind/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load error", zap.Error(err))
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	fdc := services.NewFDCService(cfg, logger)

	// Photo search needs AWS credentials; without a region it stays off.
	var detector services.LabelDetector
	if cfg.AWSRegion != "" {
		rek, err := services.NewRekognitionService(context.Background(), cfg)
		if err != nil {
			logger.Warn("rekognition unavailable, photo search disabled", zap.Error(err))
		} else {
			detector = rek
		}
	}

	foods := services.NewFoodService(fdc, detector)
	recordsSvc := services.NewRecordService(db, logger)
	authSvc := services.NewAuthService(db, []byte(cfg.JWTSecret))
	hub := services.NewRealtimeHub()

	r := routes.SetupRouter(routes.Controllers{
		Auth:    controllers.NewAuthController(authSvc),
		Foods:   controllers.NewFoodController(foods),
		Records: controllers.NewRecordController(recordsSvc, hub),
		Search:  controllers.NewSearchWSController(fdc, hub, logger, cfg.SearchDebounce()),
		Users:   controllers.NewUserController(services.NewUserService(db)),
	}, []byte(cfg.JWTSecret))

	logger.Info("listening", zap.String("port", cfg.HTTPPort))
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
