package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/bhojanbuddy/backend/config"
	"github.com/bhojanbuddy/backend/internal/database"
	"github.com/bhojanbuddy/backend/internal/server"
	"github.com/bhojanbuddy/backend/internal/service"
)

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg)

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	if redisClient == nil {
		logger.Warn().Msg("redis not configured, rate limiting disabled")
	}

	labels, err := service.LoadLabelMap(cfg.LabelMapPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load label map")
	}
	catalog, err := service.LoadNutritionCatalog(cfg.NutritionDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load nutrition catalog")
	}

	foodImages, uploads, err := newImageStores(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize image storage")
	}

	srv := server.New(cfg, server.Deps{
		DB:         db,
		Redis:      redisClient,
		Classifier: service.NewHTTPClassifier(cfg.ClassifierURL, labels),
		Catalog:    catalog,
		FoodImages: foodImages,
		Uploads:    uploads,
		Feedback:   service.NewFeedbackLog(cfg.FeedbackPath),
		Logger:     logger,
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("server stopped")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).
		With().Timestamp().Str("service", "bhojanbuddy-api").Logger().Level(level)
}

// newImageStores builds the food-image and prediction-upload stores. S3 is
// used for food images when a bucket is configured; prediction uploads stay
// on local disk where the retraining pipeline expects them.
func newImageStores(cfg *config.Config, logger zerolog.Logger) (service.ImageStore, service.ImageStore, error) {
	uploads, err := service.NewLocalImageStore(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}

	s3cfg, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		return nil, nil, err
	}
	if s3cfg != nil {
		logger.Info().Str("bucket", s3cfg.BucketName).Msg("using S3 image storage")
		return service.NewS3ImageStore(s3cfg, "food_images"), uploads, nil
	}

	foodImages, err := service.NewLocalImageStore(cfg.UploadDir)
	if err != nil {
		return nil, nil, err
	}
	return foodImages, uploads, nil
}
