package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application. It is built once at
// startup and passed into constructors; nothing mutates it afterwards.
type Config struct {
	// Server configuration
	ServerHost string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort string `envconfig:"SERVER_PORT" default:"5000"`

	// Database configuration
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"bhojanbuddy"`
	DBSSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`

	// Redis configuration (optional; rate limiting is skipped without it)
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// JWT configuration
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// Classifier collaborator
	ClassifierURL string `envconfig:"CLASSIFIER_URL" default:"http://localhost:8501/v1/classify"`

	// File layout
	UploadDir    string `envconfig:"UPLOAD_DIR" default:"uploads/food_images"`
	DataDir      string `envconfig:"DATA_DIR" default:"data"`
	LabelMapPath string `envconfig:"LABEL_MAP_PATH" default:"model/label_map.json"`
	NutritionDB  string `envconfig:"NUTRITION_DB_PATH" default:"model/nutrition_db.json"`
	FeedbackPath string `envconfig:"FEEDBACK_PATH" default:"model/user_feedback.json"`

	// Optional S3 image storage; local disk is used when unset
	S3Bucket  string `envconfig:"S3_BUCKET_NAME"`
	AWSRegion string `envconfig:"AWS_REGION"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
