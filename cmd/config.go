package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"meddelivery/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort      = "8080"
	defaultJWTTTL        = 24 * time.Hour
	defaultOutboxBatch   = 100
	defaultTrackInterval = 10 * time.Second
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	RabbitMQURL      string
	RabbitMQExchange string
	OutboxBatchSize  int

	RedisAddr     string
	BackendURL    string
	TrackInterval time.Duration
}

// LoadConfig reads the environment after loading envFile into it. A missing
// envFile is not an error; variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:         getEnv("HTTP_PORT", defaultHTTPPort),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        getEnv("DB_SSLMODE", "disable"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		RabbitMQURL:      os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange: os.Getenv("RABBITMQ_EXCHANGE"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		BackendURL:       getEnv("BACKEND_URL", "http://localhost:"+defaultHTTPPort),
	}

	var err error
	cfg.JWTTTL, err = getDuration("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return Config{}, err
	}
	cfg.TrackInterval, err = getDuration("TRACK_INTERVAL", defaultTrackInterval)
	if err != nil {
		return Config{}, err
	}
	cfg.OutboxBatchSize, err = getInt("OUTBOX_BATCH_SIZE", defaultOutboxBatch)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ValidateServer checks what the backend binary cannot start without.
func (c Config) ValidateServer() error {
	return errors.Join(
		required("DB_USER", c.DBUser),
		required("DB_NAME", c.DBName),
		required("JWT_SECRET", c.JWTSecret),
		required("RABBITMQ_URL", c.RabbitMQURL),
	)
}

// PostgresDSN is understood by both lib/pq and the gorm postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return n, nil
}

func required(key, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(key)
	}
	return nil
}
