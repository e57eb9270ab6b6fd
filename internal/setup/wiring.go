package setup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/aggregator"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/config"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/database"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/strategies"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel      string
	Workers       int
	APIPort       string
	MaxInputBytes int
	RedisAddr     string
	RedisPassword string
	RequestStream string
	ResultStream  string
	ConsumerGroup string
	ConsumerName  string
	Database      database.Config
}

type Dependencies struct {
	Executor *executor.Executor
	Cases    *config.CasesConfig
	Store    *database.DB
	Logger   *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Workers:       getEnvInt("WORKERS", 5),
		APIPort:       getEnv("SUBSTRING_API_PORT", "18082"),
		MaxInputBytes: getEnvInt("MAX_INPUT_BYTES", 1<<20),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RequestStream: getEnv("REQUEST_STREAM", "substring-requests"),
		ResultStream:  getEnv("RESULT_STREAM", "substring-results"),
		ConsumerGroup: getEnv("CONSUMER_GROUP", "substring-group"),
		ConsumerName:  getEnv("HOSTNAME", "substring-worker"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "substring"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

// StoreEnabled reports whether a result database is configured.
func (c *Config) StoreEnabled() bool {
	return c.Database.Host != ""
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	cases, err := loadCases(logger)
	if err != nil {
		return nil, err
	}

	checkers, err := strategies.NewStrategyPool(logger).Build(cases.Strategies)
	if err != nil {
		return nil, fmt.Errorf("failed to build strategies: %w", err)
	}

	stageRunner := strategies.NewStageRunner(checkers)
	agg := aggregator.NewAggregator(logger)
	exec := executor.NewExecutor(stageRunner, agg, logger)

	deps := &Dependencies{
		Executor: exec,
		Cases:    cases,
		Logger:   logger,
	}

	if cfg.StoreEnabled() {
		store, err := database.New(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			store.Close()
			return nil, err
		}
		deps.Store = store
		logger.Info().Str("host", cfg.Database.Host).Msg("result store connected")
	}

	return deps, nil
}

// Close releases resources opened by Wire.
func (d *Dependencies) Close() {
	if d.Store != nil {
		d.Store.Close()
	}
}

func loadCases(logger *zerolog.Logger) (*config.CasesConfig, error) {
	cases, err := config.LoadCasesConfig()
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Err(err).Msg("cases file not found, using built-in cases")
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cases config: %w", err)
	}
	return cases, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		value = defaultValue
	}

	return value
}
