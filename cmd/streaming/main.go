package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/stream"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg := setup.LoadConfig()

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.NewConsole(cfg.LogLevel)
	lg := log.Logger

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &lg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer deps.Close()

	streamCfg := &stream.StreamConfig{
		Provider: "redis",
		RedisConfig: redis.NewRedisStreamConfig(
			cfg.RedisAddr,
			cfg.RedisPassword,
			cfg.RequestStream,
			cfg.ResultStream,
			cfg.ConsumerGroup,
			cfg.ConsumerName,
		),
	}

	var store redis.ResultStore
	if deps.Store != nil {
		store = deps.Store
	}

	consumer, err := stream.NewStreamConsumer(ctx, streamCfg, deps.Executor, store, &lg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create consumer")
		deps.Close()
		os.Exit(1)
	}

	if err := consumer.Setup(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to setup consumer")
		consumer.Stop()
		deps.Close()
		os.Exit(1)
	}

	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			lg.Error().Err(err).Msg("Consumer stopped with error")
			cancel()
		}
	}()

	<-ctx.Done()
	lg.Info().Msg("Shutting down...")

	if err := consumer.Stop(); err != nil {
		lg.Warn().Err(err).Msg("Failed to close consumer")
	}
	log.Info().Msg("Substring worker stopped")
}
