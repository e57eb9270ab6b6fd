package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
	red "github.com/povarna/generative-ai-agents/substring-agent/internal/stream/redis"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	data := flag.String("d", "", "Inline JSON AnalysisRequest")
	stream := flag.String("stream", "", "Stream name (defaults to REQUEST_STREAM)")
	flag.Parse()

	if *data == "" {
		fmt.Fprintln(os.Stderr, `Usage: producer -d '{"case_id":"1","input":"abcabcbb","expected":3}'`)
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(*data, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(data, stream string) error {
	_ = godotenv.Load()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	if stream == "" {
		stream = os.Getenv("REQUEST_STREAM")
	}
	if stream == "" {
		stream = "substring-requests"
	}

	var req models.AnalysisRequest
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	values, err := red.EncodeRequest(req)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 3)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: values,
	}).Result()
	if err != nil {
		return err
	}

	log.Info().Str("stream", stream).Str("id", id).Str("case_id", req.CaseID).Msg("Published successfully!")
	return nil
}
