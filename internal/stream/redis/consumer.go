package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/substring-agent/internal/batch"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	payloadField = "payload"

	// DefaultRetryInterval is how often pending messages are re-read.
	DefaultRetryInterval = 30 * time.Second
)

// streamClient is the subset of *redis.Client the consumer uses.
type streamClient interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
	Close() error
}

// ResultStore persists results computed by the consumer. It is optional.
type ResultStore interface {
	SaveResult(ctx context.Context, result models.AnalysisResult) error
}

type Consumer struct {
	client        streamClient
	stream        string
	resultStream  string
	groupID       string
	consumerName  string
	retryInterval time.Duration
	executor      batch.Executor
	store         ResultStore
	logger        *zerolog.Logger
}

// NewConsumer builds a consumer. store may be nil.
func NewConsumer(client streamClient, cfg *RedisStreamConfig, exec batch.Executor, store ResultStore, logger *zerolog.Logger) *Consumer {
	retryInterval := cfg.RetryInterval
	if retryInterval <= 0 {
		retryInterval = DefaultRetryInterval
	}

	return &Consumer{
		client:        client,
		stream:        cfg.Stream,
		resultStream:  cfg.ResultStream,
		groupID:       cfg.Group,
		consumerName:  cfg.ConsumerName,
		retryInterval: retryInterval,
		executor:      exec,
		store:         store,
		logger:        logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("result_stream", c.resultStream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	// Pending entries left by a previous run are retried first.
	nextRetry := time.Now()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if !time.Now().Before(nextRetry) {
			c.retryPending(ctx)
			nextRetry = time.Now().Add(c.retryInterval)
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    10,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err()
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, stream := range msgs {
			for _, msg := range stream.Messages {
				c.process(ctx, msg)
			}
		}
	}
}

// retryPending re-processes every entry delivered to this consumer but not yet
// acknowledged. Each entry is attempted once per call.
func (c *Consumer) retryPending(ctx context.Context) {
	start := "0"
	for ctx.Err() == nil {
		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, start},
			Count:    10,
			Block:    -1,
		}).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
				c.logger.Error().Err(err).Msg("Failed to read pending messages")
			}
			return
		}

		read := 0
		for _, stream := range msgs {
			for _, msg := range stream.Messages {
				c.logger.Debug().Str("id", msg.ID).Msg("Retrying pending message")
				c.process(ctx, msg)
				start = msg.ID
				read++
			}
		}
		if read == 0 {
			return
		}
	}
}

func (c *Consumer) Stop() error {
	return c.client.Close()
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Debug().Str("id", msg.ID).Msg("Message received")

	req, err := decodeRequest(msg.Values)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // ack bad messages so they are not redelivered
		return
	}
	if req.CaseID == "" {
		req.CaseID = msg.ID
	}

	result := c.executor.Execute(ctx, models.NewAnalysisContext(req))

	c.logger.Info().
		Str("id", msg.ID).
		Int("length", result.Length).
		Str("verdict", string(result.Verdict)).
		Msg("Analysis complete")

	if c.store != nil {
		if err := c.store.SaveResult(ctx, result); err != nil {
			c.logger.Error().Err(err).Str("id", result.ID).Msg("Failed to store result")
		}
	}

	if err := c.publish(ctx, result); err != nil {
		// Unacked messages stay pending until retryPending picks them up.
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish result")
		return
	}

	c.ack(ctx, msg.ID)
}

func (c *Consumer) publish(ctx context.Context, result models.AnalysisResult) error {
	if c.resultStream == "" {
		return nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultStream,
		Values: map[string]any{payloadField: string(payload)},
	}).Err()
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}

// EncodeRequest builds the stream message values for a request.
func EncodeRequest(req models.AnalysisRequest) (map[string]any, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return map[string]any{payloadField: string(payload)}, nil
}

func decodeRequest(values map[string]any) (models.AnalysisRequest, error) {
	var req models.AnalysisRequest

	payload, ok := values[payloadField].(string)
	if !ok {
		return req, fmt.Errorf("missing %s field", payloadField)
	}

	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return req, fmt.Errorf("invalid payload: %w", err)
	}
	return req, nil
}
