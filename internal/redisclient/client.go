package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Client wraps a Redis client with OpenTelemetry tracing
type Client struct {
	cmdable redis.Cmdable
}

// NewClient creates a new traced Redis client for a single Redis instance
func NewClient(client *redis.Client) *Client {
	return &Client{cmdable: client}
}

// NewClusterClient creates a new traced Redis client for Redis cluster
func NewClusterClient(client *redis.ClusterClient) *Client {
	return &Client{cmdable: client}
}

// Get wraps Redis Get with tracing
func (c *Client) Get(ctx context.Context, key string) *redis.StringCmd {
	ctx, finish := c.startSpan(ctx, "redis.get", key)
	cmd := c.cmdable.Get(ctx, key)
	finish(cmd.Err())
	return cmd
}

// Set wraps Redis Set with tracing
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	ctx, finish := c.startSpan(ctx, "redis.set", key)
	cmd := c.cmdable.Set(ctx, key, value, expiration)
	finish(cmd.Err())
	return cmd
}

// Del wraps Redis Del with tracing
func (c *Client) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	key := ""
	if len(keys) > 0 {
		key = keys[0]
	}
	ctx, finish := c.startSpan(ctx, "redis.del", key)
	cmd := c.cmdable.Del(ctx, keys...)
	finish(cmd.Err())
	return cmd
}

// Ping wraps Redis Ping with tracing
func (c *Client) Ping(ctx context.Context) *redis.StatusCmd {
	ctx, finish := c.startSpan(ctx, "redis.ping", "")
	cmd := c.cmdable.Ping(ctx)
	finish(cmd.Err())
	return cmd
}

// startSpan opens a span for a Redis operation and returns a closer that
// records the outcome. redis.Nil is a miss, not an error.
func (c *Client) startSpan(ctx context.Context, operation, key string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := otel.Tracer("redis").Start(ctx, operation,
		trace.WithAttributes(
			attribute.String("redis.key", key),
			attribute.String("redis.operation", operation),
			attribute.String("redis.client", "freightlink-profile-api"),
		),
	)
	return ctx, func(err error) {
		duration := time.Since(start)
		span.SetAttributes(
			attribute.Int64("redis.duration_ms", duration.Milliseconds()),
		)
		if err != nil && err != redis.Nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "success")
		}
		span.End()
	}
}
