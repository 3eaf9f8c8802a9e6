package observability

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// InstrumentRedisClient adds command counters, latency and a pool saturation
// gauge to the client used by the distributed rate limiter.
func InstrumentRedisClient(client redis.UniversalClient, logger *slog.Logger) {
	if client == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	hook, err := newRedisMetricsHook(otel.Meter(meterName), client.PoolStats)
	if err != nil {
		logger.Warn("redis observability instrumentation disabled", "error", err)
		return
	}
	client.AddHook(hook)
	logger.Info("redis observability instrumentation enabled")
}

type redisMetricsHook struct {
	cmdTotal   metric.Int64Counter
	cmdErrors  metric.Int64Counter
	cmdLatency metric.Float64Histogram
}

func newRedisMetricsHook(meter metric.Meter, poolStats func() *redis.PoolStats) (*redisMetricsHook, error) {
	cmdTotal, err := meter.Int64Counter("redis.command.total", metric.WithDescription("Total number of Redis commands executed"))
	if err != nil {
		return nil, err
	}
	cmdErrors, err := meter.Int64Counter("redis.command.errors", metric.WithDescription("Total number of Redis command errors"))
	if err != nil {
		return nil, err
	}
	cmdLatency, err := meter.Float64Histogram("redis.command.duration", metric.WithUnit("s"), metric.WithDescription("Redis command latency in seconds"))
	if err != nil {
		return nil, err
	}
	saturation, err := meter.Float64ObservableGauge(
		"redis.pool.saturation",
		metric.WithUnit("1"),
		metric.WithDescription("Redis pool saturation ratio (used_conns / total_conns)"),
	)
	if err != nil {
		return nil, err
	}
	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := poolStats()
		if stats == nil || stats.TotalConns == 0 {
			return nil
		}
		used := float64(stats.TotalConns-stats.IdleConns) / float64(stats.TotalConns)
		o.ObserveFloat64(saturation, min(max(used, 0), 1))
		return nil
	}, saturation)
	if err != nil {
		return nil, err
	}
	return &redisMetricsHook{cmdTotal: cmdTotal, cmdErrors: cmdErrors, cmdLatency: cmdLatency}, nil
}

func (h *redisMetricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *redisMetricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.observe(ctx, strings.ToLower(cmd.Name()), err, time.Since(start))
		return err
	}
}

func (h *redisMetricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		h.cmdLatency.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("command", "pipeline"),
			attribute.String("status", redisCommandStatus(err)),
		))
		for _, cmd := range cmds {
			h.count(ctx, strings.ToLower(cmd.Name()), cmd.Err())
		}
		return err
	}
}

func (h *redisMetricsHook) observe(ctx context.Context, command string, err error, d time.Duration) {
	h.count(ctx, command, err)
	h.cmdLatency.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("command", command),
		attribute.String("status", redisCommandStatus(err)),
	))
}

func (h *redisMetricsHook) count(ctx context.Context, command string, err error) {
	h.cmdTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("command", command),
		attribute.String("status", redisCommandStatus(err)),
	))
	if err != nil && !errors.Is(err, redis.Nil) {
		h.cmdErrors.Add(ctx, 1, metric.WithAttributes(
			attribute.String("command", command),
			attribute.String("error_type", classifyRedisError(err)),
		))
	}
}

func redisCommandStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, redis.Nil):
		return "miss"
	default:
		return "error"
	}
}

func classifyRedisError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"):
		return "timeout"
	case strings.Contains(msg, "connection"), strings.Contains(msg, "connect:"):
		return "connection"
	default:
		return "other"
	}
}
