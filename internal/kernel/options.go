package kernel

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const (
	defaultPipelineWorkers = 4
	defaultPipelineBuffer  = 256
)

// BackpressurePolicy controls Publish when a partition queue is full.
type BackpressurePolicy string

const (
	// BackpressureBlock waits for queue capacity or caller cancellation.
	BackpressureBlock BackpressurePolicy = "block"
	// BackpressureDropNewest rejects the incoming event.
	BackpressureDropNewest BackpressurePolicy = "drop_newest"
)

// ParseBackpressurePolicy resolves a policy name. Empty selects block.
func ParseBackpressurePolicy(name string) (BackpressurePolicy, error) {
	switch policy := BackpressurePolicy(strings.ToLower(strings.TrimSpace(name))); policy {
	case "":
		return BackpressureBlock, nil
	case BackpressureBlock, BackpressureDropNewest:
		return policy, nil
	default:
		return "", fmt.Errorf("parse backpressure %q: %w", name, ErrInvalidBackpressure)
	}
}

// config stores resolved pipeline settings after option application.
type config struct {
	workers      int
	buffer       int
	backpressure BackpressurePolicy
	logger       *slog.Logger
	onAsyncError func(context.Context, string, error)
}

// Option mutates pipeline construction configuration.
type Option func(*config)

func defaultConfig() config {
	return config{
		workers:      defaultPipelineWorkers,
		buffer:       defaultPipelineBuffer,
		backpressure: BackpressureBlock,
		logger:       slog.Default(),
	}
}

// WithWorkers configures the number of partition workers.
func WithWorkers(workers int) Option {
	return func(cfg *config) {
		if workers > 0 {
			cfg.workers = workers
		}
	}
}

// WithBuffer configures the queue capacity of each partition.
func WithBuffer(buffer int) Option {
	return func(cfg *config) {
		if buffer > 0 {
			cfg.buffer = buffer
		}
	}
}

// WithBackpressure configures the full-queue policy.
func WithBackpressure(policy BackpressurePolicy) Option {
	return func(cfg *config) {
		switch policy {
		case BackpressureBlock, BackpressureDropNewest:
			cfg.backpressure = policy
		}
	}
}

// WithLogger configures the logger used by the default async error sink.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithAsyncErrorHandler configures where worker failures are reported.
func WithAsyncErrorHandler(handler func(context.Context, string, error)) Option {
	return func(cfg *config) {
		if handler != nil {
			cfg.onAsyncError = handler
		}
	}
}

func (cfg config) asyncErrorHandler() func(context.Context, string, error) {
	if cfg.onAsyncError != nil {
		return cfg.onAsyncError
	}

	logger := cfg.logger
	return func(ctx context.Context, scope string, err error) {
		logger.ErrorContext(ctx, "pipeline async error", "scope", scope, "error", err)
	}
}
