package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"guildcache/internal/gateway"
	"guildcache/internal/kernel"
	"guildcache/pkg/cache"
)

type flags struct {
	configFile string
	input      string
	logLevel   string
	progress   time.Duration
}

func parseFlags(args []string) (flags, error) {
	var parsed flags
	flagSet := pflag.NewFlagSet("cachereplay", pflag.ContinueOnError)
	flagSet.StringVar(&parsed.configFile, "config", "", "config file (.json, .jsonc, .yaml); overrides "+envConfigFile)
	flagSet.StringVarP(&parsed.input, "input", "i", "-", "gateway frame log, one JSON frame per line; .zst is decompressed; - reads stdin")
	flagSet.StringVar(&parsed.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flagSet.DurationVar(&parsed.progress, "progress", 0, "interval between progress logs; 0 disables")

	if err := flagSet.Parse(args); err != nil {
		return flags{}, fmt.Errorf("parse flags: %w", err)
	}

	return parsed, nil
}

func run(args []string) error {
	parsed, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(parsed.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if parsed.logLevel != "" {
		level, err := parseLogLevel(parsed.logLevel)
		if err != nil {
			return fmt.Errorf("parse --log-level: %w", err)
		}
		cfg.logLevel = level
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.logLevel}))

	input, err := openInput(parsed.input)
	if err != nil {
		return err
	}
	defer func() {
		_ = input.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := replay(ctx, logger, cfg, input, parsed.progress)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("replay %s: %w", parsed.input, err)
	}
	logger.Info("replay finished", "stats", stats)

	return nil
}

// compressedInput closes both the zstd decoder and the file under it.
type compressedInput struct {
	*zstd.Decoder
	file *os.File
}

func (c compressedInput) Close() error {
	c.Decoder.Close()
	return c.file.Close()
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".zst") {
		return file, nil
	}

	decoder, err := zstd.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("open zstd input %s: %w", path, err)
	}

	return compressedInput{Decoder: decoder, file: file}, nil
}

func buildCache(logger *slog.Logger, cfg appConfig) *cache.Cache {
	return cache.New(
		cache.WithResourceTypes(cfg.resourceTypes),
		cache.WithMessageCacheSize(cfg.messageCacheSize),
		cache.WithLogger(logger),
	)
}

func buildPipeline(logger *slog.Logger, cfg appConfig, target *cache.Cache) *kernel.Pipeline {
	return kernel.NewPipeline(
		target.Update,
		kernel.WithWorkers(cfg.workers),
		kernel.WithBuffer(cfg.buffer),
		kernel.WithBackpressure(cfg.backpressure),
		kernel.WithLogger(logger),
	)
}

// replay feeds every frame of input through the pipeline into a fresh
// cache and returns its final counts.
func replay(
	ctx context.Context,
	logger *slog.Logger,
	cfg appConfig,
	input io.Reader,
	progress time.Duration,
) (cache.Stats, error) {
	target := buildCache(logger, cfg)
	pipeline := buildPipeline(logger, cfg, target)
	reader := gateway.NewReader(input)

	group, groupCtx := errgroup.WithContext(ctx)
	finished := make(chan struct{})
	var published atomic.Int64
	dropped := 0

	group.Go(func() error {
		defer close(finished)

		for {
			event, err := reader.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}

			err = pipeline.Publish(groupCtx, event)
			if errors.Is(err, kernel.ErrEventDropped) {
				dropped++
				logger.Warn("event dropped", "kind", event.Kind(), "line", reader.Line())
				continue
			}
			if err != nil {
				return err
			}
			published.Add(1)
		}
	})
	if progress > 0 {
		group.Go(func() error {
			ticker := time.NewTicker(progress)
			defer ticker.Stop()

			for {
				select {
				case <-finished:
					return nil
				case <-groupCtx.Done():
					return nil
				case <-ticker.C:
					logger.Info("replay progress", "published", published.Load(), "stats", target.Stats())
				}
			}
		})
	}
	replayErr := group.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), cfg.closeTimeout)
	defer cancel()
	if err := pipeline.Close(closeCtx); err != nil {
		replayErr = errors.Join(replayErr, err)
	}

	logger.Debug("replay drained",
		"published", published.Load(),
		"dropped", dropped,
		"skipped", reader.Skipped(),
		"lines", reader.Line(),
	)

	return target.Stats(), replayErr
}
