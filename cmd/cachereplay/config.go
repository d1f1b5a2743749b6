package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"guildcache/internal/kernel"
	"guildcache/pkg/cache"
)

const (
	envConfigFile         = "GUILDCACHE_CONFIG_FILE"
	defaultConfigFilePath = "config/cachereplay.yaml"
	defaultWorkers        = 4
	defaultBuffer         = 1024
	defaultCloseTimeout   = 30 * time.Second
)

type appConfig struct {
	logLevel slog.Level

	resourceTypes    cache.ResourceType
	messageCacheSize int

	workers      int
	buffer       int
	backpressure kernel.BackpressurePolicy
	closeTimeout time.Duration
}

type fileConfig struct {
	LogLevel         string             `json:"log_level" yaml:"log_level"`
	ResourceTypes    []string           `json:"resource_types" yaml:"resource_types"`
	MessageCacheSize *int               `json:"message_cache_size" yaml:"message_cache_size"`
	Pipeline         filePipelineConfig `json:"pipeline" yaml:"pipeline"`
}

type filePipelineConfig struct {
	Workers      *int   `json:"workers" yaml:"workers"`
	Buffer       *int   `json:"buffer" yaml:"buffer"`
	Backpressure string `json:"backpressure" yaml:"backpressure"`
	CloseTimeout string `json:"close_timeout" yaml:"close_timeout"`
}

func defaultAppConfig() appConfig {
	return appConfig{
		logLevel:         slog.LevelInfo,
		resourceTypes:    cache.ResourceAll,
		messageCacheSize: 100,
		workers:          defaultWorkers,
		buffer:           defaultBuffer,
		backpressure:     kernel.BackpressureBlock,
		closeTimeout:     defaultCloseTimeout,
	}
}

// loadConfig resolves the config file from the flag, then the environment,
// then the default path. A missing default file leaves the defaults in place.
func loadConfig(flagPath string) (appConfig, error) {
	cfg := defaultAppConfig()

	configFile, err := resolveConfigFilePath(flagPath)
	if err != nil {
		return appConfig{}, err
	}
	if configFile == "" {
		return cfg, nil
	}
	if err := applyConfigFile(&cfg, configFile); err != nil {
		return appConfig{}, err
	}

	return cfg, nil
}

func resolveConfigFilePath(flagPath string) (string, error) {
	if configFile := strings.TrimSpace(flagPath); configFile != "" {
		return configFile, nil
	}
	if configFile := strings.TrimSpace(os.Getenv(envConfigFile)); configFile != "" {
		return configFile, nil
	}

	info, err := os.Stat(defaultConfigFilePath)
	if err == nil {
		if info.IsDir() {
			return "", fmt.Errorf("config file %s is a directory", defaultConfigFilePath)
		}
		return defaultConfigFilePath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config file %s: %w", defaultConfigFilePath, err)
	}

	return "", nil
}

func applyConfigFile(cfg *appConfig, path string) error {
	if cfg == nil {
		return fmt.Errorf("apply config file: nil config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	parsed, err := parseConfigFile(path, data)
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if err := applyFileConfig(cfg, parsed); err != nil {
		return fmt.Errorf("validate config file %s: %w", path, err)
	}

	return nil
}

// parseConfigFile decodes YAML by extension and everything else as JSON
// with comments.
func parseConfigFile(path string, data []byte) (fileConfig, error) {
	var parsed fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return fileConfig{}, err
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &parsed); err != nil {
			return fileConfig{}, err
		}
	}

	return parsed, nil
}

func applyFileConfig(cfg *appConfig, parsed fileConfig) error {
	if rawLevel := strings.TrimSpace(parsed.LogLevel); rawLevel != "" {
		level, err := parseLogLevel(rawLevel)
		if err != nil {
			return fmt.Errorf("parse log_level: %w", err)
		}
		cfg.logLevel = level
	}

	if parsed.ResourceTypes != nil {
		kinds, err := cache.ParseResourceTypes(parsed.ResourceTypes)
		if err != nil {
			return fmt.Errorf("parse resource_types: %w", err)
		}
		cfg.resourceTypes = kinds
	}
	if parsed.MessageCacheSize != nil {
		if *parsed.MessageCacheSize <= 0 {
			return fmt.Errorf("parse message_cache_size: must be > 0")
		}
		cfg.messageCacheSize = *parsed.MessageCacheSize
	}

	if parsed.Pipeline.Workers != nil {
		if *parsed.Pipeline.Workers <= 0 {
			return fmt.Errorf("parse pipeline.workers: must be > 0")
		}
		cfg.workers = *parsed.Pipeline.Workers
	}
	if parsed.Pipeline.Buffer != nil {
		if *parsed.Pipeline.Buffer <= 0 {
			return fmt.Errorf("parse pipeline.buffer: must be > 0")
		}
		cfg.buffer = *parsed.Pipeline.Buffer
	}
	if rawPolicy := strings.TrimSpace(parsed.Pipeline.Backpressure); rawPolicy != "" {
		policy, err := kernel.ParseBackpressurePolicy(rawPolicy)
		if err != nil {
			return fmt.Errorf("parse pipeline.backpressure: %w", err)
		}
		cfg.backpressure = policy
	}
	if rawTimeout := strings.TrimSpace(parsed.Pipeline.CloseTimeout); rawTimeout != "" {
		timeout, err := time.ParseDuration(rawTimeout)
		if err != nil {
			return fmt.Errorf("parse pipeline.close_timeout: %w", err)
		}
		if timeout <= 0 {
			return fmt.Errorf("parse pipeline.close_timeout: must be > 0")
		}
		cfg.closeTimeout = timeout
	}

	return nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported level %q", raw)
	}
}
