package cache

import "log/slog"

const defaultMessageCacheSize = 100

// config stores resolved cache settings after option application.
type config struct {
	resourceTypes    ResourceType
	messageCacheSize int
	representations  Representations
	logger           *slog.Logger
}

// Option mutates cache construction configuration.
type Option func(*config)

func defaultConfig() config {
	return config{
		resourceTypes:    ResourceAll,
		messageCacheSize: defaultMessageCacheSize,
		representations:  DefaultRepresentations(),
		logger:           slog.Default(),
	}
}

// WithResourceTypes selects the entity kinds the cache stores.
func WithResourceTypes(kinds ResourceType) Option {
	return func(cfg *config) {
		cfg.resourceTypes = kinds
	}
}

// WithMessageCacheSize bounds the number of messages kept per channel.
func WithMessageCacheSize(size int) Option {
	return func(cfg *config) {
		if size > 0 {
			cfg.messageCacheSize = size
		}
	}
}

// WithRepresentations replaces the constructors of cached values. Nil fields
// keep the default constructor.
func WithRepresentations(reps Representations) Option {
	return func(cfg *config) {
		cfg.representations = reps.withDefaults()
	}
}

// WithLogger configures the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Config is a read-only view of cache settings.
type Config struct {
	ResourceTypes    ResourceType
	MessageCacheSize int
}
