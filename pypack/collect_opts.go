package pypack

import "log/slog"

// DefaultSuffix is the module file suffix gathered when no option is set.
const DefaultSuffix = ".py"

// collectConfig holds configuration for module collection.
type collectConfig struct {
	suffix string
	prefix string
	logger *slog.Logger
}

// log returns the logger, falling back to a discard logger if nil.
func (c *collectConfig) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// CollectOption configures module collection.
type CollectOption func(*collectConfig)

// CollectWithSuffix sets the module file suffix (default ".py").
func CollectWithSuffix(suffix string) CollectOption {
	return func(cfg *collectConfig) {
		cfg.suffix = suffix
	}
}

// CollectWithPrefix prepends a dotted prefix to every collected module name.
func CollectWithPrefix(prefix string) CollectOption {
	return func(cfg *collectConfig) {
		cfg.prefix = prefix
	}
}

// CollectWithLogger sets the logger used during collection.
// By default, logging is discarded.
func CollectWithLogger(logger *slog.Logger) CollectOption {
	return func(cfg *collectConfig) {
		cfg.logger = logger
	}
}
