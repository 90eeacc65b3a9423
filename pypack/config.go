package pypack

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultConfigName is the pack configuration file name.
const DefaultConfigName = "pyoxidizer.toml"

// Config is a TOML pack configuration.
//
// Example:
//
//	[pack]
//	out_dir = "build"
//	compression = "zstd"
//
//	[[roots]]
//	path = "lib"
//	prefix = ""
//	suffix = ".py"
type Config struct {
	Pack  PackConfig   `toml:"pack"`
	Roots []RootConfig `toml:"roots"`
}

// PackConfig controls where and how artifacts are written.
type PackConfig struct {
	OutDir      string `toml:"out_dir"`
	Compression string `toml:"compression"`
}

// RootConfig names one source tree to collect modules from.
type RootConfig struct {
	Path   string `toml:"path"`
	Prefix string `toml:"prefix"`
	Suffix string `toml:"suffix"`
}

// LoadConfig reads and validates a pack configuration file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("pack") {
		return nil, fmt.Errorf("%s: missing [pack]", path)
	}
	if !meta.IsDefined("pack", "out_dir") || strings.TrimSpace(cfg.Pack.OutDir) == "" {
		return nil, fmt.Errorf("%s: missing [pack].out_dir", path)
	}
	if _, err := ParseCompression(cfg.Pack.Compression); err != nil {
		return nil, fmt.Errorf("%s: [pack].compression: %w", path, err)
	}
	if len(cfg.Roots) == 0 {
		return nil, fmt.Errorf("%s: missing [[roots]]", path)
	}
	for i, root := range cfg.Roots {
		if strings.TrimSpace(root.Path) == "" {
			return nil, fmt.Errorf("%s: [[roots]] entry %d: missing path", path, i+1)
		}
	}
	return &cfg, nil
}
