package engine

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/ombra/engine/core"
)

type ApplicationConfig struct {
	// The application name used in logs.
	Name string `toml:"name"`
	// Backbuffer starting width.
	StartWidth uint32 `toml:"start_width"`
	// Backbuffer starting height.
	StartHeight uint32 `toml:"start_height"`
	// Target frames per second for the main loop.
	TargetFPS uint32 `toml:"target_fps"`
	// Root directory of the asset tree.
	AssetBasePath string `toml:"asset_base_path"`
	// Maximum number of resident textures.
	MaxTextureCount uint32 `toml:"max_texture_count"`
	// Number of background workers for asset preloading.
	WorkerCount int `toml:"worker_count"`
	// Whether texture-cache misses surface as errors to sprites.
	ErrorOnMiss bool `toml:"error_on_miss"`
	// Minimum log level: "debug", "info", "warn" or "error".
	LogLevel string `toml:"log_level"`
}

// DefaultApplicationConfig returns a runnable configuration.
func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:            "ombra",
		StartWidth:      1280,
		StartHeight:     720,
		TargetFPS:       60,
		AssetBasePath:   "assets",
		MaxTextureCount: 1024,
		WorkerCount:     2,
		LogLevel:        "info",
	}
}

// LoadApplicationConfig reads a TOML configuration file, filling any field
// the file omits with its default.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(raw, config); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *ApplicationConfig) logLevel() core.LogLevel {
	switch c.LogLevel {
	case "debug":
		return core.LogLevelDebug
	case "warn":
		return core.LogLevelWarn
	case "error":
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}
