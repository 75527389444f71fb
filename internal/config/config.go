// Package config loads the gridkit service configuration: container names,
// image versions, ports, the browsers file, and the policies controlling
// failure handling and image pulling. The configuration is resolved once at
// startup and never mutated.
package config

import (
	"fmt"
	"path/filepath"

	units "github.com/docker/go-units"
)

const (
	// GatewayImageRepo is the image repository for the gateway container.
	GatewayImageRepo = "aerokube/selenoid"
	// UIImageRepo is the image repository for the UI container.
	UIImageRepo = "aerokube/selenoid-ui"

	// GatewayConfigDir is the container path the browsers file directory
	// is mounted at, read-only.
	GatewayConfigDir = "/etc/selenoid"
)

// Config is the resolved service configuration.
type Config struct {
	Gateway GatewayConfig `mapstructure:"gateway"`
	UI      UIConfig      `mapstructure:"ui"`

	// BrowsersFile is the path to the browser configuration file.
	BrowsersFile string `mapstructure:"browsers_file"`

	// EngineSocket is the host engine socket path forwarded into the
	// gateway container so it can launch browser containers itself.
	EngineSocket string `mapstructure:"engine_socket"`

	// SkipPull disables all image pulling during session preparation.
	SkipPull bool `mapstructure:"skip_pull"`

	// FailFast controls whether gateway start failures and a missing
	// browsers file abort the whole test session.
	FailFast bool `mapstructure:"fail_fast"`

	// PathStyle is the path convention of the host ("posix" or "windows"),
	// used to express mount paths POSIX-style.
	PathStyle PathStyle `mapstructure:"path_style"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// GatewayConfig configures the browser-automation gateway container.
type GatewayConfig struct {
	Name    string   `mapstructure:"name"`
	Version string   `mapstructure:"version"`
	Port    int      `mapstructure:"port"`
	Args    []string `mapstructure:"args"`

	// Memory is an optional limit in human units ("512m", "2g").
	Memory string `mapstructure:"memory"`
	// CPUs is an optional fractional CPU limit.
	CPUs float64 `mapstructure:"cpus"`
}

// UIConfig configures the companion dashboard container.
type UIConfig struct {
	Name    string   `mapstructure:"name"`
	Version string   `mapstructure:"version"`
	Port    int      `mapstructure:"port"`
	Args    []string `mapstructure:"args"`
}

// LoggingConfig configures optional file logging.
type LoggingConfig struct {
	Dir         string `mapstructure:"dir"`
	FileEnabled bool   `mapstructure:"file_enabled"`
	MaxSizeMB   int    `mapstructure:"max_size_mb"`
	MaxAgeDays  int    `mapstructure:"max_age_days"`
	MaxBackups  int    `mapstructure:"max_backups"`
}

// GatewayImage returns the full gateway image reference.
func (c *Config) GatewayImage() string {
	return GatewayImageRepo + ":" + c.Gateway.Version
}

// UIImage returns the full UI image reference.
func (c *Config) UIImage() string {
	return UIImageRepo + ":" + c.UI.Version
}

// MountDir returns the absolute, POSIX-style path of the directory
// containing the browsers file, suitable for use as a bind mount source.
func (c *Config) MountDir() (string, error) {
	abs, err := filepath.Abs(c.BrowsersFile)
	if err != nil {
		return "", fmt.Errorf("resolving browsers file path: %w", err)
	}
	return MountPath(filepath.Dir(abs), c.PathStyle), nil
}

// GatewayMemoryBytes parses the optional gateway memory limit.
// Returns 0 (unlimited) when unset.
func (c *Config) GatewayMemoryBytes() (int64, error) {
	if c.Gateway.Memory == "" {
		return 0, nil
	}
	mem, err := units.RAMInBytes(c.Gateway.Memory)
	if err != nil {
		return 0, fmt.Errorf("parsing gateway memory limit %q: %w", c.Gateway.Memory, err)
	}
	return mem, nil
}

// GatewayNanoCPUs converts the optional gateway CPU limit to nano-CPUs.
func (c *Config) GatewayNanoCPUs() int64 {
	return int64(c.Gateway.CPUs * 1e9)
}
