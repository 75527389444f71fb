package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFileName is the optional configuration file name (without extension).
const ConfigFileName = "gridkit"

// EnvPrefix is the prefix for environment overrides (GRIDKIT_FAIL_FAST,
// GRIDKIT_GATEWAY_VERSION, ...).
const EnvPrefix = "GRIDKIT"

// Loader resolves the service configuration from defaults, an optional
// gridkit.yaml in the working directory, and the environment, in
// increasing order of precedence.
type Loader struct {
	workDir string
	viper   *viper.Viper
}

// NewLoader creates a loader rooted at the given working directory.
func NewLoader(workDir string) *Loader {
	return &Loader{workDir: workDir, viper: viper.New()}
}

// Load resolves the configuration. The file is optional; its absence is
// not an error.
func (l *Loader) Load() (*Config, error) {
	v := l.viper
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(l.workDir)

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if cfg.PathStyle != StylePOSIX && cfg.PathStyle != StyleWindows {
		return nil, fmt.Errorf("unknown path_style %q", cfg.PathStyle)
	}
	if _, err := cfg.GatewayMemoryBytes(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("gateway.name", defaults.Gateway.Name)
	v.SetDefault("gateway.version", defaults.Gateway.Version)
	v.SetDefault("gateway.port", defaults.Gateway.Port)
	v.SetDefault("gateway.args", []string{})
	v.SetDefault("gateway.memory", "")
	v.SetDefault("gateway.cpus", 0.0)
	v.SetDefault("ui.name", defaults.UI.Name)
	v.SetDefault("ui.version", defaults.UI.Version)
	v.SetDefault("ui.port", defaults.UI.Port)
	v.SetDefault("ui.args", []string{})
	v.SetDefault("browsers_file", defaults.BrowsersFile)
	v.SetDefault("engine_socket", defaults.EngineSocket)
	v.SetDefault("skip_pull", defaults.SkipPull)
	v.SetDefault("fail_fast", defaults.FailFast)
	v.SetDefault("path_style", string(defaults.PathStyle))
	v.SetDefault("logging.dir", "")
	v.SetDefault("logging.file_enabled", false)
	v.SetDefault("logging.max_size_mb", 0)
	v.SetDefault("logging.max_age_days", 0)
	v.SetDefault("logging.max_backups", 0)
}
