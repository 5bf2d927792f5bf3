package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override: HTTPSTAT_SHOW_BODY, ...
const EnvPrefix = "HTTPSTAT"

// Config holds user-configurable defaults.
type Config struct {
	// CurlBin is the curl executable, looked up in PATH when not absolute.
	CurlBin string `mapstructure:"curl_bin"`

	ShowBody         bool `mapstructure:"show_body"`
	BodyPreviewBytes int  `mapstructure:"body_preview_bytes"`
	SaveBody         bool `mapstructure:"save_body"`
	ShowSpeed        bool `mapstructure:"show_speed"`

	// Progress shows a spinner on stderr while the request runs.
	Progress bool `mapstructure:"progress"`

	// Timeout bounds the whole transfer. Zero means no limit.
	Timeout time.Duration `mapstructure:"timeout"`

	LogLevel string `mapstructure:"log_level"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		CurlBin:          "curl",
		ShowBody:         false,
		BodyPreviewBytes: 1024,
		SaveBody:         true,
		ShowSpeed:        false,
		Progress:         false,
		Timeout:          0,
		LogLevel:         "warn",
	}
}

// Path returns ~/.config/httpstat/config.yaml (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "httpstat", "config.yaml")
}

// SetDefaults registers every key with v so env overrides and Unmarshal see
// them.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("curl_bin", d.CurlBin)
	v.SetDefault("show_body", d.ShowBody)
	v.SetDefault("body_preview_bytes", d.BodyPreviewBytes)
	v.SetDefault("save_body", d.SaveBody)
	v.SetDefault("show_speed", d.ShowSpeed)
	v.SetDefault("progress", d.Progress)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("log_level", d.LogLevel)
}

// Load resolves defaults, the config file, HTTPSTAT_* variables and any
// flags already bound to v, in increasing priority. An explicit file must
// exist; the default file is optional.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	explicit := file != ""
	if !explicit {
		file = Path()
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound)
			if explicit || !missing {
				return Config{}, fmt.Errorf("read config %s: %w", file, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.BodyPreviewBytes < 0 {
		return Config{}, fmt.Errorf("body_preview_bytes must not be negative, got %d", cfg.BodyPreviewBytes)
	}
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}
	return cfg, nil
}
