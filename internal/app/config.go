package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/viper"

	"lunaphase/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. LUNAPHASE_IMAGE_DIR.
const EnvPrefix = "LUNAPHASE"

// ErrConfig wraps every validation failure.
var ErrConfig = errors.New("app: invalid config")

// SecurityConfig holds the response headers the server sets.
type SecurityConfig struct {
	HSTS         string `mapstructure:"hsts"`
	CSP          string `mapstructure:"csp"`
	FrameOptions string `mapstructure:"frame_options"`
}

// Config holds all runtime configuration. Values are populated from
// lunaphase.yaml, LUNAPHASE_* env vars and CLI flags.
type Config struct {
	ListenAddr      string         `mapstructure:"listen_addr"`
	ImageDir        string         `mapstructure:"image_dir"`
	PhaseMapFile    string         `mapstructure:"phase_map_file"`
	ImageSize       int            `mapstructure:"image_size"`
	DefaultTime     string         `mapstructure:"default_time"`
	Timezone        string         `mapstructure:"timezone"`
	CacheMaxAge     time.Duration  `mapstructure:"cache_max_age"`
	LogLevel        string         `mapstructure:"log_level"`
	CalendarWorkers int            `mapstructure:"calendar_workers"`
	ServerURL       string         `mapstructure:"server_url"`
	Security        SecurityConfig `mapstructure:"security"`
}

// SetDefaults registers the built-in value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("image_dir", "./static/images")
	v.SetDefault("phase_map_file", "")
	v.SetDefault("image_size", 400)
	v.SetDefault("default_time", "22:00:00")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("cache_max_age", "24h")
	v.SetDefault("log_level", "info")
	v.SetDefault("calendar_workers", 8)
	v.SetDefault("server_url", "")
	v.SetDefault("security.hsts", "max-age=31536000; includeSubDomains")
	v.SetDefault("security.csp", "default-src 'self'; img-src 'self' data:;")
	v.SetDefault("security.frame_options", "SAMEORIGIN")
}

// ReadConfigFile loads path into v, or searches for lunaphase.yaml in the
// working and home directories when path is empty. Not finding a file in
// the search is fine; an explicit path must exist.
func ReadConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lunaphase")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("app: read config: %w", err)
	}
	return nil
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates it.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("app: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that later code parses.
func (c Config) Validate() error {
	if _, err := c.ObservationTime(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrConfig, err)
	}
	if c.CalendarWorkers < 1 {
		return fmt.Errorf("%w: calendar_workers must be positive, got %d", ErrConfig, c.CalendarWorkers)
	}
	if c.ImageSize < 1 {
		return fmt.Errorf("%w: image_size must be positive, got %d", ErrConfig, c.ImageSize)
	}
	if c.CacheMaxAge < 0 {
		return fmt.Errorf("%w: cache_max_age must not be negative", ErrConfig)
	}
	if c.ImageDir == "" {
		return fmt.Errorf("%w: image_dir is empty", ErrConfig)
	}
	return nil
}

// ObservationTime parses DefaultTime as HH:MM:SS.
func (c Config) ObservationTime() (civil.Time, error) {
	t, err := civil.ParseTime(c.DefaultTime)
	if err != nil {
		return civil.Time{}, fmt.Errorf("%w: default_time %q: %v", ErrConfig, c.DefaultTime, err)
	}
	return t, nil
}

// Location loads Timezone, used only to decide what "today" is.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrConfig, c.Timezone, err)
	}
	return loc, nil
}
