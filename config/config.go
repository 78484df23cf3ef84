package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Data sources.
const (
	SourceCSV      = "csv"
	SourceYAML     = "yaml"
	SourcePostgres = "postgres"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the application's configuration
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Planner  PlannerConfig  `mapstructure:"planner"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// DataConfig selects where the road network comes from.
type DataConfig struct {
	Source          string   `mapstructure:"source" validate:"oneof=csv yaml postgres"`
	AttractionsFile string   `mapstructure:"attractions_file" validate:"required_if=Source csv"`
	RoadsFile       string   `mapstructure:"roads_file" validate:"required_if=Source csv"`
	NetworkFile     string   `mapstructure:"network_file" validate:"required_if=Source yaml"`
	SearchDirs      []string `mapstructure:"search_dirs"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
}

// HTTPConfig configures the API server. An empty AllowedOrigins list allows
// every origin.
type HTTPConfig struct {
	Addr           string   `mapstructure:"addr" validate:"required"`
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"dive,required"`
}

// PlannerConfig tunes the planner. Workers == 0 means GOMAXPROCS.
type PlannerConfig struct {
	CacheSize int `mapstructure:"cache_size" validate:"min=0"`
	Workers   int `mapstructure:"workers" validate:"min=0"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var validate = validator.New()

// Load reads configuration from file (or, when file is empty, from
// routeplanner.yaml in ".", "./config" or "/etc/routeplanner"), then applies
// ROUTEPLANNER_* environment overrides (ROUTEPLANNER_HTTP_ADDR for
// http.addr) and validates the result.
//
// A missing config file is only an error when file was given explicitly.
func Load(logger *zap.Logger, file string) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("routeplanner")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/routeplanner")
	}
	v.SetEnvPrefix("ROUTEPLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
		logger.Warn("Could not read config file, using defaults/env vars", zap.Error(err))
	} else {
		logger.Debug("Config file loaded", zap.String("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Data.Source = strings.ToLower(strings.TrimSpace(cfg.Data.Source))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.source", SourceCSV)
	v.SetDefault("data.attractions_file", "attractions.csv")
	v.SetDefault("data.roads_file", "roads.csv")
	v.SetDefault("data.network_file", "network.yaml")
	v.SetDefault("data.search_dirs", []string{".", "data"})
	v.SetDefault("database.url", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.allowed_origins", []string{})
	v.SetDefault("planner.cache_size", 1024)
	v.SetDefault("planner.workers", 0)
	v.SetDefault("metrics.enabled", true)
}

// Validate checks field constraints and the cross-section rule that the
// postgres source needs database.url.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalidConfig, e.Namespace(), e.Tag(), e.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Data.Source == SourcePostgres && c.Database.URL == "" {
		return fmt.Errorf("%w: database.url is required for the postgres source", ErrInvalidConfig)
	}

	return nil
}
