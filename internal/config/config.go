package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when loaded values fail validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env           string `mapstructure:"env" validate:"required,oneof=local production"`
	LogLevel      string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFile       string `mapstructure:"log_file"`                                          // empty logs to stderr
	DBPath        string `mapstructure:"db_path"`                                           // empty uses the XDG data dir
	Namespace     string `mapstructure:"namespace" validate:"required,oneof=kupu tokotoko"` // storage key prefix
	SnapshotsKeep int    `mapstructure:"snapshots_keep" validate:"gte=1,lte=50"`            // backups kept per key
	Splash        bool   `mapstructure:"splash"`                                            // show the welcome screen on launch
}

var validate = validator.New()

// Load reads configuration from an optional config file, a .env file in the
// working directory, and KUPU_-prefixed environment variables. An explicit
// file path must exist; otherwise config.yaml is looked up in ./config and
// the user config dir.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "kupu"))
		}
	}

	v.SetDefault("env", "local")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("db_path", "")
	v.SetDefault("namespace", "kupu")
	v.SetDefault("snapshots_keep", 10)
	v.SetDefault("splash", true)

	v.SetEnvPrefix("KUPU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("db_path", "KUPU_DB_PATH", "KUPU_DB")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its documented range.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// IsProduction reports whether the production environment is selected.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
