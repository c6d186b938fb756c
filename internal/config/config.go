// Package config resolves the CLI configuration from defaults, a YAML file,
// the environment and command-line flags.
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

// Format is an output format of the review command.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

const (
	configName = ".github-annual-review"
	tokenEnv   = "GITHUB_TOKEN"
	envPrefix  = "GAR"
	// firstYear is the year GitHub launched; there is no activity before it.
	firstYear = 2008
)

var (
	// ErrMissingToken is returned when no GitHub token was configured.
	ErrMissingToken = errors.New("GITHUB_TOKEN environment variable is not set")
	// ErrMissingUser is returned by commands that cannot default to the authenticated user.
	ErrMissingUser = errors.New(`required flag "user" not set`)
)

// Config holds the validated, final configuration.
type Config struct {
	Token         string `mapstructure:"token"`
	User          string `mapstructure:"user"`
	Year          int    `mapstructure:"year"`
	Format        Format `mapstructure:"format"`
	Save          bool   `mapstructure:"save"`
	StorePath     string `mapstructure:"store"`
	EnterpriseURL string `mapstructure:"enterprise-url"`
	Verbose       bool   `mapstructure:"verbose"`
}

// NewViper returns a viper instance wired to the environment and the defaults.
// Without an explicit file, Load searches the working and home directories.
func NewViper(now time.Time) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("user", "")
	v.SetDefault("year", now.Year())
	v.SetDefault("format", string(FormatJSON))
	v.SetDefault("save", false)
	v.SetDefault("store", DefaultStorePath())
	v.SetDefault("enterprise-url", "")
	v.SetDefault("verbose", false)
	return v
}

// Load reads the config file and unmarshals every resolved value. An explicit
// configFile must exist; a searched one is optional.
func Load(v *viper.Viper, configFile string, now time.Time) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	// GITHUB_TOKEN wins over GAR_TOKEN and the config file.
	if token := os.Getenv(tokenEnv); token != "" {
		cfg.Token = token
	}
	cfg.Format = Format(strings.ToLower(string(cfg.Format)))
	if err := cfg.Validate(now); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that do not depend on the command being run.
func (c *Config) Validate(now time.Time) error {
	if c.Year < firstYear || c.Year > now.Year()+1 {
		return fmt.Errorf("invalid year %d: must be between %d and %d", c.Year, firstYear, now.Year()+1)
	}
	switch c.Format {
	case FormatJSON, FormatYAML, FormatText:
	default:
		return fmt.Errorf("invalid format %q: must be one of json, yaml, text", c.Format)
	}
	if c.StorePath == "" {
		return errors.New("store path must not be empty")
	}
	return nil
}

// RequireToken returns ErrMissingToken when no token is configured.
func (c *Config) RequireToken() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	return nil
}

// RequireUser returns ErrMissingUser when no user login is configured.
func (c *Config) RequireUser() error {
	if c.User == "" {
		return ErrMissingUser
	}
	return nil
}

// DefaultStorePath is the SQLite archive location under the user's home directory.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, configName, "reviews.db")
}
