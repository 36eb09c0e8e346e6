package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds every runtime setting of the service.
type Config struct {
	Port     string
	LogLevel string

	DBPath string

	SourceURL       string
	SourceTimeout   time.Duration
	RefreshInterval time.Duration

	SigningKey string
	TokenTTL   time.Duration

	Locale            string
	LocaleTag         language.Tag // parsed Locale
	WSDefaultInterval time.Duration
}

const (
	envPrefix = "DASHBOARD"

	// minSigningKeyLen is the shortest accepted HS256 key. An empty key disables admin auth.
	minSigningKeyLen = 32
	// maxWSInterval is the longest summary stream interval the websocket handler accepts.
	maxWSInterval = time.Minute
)

// defaults applied before the config file and environment are read.
var defaults = map[string]any{
	"port":                    "8080",
	"log_level":               "info",
	"db.path":                 "dashboard.db",
	"source.url":              "https://pomber.github.io/covid19/timeseries.json",
	"source.timeout":          "30s",
	"source.refresh_interval": "1h",
	"auth.signing_key":        "",
	"auth.token_ttl":          "1h",
	"dashboard.locale":        "en",
	"ws.default_interval":     "5s",
}

// Load reads config.yml from dir (if present), applies DASHBOARD_* environment
// overrides and validates the result.
func Load(dir string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config in %q: %w", dir, err)
		}
	}

	cfg := &Config{
		Port:              v.GetString("port"),
		LogLevel:          strings.ToLower(v.GetString("log_level")),
		DBPath:            v.GetString("db.path"),
		SourceURL:         v.GetString("source.url"),
		SourceTimeout:     v.GetDuration("source.timeout"),
		RefreshInterval:   v.GetDuration("source.refresh_interval"),
		SigningKey:        v.GetString("auth.signing_key"),
		TokenTTL:          v.GetDuration("auth.token_ttl"),
		Locale:            v.GetString("dashboard.locale"),
		WSDefaultInterval: v.GetDuration("ws.default_interval"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.SourceURL == "":
		return errors.New("source.url must be set")
	case c.SourceTimeout <= 0:
		return fmt.Errorf("source.timeout must be positive, got %v", c.SourceTimeout)
	case c.RefreshInterval <= 0:
		return fmt.Errorf("source.refresh_interval must be positive, got %v", c.RefreshInterval)
	case c.TokenTTL <= 0:
		return fmt.Errorf("auth.token_ttl must be positive, got %v", c.TokenTTL)
	case c.WSDefaultInterval <= 0 || c.WSDefaultInterval > maxWSInterval:
		return fmt.Errorf("ws.default_interval must be in (0, %v], got %v", maxWSInterval, c.WSDefaultInterval)
	case c.SigningKey != "" && len(c.SigningKey) < minSigningKeyLen:
		return fmt.Errorf("auth.signing_key must be empty or at least %d bytes, got %d", minSigningKeyLen, len(c.SigningKey))
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return fmt.Errorf("dashboard.locale %q: %w", c.Locale, err)
	}
	c.LocaleTag = tag
	return nil
}
