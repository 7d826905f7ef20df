// Package config resolves runtime settings from defaults, an optional
// fipscrape.yaml file and FIPSCRAPE_-prefixed environment variables,
// in increasing order of precedence. Command-line flags override all
// of these at the CLI layer.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every tunable the pipeline reads. URL templates carry a
// single %d (calendar year) or are joined with path segments by callers.
type Config struct {
	CalendarURL string        // yearly calendar page, %d = year
	WidgetURL   string        // results-widget base URL
	RankingURL  string        // male ranking page
	UserAgent   string        // browser-like identification header
	Timeout     time.Duration // per-request transport timeout
	Retries     int           // fetch attempts before giving up
	Delay       time.Duration // politeness pause after each per-day fetch
	LogLevel    string
	LogFormat   string // text or json
}

// Load builds the configuration. A missing config file is not an error;
// a malformed one is.
func Load() (*Config, error) {
	// .env is optional and only feeds the environment
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("calendar_url", "https://www.padelfip.com/calendar/?events-year=%d")
	v.SetDefault("widget_url", "https://widget.matchscorerlive.com")
	v.SetDefault("ranking_url", "https://www.padelfip.com/ranking-male/")
	v.SetDefault("user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	v.SetDefault("timeout", 60*time.Second)
	v.SetDefault("retries", 3)
	v.SetDefault("delay", 400*time.Millisecond)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix("FIPSCRAPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("fipscrape")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return &Config{
		CalendarURL: v.GetString("calendar_url"),
		WidgetURL:   strings.TrimRight(v.GetString("widget_url"), "/"),
		RankingURL:  v.GetString("ranking_url"),
		UserAgent:   v.GetString("user_agent"),
		Timeout:     v.GetDuration("timeout"),
		Retries:     v.GetInt("retries"),
		Delay:       v.GetDuration("delay"),
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
	}, nil
}
