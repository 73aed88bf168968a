package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Validation errors returned by Load and Validate.
var (
	ErrMissingFilmsAPIURL = errors.New("FILMS_API_URL is required")
	ErrInvalidTimeout     = errors.New("FILMS_API_TIMEOUT_SECS must be positive")
	ErrInvalidRateLimit   = errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be non-negative")
	ErrInvalidLogFormat   = errors.New("LOG_FORMAT must be json or text")
)

// Config captures all runtime configuration. Values come from an optional TOML
// file named by CATALOG_CONFIG, then from environment variables.
type Config struct {
	Port                string  `toml:"port"`
	FilmsAPIURL         string  `toml:"films_api_url"`
	FilmsAPITimeoutSecs int     `toml:"films_api_timeout_secs"`
	ReadTimeoutSecs     int     `toml:"read_timeout_secs"`
	WriteTimeoutSecs    int     `toml:"write_timeout_secs"`
	IdleTimeoutSecs     int     `toml:"idle_timeout_secs"`
	RateLimitRPS        float64 `toml:"rate_limit_rps"`
	RateLimitBurst      int     `toml:"rate_limit_burst"`
	StrictMagnitudes    bool    `toml:"strict_magnitudes"`
	LogLevel            string  `toml:"log_level"`
	LogFormat           string  `toml:"log_format"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:                "8080",
		FilmsAPITimeoutSecs: 5,
		ReadTimeoutSecs:     15,
		WriteTimeoutSecs:    15,
		IdleTimeoutSecs:     60,
		RateLimitRPS:        20,
		RateLimitBurst:      40,
		LogLevel:            "info",
		LogFormat:           "json",
	}
}

// Load reads configuration, applying defaults and validation.
func Load() (Config, error) {
	cfg, err := Read()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read assembles the configuration without validating it.
func Read() (Config, error) {
	base := Defaults()
	if path := strings.TrimSpace(os.Getenv("CATALOG_CONFIG")); path != "" {
		if err := loadFile(path, &base); err != nil {
			return Config{}, err
		}
	}

	// APIFILMES is the variable name older deployments use.
	apiURL := getEnv("APIFILMES", base.FilmsAPIURL)
	apiURL = getEnv("FILMS_API_URL", apiURL)

	return Config{
		Port:                getEnv("PORT", base.Port),
		FilmsAPIURL:         apiURL,
		FilmsAPITimeoutSecs: getEnvInt("FILMS_API_TIMEOUT_SECS", base.FilmsAPITimeoutSecs),
		ReadTimeoutSecs:     getEnvInt("SERVER_READ_TIMEOUT", base.ReadTimeoutSecs),
		WriteTimeoutSecs:    getEnvInt("SERVER_WRITE_TIMEOUT", base.WriteTimeoutSecs),
		IdleTimeoutSecs:     getEnvInt("SERVER_IDLE_TIMEOUT", base.IdleTimeoutSecs),
		RateLimitRPS:        getEnvFloat("RATE_LIMIT_RPS", base.RateLimitRPS),
		RateLimitBurst:      getEnvInt("RATE_LIMIT_BURST", base.RateLimitBurst),
		StrictMagnitudes:    getEnvBool("STRICT_MAGNITUDES", base.StrictMagnitudes),
		LogLevel:            getEnv("LOG_LEVEL", base.LogLevel),
		LogFormat:           getEnv("LOG_FORMAT", base.LogFormat),
	}, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.FilmsAPIURL) == "" {
		return ErrMissingFilmsAPIURL
	}
	if c.FilmsAPITimeoutSecs <= 0 {
		return ErrInvalidTimeout
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return ErrInvalidRateLimit
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return ErrInvalidLogFormat
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}
