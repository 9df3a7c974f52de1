package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

// Config captures all runtime configuration derived from environment variables
// and an optional config file.
type Config struct {
	Port                string
	ReadTimeoutSecs     int
	WriteTimeoutSecs    int
	IdleTimeoutSecs     int
	ShutdownTimeoutSecs int
	RateLimitEnabled    bool
	RateLimitRPS        float64
	RateLimitBurst      int
}

// Load reads configuration, applying defaults and validation. Environment
// variables take precedence over values from the file at path; an empty path
// skips the file entirely.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := Config{
		Port:                v.GetString("PORT"),
		ReadTimeoutSecs:     v.GetInt("SERVER_READ_TIMEOUT"),
		WriteTimeoutSecs:    v.GetInt("SERVER_WRITE_TIMEOUT"),
		IdleTimeoutSecs:     v.GetInt("SERVER_IDLE_TIMEOUT"),
		ShutdownTimeoutSecs: v.GetInt("SERVER_SHUTDOWN_TIMEOUT"),
		RateLimitEnabled:    v.GetBool("RATE_LIMIT_ENABLED"),
		RateLimitRPS:        v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:      v.GetInt("RATE_LIMIT_BURST"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_IDLE_TIMEOUT", 60)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 5)
	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
}

func (cfg Config) validate() error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535")
	}
	if cfg.ReadTimeoutSecs <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.WriteTimeoutSecs <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.IdleTimeoutSecs <= 0 {
		return fmt.Errorf("SERVER_IDLE_TIMEOUT must be positive")
	}
	if cfg.ShutdownTimeoutSecs <= 0 {
		return fmt.Errorf("SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.RateLimitEnabled {
		if cfg.RateLimitRPS <= 0 {
			return fmt.Errorf("RATE_LIMIT_RPS must be positive")
		}
		if cfg.RateLimitBurst <= 0 {
			return fmt.Errorf("RATE_LIMIT_BURST must be positive")
		}
	}
	return nil
}
