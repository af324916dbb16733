// Package config loads settings for the wordcalc servers from the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// HTTP API
	Addr string

	// Auth. Requests need no token when empty.
	APIKey string

	// Evaluation
	Prec uint

	// Request limits
	MaxBodyBytes int64
	MaxTextRunes int

	// Server timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Logging
	Debug bool
}

func Load() Config {
	cfg := Config{
		Addr: env("WORDCALC_ADDR", ":8090", str),

		APIKey: os.Getenv("WORDCALC_API_KEY"),

		Prec: env("WORDCALC_PREC", 64, parseUint),

		MaxBodyBytes: env("WORDCALC_MAX_BODY_BYTES", 1<<16, parseInt64),
		MaxTextRunes: env("WORDCALC_MAX_TEXT_RUNES", 4096, strconv.Atoi),

		ReadTimeout:     env("WORDCALC_READ_TIMEOUT", 10*time.Second, time.ParseDuration),
		WriteTimeout:    env("WORDCALC_WRITE_TIMEOUT", 10*time.Second, time.ParseDuration),
		ShutdownTimeout: env("WORDCALC_SHUTDOWN_TIMEOUT", 10*time.Second, time.ParseDuration),

		Debug: env("WORDCALC_DEBUG", false, strconv.ParseBool),
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 16
	}
	if cfg.MaxTextRunes <= 0 {
		cfg.MaxTextRunes = 4096
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("WORDCALC_ADDR must not be empty")
	}
	if c.Prec == 0 {
		return fmt.Errorf("WORDCALC_PREC must be positive")
	}
	if c.Prec > 1<<16 {
		return fmt.Errorf("WORDCALC_PREC (%d) is too large", c.Prec)
	}
	return nil
}

// env parses the variable key, falling back when it is unset or malformed.
func env[T any](key string, fallback T, parse func(string) (T, error)) T {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	r, err := parse(v)
	if err != nil {
		return fallback
	}
	return r
}

func str(v string) (string, error) { return v, nil }

func parseUint(v string) (uint, error) {
	n, err := strconv.ParseUint(v, 10, 0)
	return uint(n), err
}

func parseInt64(v string) (int64, error) {
	return strconv.ParseInt(v, 10, 64)
}
