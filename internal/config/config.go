// Package config loads runtime settings from .env and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the settings shared by the reversi binaries.
type Config struct {
	AppEnv     string // development / production
	LogLevel   string
	ServerPort string
	Seed       int64         // 0 表示按时间取种子
	AIDelay    time.Duration // GUI 中电脑落子前的停顿
}

// Load reads .env (if present) and then the environment, filling defaults.
func Load() (*Config, error) {
	// 没有 .env 文件时直接用环境变量
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:     os.Getenv("APP_ENV"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		ServerPort: os.Getenv("SERVER_PORT"),
		AIDelay:    600 * time.Millisecond,
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}

	if s := os.Getenv("REVERSI_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("REVERSI_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if s := os.Getenv("AI_DELAY_MS"); s != "" {
		ms, err := strconv.Atoi(s)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("AI_DELAY_MS must be a non-negative integer, got %q", s)
		}
		cfg.AIDelay = time.Duration(ms) * time.Millisecond
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// EffectiveSeed returns Seed, or a time based seed when Seed is 0.
func (c *Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewLogger builds the process logger: JSON in production, coloured text
// otherwise.
func NewLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	return log
}
