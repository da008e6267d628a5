package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds server configuration read from the environment
type Config struct {
	RedisAddr     string
	RedisPassword string
	ServerPort    string
	PollInterval  time.Duration
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		PollInterval:  getEnvMillis("POLL_INTERVAL_MS", 1500),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvMillis(key string, fallback int) time.Duration {
	if val := os.Getenv(key); val != "" {
		if ms, err := strconv.Atoi(val); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(fallback) * time.Millisecond
}
