package config

import (
	"os"
	"strconv"
)

type Config struct {
	ProjectID string
	LogLevel  string
	Port      string
	RedisAddr string
	// Timezone periods are anchored in. DuitTrack users budget in local
	// Indonesian time, so "today" and period boundaries follow this zone.
	Timezone string
	// CacheTTL is the period-data cache lifetime in seconds.
	CacheTTL int
}

func New() *Config {
	return &Config{
		ProjectID: os.Getenv("PROJECTID"),
		LogLevel:  os.Getenv("LOGLEVEL"),
		Port:      getEnvDefault("PORT", "8080"),
		RedisAddr: getEnvDefault("REDISADDR", "localhost:6379"),
		Timezone:  getEnvDefault("TIMEZONE", "Asia/Jakarta"),
		CacheTTL:  getEnvIntDefault("CACHETTL", 300),
	}
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntDefault(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
