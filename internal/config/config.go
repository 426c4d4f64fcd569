package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	GinMode   string

	RedisAddr     string // empty selects the in-memory rate limiter
	RedisPassword string
	RateLimit     int
	RateWindow    time.Duration

	SearchTimeout        time.Duration
	SearchCandidateLimit int // per category, applied before combinations are built
}

// Load 加载配置
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := &Config{
		Port:                 getEnv("PORT", ":8080"),
		DBPath:               getEnv("DB_PATH", "./data/travel.db"),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		GinMode:              getEnv("GIN_MODE", "debug"),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisPassword:        getEnv("REDIS_PASSWORD", ""),
		RateLimit:            getEnvInt("RATE_LIMIT", 120),
		RateWindow:           getEnvDuration("RATE_WINDOW", time.Minute),
		SearchTimeout:        getEnvDuration("SEARCH_TIMEOUT", 10*time.Second),
		SearchCandidateLimit: getEnvInt("SEARCH_CANDIDATE_LIMIT", 50),
	}
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is not set, booking endpoints will reject requests")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		log.Printf("Warning: invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return v
}
