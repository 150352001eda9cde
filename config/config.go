package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	RedisAddr  string // empty means in-memory verdict cache
	RateLimit  int
	RateWindow time.Duration
	CacheTTL   time.Duration
}

// Load reads configuration from the environment, with a .env file applied
// first when one exists. A missing .env is not an error.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	return &Config{
		Port:       getEnv("PORT", "8080"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RateLimit:  getEnvInt("RATE_LIMIT", 5),
		RateWindow: getEnvDuration("RATE_WINDOW", time.Minute),
		CacheTTL:   getEnvDuration("CACHE_TTL", 5*time.Minute),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid value for %s: %q, using %d", k, v, def)
		return def
	}
	return n
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: invalid value for %s: %q, using %s", k, v, def)
		return def
	}
	return d
}
