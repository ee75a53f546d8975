package config

import (
	"os"
	"strconv"
)

// Config holds all service settings, read from the environment.
type Config struct {
	Port            string
	BackendBaseURL  string
	RedisURI        string
	AdminUsername   string
	AdminPassword   string
	JWTSecret       string
	SessionTTLHours int
}

// Load reads configuration from environment variables with defaults
// suitable for local development.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		BackendBaseURL:  getEnv("BACKEND_BASE_URL", "http://localhost:3001/api"),
		RedisURI:        os.Getenv("REDIS_URI"),
		AdminUsername:   getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "qifukeji"),
		JWTSecret:       getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}
