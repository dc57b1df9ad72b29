package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the connection settings for the engine's collaborators.
type Config struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
}

// Load reads configuration from a .env file when present, then the
// environment, falling back to local defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "branding_report"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
