package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	Database  string
	Port      string
	ClientURL string
}

// Load reads configuration from the environment, after a best-effort .env
// load. ClientURL empty means the API is open to all origins.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:  getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database:  getEnv("DB_NAME", "scoopshop"),
		Port:      getEnv("PORT", "3005"),
		ClientURL: os.Getenv("CLIENT_URL"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
