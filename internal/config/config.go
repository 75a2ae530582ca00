package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr    string
	DatabasePath  string
	DataDir       string
	PublicBaseURL string
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from the environment, after loading an optional
// .env file. Missing keys fall back to development defaults; ADMIN_PASSWORD
// has no default and must be set before the admin account can be seeded.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "./data/inkwell.db"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
