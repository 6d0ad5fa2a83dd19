package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	BackendURL  string
	PushURL     string
	HTTPTimeout time.Duration
	NotifyTTL   time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		Port:        getEnv("PORT", "8000"),
		BackendURL:  getEnv("BACKEND_URL", "http://localhost:3001"),
		PushURL:     getEnv("PUSH_URL", "ws://localhost:3001/push"),
		HTTPTimeout: getDuration("HTTP_TIMEOUT", 10*time.Second),
		NotifyTTL:   getDuration("NOTIFY_TTL", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
