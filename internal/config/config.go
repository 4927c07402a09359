package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DataDir        string
	StaticDir      string
	SecretKey      []byte
	RandomizeOrder bool
	SessionTTL     time.Duration
}

// Load reads configuration from the environment, with .env support for
// local development. A missing SECRET_KEY gets a random ephemeral one,
// which means session cookies do not survive a restart.
func Load() *Config {
	_ = godotenv.Load()

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		buf := make([]byte, 24)
		if _, err := rand.Read(buf); err != nil {
			log.Fatalf("[config] generate secret key: %v", err)
		}
		secret = hex.EncodeToString(buf)
		log.Printf("[config] SECRET_KEY not set, generated an ephemeral one")
	}

	ttl := 12 * time.Hour
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Minute
		}
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DataDir:        getEnv("DATA_DIR", "data"),
		StaticDir:      getEnv("STATIC_DIR", "static"),
		SecretKey:      []byte(secret),
		RandomizeOrder: os.Getenv("QUIZ_RANDOMIZE") == "true",
		SessionTTL:     ttl,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
