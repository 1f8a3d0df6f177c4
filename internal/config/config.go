package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	Port          string
	DBDSN         string
	SeedFile      string
	LogFile       string
	MaxImageBytes int
}

const defaultMaxImageBytes = 2 << 20

func Load() Config {
	// .env is optional; real environment wins
	_ = godotenv.Load()

	port := getEnv("PORT", "8080")
	// the search index lives in a shared in-memory database and never
	// outlives the process
	dsn := getEnv("DB_DSN", "file:bobamenu?mode=memory&cache=shared")
	seed := os.Getenv("SEED_FILE") // empty -> embedded catalog
	logFile := os.Getenv("LOG_FILE")

	maxImg, err := cast.ToIntE(getEnv("MAX_IMAGE_BYTES", ""))
	if err != nil || maxImg <= 0 {
		maxImg = defaultMaxImageBytes
	}

	cfg := Config{Port: port, DBDSN: dsn, SeedFile: seed, LogFile: logFile, MaxImageBytes: maxImg}
	log.Printf("[config] PORT=%s DB_DSN=%s SEED_FILE=%q LOG_FILE=%q MAX_IMAGE_BYTES=%d",
		cfg.Port, cfg.DBDSN, cfg.SeedFile, cfg.LogFile, cfg.MaxImageBytes)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
