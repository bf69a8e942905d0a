package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Env holds process-level settings: where inputs and outputs live and how
// to log.
type Env struct {
	ConfigPath     string
	ProductDir     string
	TranslationDir string
	OutputDir      string
	ScratchDir     string
	ImageTimeout   time.Duration
	LogLevel       string
	LogEncoding    string
}

// LoadEnv loads the optional dotenv files, then reads the environment.
// A missing dotenv file is not an error.
func LoadEnv(files ...string) *Env {
	_ = godotenv.Load(files...)
	return &Env{
		ConfigPath:     getEnv("PRICEBOOK_CONFIG", "config.json"),
		ProductDir:     getEnv("PRICEBOOK_PRODUCT_DIR", "inputs/shopify_product_csv"),
		TranslationDir: getEnv("PRICEBOOK_TRANSLATION_DIR", "inputs/shopify_translate_csv"),
		OutputDir:      getEnv("PRICEBOOK_OUTPUT_DIR", "outputs"),
		ScratchDir:     getEnv("PRICEBOOK_SCRATCH_DIR", "temp"),
		ImageTimeout:   getEnvDuration("PRICEBOOK_IMAGE_TIMEOUT", 10*time.Second),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogEncoding:    getEnv("LOG_ENCODING", "console"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
