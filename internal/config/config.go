package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

type Config struct {
	Env                string
	LogLevel           string
	Language           string
	SeedFile           string
	TranslationFolder  string
	SupportedLanguages []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		Env:                getEnv("ONTRACK_ENV", EnvProduction),
		LogLevel:           getEnv("ONTRACK_LOG_LEVEL", "info"),
		Language:           getEnv("ONTRACK_LANGUAGE", "en"),
		SeedFile:           getEnv("ONTRACK_SEED_FILE", ""),
		TranslationFolder:  getEnv("ONTRACK_TRANSLATION_FOLDER", "pkg/translator/translation"),
		SupportedLanguages: parseList(getEnv("ONTRACK_SUPPORTED_LANGUAGES", "en,fr")),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
