package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const insecureSecretPlaceholder = "change_me_in_production"
const minSecretKeyLength = 32

type Config struct {
	Port         string
	DBPath       string
	Timezone     string
	SecretKey    string
	CookieSecure bool

	InsightAPIKey  string
	InsightModel   string
	InsightBaseURL string

	SpeechAPIKey  string
	SpeechBaseURL string
}

// Load reads configuration from the environment once at startup.
// Required credentials are checked by Validate, not here.
func Load() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", filepath.Join("data", "sana.db")),
		Timezone:     getEnv("TZ", "UTC"),
		SecretKey:    os.Getenv("SECRET_KEY"),
		CookieSecure: parseBool(getEnv("COOKIE_SECURE", "false")),

		InsightAPIKey:  os.Getenv("INSIGHT_API_KEY"),
		InsightModel:   getEnv("INSIGHT_MODEL", "gemini-2.5-flash-lite"),
		InsightBaseURL: getEnv("INSIGHT_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),

		SpeechAPIKey:  os.Getenv("SPEECH_API_KEY"),
		SpeechBaseURL: getEnv("SPEECH_BASE_URL", "https://api.elevenlabs.io"),
	}
}

// Validate fails fast on missing or unusable credentials so a
// misconfigured process never reaches its first request.
func (config Config) Validate() error {
	secret := strings.TrimSpace(config.SecretKey)
	if secret == "" {
		return errors.New("SECRET_KEY is required")
	}
	if secret == insecureSecretPlaceholder {
		return errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return errors.New("SECRET_KEY must be at least 32 characters")
	}
	if strings.TrimSpace(config.InsightAPIKey) == "" {
		return errors.New("INSIGHT_API_KEY is required")
	}
	if strings.TrimSpace(config.SpeechAPIKey) == "" {
		return errors.New("SPEECH_API_KEY is required")
	}
	return nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func parseBool(value string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	return normalized == "1" || normalized == "true" || normalized == "on" || normalized == "yes"
}
