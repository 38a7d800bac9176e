package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	APIHost string
	APIPort string

	FirebaseCredentialsPath string
	FirebaseProjectID       string

	ResendAPIKey  string
	FromEmail     string
	SkipEmailSend bool

	// JWTSecret signs the session token returned by code verification.
	JWTSecret     string
	JWTExpiration time.Duration

	// EventsSecret is the bearer token required on /events pushes.
	// When empty every push is rejected.
	EventsSecret string

	// EnableListener starts the Firestore snapshot listener in-process.
	// Leave it off when creation events are pushed to /events instead.
	EnableListener bool

	AllowedOrigins []string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		APIHost:                 getEnv("API_HOST", "0.0.0.0"),
		APIPort:                 getEnv("API_PORT", "8080"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		ResendAPIKey:            getEnv("RESEND_API_KEY", ""),
		FromEmail:               getEnv("FROM_EMAIL", "noreply@engage.app"),
		SkipEmailSend:           getEnvBool("SKIP_EMAIL_SEND", false),
		JWTSecret:               getEnv("JWT_SECRET", ""),
		JWTExpiration:           getEnvDuration("JWT_EXPIRATION", 168*time.Hour),
		EventsSecret:            getEnv("EVENTS_SECRET", ""),
		EnableListener:          getEnvBool("ENABLE_LISTENER", false),
		AllowedOrigins:          strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogFormat:               getEnv("LOG_FORMAT", "json"),
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.APIHost + ":" + c.APIPort
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
