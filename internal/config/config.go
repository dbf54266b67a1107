package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	// Environment variables
	_ "github.com/joho/godotenv/autoload"
)

const (
	ProviderBrevo    = "brevo"
	ProviderSendGrid = "sendgrid"
)

// Config holds application configuration
type Config struct {
	Addr     string
	LogLevel string

	// Email
	EmailProvider   string
	BrevoBaseURL    string
	SendGridBaseURL string
	AdminEmail      string
	AdminName       string
	SenderEmail     string
	SenderName      string
	NotifyTimeout   time.Duration

	// Chat hand-off
	WhatsAppNumber string

	// Draft sessions
	RedisAddr     string
	RedisPassword string
	SessionTTL    time.Duration
	SecureCookies bool

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Addr:     getEnv("ADDR", ":8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		EmailProvider:   strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", ProviderBrevo))),
		BrevoBaseURL:    getEnv("BREVO_BASE_URL", "https://api.brevo.com"),
		SendGridBaseURL: getEnv("SENDGRID_BASE_URL", ""),
		AdminEmail:      getEnv("ADMIN_EMAIL", "trustyyellowcabs@gmail.com"),
		AdminName:       getEnv("ADMIN_NAME", "Trustyyellowcabs Admin"),
		SenderEmail:     getEnv("SENDER_EMAIL", "trustyyellowcabs@gmail.com"),
		SenderName:      getEnv("SENDER_NAME", "Trustyyellowcabs Booking"),
		NotifyTimeout:   getEnvAsDuration("NOTIFY_TIMEOUT", 15*time.Second),

		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "918870088020"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		SecureCookies: getEnvAsBool("SECURE_COOKIES", false),

		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 1),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 5),
	}
}

// BrevoAPIKey returns the Brevo credential. It is read on every call so a
// rotated key takes effect without a restart; API_KEY is accepted as a
// fallback name.
func BrevoAPIKey() string {
	if key := strings.TrimSpace(os.Getenv("BREVO_API_KEY")); key != "" {
		return key
	}
	return strings.TrimSpace(os.Getenv("API_KEY"))
}

// SendGridAPIKey returns the SendGrid credential, read on every call.
func SendGridAPIKey() string {
	return strings.TrimSpace(os.Getenv("SENDGRID_API_KEY"))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
