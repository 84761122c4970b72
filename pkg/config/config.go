package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DatabaseURL        string
	JWTSecret          string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	GoogleProjectID    string
	GooglePubSubTopic  string
	GoogleCredentials  string
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioFromNumber   string
	SendgridAPIKey     string
	SendgridFromEmail  string
	SendgridFromName   string
	BroadcastWorkers   int
	SendTimeout        time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	workers := 5
	if w := os.Getenv("BROADCAST_WORKERS"); w != "" {
		if parsed, err := strconv.Atoi(w); err == nil && parsed > 0 {
			workers = parsed
		}
	}

	sendTimeout := 10 * time.Second
	if t := os.Getenv("SEND_TIMEOUT"); t != "" {
		if parsed, err := time.ParseDuration(t); err == nil {
			sendTimeout = parsed
		}
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", "http://localhost:8080/api/calendar/callback"),
		GoogleProjectID:    getEnv("GOOGLE_PROJECT_ID", ""),
		GooglePubSubTopic:  getEnv("GOOGLE_PUBSUB_TOPIC", "recovery-events"),
		GoogleCredentials:  getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		TwilioAccountSID:   getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:    getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber:   getEnv("TWILIO_FROM_NUMBER", ""),
		SendgridAPIKey:     getEnv("SENDGRID_API_KEY", ""),
		SendgridFromEmail:  getEnv("SENDGRID_FROM_EMAIL", ""),
		SendgridFromName:   getEnv("SENDGRID_FROM_NAME", "RecoveryLink"),
		BroadcastWorkers:   workers,
		SendTimeout:        sendTimeout,
	}
}

// Validate fails fast on settings the service cannot start without.
// Provider credentials are checked by the client constructors instead, so a
// deployment without e.g. Twilio still boots with SMS disabled.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
