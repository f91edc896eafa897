package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string

	Timezone        *time.Location
	CalendarID      string
	PromoFolderID   string
	MessagesFolder  string
	ServicesSheetID string
	ServicesRange   string

	CredentialsFile string
	RefreshSchedule string
	AllowedOrigins  []string
}

// Load loads configuration from environment variables. Outside of
// production a .env file is loaded first when present.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:     env,
		Port:            os.Getenv("PORT"),
		CalendarID:      os.Getenv("CALENDAR_ID"),
		PromoFolderID:   os.Getenv("PROMO_FOLDER_ID"),
		MessagesFolder:  os.Getenv("MESSAGES_FOLDER_ID"),
		ServicesSheetID: os.Getenv("SERVICES_SHEET_ID"),
		ServicesRange:   os.Getenv("SERVICES_RANGE"),
		CredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		RefreshSchedule: os.Getenv("REFRESH_CRON"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.ServicesRange == "" {
		cfg.ServicesRange = "Services!A1:K20"
	}
	if cfg.RefreshSchedule == "" {
		cfg.RefreshSchedule = "@every 15m"
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	tz := os.Getenv("TIMEZONE")
	if tz == "" {
		tz = "Europe/Prague"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", tz, err)
	}
	cfg.Timezone = loc

	return cfg, nil
}
