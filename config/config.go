package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"nutritrack/models"
)

type Config struct {
	Env         string
	Port        string
	CORSOrigins []string // empty allows every origin
	DB          DBConfig
	Reporting   ReportingConfig
	AWS         AWSConfig
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// ReportingConfig controls the weekly digest job and the zone weekdays are computed in.
type ReportingConfig struct {
	CronSchedule string
	Timezone     string
}

type AWSConfig struct {
	Region         string
	ReportTopicARN string // digest publishing is disabled when empty
}

// Load reads the environment (optionally seeded from envFile) into a Config.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		// a missing .env is fine, the process environment wins anyway
		_ = godotenv.Load()
	}

	cfg := &Config{
		Env:         getenv("APP_ENV", "development"),
		Port:        getenv("APP_PORT", "8080"),
		CORSOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		DB: DBConfig{
			Host:     getenv("DB_HOST", "localhost"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getenv("DB_PORT", "5432"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		Reporting: ReportingConfig{
			CronSchedule: getenv("REPORT_CRON_SCHEDULE", "0 20 * * 0"),
			Timezone:     getenv("TIMEZONE", "Local"),
		},
		AWS: AWSConfig{
			Region:         getenv("AWS_REGION", "ap-south-1"),
			ReportTopicARN: os.Getenv("SNS_REPORT_TOPIC_ARN"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and parseable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	switch {
	case c.Port == "":
		return errors.New("APP_PORT must be provided")
	case c.DB.User == "":
		return errors.New("DB_USER must be provided")
	case c.DB.Name == "":
		return errors.New("DB_NAME must be provided")
	}
	if _, err := cron.ParseStandard(c.Reporting.CronSchedule); err != nil {
		return fmt.Errorf("REPORT_CRON_SCHEDULE is invalid: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("TIMEZONE is invalid: %w", err)
	}
	return nil
}

// Location resolves the reporting time zone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Reporting.Timezone)
}

// DSN renders the postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}

// InitDB opens the postgres connection and migrates every model.
func InitDB(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	gcfg := &gorm.Config{}
	if cfg.Env == "production" {
		gcfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), gcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.MealLog{},
		&models.FoodEntry{},
		&models.DayGoal{},
		&models.ShoppingListItem{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	if log != nil {
		log.Info("database ready", zap.String("host", cfg.DB.Host), zap.String("db", cfg.DB.Name))
	}
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
