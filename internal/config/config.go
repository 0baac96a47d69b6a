package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSSLMode  string `yaml:"db_sslmode"`

	ServerPort  string   `yaml:"server_port"`
	CORSOrigins []string `yaml:"cors_origins"`

	TokenSecret string        `yaml:"token_secret"`
	TokenTTL    time.Duration `yaml:"token_ttl"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	SessionTTL time.Duration `yaml:"session_ttl"`

	EventsEnabled bool   `yaml:"events_enabled"`
	EventsChannel string `yaml:"events_channel"`
}

// Load reads configuration in three layers: built-in defaults, an optional
// YAML file (CONFIG_FILE, config.yaml by default) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	cfg := defaults()

	if err := cfg.loadFile(getEnv("CONFIG_FILE", "config.yaml")); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DSN builds a key/value postgres connection string understood by both
// pgx (gorm) and lib/pq (the notification listener).
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func defaults() *Config {
	return &Config{
		DBHost:        "localhost",
		DBPort:        "5432",
		DBUser:        "todoboard",
		DBPassword:    "todoboard",
		DBName:        "todoboard",
		DBSSLMode:     "disable",
		ServerPort:    "8080",
		CORSOrigins:   []string{"http://localhost:3000"},
		TokenSecret:   "supersecretkey",
		TokenTTL:      24 * time.Hour,
		LogLevel:      "info",
		LogFormat:     "text",
		SessionTTL:    30 * time.Minute,
		EventsEnabled: true,
		EventsChannel: "board_events",
	}
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	// ${VAR} placeholders are replaced with the environment before parsing.
	content := os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	})

	if err := yaml.Unmarshal([]byte(content), c); err != nil {
		return fmt.Errorf("error parsing config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.DBHost = getEnv("DB_HOST", c.DBHost)
	c.DBPort = getEnv("DB_PORT", c.DBPort)
	c.DBUser = getEnv("DB_USER", c.DBUser)
	c.DBPassword = getEnv("DB_PASSWORD", c.DBPassword)
	c.DBName = getEnv("DB_NAME", c.DBName)
	c.DBSSLMode = getEnv("DB_SSLMODE", c.DBSSLMode)
	c.ServerPort = getEnv("SERVER_PORT", c.ServerPort)
	c.TokenSecret = getEnv("TOKEN_SECRET", c.TokenSecret)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.EventsChannel = getEnv("EVENTS_CHANNEL", c.EventsChannel)

	if origins, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		c.CORSOrigins = splitList(origins)
	}

	var err error
	if c.TokenTTL, err = getDuration("TOKEN_TTL", c.TokenTTL); err != nil {
		return err
	}
	if c.SessionTTL, err = getDuration("SESSION_TTL", c.SessionTTL); err != nil {
		return err
	}
	if value, ok := os.LookupEnv("EVENTS_ENABLED"); ok {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid EVENTS_ENABLED value: %w", err)
		}
		c.EventsEnabled = enabled
	}
	return nil
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.DBPort); err != nil {
		return fmt.Errorf("invalid DB_PORT value %q: %w", c.DBPort, err)
	}
	if c.TokenSecret == "" {
		return errors.New("token secret must not be empty")
	}
	if c.TokenTTL <= 0 || c.SessionTTL <= 0 {
		return errors.New("token and session TTL must be positive")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
