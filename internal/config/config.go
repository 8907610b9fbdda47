package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/shenikar/drought_response_system/internal/models"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass      string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	RecordCacheTTL time.Duration `env:"RECORD_CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Telegram Config
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Учетные записи для проверки логина: username:password:ROLE через запятую
	Users []Credential `env:"AUTH_USERS"`

	// Dashboard Config
	RecordStoreURL    string        `env:"RECORD_STORE_URL"`
	RecordStoreAPIKey string        `env:"RECORD_STORE_API_KEY"`
	StoreTimeout      time.Duration `env:"STORE_TIMEOUT" envDefault:"10s"`
	ResyncSchedule    string        `env:"RESYNC_SCHEDULE" envDefault:"@every 5m"`
}

// Credential - одна учетная запись для проверки логина
type Credential struct {
	Username string
	Password string
	Role     models.Role
}

// defaultUsers повторяет демо-учетки платформы
const defaultUsers = "gov:123:GOVERNMENT,ngo:123:NGO,district:123:DISTRICT_OFFICER"

// LoadStoreConfig загружает конфигурацию хранилища записей из переменных окружения и .env файла
func LoadStoreConfig() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// LoadDashboardConfig загружает конфигурацию дашборда
func LoadDashboardConfig() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if cfg.RecordStoreURL == "" {
		return nil, fmt.Errorf("RECORD_STORE_URL environment variable is required")
	}

	return cfg, nil
}

func load() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		RecordCacheTTL:    getEnvAsDuration("RECORD_CACHE_TTL", 5*time.Minute),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:    int64(getEnvAsInt("TELEGRAM_CHAT_ID", 0)),
		RecordStoreURL:    strings.TrimRight(os.Getenv("RECORD_STORE_URL"), "/"),
		RecordStoreAPIKey: os.Getenv("RECORD_STORE_API_KEY"),
		StoreTimeout:      getEnvAsDuration("STORE_TIMEOUT", 10*time.Second),
		ResyncSchedule:    getEnv("RESYNC_SCHEDULE", "@every 5m"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	users, err := ParseCredentials(getEnv("AUTH_USERS", defaultUsers))
	if err != nil {
		return nil, err
	}
	cfg.Users = users

	return cfg, nil
}

// ParseCredentials разбирает строку вида "user:pass:ROLE,user2:pass2:ROLE2"
func ParseCredentials(raw string) ([]Credential, error) {
	var creds []Credential
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid AUTH_USERS entry %q: expected username:password:ROLE", entry)
		}
		role := models.Role(strings.TrimSpace(parts[2]))
		switch role {
		case models.RoleGovernment, models.RoleNGO, models.RoleDistrictOfficer:
		default:
			return nil, fmt.Errorf("invalid AUTH_USERS entry %q: unknown role %s", entry, role)
		}
		creds = append(creds, Credential{
			Username: strings.TrimSpace(parts[0]),
			Password: parts[1],
			Role:     role,
		})
	}
	return creds, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
