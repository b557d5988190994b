package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	Telegram TelegramConfig
	Relay    RelayConfig
	Server   ServerConfig
}

type TelegramConfig struct {
	Token  string
	ChatID string
	Debug  bool
}

type RelayConfig struct {
	AttachmentTimeout time.Duration
	AttachmentDelay   time.Duration
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Telegram: TelegramConfig{
			Token:  getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID: getEnv("TELEGRAM_CHAT_ID", ""),
			Debug:  getEnvAsBool("TELEGRAM_DEBUG", false),
		},
		Relay: RelayConfig{
			AttachmentTimeout: getEnvAsDuration("RELAY_ATTACHMENT_TIMEOUT", 30*time.Second),
			AttachmentDelay:   getEnvAsDuration("RELAY_ATTACHMENT_DELAY", 500*time.Millisecond),
		},
		Server: ServerConfig{
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
	}
}

// TelegramConfigured сообщает, заданы ли обязательные секреты Telegram.
// Их отсутствие не валит процесс: эндпоинт отвечает 500 на каждую отправку.
func (c *AppConfig) TelegramConfigured() bool {
	return c.Telegram.Token != "" && c.Telegram.ChatID != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
