package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Billing  BillingConfig  `toml:"billing"`
	Mail     MailConfig     `toml:"mail"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig параметры HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig параметры аутентификации владельцев
type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
	BcryptCost    int    `toml:"bcrypt_cost"`
}

// BillingConfig параметры биллинга (Stripe)
type BillingConfig struct {
	APIKey            string  `toml:"api_key"`
	WebhookSecret     string  `toml:"webhook_secret"`
	SubscriptionPrice float64 `toml:"subscription_price"`
	Currency          string  `toml:"currency"`
	SuccessURL        string  `toml:"success_url"`
	CancelURL         string  `toml:"cancel_url"`
}

// MailConfig параметры почтовых уведомлений (SendGrid)
type MailConfig struct {
	Enabled   bool   `toml:"enabled"`
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
}

// BookingConfig параметры бронирования
type BookingConfig struct {
	// PublicRequiresActiveAccess включает проверку подписки/триала
	// на публичной странице записи. По умолчанию выключено: клиенты
	// могут записываться даже к владельцу с истёкшим доступом.
	PublicRequiresActiveAccess bool `toml:"public_requires_active_access"`
	TrialDays                  int  `toml:"trial_days"`
	SubscriptionDays           int  `toml:"subscription_days"`
}

// Load загружает конфигурацию из TOML-файла.
// Секреты можно переопределить переменными окружения, чтобы
// не хранить их в файле.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: auth.jwt_secret is required")
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-appointment-service",
		},
		Auth: AuthConfig{
			TokenTTLHours: 24 * 7,
			BcryptCost:    10,
		},
		Billing: BillingConfig{
			Currency: "rub",
		},
		Booking: BookingConfig{
			TrialDays:        7,
			SubscriptionDays: 30,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("STRIPE_API_KEY"); v != "" {
		cfg.Billing.APIKey = v
	}
	if v := os.Getenv("STRIPE_WEBHOOK_SECRET"); v != "" {
		cfg.Billing.WebhookSecret = v
	}
	if v := os.Getenv("SENDGRID_API_KEY"); v != "" {
		cfg.Mail.APIKey = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
}
