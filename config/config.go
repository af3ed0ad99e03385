package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Worker   WorkerConfig   `yaml:"worker"`
	Notify   NotifyConfig   `yaml:"notify"`
}

type HTTPConfig struct {
	Address     string `yaml:"address"`
	SwaggerFile string `yaml:"swagger_file"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	AdmissionLockSeconds int `yaml:"admission_lock_seconds"`
	ListingsCacheTTL     int `yaml:"listings_cache_ttl_seconds"`
}

type WorkerConfig struct {
	ExpirationSweepMinutes int `yaml:"expiration_sweep_minutes"`
}

// NotifyConfig holds the notification channel credentials. The verified
// phone numbers list mirrors the numbers approved in the SMS provider
// console; SMS to anything else is skipped, not failed.
type NotifyConfig struct {
	SMTPHost             string   `yaml:"smtp_host"`
	SMTPPort             int      `yaml:"smtp_port"`
	EmailFrom            string   `yaml:"email_from"`
	EmailPassword        string   `yaml:"email_password"`
	SMSGatewayURL        string   `yaml:"sms_gateway_url"`
	SMSAPIKey            string   `yaml:"sms_api_key"`
	SMSSender            string   `yaml:"sms_sender"`
	VerifiedPhoneNumbers []string `yaml:"verified_phone_numbers"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Secrets may be kept out of the yaml file.
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("EMAIL_PASSWORD"); v != "" {
		cfg.Notify.EmailPassword = v
	}
	if v := os.Getenv("SMS_API_KEY"); v != "" {
		cfg.Notify.SMSAPIKey = v
	}

	return &cfg, nil
}
