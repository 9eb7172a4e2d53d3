package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Identity IdentityConfig `yaml:"identity"`
	AI       AIConfig       `yaml:"ai"`
	Client   ClientConfig   `yaml:"client"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `yaml:"port" env:"SERVER_PORT"`
	Host string `yaml:"host" env:"SERVER_HOST"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE"`
}

// IdentityConfig holds identity provider configuration
type IdentityConfig struct {
	Secret  string `yaml:"secret" env:"IDENTITY_SECRET"`
	BaseURL string `yaml:"base_url" env:"IDENTITY_BASE_URL"`
	APIKey  string `yaml:"api_key" env:"IDENTITY_API_KEY"`
}

// AIConfig holds the generative-AI relay configuration
type AIConfig struct {
	APIKey  string `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model   string `yaml:"model" env:"GEMINI_MODEL"`
	BaseURL string `yaml:"base_url" env:"GEMINI_BASE_URL"`
}

// ClientConfig holds the public client configuration served on /firebase-config
type ClientConfig struct {
	APIKey            string `yaml:"api_key" env:"FIREBASE_API_KEY" json:"apiKey"`
	AuthDomain        string `yaml:"auth_domain" env:"FIREBASE_AUTH_DOMAIN" json:"authDomain"`
	ProjectID         string `yaml:"project_id" json:"projectId"`
	StorageBucket     string `yaml:"storage_bucket" json:"storageBucket"`
	MessagingSenderID string `yaml:"messaging_sender_id" json:"messagingSenderId"`
	AppID             string `yaml:"app_id" json:"appId"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// Load reads configuration from a YAML file, then applies environment
// overrides so secrets can stay out of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return &cfg, nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
