package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Ledger struct {
		// AutoCreateSubjects lets attendance/mark writes create a missing
		// subject by name instead of rejecting the write.
		AutoCreateSubjects bool    `yaml:"auto_create_subjects" env:"LEDGER_AUTO_CREATE_SUBJECTS"`
		DefaultMaxMarks    float64 `yaml:"default_max_marks" env:"LEDGER_DEFAULT_MAX_MARKS"`
	} `yaml:"ledger"`

	Library struct {
		FinePerDay    float64 `yaml:"fine_per_day" env:"LIBRARY_FINE_PER_DAY"`
		LoanDays      int     `yaml:"loan_days" env:"LIBRARY_LOAN_DAYS"`
		OverdueSweep  string  `yaml:"overdue_sweep" env:"LIBRARY_OVERDUE_SWEEP"`
	} `yaml:"library"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// A .env file is optional; ignore when missing
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults fills in sane defaults before the file and environment are applied
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "debug"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.DBName = "sdms"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.Ledger.AutoCreateSubjects = true
	config.Ledger.DefaultMaxMarks = 100

	config.Library.FinePerDay = 5
	config.Library.LoanDays = 14
	config.Library.OverdueSweep = "0 1 * * *"

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// validateConfig checks required fields
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if config.Database.Host == "" || config.Database.DBName == "" {
		return fmt.Errorf("database host and name are required")
	}
	if config.Library.FinePerDay < 0 {
		return fmt.Errorf("library fine per day cannot be negative")
	}
	if config.Ledger.DefaultMaxMarks <= 0 {
		return fmt.Errorf("default max marks must be positive")
	}
	return nil
}

// GetPostgresConnectionString builds the pgx connection string
func (c *Config) GetPostgresConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User, c.Database.Password,
		c.Database.Host, c.Database.Port,
		c.Database.DBName, c.Database.SSLMode)
}
