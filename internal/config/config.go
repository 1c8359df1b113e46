package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/segyhp/finance-planner/pkg/utils"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// cronParser matches the scheduler's cron.WithSeconds() format
var cronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Business  BusinessConfig  `mapstructure:"business"`
	Health    HealthConfig    `mapstructure:"health"`
	Storage   StorageConfig   `mapstructure:"storage"`
}

type ServerConfig struct {
	Port         string `mapstructure:"SERVER_PORT"`
	Host         string `mapstructure:"SERVER_HOST"`
	Env          string `mapstructure:"ENV"`
	ReadTimeout  string `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout string `mapstructure:"SERVER_WRITE_TIMEOUT"`
	CORSOrigins  string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

type DatabaseConfig struct {
	Driver       string `mapstructure:"DATABASE_DRIVER"`
	URL          string `mapstructure:"DATABASE_URL"`
	MaxOpenConns int    `mapstructure:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns int    `mapstructure:"DATABASE_MAX_IDLE_CONNS"`
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type SchedulerConfig struct {
	PurgeSchedule  string `mapstructure:"SCHEDULER_PURGE_SCHEDULE"`
	WarmupSchedule string `mapstructure:"SCHEDULER_WARMUP_SCHEDULE"`
	Timezone       string `mapstructure:"SCHEDULER_TIMEZONE"`
}

type LoggingConfig struct {
	Level string `mapstructure:"LOG_LEVEL"`
}

type BusinessConfig struct {
	DefaultExtraPayment  string `mapstructure:"DEFAULT_EXTRA_PAYMENT"`
	MaxPayoffMonths      int    `mapstructure:"MAX_PAYOFF_MONTHS"`
	SavingsHorizonMonths int    `mapstructure:"SAVINGS_HORIZON_MONTHS"`
	CacheTTL             string `mapstructure:"CACHE_TTL"`
	ScenarioRetention    string `mapstructure:"SCENARIO_RETENTION"`
}

type HealthConfig struct {
	Timeout string `mapstructure:"HEALTH_CHECK_TIMEOUT"`
}

type StorageConfig struct {
	// ScenarioPassphrase enables encryption of saved scenarios when set
	ScenarioPassphrase string `mapstructure:"SCENARIO_PASSPHRASE"`
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	// A missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	// Read from environment variables
	v.AutomaticEnv()

	// Try to read from .env file (optional)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./deployments")

	// Don't fail if .env file doesn't exist
	_ = v.ReadInConfig()

	var config Config
	sections := []interface{}{
		&config.Server,
		&config.Database,
		&config.Redis,
		&config.Scheduler,
		&config.Logging,
		&config.Business,
		&config.Health,
		&config.Storage,
	}
	for _, section := range sections {
		if err := v.Unmarshal(section); err != nil {
			return nil, fmt.Errorf("unable to decode config: %w", err)
		}
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Every key needs a default, even an empty one, so AutomaticEnv can override it during Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("ENV", "development")
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "15s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_URL", "finance-planner.db")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SCHEDULER_PURGE_SCHEDULE", "0 0 3 * * *")
	v.SetDefault("SCHEDULER_WARMUP_SCHEDULE", "0 0 * * * *")
	v.SetDefault("SCHEDULER_TIMEZONE", "UTC")

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DEFAULT_EXTRA_PAYMENT", "0")
	v.SetDefault("MAX_PAYOFF_MONTHS", 1200)
	v.SetDefault("SAVINGS_HORIZON_MONTHS", 600)
	v.SetDefault("CACHE_TTL", "15m")
	v.SetDefault("SCENARIO_RETENTION", "8760h")

	v.SetDefault("HEALTH_CHECK_TIMEOUT", "5s")

	v.SetDefault("SCENARIO_PASSPHRASE", "")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.Driver != DriverPostgres && c.Database.Driver != DriverSQLite {
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q", DriverPostgres, DriverSQLite)
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Business.MaxPayoffMonths <= 0 {
		return fmt.Errorf("MAX_PAYOFF_MONTHS must be greater than 0")
	}

	if c.Business.SavingsHorizonMonths <= 0 {
		return fmt.Errorf("SAVINGS_HORIZON_MONTHS must be greater than 0")
	}

	// Validate default extra payment
	extra, err := utils.DecimalFromString(c.Business.DefaultExtraPayment)
	if err != nil {
		return fmt.Errorf("DEFAULT_EXTRA_PAYMENT must be a valid decimal: %w", err)
	}
	if extra.IsNegative() {
		return fmt.Errorf("DEFAULT_EXTRA_PAYMENT must not be negative")
	}

	durations := map[string]string{
		"SERVER_READ_TIMEOUT":  c.Server.ReadTimeout,
		"SERVER_WRITE_TIMEOUT": c.Server.WriteTimeout,
		"CACHE_TTL":            c.Business.CacheTTL,
		"SCENARIO_RETENTION":   c.Business.ScenarioRetention,
		"HEALTH_CHECK_TIMEOUT": c.Health.Timeout,
	}
	for key, value := range durations {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s must be a valid duration: %w", key, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}

	// Validate scheduler
	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		return fmt.Errorf("SCHEDULER_TIMEZONE must be a valid location: %w", err)
	}
	if _, err := cronParser.Parse(c.Scheduler.PurgeSchedule); err != nil {
		return fmt.Errorf("SCHEDULER_PURGE_SCHEDULE must be a valid cron spec: %w", err)
	}
	if _, err := cronParser.Parse(c.Scheduler.WarmupSchedule); err != nil {
		return fmt.Errorf("SCHEDULER_WARMUP_SCHEDULE must be a valid cron spec: %w", err)
	}

	return nil
}

// LogFlags returns the standard logger flags for the configured level.
// Debug adds microseconds and the calling file.
func (c *Config) LogFlags() int {
	if c.Logging.Level == "debug" {
		return log.LstdFlags | log.Lmicroseconds | log.Lshortfile
	}
	return log.LstdFlags
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// EncryptionEnabled reports whether saved scenarios are sealed at rest
func (c *Config) EncryptionEnabled() bool {
	return c.Storage.ScenarioPassphrase != ""
}

// GetDefaultExtraPayment returns the extra monthly payment used when a request omits one
func (c *Config) GetDefaultExtraPayment() decimal.Decimal {
	extra, _ := utils.DecimalFromString(c.Business.DefaultExtraPayment)
	return extra
}

// GetCacheTTL returns how long calculation results stay cached
func (c *Config) GetCacheTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Business.CacheTTL)
	return ttl
}

// GetScenarioRetention returns how long saved scenarios are kept
func (c *Config) GetScenarioRetention() time.Duration {
	retention, _ := time.ParseDuration(c.Business.ScenarioRetention)
	return retention
}

// GetSchedulerLocation returns the scheduler timezone
func (c *Config) GetSchedulerLocation() *time.Location {
	loc, err := time.LoadLocation(c.Scheduler.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GetReadTimeout returns the server read timeout as duration
func (c *Config) GetReadTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Server.ReadTimeout)
	return timeout
}

// GetWriteTimeout returns the server write timeout as duration
func (c *Config) GetWriteTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Server.WriteTimeout)
	return timeout
}

// GetHealthTimeout returns the health check timeout as duration
func (c *Config) GetHealthTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Health.Timeout)
	return timeout
}
