package common

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/joseph-ayodele/resume-site/constants"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	LLM     LLMConfig     `yaml:"llm"`
	Extract ExtractConfig `yaml:"extract"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr     string        `yaml:"httpAddr"`
	GRPCAddr     string        `yaml:"grpcAddr"` // gRPC health probe; empty disables it
	BodyLimitMB  int           `yaml:"bodyLimitMB"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

// StoreConfig holds record store configuration
type StoreConfig struct {
	Driver           string        `yaml:"driver"` // postgres | sqlite | mongo
	DSN              string        `yaml:"dsn"`
	Database         string        `yaml:"database"` // mongo only
	Table            string        `yaml:"table"`
	AutoMigrate      bool          `yaml:"autoMigrate"`
	MaxConns         int32         `yaml:"maxConns"`
	MinConns         int32         `yaml:"minConns"`
	MaxConnLifetime  time.Duration `yaml:"maxConnLifetime"`
	MaxConnIdleTime  time.Duration `yaml:"maxConnIdleTime"`
	DialTimeout      time.Duration `yaml:"dialTimeout"`
	StatementTimeout time.Duration `yaml:"statementTimeout"`
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	Provider    string        `yaml:"provider"` // gemini | openai
	Model       string        `yaml:"model"`    // empty picks the provider default
	APIKey      string        `yaml:"apiKey"`
	BaseURL     string        `yaml:"baseURL"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

// ExtractConfig holds document extraction configuration
type ExtractConfig struct {
	MaxPages  int    `yaml:"maxPages"`
	Separator string `yaml:"separator"`
}

// LoggingConfig controls slog level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json | text
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPAddr:     ":3000",
			BodyLimitMB:  10,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 2 * time.Minute,
		},
		Store: StoreConfig{
			Driver:          constants.StorePostgres,
			Database:        "resumesite",
			Table:           constants.ResumesTable,
			MaxConns:        20,
			MinConns:        2,
			MaxConnLifetime: 30 * time.Minute,
			MaxConnIdleTime: 5 * time.Minute,
			DialTimeout:     3 * time.Second,
		},
		LLM: LLMConfig{
			Provider: constants.ProviderGemini,
			Timeout:  90 * time.Second,
		},
		Extract: ExtractConfig{
			MaxPages:  50,
			Separator: " ",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from an optional .env file, an optional YAML file
// at path, and finally environment variables (which always win).
func LoadConfig(path string) (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := defaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(c *Config) {
	c.Server.HTTPAddr = getEnv("HTTP_ADDR", c.Server.HTTPAddr)
	if port := os.Getenv("PORT"); port != "" && os.Getenv("HTTP_ADDR") == "" {
		c.Server.HTTPAddr = ":" + port
	}
	c.Server.GRPCAddr = getEnv("GRPC_ADDR", c.Server.GRPCAddr)
	c.Server.BodyLimitMB = getEnvAsInt("BODY_LIMIT_MB", c.Server.BodyLimitMB)
	c.Server.ReadTimeout = getEnvAsDuration("HTTP_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnvAsDuration("HTTP_WRITE_TIMEOUT", c.Server.WriteTimeout)

	c.Store.Driver = strings.ToLower(getEnv("STORE_DRIVER", c.Store.Driver))
	c.Store.DSN = getEnv("DB_URL", c.Store.DSN)
	c.Store.Database = getEnv("STORE_DATABASE", c.Store.Database)
	c.Store.Table = getEnv("STORE_TABLE", c.Store.Table)
	c.Store.AutoMigrate = getEnvAsBool("STORE_AUTO_MIGRATE", c.Store.AutoMigrate)
	c.Store.MaxConns = getEnvAsInt32("DB_MAX_CONNS", c.Store.MaxConns)
	c.Store.MinConns = getEnvAsInt32("DB_MIN_CONNS", c.Store.MinConns)
	c.Store.MaxConnLifetime = getEnvAsDuration("DB_MAX_CONN_LIFETIME", c.Store.MaxConnLifetime)
	c.Store.MaxConnIdleTime = getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", c.Store.MaxConnIdleTime)
	c.Store.DialTimeout = getEnvAsDuration("DB_DIAL_TIMEOUT", c.Store.DialTimeout)
	c.Store.StatementTimeout = getEnvAsDuration("DB_STATEMENT_TIMEOUT", c.Store.StatementTimeout)

	c.LLM.Provider = strings.ToLower(getEnv("LLM_PROVIDER", c.LLM.Provider))
	c.LLM.Model = getEnv("LLM_MODEL", c.LLM.Model)
	c.LLM.BaseURL = getEnv("LLM_BASE_URL", c.LLM.BaseURL)
	c.LLM.Temperature = getEnvAsFloat32("LLM_TEMPERATURE", c.LLM.Temperature)
	c.LLM.Timeout = getEnvAsDuration("LLM_TIMEOUT", c.LLM.Timeout)
	c.LLM.APIKey = getEnv("LLM_API_KEY", c.LLM.APIKey)
	if c.LLM.APIKey == "" {
		switch c.LLM.Provider {
		case constants.ProviderGemini:
			c.LLM.APIKey = getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", ""))
		case constants.ProviderOpenAI:
			c.LLM.APIKey = getEnv("OPENAI_API_KEY", "")
		}
	}

	c.Extract.MaxPages = getEnvAsInt("EXTRACT_MAX_PAGES", c.Extract.MaxPages)
	if sep, ok := os.LookupEnv("EXTRACT_SEPARATOR"); ok {
		c.Extract.Separator = sep
	}

	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnv("LOG_FORMAT", c.Logging.Format)
	if strings.EqualFold(os.Getenv("ENVIRONMENT"), "production") && os.Getenv("LOG_FORMAT") == "" {
		c.Logging.Format = "json"
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
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

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	var errs []error
	switch c.Store.Driver {
	case constants.StorePostgres, constants.StoreSQLite, constants.StoreMongo:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver))
	}
	if c.Store.DSN == "" {
		errs = append(errs, errors.New("DB_URL is required"))
	}
	switch c.LLM.Provider {
	case constants.ProviderGemini, constants.ProviderOpenAI:
	default:
		errs = append(errs, fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider))
	}
	if c.LLM.APIKey == "" {
		errs = append(errs, errors.New("LLM_API_KEY is required"))
	}
	if c.Server.HTTPAddr == "" {
		errs = append(errs, errors.New("HTTP_ADDR is required"))
	}
	if len(errs) > 0 {
		return NewAppError(CodeConfig, "invalid configuration", errors.Join(append([]error{ErrInvalidInput}, errs...)...))
	}
	return nil
}
