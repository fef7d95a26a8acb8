package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Source kinds accepted by the FAQ and employee loaders.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceObject   = "object"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	FAQ       FAQConfig       `yaml:"faq"`
	Employees EmployeesConfig `yaml:"employees"`
	Assistant AssistantConfig `yaml:"assistant"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Redis     RedisConfig     `yaml:"redis"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// FAQConfig controls where the corpus comes from and how queries are matched.
type FAQConfig struct {
	Source              string            `yaml:"source"`
	Path                string            `yaml:"path"`
	Watch               bool              `yaml:"watch"`
	SimilarityThreshold float64           `yaml:"similarityThreshold"`
	FuzzyThreshold      float64           `yaml:"fuzzyThreshold"`
	CacheSize           int               `yaml:"cacheSize"`
	ObjectStore         ObjectStoreConfig `yaml:"objectStore"`
}

// ObjectStoreConfig locates the FAQ CSV in S3-compatible storage.
type ObjectStoreConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	Key       string `yaml:"key"`
}

// EmployeesConfig locates the mock employee directory.
type EmployeesConfig struct {
	Source string `yaml:"source"`
	Path   string `yaml:"path"`
}

// AssistantConfig holds canned replies and follow-up memory settings.
type AssistantConfig struct {
	FallbackMessage    string        `yaml:"fallbackMessage"`
	PayslipAnswer      string        `yaml:"payslipAnswer"`
	BankUpdateAnswer   string        `yaml:"bankUpdateAnswer"`
	ConversationTTL    time.Duration `yaml:"conversationTtl"`
	TopRecommendations int           `yaml:"topRecommendations"`
	MaxQuestionLength  int           `yaml:"maxQuestionLength"`
}

// RedisConfig contains connection information for the Valkey store.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from .env, a YAML file and environment variables, in that order.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("FAQ_SOURCE"); v != "" {
		cfg.FAQ.Source = strings.ToLower(v)
	}
	if v := os.Getenv("FAQ_PATH"); v != "" {
		cfg.FAQ.Path = v
	}
	if v := os.Getenv("FAQ_WATCH"); v != "" {
		cfg.FAQ.Watch = parseBool(v)
	}
	if v := os.Getenv("FAQ_SIMILARITY_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FAQ.SimilarityThreshold = parsed
		}
	}
	if v := os.Getenv("FAQ_FUZZY_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FAQ.FuzzyThreshold = parsed
		}
	}
	if v := os.Getenv("FAQ_CACHE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.CacheSize = parsed
		}
	}
	if v := os.Getenv("FAQ_OBJECT_ENDPOINT"); v != "" {
		cfg.FAQ.ObjectStore.Endpoint = v
	}
	if v := os.Getenv("FAQ_OBJECT_ACCESS_KEY"); v != "" {
		cfg.FAQ.ObjectStore.AccessKey = v
	}
	if v := os.Getenv("FAQ_OBJECT_SECRET_KEY"); v != "" {
		cfg.FAQ.ObjectStore.SecretKey = v
	}
	if v := os.Getenv("FAQ_OBJECT_BUCKET"); v != "" {
		cfg.FAQ.ObjectStore.Bucket = v
	}
	if v := os.Getenv("FAQ_OBJECT_KEY"); v != "" {
		cfg.FAQ.ObjectStore.Key = v
	}
	if v := os.Getenv("EMPLOYEES_SOURCE"); v != "" {
		cfg.Employees.Source = strings.ToLower(v)
	}
	if v := os.Getenv("EMPLOYEES_PATH"); v != "" {
		cfg.Employees.Path = v
	}
	if v := os.Getenv("ASSISTANT_CONVERSATION_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Assistant.ConversationTTL = parsed
		}
	}
	if v := os.Getenv("ASSISTANT_RECOMMENDATIONS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Assistant.TopRecommendations = parsed
		}
	}
	if v := os.Getenv("REDIS_ENABLED"); v != "" {
		cfg.Redis.Enabled = parseBool(v)
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MinConns = int32(parsed)
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             20,
			},
		},
		FAQ: FAQConfig{
			Source:              SourceFile,
			Path:                "data/faqs.csv",
			SimilarityThreshold: 0.45,
			FuzzyThreshold:      0.75,
			CacheSize:           256,
		},
		Employees: EmployeesConfig{
			Source: SourceFile,
			Path:   "data/employees.csv",
		},
		Assistant: AssistantConfig{
			ConversationTTL:    30 * time.Minute,
			TopRecommendations: 5,
			MaxQuestionLength:  500,
		},
		Postgres: PostgresConfig{
			MaxConns: 4,
		},
		Redis: RedisConfig{
			Prefix: "hrassist",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	switch c.FAQ.Source {
	case SourceFile:
		if strings.TrimSpace(c.FAQ.Path) == "" {
			return errors.New("faq.path cannot be empty for file source")
		}
	case SourcePostgres:
		if strings.TrimSpace(c.Postgres.DSN) == "" {
			return errors.New("postgres.dsn cannot be empty for postgres faq source")
		}
	case SourceObject:
		if c.FAQ.ObjectStore.Endpoint == "" || c.FAQ.ObjectStore.Bucket == "" || c.FAQ.ObjectStore.Key == "" {
			return errors.New("faq.objectStore endpoint, bucket and key are required for object source")
		}
	default:
		return fmt.Errorf("faq.source %q is not supported", c.FAQ.Source)
	}
	if c.FAQ.Watch && c.FAQ.Source != SourceFile {
		return errors.New("faq.watch is only supported for file source")
	}
	if c.FAQ.SimilarityThreshold <= 0 || c.FAQ.SimilarityThreshold > 1 {
		return errors.New("faq.similarityThreshold must be in (0, 1]")
	}
	if c.FAQ.FuzzyThreshold <= 0 || c.FAQ.FuzzyThreshold > 1 {
		return errors.New("faq.fuzzyThreshold must be in (0, 1]")
	}
	if c.FAQ.CacheSize <= 0 {
		return errors.New("faq.cacheSize must be positive")
	}
	switch c.Employees.Source {
	case SourceFile:
		if strings.TrimSpace(c.Employees.Path) == "" {
			return errors.New("employees.path cannot be empty for file source")
		}
	case SourcePostgres:
		if strings.TrimSpace(c.Postgres.DSN) == "" {
			return errors.New("postgres.dsn cannot be empty for postgres employee source")
		}
	default:
		return fmt.Errorf("employees.source %q is not supported", c.Employees.Source)
	}
	if c.Assistant.ConversationTTL < 0 {
		return errors.New("assistant.conversationTtl cannot be negative")
	}
	if c.Assistant.TopRecommendations < 0 {
		return errors.New("assistant.topRecommendations cannot be negative")
	}
	if c.Redis.Enabled && strings.TrimSpace(c.Redis.Addr) == "" {
		return errors.New("redis.addr cannot be empty when redis store is enabled")
	}
	return nil
}
