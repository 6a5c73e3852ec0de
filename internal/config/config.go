package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server ServerConfig
	Search SearchConfig
	Store  StoreConfig
	View   ViewConfig
}

// ServerConfig holds HTTP server settings for the presentation binary.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"8080"` // 0 prints to console instead of serving
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// SearchConfig holds inventory search settings for the fetch binary.
type SearchConfig struct {
	Zip           string `envconfig:"SEARCH_ZIP" default:"22124"`
	PageSize      int    `envconfig:"SEARCH_PAGE_SIZE" default:"250"`
	DistanceMiles int    `envconfig:"SEARCH_DISTANCE_MILES" default:"200"`
	WAFToken      string `envconfig:"AWS_WAF_TOKEN" default:""`
	OutputPath    string `envconfig:"OUTPUT_PATH" default:"./data/listings.json"`
}

// StoreConfig selects and parameterizes the entity store backend.
type StoreConfig struct {
	Type          string `envconfig:"STORE_TYPE" default:"file"` // file, sqlite, or redis
	Dir           string `envconfig:"CACHE_DIR" default:"./data/cache"`
	SQLitePath    string `envconfig:"STORE_SQLITE_PATH" default:"./data/entities.db"`
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// ViewConfig holds filtering, scoring, and sorting settings.
type ViewConfig struct {
	InputPath       string        `envconfig:"INPUT_PATH" default:"./data/listings.json"`
	Filter          bool          `envconfig:"FILTER" default:"false"`
	MinDesirability int           `envconfig:"MIN_DESIRABILITY" default:"1"`
	Sort            string        `envconfig:"SORT" default:"distance"` // distance or newest
	Since           time.Duration `envconfig:"SINCE" default:"0s"`      // 0 disables the recency cutoff
	MaxMarkup       int           `envconfig:"MAX_MARKUP" default:"-1"` // negative disables the markup bound
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RedisAddress returns the Redis address in host:port format.
func (s *StoreConfig) RedisAddress() string {
	return fmt.Sprintf("%s:%d", s.RedisHost, s.RedisPort)
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
