package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"FinScreen/pkg/util"
)

type Config struct {
	Environment string     `yaml:"environment" default:"development" validate:"required"`
	Server      Server     `yaml:"server"`
	Log         Log        `yaml:"log"`
	FMP         FMP        `yaml:"fmp"`
	Cache       Cache      `yaml:"cache"`
	Memo        Memo       `yaml:"memo"`
	Screener    Screener   `yaml:"screener"`
	Kafka       Kafka      `yaml:"kafka"`
	ClickHouse  ClickHouse `yaml:"clickhouse"`
}

type Server struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"10m"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"15s"`
	CORS            bool          `yaml:"cors" default:"true"`
	// RateLimit is requests per second per client IP; 0 disables it.
	RateLimit float64 `yaml:"rate_limit" default:"5" validate:"gte=0"`
	RateBurst int     `yaml:"rate_burst" default:"20" validate:"gte=1"`
}

type Log struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" default:"console" validate:"oneof=json console"`
	Output string `yaml:"output" default:"stdout"`
}

type FMP struct {
	BaseURL          string        `yaml:"base_url" default:"https://financialmodelingprep.com" validate:"url"`
	APIKey           string        `yaml:"api_key"`
	Timeout          time.Duration `yaml:"timeout" default:"30s"`
	ThrottleInterval time.Duration `yaml:"throttle_interval" default:"200ms"`
	ThrottleTicks    int           `yaml:"throttle_ticks" default:"2" validate:"gte=1"`
}

type Cache struct {
	Path string `yaml:"path" default:"cache.json" validate:"required"`
}

type Memo struct {
	TTL   time.Duration `yaml:"ttl" default:"24h"`
	Size  int           `yaml:"size" default:"1024" validate:"gte=1"`
	Redis Redis         `yaml:"redis"`
}

type Redis struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host" default:"localhost"`
	Port     int    `yaml:"port" default:"6379"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix" default:"finscreen"`
}

type Screener struct {
	Concurrency int      `yaml:"concurrency" default:"4" validate:"gte=1,lte=64"`
	Exchanges   []string `yaml:"exchanges" default:"[\"NYSE\",\"NASDAQ\"]" validate:"min=1"`
}

type Kafka struct {
	Enabled     bool     `yaml:"enabled"`
	Brokers     []string `yaml:"brokers" validate:"required_if=Enabled true"`
	Topic       string   `yaml:"topic" default:"finscreen.fetches"`
	Compression string   `yaml:"compression" default:"gzip" validate:"oneof=gzip snappy lz4 zstd"`
}

type ClickHouse struct {
	Enabled     bool          `yaml:"enabled"`
	Host        string        `yaml:"host" default:"localhost"`
	Port        int           `yaml:"port" default:"9000"`
	Database    string        `yaml:"database" default:"default"`
	User        string        `yaml:"user" default:"default"`
	Password    string        `yaml:"password"`
	Table       string        `yaml:"table" default:"screen_outcomes" validate:"required"`
	UseHTTP     bool          `yaml:"use_http"`
	AsyncInsert bool          `yaml:"async_insert" default:"true"`
	DialTimeout time.Duration `yaml:"dial_timeout" default:"5s"`
}

// Default returns a config with every default applied.
func Default() *Config {
	var c Config
	_ = defaults.Set(&c)
	return &c
}

// Load reads a YAML file over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, c); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads .env if present, then the YAML file, then applies
// environment overrides.
func LoadWithEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.applyEnv(os.Getenv)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("FINANCIAL_API"); v != "" {
		c.FMP.APIKey = v
	}
	if v := getenv("FINSCREEN_CACHE_PATH"); v != "" {
		c.Cache.Path = v
	}
	if v := getenv("FINSCREEN_PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := getenv("FINSCREEN_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := getenv("REDIS_HOST"); v != "" {
		c.Memo.Redis.Enabled = true
		c.Memo.Redis.Host = v
	}
	if v := getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Enabled = true
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Enabled = true
		c.ClickHouse.Host = v
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validate.Struct(c)
}
