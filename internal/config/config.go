package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration shared by all binaries
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// MarketplaceConfig holds the collection-listing API configuration
type MarketplaceConfig struct {
	BaseURL             string  `mapstructure:"base_url"`
	MaxAgeMonths        int     `mapstructure:"max_age_months"`
	MinFloorPrice       float64 `mapstructure:"min_floor_price"`
	MinTotalCollections int     `mapstructure:"min_total_collections"`
	PageLimit           int     `mapstructure:"page_limit"`
}

// ExplorerConfig holds block-explorer API configuration.
// URLs maps a chain identifier to its Etherscan-family API base URL.
type ExplorerConfig struct {
	APIKey string            `mapstructure:"api_key"`
	URLs   map[string]string `mapstructure:"urls"`
}

// RPCConfig maps a chain identifier to its JSON-RPC endpoint
type RPCConfig struct {
	URLs map[string]string `mapstructure:"urls"`
}

// GeminiConfig holds the LLM completion API configuration
type GeminiConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// ScraperConfig holds website scraper configuration
type ScraperConfig struct {
	NavigationTimeout time.Duration `mapstructure:"navigation_timeout"`
	SitemapTimeout    time.Duration `mapstructure:"sitemap_timeout"`
	MaxPages          int           `mapstructure:"max_pages"`
}

// RateLimitConfig holds per-provider rate limiting parameters
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	MinInterval       time.Duration `mapstructure:"min_interval"`
}

// RateLimiterConfig holds the full rate limiter configuration
type RateLimiterConfig struct {
	MaxQueueSize int                        `mapstructure:"max_queue_size"`
	Providers    map[string]RateLimitConfig `mapstructure:"providers"`
}

// AnalysisConfig holds analysis pipeline configuration
type AnalysisConfig struct {
	// ContractDeadline bounds the full per-contract pipeline
	ContractDeadline time.Duration `mapstructure:"contract_deadline"`
	WebsiteCacheTTL  time.Duration `mapstructure:"website_cache_ttl"`
}

// APIConfig holds configuration for the API server binary
type APIConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Marketplace MarketplaceConfig `mapstructure:"marketplace"`
	Explorer    ExplorerConfig    `mapstructure:"explorer"`
	RPC         RPCConfig         `mapstructure:"rpc"`
	Gemini      GeminiConfig      `mapstructure:"gemini"`
	Scraper     ScraperConfig     `mapstructure:"scraper"`
	RateLimiter RateLimiterConfig `mapstructure:"ratelimiter"`
	Analysis    AnalysisConfig    `mapstructure:"analysis"`
}

// Rate limiter provider names. Vendor clients reference these when funneling
// requests through the shared limiter.
const (
	ProviderMarketplace = "marketplace"
	ProviderExplorer    = "explorer"
	ProviderGemini      = "gemini"
)

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("marketplace.base_url", "https://api-mainnet.magiceden.dev/v3/rtp")
	v.SetDefault("marketplace.max_age_months", 6)
	v.SetDefault("marketplace.min_floor_price", 0.1)
	v.SetDefault("marketplace.min_total_collections", 200)
	v.SetDefault("marketplace.page_limit", 1000)
	// Etherscan-family APIs serve JSON on the /api path, not the bare host
	v.SetDefault("explorer.urls", map[string]string{
		"ethereum": "https://api.etherscan.io/api",
		"base":     "https://api.basescan.org/api",
		"arbitrum": "https://api.arbiscan.io/api",
		"polygon":  "https://api.polygonscan.com/api",
		"apechain": "https://api.apescan.io/api",
		"abstract": "https://api.abscan.org/api",
	})
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.model", "gemini-2.0-flash-001")
	v.SetDefault("scraper.navigation_timeout", "30s")
	v.SetDefault("scraper.sitemap_timeout", "10s")
	v.SetDefault("scraper.max_pages", 10)
	v.SetDefault("ratelimiter.max_queue_size", 1024)
	// Marketplace times out intermittently below a 600ms spacing
	v.SetDefault("ratelimiter.providers", map[string]map[string]interface{}{
		"marketplace": {"requests_per_second": 2, "min_interval": "600ms"},
		"explorer":    {"requests_per_second": 5, "min_interval": "200ms"},
		"gemini":      {"requests_per_second": 2, "min_interval": "500ms"},
	})
	v.SetDefault("analysis.contract_deadline", "3m")
	v.SetDefault("analysis.website_cache_ttl", "24h")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("HOUNDMASTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// Required for viper to map env vars to config struct fields when no config
// file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Marketplace
		"marketplace.base_url",
		"marketplace.max_age_months",
		"marketplace.min_floor_price",
		"marketplace.min_total_collections",
		"marketplace.page_limit",
		// Explorer
		"explorer.api_key",
		// Gemini
		"gemini.base_url",
		"gemini.api_key",
		"gemini.model",
		// Scraper
		"scraper.navigation_timeout",
		"scraper.sitemap_timeout",
		"scraper.max_pages",
		// Rate limiter
		"ratelimiter.max_queue_size",
		// Analysis
		"analysis.contract_deadline",
		"analysis.website_cache_ttl",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ExplorerURL returns the block-explorer API base URL for a chain
func (c *ExplorerConfig) ExplorerURL(chain string) (string, error) {
	url, ok := c.URLs[chain]
	if !ok || url == "" {
		return "", fmt.Errorf("no block explorer configured for chain %q", chain)
	}
	return url, nil
}

// RPCURL returns the JSON-RPC endpoint for a chain
func (c *RPCConfig) RPCURL(chain string) (string, error) {
	url, ok := c.URLs[chain]
	if !ok || url == "" {
		return "", fmt.Errorf("no rpc endpoint configured for chain %q", chain)
	}
	return url, nil
}
