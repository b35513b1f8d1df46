package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the SDK reads.
const EnvPrefix = "ORACLE_SDK"

// Config holds all configuration for the SDK tools.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	RPC       RPCConfig       `mapstructure:"rpc"`
	API       APIConfig       `mapstructure:"api"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Proxy     ProxyConfig     `mapstructure:"proxy"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Contracts ContractsConfig `mapstructure:"contracts"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig holds the inspection HTTP server configuration.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// RPCConfig holds the blockchain node endpoint.
type RPCConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// APIConfig holds the backend metadata API endpoint.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds settings for the caching layer.
type CacheConfig struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// ProxyConfig holds settings for proxy resolution.
type ProxyConfig struct {
	MaxWorkers int           `mapstructure:"max_workers"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
}

// GeneratorConfig holds code generator settings.
type GeneratorConfig struct {
	Manifest   string `mapstructure:"manifest"`
	MaxWorkers int    `mapstructure:"max_workers"`
}

// ContractsConfig holds deployed contract addresses.
type ContractsConfig struct {
	Oracle    string `mapstructure:"oracle"`
	BondToken string `mapstructure:"bond_token"`
}

// Load reads configuration from defaults, a config file, a .env file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "oracle-sdk")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("rpc.url", "http://localhost:8545")
	v.SetDefault("rpc.timeout", "10s")
	v.SetDefault("api.base_url", "http://localhost:3000/api")
	v.SetDefault("api.timeout", "15s")
	v.SetDefault("cache.default_expiration", "30m")
	v.SetDefault("cache.cleanup_interval", "1h")
	v.SetDefault("proxy.max_workers", 8)
	v.SetDefault("proxy.cache_ttl", "10m")
	v.SetDefault("generator.manifest", "sdkgen.yaml")
	v.SetDefault("generator.max_workers", 4)
	v.SetDefault("contracts.oracle", "")
	v.SetDefault("contracts.bond_token", "")

	if err := LoadDotEnv(filepath.Join(configPath, ".env")); err != nil {
		return nil, err
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadDotEnv exports the KEY=VALUE pairs of a dotenv file into the process
// environment. Variables that are already set keep their value. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat dotenv file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read dotenv file %s: %w", path, err)
	}

	for _, key := range v.AllKeys() {
		name := strings.ToUpper(key)
		if _, set := os.LookupEnv(name); set {
			continue
		}
		if err := os.Setenv(name, v.GetString(key)); err != nil {
			return fmt.Errorf("failed to export %s: %w", name, err)
		}
	}
	return nil
}

func (c RPCConfig) GetTimeout() time.Duration {
	return c.Timeout
}

func (c APIConfig) GetTimeout() time.Duration {
	return c.Timeout
}

func (c CacheConfig) GetDefaultExpiration() time.Duration {
	return c.DefaultExpiration
}

func (c CacheConfig) GetCleanupInterval() time.Duration {
	return c.CleanupInterval
}

func (c ProxyConfig) GetCacheTTL() time.Duration {
	return c.CacheTTL
}

// Addresses returns the configured contract addresses by contract name, skipping unset ones.
func (c ContractsConfig) Addresses() map[string]string {
	out := make(map[string]string, 2)
	if c.Oracle != "" {
		out["oracle"] = c.Oracle
	}
	if c.BondToken != "" {
		out["bond_token"] = c.BondToken
	}
	return out
}
