package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. PODCAST_SERVER_PORT.
const EnvPrefix = "PODCAST"

// DefaultConfigPath is where the CLI looks for the settings file.
const DefaultConfigPath = "./config/settings.yaml"

// placeholder values that must never reach production
var placeholders = []string{
	"YOUR_SECRET_HERE",
	"changeme",
	"CHANGEME",
	"",
}

// Load reads defaults, the optional settings file and environment overrides
// into the global viper instance.
func Load(configPath string) error {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPath = filepath.Clean(configPath)
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !os.IsNotExist(err) && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetConfig returns the current configuration as a struct
// Load must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		return fmt.Errorf("database.path is required")
	}

	if err := validateSecrets(); err != nil {
		return err
	}

	if viper.GetInt("pagination.default_limit") <= 0 {
		viper.Set("pagination.default_limit", 10)
	}

	if viper.GetInt("search.history_limit") < 0 {
		viper.Set("search.history_limit", 0)
	}

	return nil
}

func isProduction(env string) bool {
	return env == "production" || env == "prod"
}

func validateSecrets() error {
	jwtSecret := viper.GetString("auth.jwt_secret")
	for _, placeholder := range placeholders {
		if jwtSecret == placeholder {
			if isProduction(viper.GetString("environment")) {
				return fmt.Errorf("invalid JWT secret: cannot use placeholder values in production")
			}
			logrus.Warn("JWT secret is using a placeholder value - this is insecure!")
			break
		}
	}

	if viper.GetBool("auth.dev_auth_enabled") && isProduction(viper.GetString("environment")) {
		return fmt.Errorf("dev auth cannot be enabled in production")
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	if isProduction(c.Environment) {
		for _, placeholder := range placeholders {
			if c.Auth.JWTSecret == placeholder {
				return fmt.Errorf("invalid JWT secret: cannot use placeholder values in production")
			}
		}
		if c.Auth.DevAuthEnabled {
			return fmt.Errorf("dev auth cannot be enabled in production")
		}
	}

	if c.Pagination.DefaultLimit <= 0 {
		c.Pagination.DefaultLimit = 10
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/podcast.db")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.busy_timeout", 5*time.Second)
	viper.SetDefault("database.enable_wal", true)
	viper.SetDefault("database.enable_foreign_keys", true)
	viper.SetDefault("database.log_queries", false)

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "changeme")
	viper.SetDefault("auth.issuer", "podcast-api")
	viper.SetDefault("auth.token_ttl", 24*time.Hour)
	viper.SetDefault("auth.dev_auth_enabled", false)
	viper.SetDefault("auth.dev_auth_token", "")
	viper.SetDefault("auth.dev_auth_user_id", 1)

	viper.SetDefault("pagination.default_limit", 10)
	viper.SetDefault("search.history_limit", 20)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 20)
	viper.SetDefault("rate_limiting.burst", 40)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Content-Type", "Authorization", "X-Request-ID"})
	viper.SetDefault("security.enable_request_id", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}
