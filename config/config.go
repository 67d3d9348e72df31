package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Reset    ResetConfig    `mapstructure:"reset"`
	Email    EmailConfig    `mapstructure:"email"`
}

// ServerConfig HTTP server configuration
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig MySQL configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// SessionConfig signed session cookie configuration
type SessionConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// JWTConfig bearer token configuration for /api/v1
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// ResetConfig password reset token configuration
type ResetConfig struct {
	ExpireSeconds int           `mapstructure:"expire_seconds"`
	ExpireTime    time.Duration `mapstructure:"-"`
}

// EmailConfig SMTP configuration
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// Load reads configuration.
// Precedence: environment variables > external config file > embedded defaults.
// configPath optionally names an external config file.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Embedded defaults first.
	if err := v.ReadConfig(bytes.NewReader(defaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("warning: cannot read config file %s: %v", configPath, err)
		} else {
			log.Printf("merged config file: %s", configPath)
		}
	} else {
		// Look for an external config file in the usual places.
		external := viper.New()
		external.SetConfigName("config")
		external.SetConfigType("yaml")
		external.AddConfigPath(".")
		external.AddConfigPath("./config")
		external.AddConfigPath("/etc/sitetrack")
		external.AddConfigPath("$HOME/.sitetrack")

		if err := external.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(external.AllSettings()); err != nil {
				log.Printf("warning: merge external config: %v", err)
			} else {
				log.Printf("merged config file: %s", external.ConfigFileUsed())
			}
		}
	}

	// SITETRACK_DATABASE_HOST etc.
	v.SetEnvPrefix("SITETRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Session.ExpireHours <= 0 {
		cfg.Session.ExpireHours = 24
	}
	cfg.Session.ExpireTime = time.Duration(cfg.Session.ExpireHours) * time.Hour

	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24
	}
	cfg.JWT.ExpireTime = time.Duration(cfg.JWT.ExpireHours) * time.Hour

	// Reset links stay valid for 10 minutes unless configured otherwise.
	if cfg.Reset.ExpireSeconds <= 0 {
		cfg.Reset.ExpireSeconds = 600
	}
	cfg.Reset.ExpireTime = time.Duration(cfg.Reset.ExpireSeconds) * time.Second

	return &cfg, nil
}

// MustLoad loads configuration and panics on failure.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	return cfg
}

// Print logs the effective configuration, hiding credentials.
func (c *Config) Print() {
	log.Printf("configuration:")
	log.Printf("  server: %s (mode: %s)", c.Server.Port, c.Server.Mode)
	log.Printf("  database: %s@%s:%s/%s",
		c.Database.Username,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName)
	log.Printf("  email enabled: %v", c.Email.Enabled)
	log.Printf("  reset token ttl: %s", c.Reset.ExpireTime)
}
