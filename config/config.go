package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Webhook     WebhookConfig     `mapstructure:"webhook"`
	Fulfillment FulfillmentConfig `mapstructure:"fulfillment"`
	Notify      NotifyConfig      `mapstructure:"notify"`
	License     LicenseConfig     `mapstructure:"license"`
	AES         AESConfig         `mapstructure:"aes"`
	RateLimit   RateLimitConfig   `mapstructure:"ratelimit"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// WebhookConfig controls inbound notification verification and processing.
type WebhookConfig struct {
	// SigningSecret is the shared HMAC secret for the provider's signature.
	SigningSecret string `mapstructure:"signing_secret"`
	// Tolerance bounds |now - signature timestamp|.
	Tolerance time.Duration `mapstructure:"tolerance"`
	// ProcessingTimeout bounds one inbound delivery end to end.
	ProcessingTimeout time.Duration `mapstructure:"processing_timeout"`
	// DedupeTTL is how long the fast-path duplicate marker lives in Redis.
	DedupeTTL time.Duration `mapstructure:"dedupe_ttl"`
}

// FulfillmentConfig controls access and credential provisioning.
type FulfillmentConfig struct {
	// EnterpriseThresholdCents: subscriptions with a recurring amount at or
	// above this value receive the elevated-tier classification.
	EnterpriseThresholdCents int64  `mapstructure:"enterprise_threshold_cents"`
	DefaultSeatLimit         int    `mapstructure:"default_seat_limit"`
	DefaultPlanTier          string `mapstructure:"default_plan_tier"`
}

// NotifyConfig points at the outbound mailer and the operator alert channel.
type NotifyConfig struct {
	MailerURL string        `mapstructure:"mailer_url"`
	AlertURL  string        `mapstructure:"alert_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// LicenseConfig controls license key minting for subscription credentials.
type LicenseConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

// RateLimitConfig bounds inbound deliveries per client IP (fixed window).
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int64         `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SFE_ (StoreFront Events).
// Nested keys use underscore: SFE_DATABASE_HOST, SFE_WEBHOOK_SIGNING_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "storefront_events")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("webhook.signing_secret", "")
	v.SetDefault("webhook.tolerance", "5m")
	v.SetDefault("webhook.processing_timeout", "15s")
	v.SetDefault("webhook.dedupe_ttl", "24h")
	v.SetDefault("fulfillment.enterprise_threshold_cents", 41500)
	v.SetDefault("fulfillment.default_seat_limit", 1)
	v.SetDefault("fulfillment.default_plan_tier", "standard")
	v.SetDefault("notify.mailer_url", "")
	v.SetDefault("notify.alert_url", "")
	v.SetDefault("notify.timeout", "10s")
	v.SetDefault("license.secret", "")
	v.SetDefault("license.issuer", "storefront-events")
	v.SetDefault("aes.key", "")
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.limit", 300)
	v.SetDefault("ratelimit.window", "1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SFE_DATABASE_HOST -> database.host
	v.SetEnvPrefix("SFE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional, env vars can suffice
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
