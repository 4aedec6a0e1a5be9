package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port          string
	Env           string
	AllowedOrigin string
}

type DBConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	TimeZone   string
	SQLitePath string
	Migrate    bool
}

// RedisConfig leaves Host empty when no Redis is deployed; sessions then live in process memory.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// RateLimitConfig.TrustedProxies lists the addresses or CIDR ranges whose
// X-Forwarded-For header is believed. Empty means the header is ignored.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	TrustedProxies    []string
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("SQLITE_PATH", "clinic.db")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("AUTH_RATE_LIMIT", 5)
	v.SetDefault("AUTH_RATE_BURST", 10)

	// .env is optional; the environment alone is enough in containers
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	expiry, err := time.ParseDuration(v.GetString("JWT_EXPIRY"))
	if err != nil {
		expiry = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:          v.GetString("APP_PORT"),
			Env:           v.GetString("APP_ENV"),
			AllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		DB: DBConfig{
			Driver:     v.GetString("DB_DRIVER"),
			Host:       v.GetString("DB_HOST"),
			Port:       v.GetString("DB_PORT"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASSWORD"),
			Name:       v.GetString("DB_NAME"),
			SSLMode:    v.GetString("DB_SSLMODE"),
			TimeZone:   v.GetString("DB_TIMEZONE"),
			SQLitePath: v.GetString("SQLITE_PATH"),
			Migrate:    v.GetBool("DB_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Expiry: expiry,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("AUTH_RATE_LIMIT"),
			Burst:             v.GetInt("AUTH_RATE_BURST"),
			TrustedProxies:    splitList(v.GetString("TRUSTED_PROXIES")),
		},
	}

	if config.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	if _, err := ParseTrustedProxies(config.RateLimit.TrustedProxies); err != nil {
		return nil, err
	}

	return config, nil
}

// ParseTrustedProxies accepts bare addresses and CIDR ranges
func ParseTrustedProxies(entries []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(entries))
	var invalid error
	for _, entry := range entries {
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			if invalid == nil {
				invalid = fmt.Errorf("invalid TRUSTED_PROXIES entry %q", entry)
			}
			continue
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, invalid
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
