package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port int `env:"PORT" envDefault:"8080"`
	}

	// Storage selects the repository backend: "memory" seeds sample data,
	// "mysql" requires a reachable server.
	Storage struct {
		Driver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	}

	MySQL struct {
		Host     string `env:"MYSQL_HOST" envDefault:"localhost"`
		Port     int    `env:"MYSQL_PORT" envDefault:"3306"`
		User     string `env:"MYSQL_USER" envDefault:"root"`
		Password string `env:"MYSQL_PASSWORD" envDefault:""`
		Database string `env:"MYSQL_DATABASE" envDefault:"supermercado"`
	}

	Redis struct {
		// Empty host disables the redis cache; listings fall back to an
		// in-process cache.
		Host     string        `env:"REDIS_HOST" envDefault:""`
		Port     int           `env:"REDIS_PORT" envDefault:"6379"`
		Password string        `env:"REDIS_PASSWORD" envDefault:""`
		DB       int           `env:"REDIS_DB" envDefault:"0"`
		CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	}
}

func Load() (*Config, error) {
	// Missing .env is fine; production sets variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Storage.Driver != StorageMemory && cfg.Storage.Driver != StorageMySQL {
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return cfg, nil
}

// MySQLDSN builds the go-sql-driver DSN from the configured parts.
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.MySQL.User, c.MySQL.Password, c.MySQL.Host, c.MySQL.Port, c.MySQL.Database)
}

// RedisAddr returns host:port, or empty when the cache is disabled.
func (c *Config) RedisAddr() string {
	if c.Redis.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
