package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

const DefaultStorageKey = "holiday-plans"

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Storage struct {
		Driver           string `env:"DRIVER" envDefault:"file"` // memory, none, file, redis, postgres, sqlite
		Key              string `env:"KEY" envDefault:"holiday-plans"`
		QuotaBytes       int    `env:"QUOTA_BYTES" envDefault:"5242880"` // 5 MiB, the usual per-origin localStorage limit
		OperationTimeout int    `env:"OPERATION_TIMEOUT" envDefault:"5"`
		FileDir          string `env:"FILE_DIR" envDefault:"./data"`
		SQLitePath       string `env:"SQLITE_PATH" envDefault:"./data/holiday-plans.db"`
	} `envPrefix:"STORAGE_"`
	Database struct {
		DSN            string `env:"DSN"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		MaxOpenConns   int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns   int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime    int    `env:"MAX_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"DATABASE_"`
	Redis struct {
		Host           string `env:"HOST" envDefault:"localhost"`
		Port           int    `env:"PORT" envDefault:"6379"`
		Password       string `env:"PASSWORD"`
		DB             int    `env:"DB" envDefault:"0"`
		KeyPrefix      string `env:"KEY_PREFIX" envDefault:"holiday-planner:"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
	} `envPrefix:"REDIS_"`
	Log struct {
		Level      string `env:"LEVEL" envDefault:"info"`
		Format     string `env:"FORMAT"` // text or json; empty picks by ENVIRONMENT
		File       string `env:"FILE"`
		MaxSize    int    `env:"MAX_SIZE" envDefault:"15"` // MB
		MaxBackups int    `env:"MAX_BACKUPS" envDefault:"3"`
		MaxAge     int    `env:"MAX_AGE" envDefault:"28"` // days
	} `envPrefix:"LOG_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// the first error alone keeps the log readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
