package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	DriverMemory   = "memory"
	DriverNone     = "none"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open builds the backend selected by cfg.Storage.Driver.
func Open(cfg *config.Config) (Backend, error) {
	timeout := time.Duration(cfg.Storage.OperationTimeout) * time.Second

	switch cfg.Storage.Driver {
	case DriverMemory:
		return NewMemory(cfg.Storage.QuotaBytes), nil
	case DriverNone:
		return Unavailable{}, nil
	case DriverFile:
		return NewFile(cfg.Storage.FileDir, cfg.Storage.QuotaBytes)
	case DriverRedis:
		return openRedis(cfg, timeout)
	case DriverPostgres:
		return openPostgres(cfg, timeout)
	case DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.SQLitePath), 0755); err != nil {
			return nil, err
		}
		return OpenSQLite(cfg.Storage.SQLitePath, timeout)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func openRedis(cfg *config.Config, timeout time.Duration) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return NewRedis(rdb, cfg.Redis.KeyPrefix, timeout), nil
}

func openPostgres(cfg *config.Config, timeout time.Duration) (*Postgres, error) {
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required for the %s driver", DriverPostgres)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only builds the pool, ping to actually connect
	if err := dbpool.PingContext(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	pg := NewPostgres(dbpool, timeout)
	if err := pg.EnsureSchema(); err != nil {
		dbpool.Close()
		return nil, err
	}
	return pg, nil
}
