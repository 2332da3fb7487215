package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

type storageItem struct {
	ItemKey   string `gorm:"primaryKey"`
	ItemValue string `gorm:"not null"`
	UpdatedAt time.Time
}

func (storageItem) TableName() string {
	return "local_storage"
}

// SQLite keeps items in a single-file database through gorm.
type SQLite struct {
	db      *gorm.DB
	timeout time.Duration
}

func OpenSQLite(path string, timeout time.Duration) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: gorm open: %v", ErrUnavailable, err)
	}
	if err := db.AutoMigrate(&storageItem{}); err != nil {
		return nil, fmt.Errorf("%w: migrate: %v", ErrUnavailable, err)
	}
	return &SQLite{db: db, timeout: timeout}, nil
}

func (s *SQLite) GetItem(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var item storageItem
	err := s.db.WithContext(ctx).Where("item_key = ?", key).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return item.ItemValue, true, nil
}

func (s *SQLite) SetItem(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	item := storageItem{ItemKey: key, ItemValue: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"item_value", "updated_at"}),
		}).
		Create(&item).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
