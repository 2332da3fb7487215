package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestSQLite_SetThenOverwrite(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "storage.db"), time.Second)
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.GetItem("holiday-plans")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetItem("holiday-plans", `[{"id":"a"}]`))
	require.NoError(t, s.SetItem("holiday-plans", `[{"id":"b"}]`))

	value, ok, err := s.GetItem("holiday-plans")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"b"}]`, value)

	var count int64
	require.NoError(t, s.db.Model(&storageItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSQLite_GormLoggerIsSilent(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "storage.db"), time.Second)
	require.NoError(t, err)
	defer s.Close()

	// failures surface as ErrUnavailable through slog, not gorm's stdout logger
	assert.Equal(t, gormlogger.Default.LogMode(gormlogger.Silent), s.db.Config.Logger)
}
