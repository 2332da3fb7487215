package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

const (
	FileSuffix      = ".json"
	BackupSuffix    = ".backup"
	TmpSuffix       = ".tmp"
	FilePermissions = 0644
)

// File stores every key as its own JSON file inside dir.
type File struct {
	dir   string
	quota int
}

func NewFile(dir string, quota int) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &File{dir: dir, quota: quota}, nil
}

func (f *File) path(key string) string {
	// keys are caller-chosen names, keep them inside dir
	name := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(f.dir, name+FileSuffix)
}

func (f *File) GetItem(key string) (string, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return string(data), true, nil
}

// SetItem writes to a temp file first, copies the previous contents to a
// backup and then renames the temp file over the target. The target never
// goes missing, so concurrent readers see either the old or the new value.
func (f *File) SetItem(key, value string) error {
	if err := checkQuota(f.quota, key, value); err != nil {
		return err
	}

	target := f.path(key)
	tmpFile := target + TmpSuffix
	if err := os.WriteFile(tmpFile, []byte(value), FilePermissions); err != nil {
		return classifyFileError(err)
	}

	if previous, err := os.ReadFile(target); err == nil {
		if err := os.WriteFile(target+BackupSuffix, previous, FilePermissions); err != nil {
			slog.Warn("failed to create backup", "file", target, "error", err)
		}
	}

	if err := os.Rename(tmpFile, target); err != nil {
		return classifyFileError(err)
	}
	return nil
}

func (f *File) Close() error {
	return nil
}

func classifyFileError(err error) error {
	if errors.Is(err, syscall.ENOSPC) {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
