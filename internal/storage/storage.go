// Package storage provides the key-value persistence media the plan
// repository writes its single JSON blob to.
package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the medium could not be reached at all.
	ErrUnavailable = errors.New("storage medium unavailable")
	// ErrQuotaExceeded means the value did not fit into the medium.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Medium is a synchronous key-value store. GetItem reports ok=false with a
// nil error when the key is absent.
type Medium interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
}

// Backend is a Medium that holds resources.
type Backend interface {
	Medium
	Close() error
}

func checkQuota(quota int, key, value string) error {
	if quota <= 0 {
		return nil
	}
	if size := len(key) + len(value); size > quota {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrQuotaExceeded, size, quota)
	}
	return nil
}

// Unavailable behaves like a context with storage disabled.
type Unavailable struct{}

func (Unavailable) GetItem(string) (string, bool, error) { return "", false, ErrUnavailable }
func (Unavailable) SetItem(string, string) error { return ErrUnavailable }
func (Unavailable) Close() error { return nil }
