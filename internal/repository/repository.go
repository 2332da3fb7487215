package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/config"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/storage"
)

// ErrCorrupted marks a stored blob that is not a JSON array of plans.
var ErrCorrupted = errors.New("stored holiday plans are corrupted")

// Outcome tells callers what a mutation did. Failures are also logged, so
// callers that ignore the outcome lose nothing but the signal.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeNoop
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeNoop:
		return "noop"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Repository owns the persisted collection of holiday plans. Every mutation
// reads the whole collection, changes it in memory and writes all of it back.
type Repository struct {
	medium storage.Medium
	key    string
	logger *slog.Logger

	// serializes read-modify-write cycles inside this process only; readers
	// share it so they never observe a write in progress
	mu sync.RWMutex
}

func NewRepository(cfg *config.Config, medium storage.Medium, logger *slog.Logger) *Repository {
	key := cfg.Storage.Key
	if key == "" {
		key = config.DefaultStorageKey
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Repository{
		medium: medium,
		key:    key,
		logger: logger,
	}
}

func (r *Repository) load() ([]domain.HolidayPlan, error) {
	blob, ok, err := r.medium.GetItem(r.key)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(blob) == "" {
		return []domain.HolidayPlan{}, nil
	}

	var plans []domain.HolidayPlan
	if err := json.Unmarshal([]byte(blob), &plans); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	// "null" and missing schedule lists are read as empty
	if plans == nil {
		plans = []domain.HolidayPlan{}
	}
	for i := range plans {
		if plans[i].Schedules == nil {
			plans[i].Schedules = []domain.Schedule{}
		}
	}

	return plans, nil
}

func (r *Repository) save(plans []domain.HolidayPlan) error {
	data, err := json.Marshal(plans)
	if err != nil {
		return err
	}
	return r.medium.SetItem(r.key, string(data))
}

// read is load for read-only callers: every failure degrades to an empty
// collection.
func (r *Repository) read(op string) []domain.HolidayPlan {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plans, err := r.load()
	if err != nil {
		r.logger.Error("failed to read holiday plans", "op", op, "key", r.key, "error", err)
		return []domain.HolidayPlan{}
	}
	return plans
}

// mutate runs one read-modify-write cycle. fn reports whether it changed the
// collection; unchanged collections are not written.
func (r *Repository) mutate(op string, fn func(plans []domain.HolidayPlan) ([]domain.HolidayPlan, bool)) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	plans, err := r.load()
	if err != nil {
		if !errors.Is(err, ErrCorrupted) {
			r.logger.Error("failed to read holiday plans", "op", op, "key", r.key, "error", err)
			return OutcomeFailed
		}
		// same as reads: corrupted data counts as an empty collection
		r.logger.Warn("discarding corrupted holiday plans", "op", op, "key", r.key, "error", err)
		plans = []domain.HolidayPlan{}
	}

	plans, changed := fn(plans)
	if !changed {
		return OutcomeNoop
	}

	if err := r.save(plans); err != nil {
		r.logger.Error("failed to save holiday plans", "op", op, "key", r.key, "error", err)
		return OutcomeFailed
	}
	return OutcomeApplied
}

func indexOfPlan(plans []domain.HolidayPlan, id string) int {
	for i := range plans {
		if plans[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfSchedule(schedules []domain.Schedule, id string) int {
	for i := range schedules {
		if schedules[i].ID == id {
			return i
		}
	}
	return -1
}
