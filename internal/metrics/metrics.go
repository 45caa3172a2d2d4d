// Package metrics persists performance snapshots to a SQLite history
// database: schema management with backup-then-recreate migration, a
// repository for recording and querying, and a collector facade that turns
// into a no-op when history is disabled.
package metrics

import (
	"context"

	"codeberg.org/mutker/gamectl/internal/errors"
	"codeberg.org/mutker/gamectl/internal/logger"
	"codeberg.org/mutker/gamectl/internal/telemetry"
)

type collector struct {
	repo *Repository
}

// No-op implementation
type noopCollector struct{}

// NewCollector validates cfg and returns the recording facade. Disabled
// history yields a no-op collector so callers record unconditionally.
func NewCollector(cfg Config, log logger.Logger) (Collector, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	if !cfg.Enabled {
		log.Debug().Msg("Snapshot history disabled, using no-op collector")

		return &noopCollector{}, nil
	}

	repo, err := NewRepository(cfg, log)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to open snapshot history")

		return nil, err
	}

	return &collector{repo: repo}, nil
}

func (c *collector) Record(ctx context.Context, snap telemetry.Snapshot) error {
	return c.repo.Record(ctx, snap)
}

func (c *collector) Recent(ctx context.Context, n int) ([]Row, error) {
	return c.repo.Recent(ctx, n)
}

func (c *collector) Close() error {
	return c.repo.Close()
}

func (c *collector) Enabled() bool {
	return true
}

func (*noopCollector) Record(_ context.Context, _ telemetry.Snapshot) error {
	return nil
}

func (*noopCollector) Recent(_ context.Context, _ int) ([]Row, error) {
	return nil, nil
}

func (*noopCollector) Close() error {
	return nil
}

func (*noopCollector) Enabled() bool {
	return false
}
