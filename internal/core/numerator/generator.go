// Package numerator provides the domain contract for document code
// generation. Implementations live in the infrastructure layer.
package numerator

import (
	"context"
	"time"
)

// Generator mints sequential document codes.
//
// The returned code follows PREFIX-YEAR-XXXXX (e.g. BO-2026-00001).
// How uniqueness is achieved is the implementation's concern; callers
// only rely on getting a code that no concurrent caller receives.
type Generator interface {
	// GetNextNumber generates the next document code for cfg.
	// Supports Strict (database row) and Cached (in-memory range)
	// strategies via opts.
	GetNextNumber(ctx context.Context, cfg Config, opts *Options, period time.Time) (string, error)

	// SetNextNumber seeds the next counter value (migrations, imports).
	SetNextNumber(ctx context.Context, cfg Config, period time.Time, value int64) error
}
