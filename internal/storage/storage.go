// Package storage defines the optional results sink. The analyses are
// purely in-memory; when a sink is configured the finished report tables are
// written out after the run has succeeded, never before.
package storage

import (
	"context"

	"titlestats/internal/rank"
	"titlestats/internal/stats"
)

// Sink persists finished analysis tables. Implementations live in
// subpackages (currently Postgres) so the analysis code never imports a
// database driver.
type Sink interface {
	// SaveLetterStats writes the per-letter group statistics.
	SaveLetterStats(ctx context.Context, groups []stats.Group) error
	// SaveDirectorPreferences writes the ranked preference rows.
	SaveDirectorPreferences(ctx context.Context, prefs []rank.Preference) error
	// Close releases the underlying connections.
	Close()
}
