// Package postgres implements the results sink on Postgres using pgx v5.
// Each table is created on first use and rows are written with a single COPY
// per run; run_at defaults server-side so repeated runs stay distinguishable.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"titlestats/internal/rank"
	"titlestats/internal/stats"
	"titlestats/internal/storage"
)

var _ storage.Sink = (*Repository)(nil)

const letterStatsDDL = `CREATE TABLE IF NOT EXISTS letter_stats (
	run_at       timestamptz NOT NULL DEFAULT now(),
	letter       text        NOT NULL,
	titles       bigint      NOT NULL,
	mean_rating  double precision NOT NULL,
	weighted_avg double precision NOT NULL,
	median       double precision NOT NULL,
	total_votes  bigint      NOT NULL
)`

const directorPrefsDDL = `CREATE TABLE IF NOT EXISTS director_preferences (
	run_at             timestamptz NOT NULL DEFAULT now(),
	director_id        text   NOT NULL,
	director_name      text   NOT NULL,
	preferred_letter   text   NOT NULL,
	movies             bigint NOT NULL,
	preferred_count    bigint NOT NULL,
	preferred_share    double precision NOT NULL,
	preferred_mean     double precision NOT NULL,
	preferred_weighted double precision NOT NULL,
	overall_mean       double precision NOT NULL,
	overall_weighted   double precision NOT NULL
)`

// Repository is a Postgres-backed storage.Sink.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository connects to dsn and returns the sink.
func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	return &Repository{pool: pool}, nil
}

// Close releases the connection pool.
func (r *Repository) Close() { r.pool.Close() }

// SaveLetterStats creates the letter_stats table if needed and COPYs one row
// per classification key.
func (r *Repository) SaveLetterStats(ctx context.Context, groups []stats.Group) error {
	if _, err := r.pool.Exec(ctx, letterStatsDDL); err != nil {
		return fmt.Errorf("create letter_stats: %w", err)
	}
	rows := make([][]any, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []any{
			g.Key, int64(g.Count), g.Mean, g.WeightedOrMean(), g.Median, g.Votes,
		})
	}
	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"letter_stats"},
		[]string{"letter", "titles", "mean_rating", "weighted_avg", "median", "total_votes"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy letter_stats: %w", err)
	}
	return nil
}

// SaveDirectorPreferences creates the director_preferences table if needed
// and COPYs the ranked rows.
func (r *Repository) SaveDirectorPreferences(ctx context.Context, prefs []rank.Preference) error {
	if _, err := r.pool.Exec(ctx, directorPrefsDDL); err != nil {
		return fmt.Errorf("create director_preferences: %w", err)
	}
	rows := make([][]any, 0, len(prefs))
	for _, p := range prefs {
		rows = append(rows, []any{
			p.DirectorID, p.Name, p.Letter,
			int64(p.MovieCount), int64(p.PreferredCount), p.Share,
			p.PreferredMean, p.PreferredWeightedMean,
			p.OverallMean, p.OverallWeightedMean,
		})
	}
	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"director_preferences"},
		[]string{
			"director_id", "director_name", "preferred_letter",
			"movies", "preferred_count", "preferred_share",
			"preferred_mean", "preferred_weighted",
			"overall_mean", "overall_weighted",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy director_preferences: %w", err)
	}
	return nil
}
