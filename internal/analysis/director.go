package analysis

import (
	"context"
	"log"
	"time"

	"titlestats/internal/classify"
	"titlestats/internal/config"
	"titlestats/internal/dataset"
	"titlestats/internal/join"
	"titlestats/internal/metrics"
	"titlestats/internal/rank"
	"titlestats/internal/report"
)

// DirectorResult is the outcome of the director preference analysis.
type DirectorResult struct {
	Preferences []rank.Preference
	Totals      rank.Totals
	Report      *report.Report
}

// DirectorPreference runs the director pipeline: explode credit lists into
// (director, title) pairs against the rated movie set, classify initials,
// and rank eligible directors by preferred-letter share.
func DirectorPreference(ctx context.Context, paths config.Paths, params config.Params) (*DirectorResult, error) {
	titles, ratings, err := loadCore(ctx, paths, params)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	credits, err := dataset.LoadCredits(ctx, paths.Crew)
	metrics.RecordStep("load_credits", err, time.Since(start))
	if err != nil {
		return nil, err
	}

	wanted := join.DirectorIDs(credits)
	start = time.Now()
	names, err := dataset.LoadPersonNames(ctx, paths.Names, wanted)
	metrics.RecordStep("load_names", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	log.Printf("analysis: credits=%d directors=%d named=%d", len(credits), len(wanted), len(names))

	start = time.Now()
	rows, err := join.DirectorRows(ratings, titles, credits, names)
	metrics.RecordStep("join_directors", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	metrics.RecordRows("joined", len(rows))

	entries := make([]rank.Entry, 0, len(rows))
	for _, row := range rows {
		key, ok := classify.FirstLetter(row.Title)
		if !ok {
			continue
		}
		entries = append(entries, rank.Entry{
			DirectorID: row.DirectorID,
			Name:       row.Name,
			Key:        key,
			Rating:     row.Rating,
			Votes:      row.Votes,
		})
	}
	metrics.RecordRows("classified", len(entries))

	start = time.Now()
	prefs, totals, err := rank.Rank(entries, params.MinMovies, params.TopN)
	metrics.RecordStep("rank", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	metrics.RecordRows("ranked", len(prefs))
	log.Printf("analysis: eligible_directors=%d movies_considered=%d", totals.Directors, totals.Movies)

	return &DirectorResult{
		Preferences: prefs,
		Totals:      totals,
		Report:      report.DirectorPreferences(prefs, totals),
	}, nil
}
