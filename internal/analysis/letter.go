// Package analysis wires the loaders, joins, classifier, and statistics
// engines into the two complete analysis runs. Each run is a sequential,
// fail-fast batch pipeline: any error aborts before the report exists, so a
// run either completes fully or emits nothing.
package analysis

import (
	"context"
	"log"
	"time"

	"titlestats/internal/classify"
	"titlestats/internal/config"
	"titlestats/internal/dataset"
	apperr "titlestats/internal/errors"
	"titlestats/internal/join"
	"titlestats/internal/metrics"
	"titlestats/internal/report"
	"titlestats/internal/stats"
)

// LetterResult is the outcome of the first-letter rating analysis.
type LetterResult struct {
	Groups  []stats.Group
	Summary stats.Summary
	Report  *report.Report
}

// LetterRating runs the region analysis: load the three core tables, pick
// one alias per title for the target region, join, classify initials, and
// decompose the rating variance by initial.
func LetterRating(ctx context.Context, paths config.Paths, params config.Params) (*LetterResult, error) {
	start := time.Now()
	aliases, err := dataset.LoadRegionAliases(ctx, paths.Aliases, params.Region)
	metrics.RecordStep("load_aliases", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	preferred := dataset.DedupeAliases(aliases)
	if len(preferred) == 0 {
		return nil, apperr.NewEmptyResultError("no titles found for region " + params.Region)
	}
	log.Printf("analysis: region=%s aliases=%d titles=%d", params.Region, len(aliases), len(preferred))

	titles, ratings, err := loadCore(ctx, paths, params)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	rows, err := join.RegionRows(ratings, titles, preferred)
	metrics.RecordStep("join_region", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	metrics.RecordRows("joined", len(rows))

	samples := make([]stats.Sample, 0, len(rows))
	for _, row := range rows {
		key, ok := classify.FirstLetter(row.Title)
		if !ok {
			continue
		}
		samples = append(samples, stats.Sample{Key: key, Rating: row.Rating, Votes: row.Votes})
	}
	metrics.RecordRows("classified", len(samples))

	start = time.Now()
	groups, summary, err := stats.Aggregate(samples)
	metrics.RecordStep("aggregate", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	log.Printf("analysis: movies=%d initials=%d", summary.Samples, summary.Groups)

	return &LetterResult{
		Groups:  groups,
		Summary: summary,
		Report:  report.LetterRating(groups, summary),
	}, nil
}

// loadCore loads the movie title table and the vote-filtered ratings, which
// both analyses share.
func loadCore(ctx context.Context, paths config.Paths, params config.Params) (map[string]string, []dataset.Rating, error) {
	start := time.Now()
	titles, err := dataset.LoadMovieTitles(ctx, paths.Basics)
	metrics.RecordStep("load_basics", err, time.Since(start))
	if err != nil {
		return nil, nil, err
	}

	start = time.Now()
	ratings, err := dataset.LoadRatings(ctx, paths.Ratings, params.MinVotes)
	metrics.RecordStep("load_ratings", err, time.Since(start))
	if err != nil {
		return nil, nil, err
	}
	metrics.RecordRows("loaded", len(ratings))
	log.Printf("analysis: movies=%d rated(min_votes=%d)=%d", len(titles), params.MinVotes, len(ratings))
	return titles, ratings, nil
}
