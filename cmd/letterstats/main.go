// Command letterstats tests whether a movie title's first letter correlates
// with its audience rating for one release region. It prints summary lines
// (counts, means, effect size, F statistic) followed by a per-letter
// tab-separated table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"titlestats/internal/analysis"
	"titlestats/internal/config"
	"titlestats/internal/metrics"
	"titlestats/internal/metrics/prompush"
	"titlestats/internal/storage/postgres"
)

func main() {
	var (
		datasetsDir    = flag.String("datasets-dir", "", "directory containing the title TSV files (default: auto-detect datasets/ or dataset/)")
		region         = flag.String("region", "IN", "target release region code")
		minVotes       = flag.Int64("min-votes", 500, "minimum votes for a title to be included (inclusive)")
		metricsBackend = flag.String("metrics-backend", "none", "metrics backend to use (pushgateway, none)")
		pushgatewayURL = flag.String("pushgateway-url", "", "Pushgateway base URL (overrides env PUSHGATEWAY_URL)")
		saveDSN        = flag.String("save-dsn", "", "optional Postgres DSN; the result table is saved there after a successful run")
	)
	flag.Parse()

	if err := run(*datasetsDir, *region, *minVotes, *metricsBackend, *pushgatewayURL, *saveDSN); err != nil {
		fmt.Fprintln(os.Stderr, "letterstats:", err)
		os.Exit(1)
	}
}

func run(datasetsDir, region string, minVotes int64, metricsBackend, pushgatewayURL, saveDSN string) error {
	params := config.Params{
		DatasetsDir: datasetsDir,
		Region:      region,
		MinVotes:    minVotes,
		MinMovies:   3,
		TopN:        20,
	}
	warnings, err := params.Check()
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w.Error())
	}
	if err != nil {
		return err
	}

	initMetrics(metricsBackend, pushgatewayURL)

	ctx := context.Background()
	paths, err := config.DetectPaths(params.DatasetsDir, false, false)
	if err != nil {
		return err
	}

	res, err := analysis.LetterRating(ctx, paths, params)
	if err != nil {
		return err
	}

	if saveDSN != "" {
		sink, err := postgres.NewRepository(ctx, saveDSN)
		if err != nil {
			return err
		}
		defer sink.Close()
		if err := sink.SaveLetterStats(ctx, res.Groups); err != nil {
			return err
		}
	}

	if err := metrics.Flush(); err != nil {
		log.Printf("metrics: flush: %v", err)
	}

	_, err = res.Report.WriteTo(os.Stdout)
	return err
}

// initMetrics selects the metrics backend: flag, then environment, then the
// no-op default.
func initMetrics(backendName, gatewayURL string) {
	if backendName == "" {
		backendName = os.Getenv("METRICS_BACKEND")
	}
	if backendName != "pushgateway" {
		return
	}
	if gatewayURL == "" {
		gatewayURL = os.Getenv("PUSHGATEWAY_URL")
	}
	b, err := prompush.NewBackend("letterstats", gatewayURL)
	if err != nil {
		log.Printf("metrics: failed to init pushgateway backend: %v; using nop", err)
		return
	}
	metrics.SetBackend(b)
}
