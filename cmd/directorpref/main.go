// Command directorpref determines, per movie director, which starting
// letter their filmography disproportionately favors. It requires the
// optional title-credits and person-basics files and prints the ranked
// preference table for the eligible directors.
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
		minVotes       = flag.Int64("min-votes", 500, "minimum votes per title (inclusive)")
		minMovies      = flag.Int("min-movies", 3, "minimum movies per director to be eligible")
		topN           = flag.Int("top-n", 20, "number of directors to display")
		metricsBackend = flag.String("metrics-backend", "none", "metrics backend to use (pushgateway, none)")
		pushgatewayURL = flag.String("pushgateway-url", "", "Pushgateway base URL (overrides env PUSHGATEWAY_URL)")
		saveDSN        = flag.String("save-dsn", "", "optional Postgres DSN; the result table is saved there after a successful run")
	)
	flag.Parse()

	params := config.Params{
		DatasetsDir: *datasetsDir,
		Region:      "IN", // unused by this analysis; kept valid for the linter
		MinVotes:    *minVotes,
		MinMovies:   *minMovies,
		TopN:        *topN,
	}
	if err := run(params, *metricsBackend, *pushgatewayURL, *saveDSN); err != nil {
		fmt.Fprintln(os.Stderr, "directorpref:", err)
		os.Exit(1)
	}
}

func run(params config.Params, metricsBackend, pushgatewayURL, saveDSN string) error {
	warnings, err := params.Check()
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w.Error())
	}
	if err != nil {
		return err
	}

	initMetrics(metricsBackend, pushgatewayURL)

	ctx := context.Background()
	paths, err := config.DetectPaths(params.DatasetsDir, true, true)
	if err != nil {
		return err
	}

	res, err := analysis.DirectorPreference(ctx, paths, params)
	if err != nil {
		return err
	}

	if saveDSN != "" {
		sink, err := postgres.NewRepository(ctx, saveDSN)
		if err != nil {
			return err
		}
		defer sink.Close()
		if err := sink.SaveDirectorPreferences(ctx, res.Preferences); err != nil {
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
	b, err := prompush.NewBackend("directorpref", gatewayURL)
	if err != nil {
		log.Printf("metrics: failed to init pushgateway backend: %v; using nop", err)
		return
	}
	metrics.SetBackend(b)
}
