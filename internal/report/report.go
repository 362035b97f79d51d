// Package report renders the analysis results as plain-text summary lines
// followed by tab-separated tables. Output is buffered in memory and flushed
// in one piece only after the whole analysis has succeeded, so a failed run
// never leaves a truncated report behind.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"titlestats/internal/rank"
	"titlestats/internal/stats"
)

// Report is an in-memory rendering of one analysis result.
type Report struct{ buf bytes.Buffer }

// Linef appends one formatted summary line.
func (r *Report) Linef(format string, args ...any) {
	fmt.Fprintf(&r.buf, format+"\n", args...)
}

// Blank appends an empty separator line.
func (r *Report) Blank() { r.buf.WriteByte('\n') }

// Table appends a tab-separated table with a header row.
func (r *Report) Table(headers []string, rows [][]string) {
	r.buf.WriteString(strings.Join(headers, "\t"))
	r.buf.WriteByte('\n')
	for _, row := range rows {
		r.buf.WriteString(strings.Join(row, "\t"))
		r.buf.WriteByte('\n')
	}
}

// WriteTo flushes the buffered report to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) { return r.buf.WriteTo(w) }

// String returns the rendered report.
func (r *Report) String() string { return r.buf.String() }

// LetterRating renders the first-letter ANOVA result: population counts,
// overall means, effect size, F statistic (each statistic only when
// defined), then the per-letter table sorted as delivered by the
// aggregation.
func LetterRating(groups []stats.Group, sum stats.Summary) *Report {
	r := &Report{}
	r.Linef("Movies analyzed: %d", sum.Samples)
	r.Linef("Unique initials: %d", sum.Groups)
	r.Linef("Overall mean rating: %.2f", sum.OverallMean)
	r.Linef("Overall weighted mean rating: %.2f", sum.OverallWeightedMean)
	if sum.HasEta {
		r.Linef("Eta squared (effect size): %.4f", sum.EtaSquared)
	}
	if sum.HasF {
		r.Linef("F statistic: %.3f (df_between=%d, df_within=%d)", sum.F, sum.DFBetween, sum.DFWithin)
	}
	r.Blank()

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			g.Key,
			strconv.Itoa(g.Count),
			fmt.Sprintf("%.2f", g.Mean),
			fmt.Sprintf("%.2f", g.WeightedOrMean()),
			fmt.Sprintf("%.2f", g.Median),
			strconv.FormatInt(g.Votes, 10),
		})
	}
	r.Table([]string{"Letter", "Titles", "Avg Rating", "Weighted Avg", "Median", "Total Votes"}, rows)
	return r
}

// DirectorPreferences renders the ranked preferred-letter table with its
// population summary.
func DirectorPreferences(prefs []rank.Preference, totals rank.Totals) *Report {
	r := &Report{}
	r.Linef("Directors considered: %d", totals.Directors)
	r.Linef("Movies considered: %d", totals.Movies)
	r.Blank()

	rows := make([][]string, 0, len(prefs))
	for _, p := range prefs {
		rows = append(rows, []string{
			p.Name,
			strconv.Itoa(p.MovieCount),
			p.Letter,
			fmt.Sprintf("%.2f", p.Share),
			fmt.Sprintf("%.2f", p.PreferredMean),
			fmt.Sprintf("%.2f", p.PreferredWeightedMean),
			fmt.Sprintf("%.2f", p.OverallMean),
			fmt.Sprintf("%.2f", p.OverallWeightedMean),
		})
	}
	r.Table([]string{
		"Director", "Movies", "Preferred Letter", "Share",
		"Preferred Avg", "Preferred Weighted", "Overall Avg", "Overall Weighted",
	}, rows)
	return r
}
