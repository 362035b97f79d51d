package report

import (
	"strings"
	"testing"

	"titlestats/internal/rank"
	"titlestats/internal/stats"
)

func TestLetterRatingFormatting(t *testing.T) {
	groups := []stats.Group{
		{Key: "A", Count: 2, Mean: 7.5, Median: 7.5, Votes: 3000, WeightedMean: 23000.0 / 3000.0, HasWeighted: true},
		{Key: "B", Count: 2, Mean: 5.5, Median: 5.5, Votes: 2000, WeightedMean: 5.75, HasWeighted: true},
	}
	sum := stats.Summary{
		Samples: 4, Groups: 2,
		OverallMean: 6.5, OverallWeightedMean: 6.9,
		SSBetween: 4, SSWithin: 1, SSTotal: 5,
		EtaSquared: 0.8, HasEta: true,
		DFBetween: 1, DFWithin: 2,
		F: 8, HasF: true,
	}
	got := LetterRating(groups, sum).String()
	want := strings.Join([]string{
		"Movies analyzed: 4",
		"Unique initials: 2",
		"Overall mean rating: 6.50",
		"Overall weighted mean rating: 6.90",
		"Eta squared (effect size): 0.8000",
		"F statistic: 8.000 (df_between=1, df_within=2)",
		"",
		"Letter\tTitles\tAvg Rating\tWeighted Avg\tMedian\tTotal Votes",
		"A\t2\t7.50\t7.67\t7.50\t3000",
		"B\t2\t5.50\t5.75\t5.50\t2000",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("report mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestLetterRatingOmitsUndefinedStatistics(t *testing.T) {
	groups := []stats.Group{{Key: "A", Count: 1, Mean: 7, Median: 7, Votes: 10, WeightedMean: 7, HasWeighted: true}}
	sum := stats.Summary{Samples: 1, Groups: 1, OverallMean: 7, OverallWeightedMean: 7}
	got := LetterRating(groups, sum).String()
	if strings.Contains(got, "Eta squared") || strings.Contains(got, "F statistic") {
		t.Fatalf("undefined statistics must not be printed:\n%s", got)
	}
}

func TestDirectorPreferencesFormatting(t *testing.T) {
	prefs := []rank.Preference{
		{
			DirectorID: "nm1", Name: "Alice Example", Letter: "A",
			MovieCount: 3, PreferredCount: 2, Share: 2.0 / 3.0,
			PreferredMean: 7.5, PreferredWeightedMean: 7.67,
			OverallMean: 7.0, OverallWeightedMean: 7.2,
		},
	}
	got := DirectorPreferences(prefs, rank.Totals{Directors: 1, Movies: 3}).String()
	want := strings.Join([]string{
		"Directors considered: 1",
		"Movies considered: 3",
		"",
		"Director\tMovies\tPreferred Letter\tShare\tPreferred Avg\tPreferred Weighted\tOverall Avg\tOverall Weighted",
		"Alice Example\t3\tA\t0.67\t7.50\t7.67\t7.00\t7.20",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("report mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestReportIsDeterministic(t *testing.T) {
	groups := []stats.Group{{Key: "A", Count: 1, Mean: 7, Median: 7, Votes: 1, WeightedMean: 7, HasWeighted: true}}
	sum := stats.Summary{Samples: 1, Groups: 1, OverallMean: 7, OverallWeightedMean: 7}
	first := LetterRating(groups, sum).String()
	second := LetterRating(groups, sum).String()
	if first != second {
		t.Fatal("identical inputs must render byte-identical reports")
	}
}
