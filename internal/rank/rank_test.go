package rank

import (
	"math"
	"testing"

	apperr "titlestats/internal/errors"
)

const tol = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) <= tol }

func entry(director, key string, rating float64, votes int64) Entry {
	return Entry{DirectorID: director, Name: "Director " + director, Key: key, Rating: rating, Votes: votes}
}

func TestRankPreferredLetter(t *testing.T) {
	// D1: two titles under "A", one under "B".
	entries := []Entry{
		entry("d1", "A", 7.0, 100),
		entry("d1", "A", 8.0, 200),
		entry("d1", "B", 6.0, 50),
	}
	prefs, totals, err := Rank(entries, 2, 20)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(prefs) != 1 {
		t.Fatalf("got %d rows, want 1", len(prefs))
	}
	p := prefs[0]
	if p.Letter != "A" || p.PreferredCount != 2 || p.MovieCount != 3 {
		t.Errorf("preference = %+v", p)
	}
	if !approx(p.Share, 2.0/3.0) {
		t.Errorf("share = %v, want 2/3", p.Share)
	}
	if !approx(p.PreferredMean, 7.5) {
		t.Errorf("preferred mean = %v, want 7.5", p.PreferredMean)
	}
	if !approx(p.PreferredWeightedMean, (7.0*100+8.0*200)/300) {
		t.Errorf("preferred weighted mean = %v", p.PreferredWeightedMean)
	}
	if !approx(p.OverallMean, 7.0) {
		t.Errorf("overall mean = %v, want 7.0", p.OverallMean)
	}
	if totals.Directors != 1 || totals.Movies != 3 {
		t.Errorf("totals = %+v", totals)
	}
}

func TestRankNoEligibleDirectors(t *testing.T) {
	entries := []Entry{
		entry("d1", "A", 7.0, 10),
		entry("d2", "B", 6.0, 10),
	}
	_, _, err := Rank(entries, 5, 20)
	if !apperr.IsType(err, apperr.ErrTypeEmptyResult) {
		t.Fatalf("got %v, want EMPTY_RESULT", err)
	}
}

func TestRankZeroVotesFallsBackToMean(t *testing.T) {
	entries := []Entry{
		entry("d1", "A", 6.0, 0),
		entry("d1", "A", 8.0, 0),
		entry("d1", "B", 5.0, 0),
	}
	prefs, _, err := Rank(entries, 3, 20)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	p := prefs[0]
	if !approx(p.PreferredWeightedMean, p.PreferredMean) {
		t.Errorf("preferred weighted %v must equal mean %v at zero votes", p.PreferredWeightedMean, p.PreferredMean)
	}
	if !approx(p.OverallWeightedMean, p.OverallMean) {
		t.Errorf("overall weighted %v must equal mean %v at zero votes", p.OverallWeightedMean, p.OverallMean)
	}
}

func TestRankLetterTieBreaksLexicographically(t *testing.T) {
	// Two letters with identical counts: the smaller letter wins.
	entries := []Entry{
		entry("d1", "Z", 9.0, 10),
		entry("d1", "C", 5.0, 10),
	}
	prefs, _, err := Rank(entries, 2, 20)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if prefs[0].Letter != "C" {
		t.Errorf("preferred letter = %q, want C", prefs[0].Letter)
	}
}

func TestRankOrderingAndTruncation(t *testing.T) {
	entries := []Entry{
		// d1: share 1.0 over 2 movies.
		entry("d1", "A", 6.0, 10),
		entry("d1", "A", 7.0, 10),
		// d2: share 1.0 over 3 movies (higher overall count, ranks first).
		entry("d2", "B", 5.0, 10),
		entry("d2", "B", 5.5, 10),
		entry("d2", "B", 6.0, 10),
		// d3: share 2/3.
		entry("d3", "C", 9.0, 10),
		entry("d3", "C", 9.5, 10),
		entry("d3", "D", 9.0, 10),
	}
	prefs, totals, err := Rank(entries, 2, 20)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	got := []string{prefs[0].DirectorID, prefs[1].DirectorID, prefs[2].DirectorID}
	want := []string{"d2", "d1", "d3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if totals.Directors != 3 || totals.Movies != 8 {
		t.Errorf("totals = %+v", totals)
	}

	top, _, err := Rank(entries, 2, 2)
	if err != nil {
		t.Fatalf("Rank topN: %v", err)
	}
	if len(top) != 2 || top[0].DirectorID != "d2" || top[1].DirectorID != "d1" {
		t.Errorf("truncated order = %+v", top)
	}
}

func TestRankResidualTieFallsToDirectorID(t *testing.T) {
	// Identical share, count, and preferred mean: director id decides.
	entries := []Entry{
		entry("d9", "A", 7.0, 10),
		entry("d9", "A", 7.0, 10),
		entry("d2", "A", 7.0, 10),
		entry("d2", "A", 7.0, 10),
	}
	prefs, _, err := Rank(entries, 2, 20)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if prefs[0].DirectorID != "d2" || prefs[1].DirectorID != "d9" {
		t.Errorf("residual tie order = %s, %s, want d2, d9", prefs[0].DirectorID, prefs[1].DirectorID)
	}
}

func TestRankShareBounds(t *testing.T) {
	entries := []Entry{
		entry("d1", "A", 7.0, 10),
		entry("d1", "B", 6.0, 10),
		entry("d1", "C", 5.0, 10),
	}
	prefs, _, err := Rank(entries, 1, 20)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	p := prefs[0]
	if p.Share <= 0 || p.Share > 1 {
		t.Errorf("share %v out of (0,1]", p.Share)
	}
	if !approx(p.Share, float64(p.PreferredCount)/float64(p.MovieCount)) {
		t.Errorf("share %v != preferredCount/movieCount", p.Share)
	}
}
