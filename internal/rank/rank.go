// Package rank determines, per director, which starting letter their
// filmography favors, and orders eligible directors by how pronounced that
// preference is.
package rank

import (
	"sort"

	apperr "titlestats/internal/errors"
)

// Entry is one classified (director, title) observation. Pairs must already
// be deduplicated; every entry counts once.
type Entry struct {
	DirectorID string
	Name       string
	Key        string
	Rating     float64
	Votes      int64
}

// Preference is the summary row for one eligible director.
type Preference struct {
	DirectorID            string
	Name                  string
	Letter                string
	MovieCount            int
	PreferredCount        int
	Share                 float64
	PreferredMean         float64
	PreferredWeightedMean float64
	OverallMean           float64
	OverallWeightedMean   float64
}

// Totals reports the population behind a ranking run.
type Totals struct {
	Directors int // directors meeting the eligibility threshold
	Movies    int // their combined deduplicated title count
}

// cell is the running statistic set shared by both grouping levels.
type cell struct {
	count       int
	sum         float64
	votes       int64
	weightedSum float64
}

func (c *cell) add(e Entry) {
	c.count++
	c.sum += e.Rating
	c.votes += e.Votes
	c.weightedSum += e.Rating * float64(e.Votes)
}

func (c *cell) mean() float64 { return c.sum / float64(c.count) }

// weightedOrMean applies the zero-vote fallback: the vote-weighted mean when
// votes exist, the arithmetic mean otherwise.
func (c *cell) weightedOrMean() float64 {
	if c.votes > 0 {
		return c.weightedSum / float64(c.votes)
	}
	return c.mean()
}

type directorAgg struct {
	id      string
	name    string
	overall cell
	byKey   map[string]*cell
}

// Rank groups entries by (director, letter) and by director, keeps directors
// with at least minMovies titles, picks each one's preferred letter, and
// returns the top topN summary rows.
//
// Preferred letter: highest share, then highest letter count, then the
// lexicographically smallest letter. Final order: share descending, overall
// count descending, preferred-letter mean descending, then director id
// ascending so the ranking is a total order and re-runs are byte-identical.
// Returns an EMPTY_RESULT error when no director is eligible.
func Rank(entries []Entry, minMovies, topN int) ([]Preference, Totals, error) {
	directors := make(map[string]*directorAgg)
	for _, e := range entries {
		agg, ok := directors[e.DirectorID]
		if !ok {
			agg = &directorAgg{id: e.DirectorID, name: e.Name, byKey: map[string]*cell{}}
			directors[e.DirectorID] = agg
		}
		agg.overall.add(e)
		kc, ok := agg.byKey[e.Key]
		if !ok {
			kc = &cell{}
			agg.byKey[e.Key] = kc
		}
		kc.add(e)
	}

	var (
		prefs  []Preference
		totals Totals
	)
	for _, agg := range directors {
		if agg.overall.count < minMovies {
			continue
		}
		totals.Directors++
		totals.Movies += agg.overall.count

		letter, letterCell := preferredLetter(agg.byKey)
		prefs = append(prefs, Preference{
			DirectorID:            agg.id,
			Name:                  agg.name,
			Letter:                letter,
			MovieCount:            agg.overall.count,
			PreferredCount:        letterCell.count,
			Share:                 float64(letterCell.count) / float64(agg.overall.count),
			PreferredMean:         letterCell.mean(),
			PreferredWeightedMean: letterCell.weightedOrMean(),
			OverallMean:           agg.overall.mean(),
			OverallWeightedMean:   agg.overall.weightedOrMean(),
		})
	}
	if len(prefs) == 0 {
		return nil, Totals{}, apperr.NewEmptyResultError("no director met the minimum movie requirement")
	}

	sort.Slice(prefs, func(i, j int) bool {
		a, b := prefs[i], prefs[j]
		if a.Share != b.Share {
			return a.Share > b.Share
		}
		if a.MovieCount != b.MovieCount {
			return a.MovieCount > b.MovieCount
		}
		if a.PreferredMean != b.PreferredMean {
			return a.PreferredMean > b.PreferredMean
		}
		return a.DirectorID < b.DirectorID
	})
	if topN < len(prefs) {
		prefs = prefs[:topN]
	}
	return prefs, totals, nil
}

// preferredLetter picks the letter maximizing share (equivalently count,
// since the denominator is fixed per director), breaking residual ties by
// lexicographic letter order.
func preferredLetter(byKey map[string]*cell) (string, *cell) {
	var (
		bestKey  string
		bestCell *cell
	)
	for key, c := range byKey {
		switch {
		case bestCell == nil,
			c.count > bestCell.count,
			c.count == bestCell.count && key < bestKey:
			bestKey, bestCell = key, c
		}
	}
	return bestKey, bestCell
}
