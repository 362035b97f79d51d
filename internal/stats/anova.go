// Package stats groups classified rating samples and decomposes the rating
// variance into between-group and within-group components (one-way ANOVA),
// with eta squared as the effect size.
package stats

import (
	"sort"

	apperr "titlestats/internal/errors"
)

// Sample is one classified rating observation.
type Sample struct {
	Key    string
	Rating float64
	Votes  int64
}

// Group holds the descriptive statistics for one classification key.
// WeightedMean is only meaningful when HasWeighted is true (total votes > 0);
// consumers fall back to Mean otherwise, which WeightedOrMean encapsulates.
type Group struct {
	Key          string
	Count        int
	Mean         float64
	Median       float64
	Sum          float64
	SumSq        float64
	Votes        int64
	WeightedSum  float64
	WeightedMean float64
	HasWeighted  bool
}

// WeightedOrMean returns the vote-weighted mean when defined, otherwise the
// arithmetic mean.
func (g Group) WeightedOrMean() float64 {
	if g.HasWeighted {
		return g.WeightedMean
	}
	return g.Mean
}

// Summary carries the across-group decomposition. EtaSquared is valid only
// when HasEta is true (SS_total > 0); F only when HasF is true (both degrees
// of freedom positive and SS_within > 0).
type Summary struct {
	Samples             int
	Groups              int
	OverallMean         float64
	OverallWeightedMean float64
	SSBetween           float64
	SSWithin            float64
	SSTotal             float64
	EtaSquared          float64
	HasEta              bool
	DFBetween           int
	DFWithin            int
	F                   float64
	HasF                bool
}

// accumulator is the running per-group state updated in a single pass.
type accumulator struct {
	count       int
	sum         float64
	sumSq       float64
	votes       int64
	weightedSum float64
	ratings     []float64 // retained for the median
}

// Aggregate groups samples by classification key and computes per-group
// descriptive statistics plus the ANOVA decomposition. Groups are returned
// sorted by mean rating descending; equal means order by key so output is
// stable across runs. Returns an EMPTY_RESULT error when samples is empty.
func Aggregate(samples []Sample) ([]Group, Summary, error) {
	if len(samples) == 0 {
		return nil, Summary{}, apperr.NewEmptyResultError("no classified rows to aggregate")
	}

	accs := make(map[string]*accumulator)
	var order []string
	for _, s := range samples {
		acc, ok := accs[s.Key]
		if !ok {
			acc = &accumulator{}
			accs[s.Key] = acc
			order = append(order, s.Key)
		}
		acc.count++
		acc.sum += s.Rating
		acc.sumSq += s.Rating * s.Rating
		acc.votes += s.Votes
		acc.weightedSum += s.Rating * float64(s.Votes)
		acc.ratings = append(acc.ratings, s.Rating)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		acc := accs[key]
		g := Group{
			Key:         key,
			Count:       acc.count,
			Mean:        acc.sum / float64(acc.count),
			Median:      median(acc.ratings),
			Sum:         acc.sum,
			SumSq:       acc.sumSq,
			Votes:       acc.votes,
			WeightedSum: acc.weightedSum,
		}
		if acc.votes > 0 {
			g.WeightedMean = acc.weightedSum / float64(acc.votes)
			g.HasWeighted = true
		}
		groups = append(groups, g)
	}

	sum := summarize(groups)

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Mean != groups[j].Mean {
			return groups[i].Mean > groups[j].Mean
		}
		return groups[i].Key < groups[j].Key
	})
	return groups, sum, nil
}

// summarize computes the variance decomposition across groups:
//
//	SS_between = Σ count_g·(mean_g − overallMean)²
//	SS_within  = Σ (sumSq_g − sum_g²/count_g)
//	SS_total   = SS_between + SS_within
func summarize(groups []Group) Summary {
	var (
		totalCount  int
		totalSum    float64
		totalVotes  int64
		weightedSum float64
	)
	for _, g := range groups {
		totalCount += g.Count
		totalSum += g.Sum
		totalVotes += g.Votes
		weightedSum += g.WeightedSum
	}
	overallMean := totalSum / float64(totalCount)

	var ssBetween, ssWithin float64
	for _, g := range groups {
		d := g.Mean - overallMean
		ssBetween += float64(g.Count) * d * d
		ssWithin += g.SumSq - g.Sum*g.Sum/float64(g.Count)
	}
	ssTotal := ssBetween + ssWithin

	s := Summary{
		Samples:     totalCount,
		Groups:      len(groups),
		OverallMean: overallMean,
		SSBetween:   ssBetween,
		SSWithin:    ssWithin,
		SSTotal:     ssTotal,
		DFBetween:   len(groups) - 1,
		DFWithin:    totalCount - len(groups),
	}
	if totalVotes > 0 {
		s.OverallWeightedMean = weightedSum / float64(totalVotes)
	} else {
		// Zero votes overall: substitute the arithmetic mean.
		s.OverallWeightedMean = overallMean
	}
	if ssTotal > 0 {
		s.EtaSquared = ssBetween / ssTotal
		s.HasEta = true
	}
	if s.DFBetween > 0 && s.DFWithin > 0 && ssWithin > 0 {
		s.F = (ssBetween / float64(s.DFBetween)) / (ssWithin / float64(s.DFWithin))
		s.HasF = true
	}
	return s
}

// median returns the middle value of the (unsorted) ratings; for an even
// count it averages the two middle values. The input slice is not modified.
func median(ratings []float64) float64 {
	sorted := make([]float64, len(ratings))
	copy(sorted, ratings)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
