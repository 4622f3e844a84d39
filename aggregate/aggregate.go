// Package aggregate rolls the annotated, quality-filtered region table
// up into the derived tables the figures are drawn from.
package aggregate

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	cyano "github.com/dtdoering/2025-cyano-bgc-perspective"
)

// LengthStat is the length summary for one category combination.
type LengthStat struct {
	Combination string
	N           int
	Min         float64
	Max         float64
	Mean        float64
	Median      float64
	SD          float64 // sample standard deviation, N-1 denominator.
}

// LengthStats groups regions by combination key and summarizes region
// lengths. Rows come back by descending count, ties broken by key.
func LengthStats(regions []cyano.BGCRegion) []LengthStat {
	lengths := make(map[string][]float64)
	for _, r := range regions {
		lengths[r.Combination] = append(lengths[r.Combination], float64(r.Length))
	}

	stats := make([]LengthStat, 0, len(lengths))
	for key, vals := range lengths {
		sort.Float64s(vals)
		s := LengthStat{
			Combination: key,
			N:           len(vals),
			Min:         vals[0],
			Max:         vals[len(vals)-1],
			Mean:        stat.Mean(vals, nil),
			Median:      median(vals),
		}
		if len(vals) > 1 {
			s.SD = stat.StdDev(vals, nil)
		}
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].N != stats[j].N {
			return stats[i].N > stats[j].N
		}
		return stats[i].Combination < stats[j].Combination
	})
	return stats
}

// median of sorted values; even-length input averages the middle pair.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// GenusCombination is the region count for one (genus, combination)
// pair, with the lumped group the combination belongs to.
type GenusCombination struct {
	Genus       string
	Combination string
	Group       string
	N           int
}

// GenusCombinationCounts counts regions per (genus, combination) and
// attaches lumped group labels. Rows come back sorted by genus then
// combination so output order is stable across runs.
func GenusCombinationCounts(regions []cyano.BGCRegion, groups map[string]string) []GenusCombination {
	type key struct{ genus, combination string }
	counts := make(map[key]int)
	for _, r := range regions {
		counts[key{r.Genus, r.Combination}]++
	}

	rows := make([]GenusCombination, 0, len(counts))
	for k, n := range counts {
		group, found := groups[k.combination]
		if !found {
			group = k.combination
		}
		rows = append(rows, GenusCombination{
			Genus:       k.genus,
			Combination: k.combination,
			Group:       group,
			N:           n,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Genus != rows[j].Genus {
			return rows[i].Genus < rows[j].Genus
		}
		return rows[i].Combination < rows[j].Combination
	})
	return rows
}
