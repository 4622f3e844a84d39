package classify

import (
	"sort"

	cyano "github.com/dtdoering/2025-cyano-bgc-perspective"
)

// AllOtherHybrids is the bucket for rare category combinations.
const AllOtherHybrids = "All other hybrids"

// DefaultLumpThreshold is the minimum occurrence count a combination
// needs to keep its own label.
const DefaultLumpThreshold = 80

// nrpPolyketide is kept distinct regardless of frequency; the
// NRPS/PKS hybrid is the biologically notable combination in this
// phylum.
const nrpPolyketide = NRP + ", " + Polyketide

// Lump collapses a rare combination into the AllOtherHybrids bucket.
// Applying it to its own output changes nothing.
func Lump(combination string, count, threshold int) string {
	if combination == nrpPolyketide || combination == AllOtherHybrids {
		return combination
	}
	if count >= threshold {
		return combination
	}
	return AllOtherHybrids
}

// CombinationCount is one combination key with its occurrence count.
type CombinationCount struct {
	Combination string
	N           int
}

// RankCombinations counts combination keys over annotated regions and
// returns them by descending count, ties broken by key.
func RankCombinations(regions []cyano.BGCRegion) []CombinationCount {
	counts := make(map[string]int)
	for _, r := range regions {
		counts[r.Combination]++
	}
	ranked := make([]CombinationCount, 0, len(counts))
	for key, n := range counts {
		ranked = append(ranked, CombinationCount{Combination: key, N: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].N != ranked[j].N {
			return ranked[i].N > ranked[j].N
		}
		return ranked[i].Combination < ranked[j].Combination
	})
	return ranked
}

// Groups maps every combination key to its lumped group label.
func Groups(ranked []CombinationCount, threshold int) map[string]string {
	groups := make(map[string]string, len(ranked))
	for _, cc := range ranked {
		groups[cc.Combination] = Lump(cc.Combination, cc.N, threshold)
	}
	return groups
}
