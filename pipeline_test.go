package cyano_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cyano "github.com/dtdoering/2025-cyano-bgc-perspective"
	"github.com/dtdoering/2025-cyano-bgc-perspective/aggregate"
	"github.com/dtdoering/2025-cyano-bgc-perspective/classify"
)

// Two-genome scenario: genome A is Complete with three regions, genome
// B is Scaffold with five. The quality filter keeps only A, and the
// combination counts come out one NRP, one Polyketide, one hybrid.
func TestPipelineTwoGenomes(t *testing.T) {
	mapping := classify.Mapping{
		"NRPS":         classify.NRP,
		"PKS":          classify.Polyketide,
		"terpene":      classify.Terpene,
		"indole":       classify.Alkaloid,
		"lassopeptide": classify.RiPP,
	}
	regions := []cyano.BGCRegion{
		{Genome: "A", Genus: "Nostoc", Length: 20000, RawClass: `["NRPS"]`},
		{Genome: "A", Genus: "Nostoc", Length: 30000, RawClass: `["PKS"]`},
		{Genome: "A", Genus: "Nostoc", Length: 50000, RawClass: `["NRPS","PKS"]`},
		{Genome: "B", Genus: "Nostoc", Length: 1000, RawClass: "terpene"},
		{Genome: "B", Genus: "Nostoc", Length: 2000, RawClass: "terpene"},
		{Genome: "B", Genus: "Nostoc", Length: 3000, RawClass: "indole"},
		{Genome: "B", Genus: "Nostoc", Length: 4000, RawClass: "lassopeptide"},
		{Genome: "B", Genus: "Nostoc", Length: 5000, RawClass: `["NRPS","terpene"]`},
	}
	levels := map[string]cyano.AssemblyLevel{
		"A": cyano.LevelComplete,
		"B": cyano.LevelScaffold,
	}

	annotated, err := classify.Annotate(regions, mapping)
	require.NoError(t, err)

	kept := cyano.FilterRegions(annotated, cyano.HighQuality(levels))
	require.Len(t, kept, 3)
	for _, r := range kept {
		assert.Equal(t, "A", r.Genome)
	}

	ranked := classify.RankCombinations(kept)
	require.Len(t, ranked, 3)
	byKey := make(map[string]int)
	for _, cc := range ranked {
		byKey[cc.Combination] = cc.N
	}
	assert.Equal(t, map[string]int{
		"NRP":             1,
		"Polyketide":      1,
		"NRP, Polyketide": 1,
	}, byKey)
}

// Density scenario: two detected-BGC genomes and three zero-hit genomes
// give a genome total of five; four BGCs give density 0.8.
func TestPipelineDensity(t *testing.T) {
	regions := []cyano.BGCRegion{
		{Genome: "GCF_1", Genus: "Nostoc", Combination: "Terpene"},
		{Genome: "GCF_1", Genus: "Nostoc", Combination: "Terpene"},
		{Genome: "GCF_1", Genus: "Nostoc", Combination: "NRP"},
		{Genome: "GCF_2", Genus: "Nostoc", Combination: "Terpene"},
	}
	tax := cyano.Taxonomy{
		"GCF_3": {Lineage: cyano.Lineage{Genus: "Nostoc"}},
		"GCF_4": {Lineage: cyano.Lineage{Genus: "Nostoc"}},
		"GCF_5": {Lineage: cyano.Lineage{Genus: "Nostoc"}},
	}
	zeroHits := []string{"GCF_3", "GCF_4", "GCF_5"}

	totals := aggregate.GenomeTotals(regions, zeroHits, tax)
	require.Equal(t, 5, totals["Nostoc"])

	groups := map[string]string{"Terpene": "Terpene", "NRP": "NRP"}
	counts := aggregate.GenusCombinationCounts(regions, groups)
	densities := aggregate.Densities(counts, totals)

	var total float64
	for _, d := range densities {
		assert.Equal(t, "Nostoc", d.Genus)
		total += d.Density
	}
	assert.InDelta(t, 0.8, total, 1e-12)
}
