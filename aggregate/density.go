package aggregate

import (
	"sort"

	cyano "github.com/dtdoering/2025-cyano-bgc-perspective"
)

// GenomeTotals counts genomes per genus: distinct genomes that produced
// at least one region, plus genomes from the zero-hit list. Dropping
// either set understates the totals and inflates densities, so both
// are always included. Zero-hit genera come from the taxonomy join,
// Unclassified when the accession is missing there.
func GenomeTotals(regions []cyano.BGCRegion, zeroHits []string, tax cyano.Taxonomy) map[string]int {
	seen := make(map[string]map[string]bool)
	for _, r := range regions {
		if seen[r.Genus] == nil {
			seen[r.Genus] = make(map[string]bool)
		}
		seen[r.Genus][r.Genome] = true
	}

	totals := make(map[string]int, len(seen))
	for genus, genomes := range seen {
		totals[genus] = len(genomes)
	}
	for _, acc := range zeroHits {
		totals[tax.GenusOf(acc)]++
	}
	return totals
}

// GenusDensity is the normalized BGC density for one (genus, lumped
// group) pair.
type GenusDensity struct {
	Genus   string
	Group   string
	N       int     // regions in the group.
	Genomes int     // genome total for the genus.
	Density float64 // N / Genomes.
}

// Densities divides per-group region counts by per-genus genome
// totals. A genus with no recorded genomes has an undefined density
// and is left out rather than coerced to zero.
func Densities(counts []GenusCombination, totals map[string]int) []GenusDensity {
	type key struct{ genus, group string }
	grouped := make(map[key]int)
	for _, c := range counts {
		grouped[key{c.Genus, c.Group}] += c.N
	}

	rows := make([]GenusDensity, 0, len(grouped))
	for k, n := range grouped {
		genomes := totals[k.genus]
		if genomes == 0 {
			continue
		}
		rows = append(rows, GenusDensity{
			Genus:   k.genus,
			Group:   k.group,
			N:       n,
			Genomes: genomes,
			Density: float64(n) / float64(genomes),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Genus != rows[j].Genus {
			return rows[i].Genus < rows[j].Genus
		}
		return rows[i].Group < rows[j].Group
	})
	return rows
}

// GenusGCF is the distinct gene-cluster-family count for one genus.
type GenusGCF struct {
	Genus string
	GCFs  int
}

// GCFCounts counts distinct (genus, family) pairs per genus from the
// clustering output. Independent of the region table: genus comes from
// the taxonomy join on the assignment's accession.
func GCFCounts(assignments []cyano.GCFAssignment, tax cyano.Taxonomy) []GenusGCF {
	families := make(map[string]map[string]bool)
	for _, a := range assignments {
		genus := tax.GenusOf(a.Genome)
		if families[genus] == nil {
			families[genus] = make(map[string]bool)
		}
		families[genus][a.GCF] = true
	}

	rows := make([]GenusGCF, 0, len(families))
	for genus, set := range families {
		rows = append(rows, GenusGCF{Genus: genus, GCFs: len(set)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Genus < rows[j].Genus })
	return rows
}

// ScaffoldPoint is one genome's region count on one side of the
// contig-edge split, with the genome's scaffold count. Feeds the
// binned scaffold-vs-BGC density facets.
type ScaffoldPoint struct {
	Genome     string
	Scaffolds  int
	BGCs       int
	ContigEdge bool
}

// ScaffoldPoints rolls regions up per (genome, contig-edge flag).
func ScaffoldPoints(regions []cyano.BGCRegion) []ScaffoldPoint {
	type key struct {
		genome string
		edge   bool
	}
	counts := make(map[key]int)
	scaffolds := make(map[string]int)
	for _, r := range regions {
		counts[key{r.Genome, r.ContigEdge}]++
		scaffolds[r.Genome] = r.Scaffolds
	}

	points := make([]ScaffoldPoint, 0, len(counts))
	for k, n := range counts {
		points = append(points, ScaffoldPoint{
			Genome:     k.genome,
			Scaffolds:  scaffolds[k.genome],
			BGCs:       n,
			ContigEdge: k.edge,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Genome != points[j].Genome {
			return points[i].Genome < points[j].Genome
		}
		return !points[i].ContigEdge && points[j].ContigEdge
	})
	return points
}
