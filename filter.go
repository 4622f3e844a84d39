package cyano

// HighQuality returns the set of accessions assembled to Complete or
// Chromosome level. Fragmented assemblies can split one cluster across
// two contig ends and count it twice, so everything below Chromosome is
// excluded from the committed analysis.
func HighQuality(levels map[string]AssemblyLevel) map[string]bool {
	set := make(map[string]bool)
	for acc, level := range levels {
		if level == LevelComplete || level == LevelChromosome {
			set[acc] = true
		}
	}
	return set
}

// FilterRegions keeps the regions whose owning genome is in the
// qualifying set. The result is a fresh slice; retained records are not
// mutated.
func FilterRegions(regions []BGCRegion, qualifying map[string]bool) []BGCRegion {
	kept := make([]BGCRegion, 0, len(regions))
	for _, r := range regions {
		if qualifying[r.Genome] {
			kept = append(kept, r)
		}
	}
	return kept
}

// FilterAccessions keeps the accessions present in the qualifying set.
// Used on the zero-hit list so density denominators see the same
// quality cut as the region table.
func FilterAccessions(accs []string, qualifying map[string]bool) []string {
	kept := make([]string, 0, len(accs))
	for _, acc := range accs {
		if qualifying[acc] {
			kept = append(kept, acc)
		}
	}
	return kept
}
