package cyano_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cyano "github.com/dtdoering/2025-cyano-bgc-perspective"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadTaxonomy(t *testing.T) {
	path := writeFixture(t, "taxonomy.tsv",
		"accession\ttaxid\tsuperkingdom\tphylum\tclass\torder\tfamily\tgenus\tspecies\n"+
			"GCF_1\t1163\tBacteria\tCyanobacteriota\tCyanophyceae\tNostocales\tNostocaceae\tAnabaena\tAnabaena cylindrica\n"+
			"GCF_2\t446679\tBacteria\tCyanobacteriota\t\t\t\t\t\n")

	tax, err := cyano.ReadTaxonomy(path)
	require.NoError(t, err)
	require.Len(t, tax, 2)
	assert.Equal(t, "Anabaena", tax["GCF_1"].Lineage.Genus)
	assert.Equal(t, "1163", tax["GCF_1"].TaxID)

	assert.Equal(t, "Anabaena", tax.GenusOf("GCF_1"))
	// Empty genus and missing accession both fall back to the sentinel.
	assert.Equal(t, cyano.Unclassified, tax.GenusOf("GCF_2"))
	assert.Equal(t, cyano.Unclassified, tax.GenusOf("GCF_404"))
}

func TestReadRegions(t *testing.T) {
	path := writeFixture(t, "regions.tsv",
		"genome\tlength\tscaffolds\tcontig_edge\tclass\tgenus\n"+
			"GCF_1\t21433\t2\tTrue\tNRPS\tAnabaena\n"+
			"GCF_1\t40917\t2\tFalse\t[\"NRPS\", \"T1PKS\"]\tAnabaena\n"+
			"GCF_2\t9001\t140\tFalse\tterpene\t\n")

	regions, err := cyano.ReadRegions(path)
	require.NoError(t, err)
	require.Len(t, regions, 3)
	assert.Equal(t, 21433, regions[0].Length)
	assert.True(t, regions[0].ContigEdge)
	assert.False(t, regions[1].ContigEdge)
	assert.Equal(t, `["NRPS", "T1PKS"]`, regions[1].RawClass)
	assert.Equal(t, cyano.Unclassified, regions[2].Genus)
	// Loader leaves derived fields for the classify stage.
	assert.Empty(t, regions[0].Combination)
}

func TestReadRegionsBadLength(t *testing.T) {
	path := writeFixture(t, "regions.tsv",
		"genome\tlength\tscaffolds\tcontig_edge\tclass\tgenus\n"+
			"GCF_1\tlong\t2\tTrue\tNRPS\tAnabaena\n")
	_, err := cyano.ReadRegions(path)
	assert.Error(t, err)
}

func TestReadAssemblyLevelsAndJoin(t *testing.T) {
	levelsPath := writeFixture(t, "levels.tsv",
		"accession\tlevel\nGCF_1\tComplete\nGCF_2\tScaffold\n")
	levels, err := cyano.ReadAssemblyLevels(levelsPath)
	require.NoError(t, err)
	assert.Equal(t, cyano.LevelComplete, levels["GCF_1"])

	tax := cyano.Taxonomy{"GCF_1": {TaxID: "1163", Lineage: cyano.Lineage{Genus: "Anabaena"}}}
	assemblies := cyano.Assemblies(levels, tax)
	require.Len(t, assemblies, 2)

	byAcc := make(map[string]cyano.GenomeAssembly)
	for _, a := range assemblies {
		byAcc[a.Accession] = a
	}
	assert.Equal(t, "Anabaena", byAcc["GCF_1"].Genus())
	// Left join: the accession without taxonomy keeps its level and
	// reports the sentinel genus.
	assert.Equal(t, cyano.LevelScaffold, byAcc["GCF_2"].Level)
	assert.Equal(t, cyano.Unclassified, byAcc["GCF_2"].Genus())
}

func TestReadZeroHits(t *testing.T) {
	path := writeFixture(t, "zero_hits.txt", "GCF_7\nGCF_8\n\nGCF_9\n")
	accs, err := cyano.ReadZeroHits(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"GCF_7", "GCF_8", "GCF_9"}, accs)
}

func TestReadGenusSources(t *testing.T) {
	path := writeFixture(t, "sources.tsv", "genus\tgenomes\nNostoc\t42\nAnabaena\t17\n")
	sources, err := cyano.ReadGenusSources(path)
	require.NoError(t, err)
	assert.Equal(t, 42, sources["Nostoc"])
	assert.Equal(t, 17, sources["Anabaena"])
}

func TestReadGCFAssignments(t *testing.T) {
	path := writeFixture(t, "gcf.tsv", "genome\tgcf\nGCF_1\tfam1\nGCF_1\tfam2\n")
	assignments, err := cyano.ReadGCFAssignments(path)
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	assert.Equal(t, cyano.GCFAssignment{Genome: "GCF_1", GCF: "fam2"}, assignments[1])
}
