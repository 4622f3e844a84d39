package cyano_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cyano "github.com/dtdoering/2025-cyano-bgc-perspective"
)

func TestHighQuality(t *testing.T) {
	levels := map[string]cyano.AssemblyLevel{
		"GCF_1": cyano.LevelComplete,
		"GCF_2": cyano.LevelChromosome,
		"GCF_3": cyano.LevelScaffold,
		"GCF_4": cyano.LevelContig,
	}
	qualifying := cyano.HighQuality(levels)
	assert.True(t, qualifying["GCF_1"])
	assert.True(t, qualifying["GCF_2"])
	assert.False(t, qualifying["GCF_3"])
	assert.False(t, qualifying["GCF_4"])
}

func TestFilterRegionsSubset(t *testing.T) {
	regions := []cyano.BGCRegion{
		{Genome: "GCF_1", Length: 100},
		{Genome: "GCF_3", Length: 200},
		{Genome: "GCF_1", Length: 300},
		{Genome: "GCF_9", Length: 400}, // absent from the quality table.
	}
	qualifying := map[string]bool{"GCF_1": true}

	kept := cyano.FilterRegions(regions, qualifying)
	require.Len(t, kept, 2)
	// Every survivor exists in the input, unchanged.
	for _, r := range kept {
		assert.Contains(t, regions, r)
		assert.True(t, qualifying[r.Genome])
	}
}

func TestFilterRegionsDoesNotMutate(t *testing.T) {
	regions := []cyano.BGCRegion{{Genome: "GCF_1", Length: 100}}
	kept := cyano.FilterRegions(regions, map[string]bool{"GCF_1": true})
	kept[0].Length = 1
	assert.Equal(t, 100, regions[0].Length)
}

func TestFilterAccessions(t *testing.T) {
	accs := []string{"GCF_1", "GCF_3", "GCF_2"}
	kept := cyano.FilterAccessions(accs, map[string]bool{"GCF_1": true, "GCF_2": true})
	assert.Equal(t, []string{"GCF_1", "GCF_2"}, kept)
}
