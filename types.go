// Package cyano holds the data model and table loaders for the
// Cyanobacteriota BGC survey: genome assemblies keyed by NCBI accession,
// antiSMASH region calls, and the reference tables they join against.
package cyano

// AssemblyLevel is the NCBI assembly quality level.
type AssemblyLevel string

const (
	LevelComplete   AssemblyLevel = "Complete"
	LevelChromosome AssemblyLevel = "Chromosome"
	LevelScaffold   AssemblyLevel = "Scaffold"
	LevelContig     AssemblyLevel = "Contig"
)

// Unclassified marks assemblies without a genus assignment in the
// taxonomy table.
const Unclassified = "Unclassified"

// Lineage is the full taxonomic lineage of an assembly.
type Lineage struct {
	Superkingdom string
	Phylum       string
	Class        string
	Order        string
	Family       string
	Genus        string
	Species      string
}

// GenomeAssembly is one NCBI genome assembly.
type GenomeAssembly struct {
	Accession string        // NCBI assembly accession.
	Level     AssemblyLevel // assembly quality level.
	TaxID     string        // NCBI taxonomy id.
	Lineage   Lineage       // lineage from the taxonomy table; zero when missing.
}

// Genus returns the assembly genus, or Unclassified when the
// taxonomy join produced no genus.
func (a GenomeAssembly) Genus() string {
	if a.Lineage.Genus == "" {
		return Unclassified
	}
	return a.Lineage.Genus
}

// BGCRegion is one biosynthetic gene cluster detected by antiSMASH.
// Classes, Categories and Combination are filled by the classify stage;
// loaders leave them empty.
type BGCRegion struct {
	Genome     string // owning assembly accession.
	Length     int    // region length in base pairs.
	Scaffolds  int    // scaffold count of the owning genome.
	ContigEdge bool   // region touches a contig boundary.
	RawClass   string // raw class annotation: bare label or JSON list.
	Genus      string // owning genome genus, Unclassified when unknown.

	Classes     []string // parsed class labels.
	Categories  []string // resolved category labels, sorted, deduplicated.
	Combination string   // canonical ", "-joined category key.
}

// GCFAssignment is one genome to gene-cluster-family link from the
// BiG-SLiCE clustering output.
type GCFAssignment struct {
	Genome string // assembly accession.
	GCF    string // gene cluster family id.
}

// Taxonomy maps assembly accessions to their taxonomy records.
type Taxonomy map[string]TaxonRecord

// TaxonRecord is one row of the genome taxonomy table.
type TaxonRecord struct {
	TaxID   string
	Lineage Lineage
}

// GenusOf resolves the genus for an accession, falling back to
// Unclassified when the accession is absent from the taxonomy table.
func (t Taxonomy) GenusOf(accession string) string {
	rec, found := t[accession]
	if !found || rec.Lineage.Genus == "" {
		return Unclassified
	}
	return rec.Lineage.Genus
}
