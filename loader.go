package cyano

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readTable reads a tab-delimited file and returns its rows without the
// header line.
func readTable(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	// Raw class fields hold JSON list literals with embedded quotes.
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %v", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s: empty table", path)
	}
	return rows[1:], nil
}

// ReadTaxonomy reads the genome taxonomy table.
// Columns: accession, taxid, superkingdom, phylum, class, order, family,
// genus, species.
func ReadTaxonomy(path string) (Taxonomy, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	tax := make(Taxonomy, len(rows))
	for _, row := range rows {
		if len(row) < 9 {
			return nil, fmt.Errorf("taxonomy row for %q: want 9 columns, got %d", row[0], len(row))
		}
		tax[row[0]] = TaxonRecord{
			TaxID: row[1],
			Lineage: Lineage{
				Superkingdom: row[2],
				Phylum:       row[3],
				Class:        row[4],
				Order:        row[5],
				Family:       row[6],
				Genus:        row[7],
				Species:      row[8],
			},
		}
	}
	return tax, nil
}

// ReadAssemblyLevels reads the assembly quality-metadata table.
// Columns: accession, level.
func ReadAssemblyLevels(path string) (map[string]AssemblyLevel, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	levels := make(map[string]AssemblyLevel, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("assembly level row %q: want 2 columns", strings.Join(row, "\t"))
		}
		levels[row[0]] = AssemblyLevel(row[1])
	}
	return levels, nil
}

// Assemblies joins taxonomy onto the quality table. Every accession in
// the quality table yields one assembly; lineage fields stay zero when
// the taxonomy table has no row for the accession.
func Assemblies(levels map[string]AssemblyLevel, tax Taxonomy) []GenomeAssembly {
	assemblies := make([]GenomeAssembly, 0, len(levels))
	for acc, level := range levels {
		a := GenomeAssembly{Accession: acc, Level: level}
		if rec, found := tax[acc]; found {
			a.TaxID = rec.TaxID
			a.Lineage = rec.Lineage
		}
		assemblies = append(assemblies, a)
	}
	return assemblies
}

// ReadRegions reads the per-genome BGC region table.
// Columns: genome, length, scaffolds, contig_edge, class, genus.
func ReadRegions(path string) ([]BGCRegion, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	regions := make([]BGCRegion, 0, len(rows))
	for _, row := range rows {
		if len(row) < 6 {
			return nil, fmt.Errorf("region row %q: want 6 columns", strings.Join(row, "\t"))
		}
		length, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("region length for %s: %v", row[0], err)
		}
		scaffolds, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("region scaffold count for %s: %v", row[0], err)
		}
		genus := row[5]
		if genus == "" {
			genus = Unclassified
		}
		regions = append(regions, BGCRegion{
			Genome:     row[0],
			Length:     length,
			Scaffolds:  scaffolds,
			ContigEdge: parseBool(row[3]),
			RawClass:   row[4],
			Genus:      genus,
		})
	}
	return regions, nil
}

// parseBool handles the True/False spelling antiSMASH tables use.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes":
		return true
	}
	return false
}

// ReadZeroHits reads the plain list of accessions with no detected BGC,
// one accession per line, no header.
func ReadZeroHits(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var accs []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		acc := strings.TrimSpace(sc.Text())
		if acc != "" {
			accs = append(accs, acc)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %v", path, err)
	}
	return accs, nil
}

// ReadGenusSources reads the per-genus genome-source counts table.
// Columns: genus, genomes.
func ReadGenusSources(path string) (map[string]int, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	sources := make(map[string]int, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("genus source row %q: want 2 columns", strings.Join(row, "\t"))
		}
		n, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("genome count for genus %s: %v", row[0], err)
		}
		sources[row[0]] = n
	}
	return sources, nil
}

// ReadGCFAssignments reads the BiG-SLiCE clustering result table.
// Columns: genome, gcf.
func ReadGCFAssignments(path string) ([]GCFAssignment, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	assignments := make([]GCFAssignment, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("gcf row %q: want 2 columns", strings.Join(row, "\t"))
		}
		assignments = append(assignments, GCFAssignment{Genome: row[0], GCF: row[1]})
	}
	return assignments, nil
}
