package classify

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// categories is the closed vocabulary classes may map into.
var categories = map[string]bool{
	Polyketide: true,
	NRP:        true,
	RiPP:       true,
	Terpene:    true,
	Saccharide: true,
	Alkaloid:   true,
	Other:      true,
}

// ReadMapping reads the class-to-category reference table.
// Columns: class, category. A category outside the fixed vocabulary is
// rejected so typos in the reference table surface at load time.
func ReadMapping(path string) (Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %v", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s: empty mapping table", path)
	}

	m := make(Mapping, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 2 {
			return nil, fmt.Errorf("mapping row %q: want 2 columns", strings.Join(row, "\t"))
		}
		class, category := row[0], row[1]
		if !categories[category] {
			return nil, fmt.Errorf("class %q maps to unknown category %q", class, category)
		}
		if existing, dup := m[class]; dup && existing != category {
			return nil, fmt.Errorf("class %q maps to both %q and %q", class, existing, category)
		}
		m[class] = category
	}
	return m, nil
}
