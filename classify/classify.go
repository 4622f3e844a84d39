// Package classify normalizes antiSMASH class annotations into the
// seven coarse BGC categories and builds the canonical category-combination
// keys the aggregation stages group on.
package classify

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	cyano "github.com/dtdoering/2025-cyano-bgc-perspective"
)

// The seven coarse BGC categories.
const (
	Polyketide = "Polyketide"
	NRP        = "NRP"
	RiPP       = "RiPP"
	Terpene    = "Terpene"
	Saccharide = "Saccharide"
	Alkaloid   = "Alkaloid"
	Other      = "Other"
)

// Categories lists the coarse categories in canonical (sorted) order.
var Categories = []string{Alkaloid, NRP, Other, Polyketide, RiPP, Saccharide, Terpene}

// Mapping resolves an antiSMASH class label to its category.
type Mapping map[string]string

// ParseRawClass splits a raw class annotation into its class labels.
// A field starting with '[' is a JSON list of labels; anything else is
// a single label.
func ParseRawClass(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "[") {
		var labels []string
		if err := json.Unmarshal([]byte(s), &labels); err != nil {
			return nil, fmt.Errorf("parse class list %q: %v", raw, err)
		}
		return labels, nil
	}
	return []string{s}, nil
}

// Classify resolves a raw class annotation to its sorted, deduplicated
// category labels. An unmapped class is an error: it means the mapping
// table is stale relative to the annotation tool's vocabulary, and the
// run must abort rather than misgroup records.
func Classify(raw string, m Mapping) ([]string, error) {
	labels, err := ParseRawClass(raw)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var categories []string
	for _, label := range labels {
		category, found := m[label]
		if !found {
			return nil, fmt.Errorf("no category for class %q: mapping table out of date", label)
		}
		if !seen[category] {
			seen[category] = true
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// Key joins sorted category labels into the canonical combination
// string. Downstream grouping relies on string equality of these keys,
// so Classify must have sorted the labels already.
func Key(categories []string) string {
	return strings.Join(categories, ", ")
}

// Annotate returns a copy of regions with Classes, Categories and
// Combination filled in. The input slice is left untouched.
func Annotate(regions []cyano.BGCRegion, m Mapping) ([]cyano.BGCRegion, error) {
	out := make([]cyano.BGCRegion, len(regions))
	for i, r := range regions {
		labels, err := ParseRawClass(r.RawClass)
		if err != nil {
			return nil, err
		}
		categories, err := Classify(r.RawClass, m)
		if err != nil {
			return nil, err
		}
		r.Classes = labels
		r.Categories = categories
		r.Combination = Key(categories)
		out[i] = r
	}
	return out, nil
}
