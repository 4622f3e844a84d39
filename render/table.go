package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dtdoering/2025-cyano-bgc-perspective/aggregate"
)

// WriteLengthStats writes the per-combination length summary as a
// tab-delimited table.
func WriteLengthStats(stats []aggregate.LengthStat, dir, name string, digits int) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	w, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer w.Close()

	fmt.Fprintln(w, "combination\tn\tmin\tmax\tmean\tmedian\tsd")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			s.Combination, s.N,
			ftoa(s.Min, digits), ftoa(s.Max, digits),
			ftoa(s.Mean, digits), ftoa(s.Median, digits),
			ftoa(s.SD, digits))
	}
	return path, nil
}

func ftoa(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}
