// Package render draws the figure catalog from the aggregated tables
// and writes the derived summary table. All styling comes in through
// Config; nothing here reads or mutates process-wide state.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Config carries the explicit rendering options.
type Config struct {
	Width   float64  // single-panel width in inches.
	Height  float64  // single-panel height in inches.
	Formats []string // output formats per chart, e.g. png, pdf.
	Digits  int      // decimal digits in the summary table.
	Bins    int      // histogram bin count.
}

// DefaultConfig matches the figure sizing of the published analysis.
func DefaultConfig() Config {
	return Config{
		Width:   6,
		Height:  4,
		Formats: []string{"png", "pdf"},
		Digits:  2,
		Bins:    16,
	}
}

func (c Config) width() vg.Length  { return vg.Length(c.Width) * vg.Inch }
func (c Config) height() vg.Length { return vg.Length(c.Height) * vg.Inch }

// save writes one plot under dir in every configured format and
// returns the file paths written.
func (c Config) save(p *plot.Plot, dir, name string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	var files []string
	for _, format := range c.Formats {
		path := filepath.Join(dir, name+"."+format)
		if err := p.Save(c.width(), c.height(), path); err != nil {
			return nil, fmt.Errorf("save %s: %v", path, err)
		}
		files = append(files, path)
	}
	return files, nil
}
