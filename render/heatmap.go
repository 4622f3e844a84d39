package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/dtdoering/2025-cyano-bgc-perspective/aggregate"
)

// binGrid is a rectangular 2D histogram over scaffold and BGC counts,
// drawn as a heat map. The published figure used hexagonal bins; the
// density semantics are the same.
type binGrid struct {
	xmin, ymin   float64
	xstep, ystep float64
	counts       [][]float64 // counts[col][row]
}

func (g binGrid) Dims() (c, r int) { return len(g.counts), len(g.counts[0]) }
func (g binGrid) Z(c, r int) float64 {
	return g.counts[c][r]
}
func (g binGrid) X(c int) float64 { return g.xmin + (float64(c)+0.5)*g.xstep }
func (g binGrid) Y(r int) float64 { return g.ymin + (float64(r)+0.5)*g.ystep }

// newBinGrid bins points into a cols x rows grid spanning their range.
func newBinGrid(xs, ys []float64, cols, rows int) binGrid {
	xmin, xmax := xs[0], xs[0]
	ymin, ymax := ys[0], ys[0]
	for i := range xs {
		if xs[i] < xmin {
			xmin = xs[i]
		}
		if xs[i] > xmax {
			xmax = xs[i]
		}
		if ys[i] < ymin {
			ymin = ys[i]
		}
		if ys[i] > ymax {
			ymax = ys[i]
		}
	}
	// Degenerate ranges still need a nonzero bin width.
	xstep := (xmax - xmin) / float64(cols)
	if xstep == 0 {
		xstep = 1
	}
	ystep := (ymax - ymin) / float64(rows)
	if ystep == 0 {
		ystep = 1
	}

	counts := make([][]float64, cols)
	for c := range counts {
		counts[c] = make([]float64, rows)
	}
	for i := range xs {
		c := int((xs[i] - xmin) / xstep)
		if c >= cols {
			c = cols - 1
		}
		r := int((ys[i] - ymin) / ystep)
		if r >= rows {
			r = rows - 1
		}
		counts[c][r]++
	}
	return binGrid{xmin: xmin, ymin: ymin, xstep: xstep, ystep: ystep, counts: counts}
}

// ScaffoldDensity draws the scaffold-count versus BGC-count density,
// one facet per contig-edge flag. Genomes whose regions sit on contig
// edges concentrate in the high-scaffold corner; the interior facet is
// the control.
func ScaffoldDensity(points []aggregate.ScaffoldPoint, cfg Config, dir string) ([]string, error) {
	facets := []struct {
		name  string
		title string
		edge  bool
	}{
		{"scaffold_density_edge", "Regions on contig edge", true},
		{"scaffold_density_interior", "Regions off contig edge", false},
	}

	var files []string
	for _, facet := range facets {
		var xs, ys []float64
		for _, pt := range points {
			if pt.ContigEdge == facet.edge {
				xs = append(xs, float64(pt.Scaffolds))
				ys = append(ys, float64(pt.BGCs))
			}
		}
		if len(xs) == 0 {
			continue
		}

		p := plot.New()
		p.Title.Text = facet.title
		p.X.Label.Text = "Scaffolds per genome"
		p.Y.Label.Text = "BGCs per genome"

		grid := newBinGrid(xs, ys, 20, 20)
		hm := plotter.NewHeatMap(grid, palette.Heat(12, 1))
		p.Add(hm)

		written, err := cfg.save(p, dir, facet.name)
		if err != nil {
			return nil, err
		}
		files = append(files, written...)
	}
	return files, nil
}
