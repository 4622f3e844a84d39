package render

import (
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	cyano "github.com/dtdoering/2025-cyano-bgc-perspective"
	"github.com/dtdoering/2025-cyano-bgc-perspective/classify"
)

// LengthHistograms draws one region-length histogram per category, over
// every region whose category set contains it. Categories with no
// regions are skipped. Returns the files written.
func LengthHistograms(regions []cyano.BGCRegion, cfg Config, dir string) ([]string, error) {
	var files []string
	for _, category := range classify.Categories {
		var lengths plotter.Values
		for _, r := range regions {
			for _, c := range r.Categories {
				if c == category {
					lengths = append(lengths, float64(r.Length))
					break
				}
			}
		}
		if len(lengths) == 0 {
			continue
		}

		p := plot.New()
		p.Title.Text = category + " BGC length"
		p.X.Label.Text = "Region length (bp)"
		p.Y.Label.Text = "Regions"

		h, err := plotter.NewHist(lengths, cfg.Bins)
		if err != nil {
			return nil, err
		}
		h.FillColor = plotutil.Color(0)
		p.Add(h)

		written, err := cfg.save(p, dir, "length_hist_"+fileSafe(category))
		if err != nil {
			return nil, err
		}
		files = append(files, written...)
	}
	return files, nil
}

// CombinationBars draws the lumped combination counts as a bar chart,
// most frequent group first.
func CombinationBars(ranked []classify.CombinationCount, groups map[string]string, cfg Config, dir string) ([]string, error) {
	totals := make(map[string]int)
	var order []string
	for _, cc := range ranked {
		group := groups[cc.Combination]
		if group == "" {
			group = cc.Combination
		}
		if _, seen := totals[group]; !seen {
			order = append(order, group)
		}
		totals[group] += cc.N
	}
	// The lump bucket collects the tail; keep it last regardless of size.
	order = moveToEnd(order, classify.AllOtherHybrids)

	values := make(plotter.Values, len(order))
	for i, group := range order {
		values[i] = float64(totals[group])
	}

	p := plot.New()
	p.Title.Text = "BGCs per category combination"
	p.Y.Label.Text = "Regions"

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = 0
	bars.Color = plotutil.Color(1)
	p.Add(bars)
	p.NominalX(order...)
	rotateXLabels(p)

	return cfg.save(p, dir, "combination_counts")
}

func moveToEnd(order []string, label string) []string {
	out := make([]string, 0, len(order))
	found := false
	for _, s := range order {
		if s == label {
			found = true
			continue
		}
		out = append(out, s)
	}
	if found {
		out = append(out, label)
	}
	return out
}

// rotateXLabels slants nominal x tick labels so long genus and
// combination names stay legible.
func rotateXLabels(p *plot.Plot) {
	p.X.Tick.Label.Rotation = 0.9
	p.X.Tick.Label.XAlign = -1
	p.X.Tick.Label.YAlign = -0.5
}

func fileSafe(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, ",", "")
}
