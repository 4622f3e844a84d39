package render

import (
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/dtdoering/2025-cyano-bgc-perspective/aggregate"
	"github.com/dtdoering/2025-cyano-bgc-perspective/classify"
)

// genusOrder sorts genera by descending total density so the stacked
// chart reads largest-first, ties broken by name.
func genusOrder(densities []aggregate.GenusDensity) []string {
	totals := make(map[string]float64)
	for _, d := range densities {
		totals[d.Genus] += d.Density
	}
	genera := make([]string, 0, len(totals))
	for genus := range totals {
		genera = append(genera, genus)
	}
	sort.Slice(genera, func(i, j int) bool {
		if totals[genera[i]] != totals[genera[j]] {
			return totals[genera[i]] > totals[genera[j]]
		}
		return genera[i] < genera[j]
	})
	return genera
}

// groupOrder lists the lumped groups present, sorted, with the
// tail bucket last.
func groupOrder(densities []aggregate.GenusDensity) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, d := range densities {
		if !seen[d.Group] {
			seen[d.Group] = true
			groups = append(groups, d.Group)
		}
	}
	sort.Strings(groups)
	return moveToEnd(groups, classify.AllOtherHybrids)
}

// DensityPlot draws stacked per-genome BGC densities per genus, one
// stack segment per lumped group.
func DensityPlot(densities []aggregate.GenusDensity) (*plot.Plot, error) {
	genera := genusOrder(densities)
	groups := groupOrder(densities)

	index := make(map[string]int, len(genera))
	for i, genus := range genera {
		index[genus] = i
	}
	byGroup := make(map[string]plotter.Values, len(groups))
	for _, group := range groups {
		byGroup[group] = make(plotter.Values, len(genera))
	}
	for _, d := range densities {
		byGroup[d.Group][index[d.Genus]] = d.Density
	}

	p := plot.New()
	p.Title.Text = "BGC density by genus"
	p.Y.Label.Text = "BGCs per genome"
	p.Legend.Top = true

	var prev *plotter.BarChart
	for i, group := range groups {
		bars, err := plotter.NewBarChart(byGroup[group], vg.Points(18))
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Width = 0
		bars.Color = plotutil.Color(i)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(group, bars)
		prev = bars
	}
	p.NominalX(genera...)
	rotateXLabels(p)
	return p, nil
}

// countPlot is one auxiliary bar panel of per-genus counts.
func countPlot(title, ylabel string, genera []string, counts map[string]int, colorIdx int) (*plot.Plot, error) {
	values := make(plotter.Values, len(genera))
	for i, genus := range genera {
		values[i] = float64(counts[genus])
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = 0
	bars.Color = plotutil.Color(colorIdx)
	p.Add(bars)
	p.NominalX(genera...)
	rotateXLabels(p)
	return p, nil
}

// GenusPanels draws the stacked density chart and its three auxiliary
// count panels (BGCs, genomes observed vs available, gene cluster
// families), saving each separately. The plots are also returned for
// the composite figure, in the order density, BGC counts, genome
// counts, GCF counts.
func GenusPanels(densities []aggregate.GenusDensity, totals map[string]int,
	gcfs []aggregate.GenusGCF, sources map[string]int, cfg Config, dir string) ([]*plot.Plot, []string, error) {

	genera := genusOrder(densities)

	bgcCounts := make(map[string]int)
	for _, d := range densities {
		bgcCounts[d.Genus] += d.N
	}
	gcfCounts := make(map[string]int, len(gcfs))
	for _, g := range gcfs {
		gcfCounts[g.Genus] = g.GCFs
	}

	density, err := DensityPlot(densities)
	if err != nil {
		return nil, nil, err
	}
	bgcPanel, err := countPlot("BGCs per genus", "Regions", genera, bgcCounts, 2)
	if err != nil {
		return nil, nil, err
	}
	genomePanel, err := genomeCountPlot(genera, totals, sources)
	if err != nil {
		return nil, nil, err
	}
	gcfPanel, err := countPlot("Gene cluster families per genus", "GCFs", genera, gcfCounts, 4)
	if err != nil {
		return nil, nil, err
	}

	plots := []*plot.Plot{density, bgcPanel, genomePanel, gcfPanel}
	names := []string{"genus_density", "genus_bgc_counts", "genus_genome_counts", "genus_gcf_counts"}
	var files []string
	for i, p := range plots {
		written, err := cfg.save(p, dir, names[i])
		if err != nil {
			return nil, nil, err
		}
		files = append(files, written...)
	}
	return plots, files, nil
}

// genomeCountPlot compares genomes observed in this run against the
// genome counts recorded per genus in the source databases.
func genomeCountPlot(genera []string, totals, sources map[string]int) (*plot.Plot, error) {
	observed := make(plotter.Values, len(genera))
	available := make(plotter.Values, len(genera))
	for i, genus := range genera {
		observed[i] = float64(totals[genus])
		available[i] = float64(sources[genus])
	}

	p := plot.New()
	p.Title.Text = "Genomes per genus"
	p.Y.Label.Text = "Genomes"
	p.Legend.Top = true

	w := vg.Points(9)
	obs, err := plotter.NewBarChart(observed, w)
	if err != nil {
		return nil, err
	}
	obs.LineStyle.Width = 0
	obs.Color = plotutil.Color(3)
	obs.Offset = -w / 2

	avail, err := plotter.NewBarChart(available, w)
	if err != nil {
		return nil, err
	}
	avail.LineStyle.Width = 0
	avail.Color = plotutil.Color(5)
	avail.Offset = w / 2

	p.Add(obs, avail)
	p.Legend.Add("observed", obs)
	p.Legend.Add("source databases", avail)
	p.NominalX(genera...)
	rotateXLabels(p)
	return p, nil
}
