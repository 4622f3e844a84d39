// Command cyanobgc runs the Cyanobacteriota BGC survey pipeline: load
// the pre-computed tables, classify and quality-filter the antiSMASH
// region calls, aggregate per-combination and per-genus statistics,
// and render the figure catalog.
package main

import (
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/cheggaaa/pb.v1"

	cyano "github.com/dtdoering/2025-cyano-bgc-perspective"
	"github.com/dtdoering/2025-cyano-bgc-perspective/aggregate"
	"github.com/dtdoering/2025-cyano-bgc-perspective/classify"
	"github.com/dtdoering/2025-cyano-bgc-perspective/logger"
	"github.com/dtdoering/2025-cyano-bgc-perspective/render"
)

func main() {
	app := kingpin.New("cyanobgc", "BGC statistics across Cyanobacteriota genomes")
	app.Version("v1.0")
	configFlag := app.Flag("config", "run configuration in YAML").Default("config.yaml").String()
	verboseFlag := app.Flag("verbose", "debug logging").Default("false").Bool()
	progressFlag := app.Flag("progress", "show rendering progress").Default("false").Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := logger.Init(*verboseFlag); err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := readConfig(*configFlag)
	if err != nil {
		logger.Fatal("read config", zap.String("path", *configFlag), zap.Error(err))
	}

	run(cfg, *progressFlag)
}

// config is one pipeline run fully resolved from the YAML file.
type config struct {
	classes  string
	taxonomy string
	regions  string
	assembly string
	zeroHits string
	sources  string
	gcf      string

	tablesDir  string
	figuresDir string

	lumpThreshold int
	plot          render.Config
}

func readConfig(path string) (config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("out.tables", "out/tables")
	v.SetDefault("out.figures", "out/figures")
	v.SetDefault("lump.threshold", classify.DefaultLumpThreshold)
	def := render.DefaultConfig()
	v.SetDefault("plot.width", def.Width)
	v.SetDefault("plot.height", def.Height)
	v.SetDefault("plot.digits", def.Digits)
	v.SetDefault("plot.bins", def.Bins)
	v.SetDefault("plot.formats", def.Formats)

	if err := v.ReadInConfig(); err != nil {
		return config{}, err
	}
	return config{
		classes:       v.GetString("data.classes"),
		taxonomy:      v.GetString("data.taxonomy"),
		regions:       v.GetString("data.regions"),
		assembly:      v.GetString("data.assembly"),
		zeroHits:      v.GetString("data.zerohits"),
		sources:       v.GetString("data.sources"),
		gcf:           v.GetString("data.gcf"),
		tablesDir:     v.GetString("out.tables"),
		figuresDir:    v.GetString("out.figures"),
		lumpThreshold: v.GetInt("lump.threshold"),
		plot: render.Config{
			Width:   v.GetFloat64("plot.width"),
			Height:  v.GetFloat64("plot.height"),
			Formats: v.GetStringSlice("plot.formats"),
			Digits:  v.GetInt("plot.digits"),
			Bins:    v.GetInt("plot.bins"),
		},
	}, nil
}

func run(cfg config, progress bool) {
	// Loader stage.
	mapping, err := classify.ReadMapping(cfg.classes)
	if err != nil {
		logger.Fatal("load class mapping", zap.Error(err))
	}
	tax, err := cyano.ReadTaxonomy(cfg.taxonomy)
	if err != nil {
		logger.Fatal("load taxonomy", zap.Error(err))
	}
	levels, err := cyano.ReadAssemblyLevels(cfg.assembly)
	if err != nil {
		logger.Fatal("load assembly levels", zap.Error(err))
	}
	regions, err := cyano.ReadRegions(cfg.regions)
	if err != nil {
		logger.Fatal("load regions", zap.Error(err))
	}
	zeroHits, err := cyano.ReadZeroHits(cfg.zeroHits)
	if err != nil {
		logger.Fatal("load zero-hit list", zap.Error(err))
	}
	sources, err := cyano.ReadGenusSources(cfg.sources)
	if err != nil {
		logger.Fatal("load genus sources", zap.Error(err))
	}
	assignments, err := cyano.ReadGCFAssignments(cfg.gcf)
	if err != nil {
		logger.Fatal("load gcf assignments", zap.Error(err))
	}
	logger.Info("tables loaded",
		zap.Int("regions", len(regions)),
		zap.Int("assemblies", len(levels)),
		zap.Int("zero_hits", len(zeroHits)),
		zap.Int("gcf_assignments", len(assignments)))

	// Classifier stage. An unknown class aborts: the mapping table is
	// stale relative to the annotation tool.
	annotated, err := classify.Annotate(regions, mapping)
	if err != nil {
		logger.Fatal("classify regions", zap.Error(err))
	}

	// Filter stage: keep Complete and Chromosome assemblies only, on
	// both sides of the density ratio.
	qualifying := cyano.HighQuality(levels)
	kept := cyano.FilterRegions(annotated, qualifying)
	keptZero := cyano.FilterAccessions(zeroHits, qualifying)
	logger.Info("quality filter",
		zap.Int("regions_in", len(annotated)),
		zap.Int("regions_kept", len(kept)),
		zap.Int("zero_hits_kept", len(keptZero)))

	// Aggregator stage.
	ranked := classify.RankCombinations(kept)
	groups := classify.Groups(ranked, cfg.lumpThreshold)
	stats := aggregate.LengthStats(kept)
	counts := aggregate.GenusCombinationCounts(kept, groups)
	totals := aggregate.GenomeTotals(kept, keptZero, tax)
	densities := aggregate.Densities(counts, totals)
	gcfs := aggregate.GCFCounts(assignments, tax)
	points := aggregate.ScaffoldPoints(kept)

	// Renderer stage. Five independent steps, ticked on the progress
	// bar when requested.
	var bar *pb.ProgressBar
	if progress {
		bar = pb.StartNew(5)
	}
	tick := func() {
		if bar != nil {
			bar.Increment()
		}
	}

	path, err := render.WriteLengthStats(stats, cfg.tablesDir, "bgc_length_stats.tsv", cfg.plot.Digits)
	if err != nil {
		logger.Fatal("write length stats", zap.Error(err))
	}
	logger.Info("length stats written", zap.String("path", path))
	tick()

	if _, err := render.LengthHistograms(kept, cfg.plot, cfg.figuresDir); err != nil {
		logger.Fatal("render length histograms", zap.Error(err))
	}
	tick()

	if _, err := render.CombinationBars(ranked, groups, cfg.plot, cfg.figuresDir); err != nil {
		logger.Fatal("render combination bars", zap.Error(err))
	}
	tick()

	panels, _, err := render.GenusPanels(densities, totals, gcfs, sources, cfg.plot, cfg.figuresDir)
	if err != nil {
		logger.Fatal("render genus panels", zap.Error(err))
	}
	if _, err := render.ScaffoldDensity(points, cfg.plot, cfg.figuresDir); err != nil {
		logger.Fatal("render scaffold density", zap.Error(err))
	}
	tick()

	if _, err := render.Overview(panels, cfg.plot, cfg.figuresDir); err != nil {
		logger.Fatal("render overview figure", zap.Error(err))
	}
	tick()

	if bar != nil {
		bar.Finish()
	}
	logger.Info("pipeline complete", zap.String("figures", cfg.figuresDir))
}
