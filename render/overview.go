package render

import (
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Overview tiles the genus panels into the combined publication figure
// and writes it in every configured format. Only raster png and vector
// pdf are supported for the composite; other formats in the config are
// skipped here.
func Overview(panels []*plot.Plot, cfg Config, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	const cols = 2
	rows := (len(panels) + cols - 1) / cols
	grid := make([][]*plot.Plot, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]*plot.Plot, cols)
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i < len(panels) {
				grid[r][c] = panels[i]
			}
		}
	}

	width := cfg.width() * vg.Length(cols)
	height := cfg.height() * vg.Length(rows)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}

	var files []string
	for _, format := range cfg.Formats {
		path := filepath.Join(dir, "overview."+format)
		switch format {
		case "png":
			img := vgimg.New(width, height)
			drawGrid(grid, tiles, draw.New(img))
			f, err := os.Create(path)
			if err != nil {
				return nil, err
			}
			png := vgimg.PngCanvas{Canvas: img}
			if _, err := png.WriteTo(f); err != nil {
				f.Close()
				return nil, err
			}
			if err := f.Close(); err != nil {
				return nil, err
			}
		case "pdf":
			c := vgpdf.New(width, height)
			drawGrid(grid, tiles, draw.New(c))
			f, err := os.Create(path)
			if err != nil {
				return nil, err
			}
			if _, err := c.WriteTo(f); err != nil {
				f.Close()
				return nil, err
			}
			if err := f.Close(); err != nil {
				return nil, err
			}
		default:
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

func drawGrid(grid [][]*plot.Plot, tiles draw.Tiles, dc draw.Canvas) {
	canvases := plot.Align(grid, tiles, dc)
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] != nil {
				grid[r][c].Draw(canvases[r][c])
			}
		}
	}
}
