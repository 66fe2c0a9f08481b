package rdxplot

import (
	"fmt"
	"image/color"

	"go-hep.org/x/hep/groot/rtree"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
)

// FillPair scans one variable of the data tree and fills a pair of
// histograms with the given binning: one unweighted, one weighted with
// the per-event weight looked up in idx. An event with no weight
// association fails the scan.
func FillPair(tree rtree.Tree, name string, idx *WeightIndex, rng BinRange, firstEntry, maxEntries int64) (raw, weighted *hbook.H1D, err error) {
	raw = hbook.NewH1D(rng.Bins, rng.Min, rng.Max)
	weighted = hbook.NewH1D(rng.Bins, rng.Min, rng.Max)

	err = ScanVar(tree, name, firstEntry, maxEntries, func(id EventID, v float64) error {
		w, err := idx.Weight(id)
		if err != nil {
			return err
		}
		raw.Fill(v, 1)
		weighted.Fill(v, w)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return raw, weighted, nil
}

// RatioConfig sets the axis ranges and label of a ratio plot.
type RatioConfig struct {
	XLabel             string
	UpYMin, UpYMax     float64
	DownYMin, DownYMax float64
}

// WriteRatioPlot overlays the unweighted (blue) and weighted (red)
// histograms in the upper pane and their bin-by-bin ratio
// unweighted/weighted in the lower one, then saves the figure to path.
func WriteRatioPlot(path string, raw, weighted *hbook.H1D, cfg RatioConfig) error {
	rp := hplot.NewRatioPlot()
	rp.Ratio = 0.3

	rp.Top.Y.Min = cfg.UpYMin
	rp.Top.Y.Max = cfg.UpYMax
	rp.Top.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}

	hRaw := hplot.NewH1D(raw)
	hRaw.FillColor = nil
	hRaw.LineStyle.Color = color.RGBA{B: 255, A: 255}
	hRaw.Infos.Style = hplot.HInfoNone

	hWeighted := hplot.NewH1D(weighted)
	hWeighted.FillColor = nil
	hWeighted.LineStyle.Color = color.RGBA{R: 255, A: 255}
	hWeighted.Infos.Style = hplot.HInfoNone

	rp.Top.Add(hRaw, hWeighted)

	ratio, err := hbook.DivideH1D(raw, weighted)
	if err != nil {
		return fmt.Errorf("rdxplot: could not divide histograms: %w", err)
	}

	pts := hplot.NewS2D(ratio, hplot.WithYErrBars(true))
	pts.GlyphStyle.Radius = vg.Points(1.5)
	pts.GlyphStyle.Color = color.RGBA{A: 255}

	rp.Bottom.Add(pts)
	rp.Bottom.X.Label.Text = cfg.XLabel
	rp.Bottom.Y.Min = cfg.DownYMin
	rp.Bottom.Y.Max = cfg.DownYMax
	rp.Bottom.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}

	return hplot.Save(rp, 6*vg.Inch, 4.5*vg.Inch, path)
}
